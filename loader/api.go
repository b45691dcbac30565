package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerConditionHelpers(L)
	registerStructureHelpers(L)
}

// curried registers a "Name 'id' { ... }" constructor that appends the
// entry to the given bucket.
func curried(L *lua.LState, name string, bucket *[]rawEntry) {
	L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			*bucket = append(*bucket, rawEntry{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Game { title = "...", author = "...", version = "..." }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	curried(L, "Track", &coll.tracks)
	curried(L, "Cue", &coll.cues)
	curried(L, "Ambience", &coll.ambience)
	curried(L, "Faction", &coll.factions)
	curried(L, "Template", &coll.templates)
	curried(L, "Snippet", &coll.snippets)
	curried(L, "NPC", &coll.npcs)
	curried(L, "Secret", &coll.secrets)
}

// condTable builds the tagged condition table shared by all helpers.
func condTable(L *lua.LState, kind, target string, value lua.LValue, op string) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("kind", lua.LString(kind))
	if target != "" {
		tbl.RawSetString("target", lua.LString(target))
	}
	tbl.RawSetString("value", value)
	if op != "" {
		tbl.RawSetString("op", lua.LString(op))
	}
	return tbl
}

func registerConditionHelpers(L *lua.LState) {
	// AtLocation("dusty_gulch")
	L.SetGlobal("AtLocation", L.NewFunction(func(L *lua.LState) int {
		L.Push(condTable(L, "location", "", lua.LString(L.CheckString(1)), ""))
		return 1
	}))

	// InBiome("desert")
	L.SetGlobal("InBiome", L.NewFunction(func(L *lua.LState) int {
		L.Push(condTable(L, "biome", "", lua.LString(L.CheckString(1)), ""))
		return 1
	}))

	// AtTime("night")
	L.SetGlobal("AtTime", L.NewFunction(func(L *lua.LState) int {
		L.Push(condTable(L, "time_of_day", "", lua.LString(L.CheckString(1)), ""))
		return 1
	}))

	// InCombat(true)
	L.SetGlobal("InCombat", L.NewFunction(func(L *lua.LState) int {
		L.Push(condTable(L, "combat_state", "", lua.LBool(L.CheckBool(1)), ""))
		return 1
	}))

	// InTerritory("outlaws")
	L.SetGlobal("InTerritory", L.NewFunction(func(L *lua.LState) int {
		L.Push(condTable(L, "faction_territory", "", lua.LString(L.CheckString(1)), ""))
		return 1
	}))

	// Danger("gte", 3)
	L.SetGlobal("Danger", L.NewFunction(func(L *lua.LState) int {
		op := L.CheckString(1)
		value := L.CheckNumber(2)
		L.Push(condTable(L, "danger_level", "", value, op))
		return 1
	}))

	// Health("lt", 25)
	L.SetGlobal("Health", L.NewFunction(func(L *lua.LState) int {
		op := L.CheckString(1)
		value := L.CheckNumber(2)
		L.Push(condTable(L, "player_health", "", value, op))
		return 1
	}))

	// Reputation("law_enforcement", "lte", -50)
	L.SetGlobal("Reputation", L.NewFunction(func(L *lua.LState) int {
		faction := L.CheckString(1)
		op := L.CheckString(2)
		value := L.CheckNumber(3)
		L.Push(condTable(L, "reputation", faction, value, op))
		return 1
	}))

	// FlagSet("met_sheriff")
	L.SetGlobal("FlagSet", L.NewFunction(func(L *lua.LState) int {
		L.Push(condTable(L, "flag_set", "", lua.LString(L.CheckString(1)), ""))
		return 1
	}))

	// QuestActive("missing_cattle")
	L.SetGlobal("QuestActive", L.NewFunction(func(L *lua.LState) int {
		L.Push(condTable(L, "quest_active", "", lua.LString(L.CheckString(1)), ""))
		return 1
	}))
}

func registerStructureHelpers(L *lua.LState) {
	// Tier(minRep, maxRep, "Label", { price = 1.2, quests = 0.5, hostile = false })
	L.SetGlobal("Tier", L.NewFunction(func(L *lua.LState) int {
		min := L.CheckInt(1)
		max := L.CheckInt(2)
		label := L.CheckString(3)

		tbl := L.NewTable()
		tbl.RawSetString("min", lua.LNumber(min))
		tbl.RawSetString("max", lua.LNumber(max))
		tbl.RawSetString("label", lua.LString(label))
		if effects, ok := L.Get(4).(*lua.LTable); ok {
			tbl.RawSetString("price", effects.RawGetString("price"))
			tbl.RawSetString("quests", effects.RawGetString("quests"))
			tbl.RawSetString("hostile", effects.RawGetString("hostile"))
		}
		L.Push(tbl)
		return 1
	}))

	// Node("greeting", {"greeting"}, { Choice(...), ... })
	L.SetGlobal("Node", L.NewFunction(func(L *lua.LState) int {
		role := L.CheckString(1)
		categories := L.CheckTable(2)
		choices := L.CheckTable(3)

		tbl := L.NewTable()
		tbl.RawSetString("role", lua.LString(role))
		tbl.RawSetString("categories", categories)
		tbl.RawSetString("choices", choices)
		L.Push(tbl)
		return 1
	}))

	// Choice("Heard any news?", "rumor", {"ask"}) — next role and tags
	// optional; nil next role ends the conversation.
	L.SetGlobal("Choice", L.NewFunction(func(L *lua.LState) int {
		text := L.CheckString(1)

		tbl := L.NewTable()
		tbl.RawSetString("text", lua.LString(text))
		if next, ok := L.Get(2).(lua.LString); ok {
			tbl.RawSetString("next", next)
		}
		if tags, ok := L.Get(3).(*lua.LTable); ok {
			tbl.RawSetString("tags", tags)
		}
		L.Push(tbl)
		return 1
	}))

	// Shift(6, 11, "tending_fields", "north_field")
	L.SetGlobal("Shift", L.NewFunction(func(L *lua.LState) int {
		start := L.CheckInt(1)
		end := L.CheckInt(2)
		activity := L.CheckString(3)
		location := L.CheckString(4)

		tbl := L.NewTable()
		tbl.RawSetString("start", lua.LNumber(start))
		tbl.RawSetString("finish", lua.LNumber(end))
		tbl.RawSetString("activity", lua.LString(activity))
		tbl.RawSetString("location", lua.LString(location))
		L.Push(tbl)
		return 1
	}))
}
