// Package loader loads Lua content tables into Go structs at startup.
// The Lua VM is discarded after loading — zero Lua at runtime.
package loader

import (
	"fmt"

	"github.com/nathoo/sundown/engine/catalog"
	"github.com/nathoo/sundown/types"
	lua "github.com/yuin/gopher-lua"
)

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getNumber returns a numeric field from a Lua table, or the default if
// missing.
func getNumber(tbl *lua.LTable, key string, def float64) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return def
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key, 0))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// toGoValue converts a scalar Lua value to a Go value. Integral numbers
// become int so condition values compare cleanly.
func toGoValue(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		f := float64(val)
		if f == float64(int(f)) {
			return int(f)
		}
		return f
	case lua.LString:
		return string(val)
	default:
		return nil
	}
}

// toStringSlice converts an array-style Lua table to []string.
func toStringSlice(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var result []string
	tbl.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			result = append(result, string(s))
		}
	})
	return result
}

// toFloatMap converts a Lua table to map[string]float64.
func toFloatMap(tbl *lua.LTable) map[string]float64 {
	if tbl == nil {
		return nil
	}
	m := map[string]float64{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			if vn, ok := v.(lua.LNumber); ok {
				m[string(ks)] = float64(vn)
			}
		}
	})
	return m
}

// compileConditions converts an array of condition tables built by the
// Lua helpers.
func compileConditions(tbl *lua.LTable) []types.Condition {
	if tbl == nil {
		return nil
	}
	var conds []types.Condition
	tbl.ForEach(func(_, v lua.LValue) {
		ct, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		conds = append(conds, types.Condition{
			Kind:   getString(ct, "kind"),
			Target: getString(ct, "target"),
			Value:  toGoValue(ct.RawGetString("value")),
			Op:     getString(ct, "op"),
		})
	})
	return conds
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*catalog.Defs, error) {
	defs := &catalog.Defs{
		Cues:      map[string]types.MusicCue{},
		Factions:  map[string]types.FactionTemplate{},
		Templates: map[string]types.DialogueTemplate{},
		NPCs:      map[string]types.NPC{},
	}

	if coll.game != nil {
		defs.Game = types.GameInfo{
			Title:   getString(coll.game, "title"),
			Author:  getString(coll.game, "author"),
			Version: getString(coll.game, "version"),
		}
	}

	for _, raw := range coll.tracks {
		defs.Tracks = append(defs.Tracks, types.MusicTrack{
			ID:         raw.id,
			Name:       getString(raw.table, "name"),
			File:       getString(raw.table, "file"),
			Conditions: compileConditions(getTable(raw.table, "conditions")),
			Priority:   getInt(raw.table, "priority"),
			Looping:    getBool(raw.table, "looping", false),
		})
	}

	for _, raw := range coll.cues {
		cue := types.MusicCue{
			ID:    raw.id,
			Event: getString(raw.table, "event"),
			File:  getString(raw.table, "file"),
		}
		if _, exists := defs.Cues[cue.Event]; exists {
			return nil, fmt.Errorf("duplicate cue for event %q", cue.Event)
		}
		defs.Cues[cue.Event] = cue
	}

	for _, raw := range coll.ambience {
		defs.Ambience = append(defs.Ambience, types.AmbienceLayer{
			ID:         raw.id,
			Name:       getString(raw.table, "name"),
			File:       getString(raw.table, "file"),
			Conditions: compileConditions(getTable(raw.table, "conditions")),
			Volume:     getNumber(raw.table, "volume", 1),
		})
	}

	for _, raw := range coll.factions {
		f, err := compileFaction(raw)
		if err != nil {
			return nil, err
		}
		if _, exists := defs.Factions[f.ID]; exists {
			return nil, fmt.Errorf("duplicate faction %q", f.ID)
		}
		defs.Factions[f.ID] = f
	}

	for _, raw := range coll.templates {
		t, err := compileTemplate(raw)
		if err != nil {
			return nil, err
		}
		if _, exists := defs.Templates[t.ID]; exists {
			return nil, fmt.Errorf("duplicate template %q", t.ID)
		}
		defs.Templates[t.ID] = t
		defs.TemplateList = append(defs.TemplateList, t)
	}

	for _, raw := range coll.snippets {
		defs.Snippets = append(defs.Snippets, compileSnippet(raw))
	}

	for _, raw := range coll.npcs {
		npc := compileNPC(raw)
		if _, exists := defs.NPCs[npc.ID]; exists {
			return nil, fmt.Errorf("duplicate NPC %q", npc.ID)
		}
		defs.NPCs[npc.ID] = npc
	}

	for _, raw := range coll.secrets {
		defs.Secrets = append(defs.Secrets, compileSecret(raw))
	}

	return defs, nil
}

func compileFaction(raw rawEntry) (types.FactionTemplate, error) {
	f := types.FactionTemplate{
		ID:          raw.id,
		Name:        getString(raw.table, "name"),
		Description: getString(raw.table, "description"),
		DefaultRep:  getInt(raw.table, "default_rep"),
		Relations:   toFloatMap(getTable(raw.table, "relations")),
	}

	tiers := getTable(raw.table, "tiers")
	if tiers == nil {
		return f, fmt.Errorf("faction %q has no tiers", raw.id)
	}
	tiers.ForEach(func(_, v lua.LValue) {
		tt, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		f.Tiers = append(f.Tiers, types.ReputationTier{
			MinRep:            getInt(tt, "min"),
			MaxRep:            getInt(tt, "max"),
			Label:             getString(tt, "label"),
			PriceModifier:     getNumber(tt, "price", 1),
			QuestAvailability: getNumber(tt, "quests", 1),
			Hostile:           getBool(tt, "hostile", false),
		})
	})
	return f, nil
}

func compileTemplate(raw rawEntry) (types.DialogueTemplate, error) {
	t := types.DialogueTemplate{
		ID:              raw.id,
		Tags:            toStringSlice(getTable(raw.table, "tags")),
		EntryConditions: compileConditions(getTable(raw.table, "entry")),
		Priority:        getInt(raw.table, "priority"),
	}

	nodes := getTable(raw.table, "nodes")
	if nodes == nil {
		return t, fmt.Errorf("template %q has no nodes", raw.id)
	}
	var compileErr error
	nodes.ForEach(func(_, v lua.LValue) {
		nt, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		p := types.NodePattern{
			Role:              getString(nt, "role"),
			SnippetCategories: toStringSlice(getTable(nt, "categories")),
		}
		if p.Role == "" {
			compileErr = fmt.Errorf("template %q has a node without a role", raw.id)
			return
		}
		if choices := getTable(nt, "choices"); choices != nil {
			choices.ForEach(func(_, cv lua.LValue) {
				ct, ok := cv.(*lua.LTable)
				if !ok {
					return
				}
				p.Choices = append(p.Choices, types.ChoicePattern{
					TextTemplate: getString(ct, "text"),
					NextRole:     getString(ct, "next"),
					Tags:         toStringSlice(getTable(ct, "tags")),
				})
			})
		}
		t.Patterns = append(t.Patterns, p)
	})
	if compileErr != nil {
		return t, compileErr
	}
	return t, nil
}

func compileSnippet(raw rawEntry) types.Snippet {
	return types.Snippet{
		ID:             raw.id,
		Category:       getString(raw.table, "category"),
		TextTemplates:  toStringSlice(getTable(raw.table, "text")),
		ValidRoles:     toStringSlice(getTable(raw.table, "roles")),
		ValidFactions:  toStringSlice(getTable(raw.table, "factions")),
		ValidTimeOfDay: toStringSlice(getTable(raw.table, "time_of_day")),
		PersonalityMin: toFloatMap(getTable(raw.table, "personality_min")),
		PersonalityMax: toFloatMap(getTable(raw.table, "personality_max")),
	}
}

func compileNPC(raw rawEntry) types.NPC {
	npc := types.NPC{
		ID:          raw.id,
		Name:        getString(raw.table, "name"),
		Title:       getString(raw.table, "title"),
		Role:        getString(raw.table, "role"),
		Faction:     getString(raw.table, "faction"),
		LocationID:  getString(raw.table, "location"),
		Personality: toFloatMap(getTable(raw.table, "personality")),
	}

	if schedule := getTable(raw.table, "schedule"); schedule != nil {
		schedule.ForEach(func(_, v lua.LValue) {
			st, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			npc.Schedule = append(npc.Schedule, types.ScheduleEntry{
				StartHour:  getInt(st, "start"),
				EndHour:    getInt(st, "finish"),
				Activity:   getString(st, "activity"),
				LocationID: getString(st, "location"),
			})
		})
	}
	return npc
}

func compileSecret(raw rawEntry) types.Secret {
	return types.Secret{
		ID:             raw.id,
		Name:           getString(raw.table, "name"),
		Hint:           getString(raw.table, "hint"),
		RequiredVisits: toStringSlice(getTable(raw.table, "visited")),
		RequiredItems:  toStringSlice(getTable(raw.table, "items")),
		RequiredQuests: toStringSlice(getTable(raw.table, "quests")),
		TimeOfDay:      getString(raw.table, "time_of_day"),
		TriggerID:      getString(raw.table, "trigger"),
	}
}
