// Package rules implements condition evaluation and best-match selection
// over conditioned candidates.
package rules

import (
	"github.com/nathoo/sundown/types"
)

// Eval evaluates a single condition against a game-state snapshot.
// Unknown kinds and missing state fields evaluate to false — the
// evaluator fails closed and never errors.
func Eval(c types.Condition, s *types.GameState) bool {
	if s == nil {
		return false
	}

	switch c.Kind {
	case types.CondLocation:
		return s.Location != "" && s.Location == asString(c.Value)

	case types.CondBiome:
		return s.Biome != "" && s.Biome == asString(c.Value)

	case types.CondTimeOfDay:
		return s.TimeOfDay != "" && s.TimeOfDay == asString(c.Value)

	case types.CondFactionTerritory:
		return s.FactionTerritory != "" && s.FactionTerritory == asString(c.Value)

	case types.CondCombatState:
		if s.InCombat == nil {
			return false
		}
		want, ok := c.Value.(bool)
		return ok && *s.InCombat == want

	case types.CondDangerLevel:
		if s.DangerLevel == nil {
			return false
		}
		return compare(*s.DangerLevel, toInt(c.Value), c.Op)

	case types.CondPlayerHealth:
		if s.PlayerHealth == nil {
			return false
		}
		return compare(*s.PlayerHealth, toInt(c.Value), c.Op)

	case types.CondReputation:
		rep, ok := s.Reputation[c.Target]
		if !ok {
			return false
		}
		return compare(rep, toInt(c.Value), c.Op)

	case types.CondFlagSet:
		return s.Flags[asString(c.Value)]

	case types.CondQuestActive:
		quest := asString(c.Value)
		for _, q := range s.ActiveQuests {
			if q == quest {
				return true
			}
		}
		return false

	default:
		return false
	}
}

// EvalAll returns true if all conditions pass (AND logic).
// An empty condition list is vacuously true.
func EvalAll(conditions []types.Condition, s *types.GameState) bool {
	for _, c := range conditions {
		if !Eval(c, s) {
			return false
		}
	}
	return true
}

// compare applies a numeric operator. An empty operator means equality;
// an unknown operator never matches.
func compare(actual, expected int, op string) bool {
	switch op {
	case "", types.OpEq:
		return actual == expected
	case types.OpLt:
		return actual < expected
	case types.OpGt:
		return actual > expected
	case types.OpLte:
		return actual <= expected
	case types.OpGte:
		return actual >= expected
	default:
		return false
	}
}

// asString returns the condition value as a string, or "" for non-strings.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// toInt converts an any value to int, handling float64 from Lua.
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case int64:
		return int(n)
	default:
		return 0
	}
}
