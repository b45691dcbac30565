// Package dialogue generates concrete conversation trees from structural
// templates, filtered snippet pools, and NPC context.
package dialogue

import (
	"github.com/nathoo/sundown/types"
)

// Time-of-day buckets derived from the game hour.
const (
	Morning   = "morning"
	Afternoon = "afternoon"
	Evening   = "evening"
	Night     = "night"
)

// TimeOfDay buckets an hour of day: [5,12) morning, [12,17) afternoon,
// [17,21) evening, everything else night.
func TimeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// FilterSnippets retains the snippets compatible with the NPC and the
// current time. Every constraint present on a snippet must pass; absent
// constraints are unconstrained.
func FilterSnippets(pool []types.Snippet, npc types.NPC, ctx types.Context) []types.Snippet {
	tod := TimeOfDay(ctx.GameHour)

	var result []types.Snippet
	for _, sn := range pool {
		if !contains(sn.ValidRoles, npc.Role) {
			continue
		}
		if !contains(sn.ValidFactions, npc.Faction) {
			continue
		}
		if !contains(sn.ValidTimeOfDay, tod) {
			continue
		}
		if !personalityFits(sn, npc) {
			continue
		}
		result = append(result, sn)
	}
	return result
}

// personalityFits checks two-sided trait thresholds. A trait absent on
// the NPC satisfies both bounds — missing data never filters out content.
func personalityFits(sn types.Snippet, npc types.NPC) bool {
	for trait, min := range sn.PersonalityMin {
		if v, ok := npc.Personality[trait]; ok && v < min {
			return false
		}
	}
	for trait, max := range sn.PersonalityMax {
		if v, ok := npc.Personality[trait]; ok && v > max {
			return false
		}
	}
	return true
}

// contains reports membership, treating an empty list as "anything goes".
func contains(list []string, v string) bool {
	if len(list) == 0 {
		return true
	}
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
