package loader

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/nathoo/sundown/engine/catalog"
	"github.com/nathoo/sundown/engine/dialogue"
	"github.com/nathoo/sundown/engine/reputation"
	"github.com/nathoo/sundown/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Known condition kinds.
var validConditionKinds = map[string]bool{
	types.CondLocation:         true,
	types.CondBiome:            true,
	types.CondTimeOfDay:        true,
	types.CondCombatState:      true,
	types.CondFactionTerritory: true,
	types.CondDangerLevel:      true,
	types.CondPlayerHealth:     true,
	types.CondReputation:       true,
	types.CondFlagSet:          true,
	types.CondQuestActive:      true,
}

// Known numeric operators ("" defaults to eq).
var validOps = map[string]bool{
	"":          true,
	types.OpEq:  true,
	types.OpLt:  true,
	types.OpGt:  true,
	types.OpLte: true,
	types.OpGte: true,
}

// Known time-of-day buckets.
var validTimeBuckets = map[string]bool{
	dialogue.Morning:   true,
	dialogue.Afternoon: true,
	dialogue.Evening:   true,
	dialogue.Night:     true,
}

// validate checks the compiled defs for referential integrity and
// consistency. Warnings go to stderr; errors abort the load.
func validate(defs *catalog.Defs) error {
	ve := &ValidationError{}

	if defs.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}

	for _, track := range defs.Tracks {
		validateConditions(track.Conditions, fmt.Sprintf("track %q", track.ID), ve)
	}
	for _, layer := range defs.Ambience {
		validateConditions(layer.Conditions, fmt.Sprintf("ambience %q", layer.ID), ve)
	}

	for _, id := range defs.FactionIDs() {
		validateFaction(defs.Factions[id], ve)
	}

	snippetCategories := map[string]bool{}
	for _, sn := range defs.Snippets {
		if sn.Category == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("snippet %q has no category", sn.ID))
		}
		if len(sn.TextTemplates) == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("snippet %q has no text", sn.ID))
		}
		for _, tod := range sn.ValidTimeOfDay {
			if !validTimeBuckets[tod] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"snippet %q: unknown time of day %q", sn.ID, tod))
			}
		}
		snippetCategories[sn.Category] = true
	}

	for _, t := range defs.TemplateList {
		validateTemplate(t, snippetCategories, ve)
	}

	for _, id := range defs.NPCIDs() {
		validateNPC(defs.NPCs[id], defs, ve)
	}

	for _, secret := range defs.Secrets {
		if secret.TimeOfDay != "" && !validTimeBuckets[secret.TimeOfDay] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"secret %q: unknown time of day %q", secret.ID, secret.TimeOfDay))
		}
	}

	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateConditions(conds []types.Condition, where string, ve *ValidationError) {
	for _, c := range conds {
		if !validConditionKinds[c.Kind] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"%s: unknown condition kind %q", where, c.Kind))
		}
		if !validOps[c.Op] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"%s: unknown operator %q", where, c.Op))
		}
	}
}

// validateFaction checks the tier partition invariant: tiers must cover
// [-100, 100] with no gaps and no overlaps, and relation weights must
// lie in [-1, 1].
func validateFaction(f types.FactionTemplate, ve *ValidationError) {
	if len(f.Tiers) == 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("faction %q has no tiers", f.ID))
		return
	}

	tiers := append([]types.ReputationTier{}, f.Tiers...)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinRep < tiers[j].MinRep })

	for _, t := range tiers {
		if t.MinRep > t.MaxRep {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"faction %q tier %q: min %d > max %d", f.ID, t.Label, t.MinRep, t.MaxRep))
			return
		}
	}
	if tiers[0].MinRep != reputation.MinRep {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"faction %q: tiers start at %d, want %d", f.ID, tiers[0].MinRep, reputation.MinRep))
	}
	if tiers[len(tiers)-1].MaxRep != reputation.MaxRep {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"faction %q: tiers end at %d, want %d", f.ID, tiers[len(tiers)-1].MaxRep, reputation.MaxRep))
	}
	for i := 1; i < len(tiers); i++ {
		prev, cur := tiers[i-1], tiers[i]
		if cur.MinRep != prev.MaxRep+1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"faction %q: gap or overlap between tier %q (max %d) and tier %q (min %d)",
				f.ID, prev.Label, prev.MaxRep, cur.Label, cur.MinRep))
		}
	}

	for other, w := range f.Relations {
		if w < -1 || w > 1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"faction %q: relation to %q is %v, want [-1, 1]", f.ID, other, w))
		}
	}
}

// validateTemplate checks role uniqueness and choice wiring. Every
// choice's next role must name a role defined somewhere in the same
// template; forward references are fine.
func validateTemplate(t types.DialogueTemplate, snippetCategories map[string]bool, ve *ValidationError) {
	if len(t.Patterns) == 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("template %q has no nodes", t.ID))
		return
	}

	validateConditions(t.EntryConditions, fmt.Sprintf("template %q entry", t.ID), ve)

	roles := map[string]bool{}
	for _, p := range t.Patterns {
		if roles[p.Role] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"template %q: duplicate role %q", t.ID, p.Role))
		}
		roles[p.Role] = true
	}

	for _, p := range t.Patterns {
		for _, c := range p.Choices {
			if c.TextTemplate == "" {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"template %q role %q: choice with empty text", t.ID, p.Role))
			}
			if c.NextRole != "" && !roles[c.NextRole] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"template %q role %q: choice points to undefined role %q",
					t.ID, p.Role, c.NextRole))
			}
		}
		for _, cat := range p.SnippetCategories {
			if !snippetCategories[cat] {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"template %q role %q: no snippet provides category %q (fallback text will be used)",
					t.ID, p.Role, cat))
			}
		}
	}
}

func validateNPC(npc types.NPC, defs *catalog.Defs, ve *ValidationError) {
	if npc.Name == "" {
		ve.Errors = append(ve.Errors, fmt.Sprintf("NPC %q has no name", npc.ID))
	}
	if npc.Faction != "" {
		if _, ok := defs.Factions[npc.Faction]; !ok {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"NPC %q references undefined faction %q", npc.ID, npc.Faction))
		}
	}
	for _, e := range npc.Schedule {
		if e.StartHour < 0 || e.StartHour > 23 || e.EndHour < 0 || e.EndHour > 23 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"NPC %q: schedule entry %q has hours outside 0-23", npc.ID, e.Activity))
		}
	}
}
