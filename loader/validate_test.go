package loader

import (
	"strings"
	"testing"

	"github.com/nathoo/sundown/engine/catalog"
	"github.com/nathoo/sundown/types"
)

// validDefs builds a minimal set of definitions that passes validation.
func validDefs() *catalog.Defs {
	return &catalog.Defs{
		Game: types.GameInfo{Title: "Red Mesa"},
		Tracks: []types.MusicTrack{
			{ID: "town_theme", Conditions: []types.Condition{
				{Kind: types.CondLocation, Value: "dusty_gulch"},
			}},
		},
		Ambience: []types.AmbienceLayer{
			{ID: "wind", Conditions: []types.Condition{
				{Kind: types.CondBiome, Value: "desert"},
			}},
		},
		Factions: map[string]types.FactionTemplate{
			"townsfolk": {
				ID: "townsfolk",
				Tiers: []types.ReputationTier{
					{MinRep: -100, MaxRep: -1, Label: "Outsider"},
					{MinRep: 0, MaxRep: 100, Label: "Neighbor"},
				},
				Relations: map[string]float64{"outlaws": -0.5},
			},
		},
		Templates: map[string]types.DialogueTemplate{
			"chat": chatTemplate(),
		},
		TemplateList: []types.DialogueTemplate{chatTemplate()},
		Snippets: []types.Snippet{
			{ID: "hello", Category: "greeting", TextTemplates: []string{"Howdy."}},
			{ID: "bye", Category: "farewell", TextTemplates: []string{"So long."}},
		},
		NPCs: map[string]types.NPC{
			"hank": {
				ID: "hank", Name: "Hank Morrow", Faction: "townsfolk",
				Schedule: []types.ScheduleEntry{
					{StartHour: 6, EndHour: 18, Activity: "working", LocationID: "farm"},
				},
			},
		},
		Secrets: []types.Secret{
			{ID: "stash", Name: "Hidden Stash", TimeOfDay: "night"},
		},
	}
}

func chatTemplate() types.DialogueTemplate {
	return types.DialogueTemplate{
		ID: "chat",
		Patterns: []types.NodePattern{
			{Role: "greeting", SnippetCategories: []string{"greeting"}, Choices: []types.ChoicePattern{
				{TextTemplate: "Goodbye.", NextRole: "farewell"},
			}},
			{Role: "farewell", SnippetCategories: []string{"farewell"}, Choices: []types.ChoicePattern{
				{TextTemplate: "[Leave]"},
			}},
		},
	}
}

func errorsContain(t *testing.T, err error, want string) {
	t.Helper()
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	for _, e := range ve.Errors {
		if strings.Contains(e, want) {
			return
		}
	}
	t.Errorf("errors %v do not mention %q", ve.Errors, want)
}

func TestValidate_ValidDefs(t *testing.T) {
	if err := validate(validDefs()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_MissingTitle(t *testing.T) {
	defs := validDefs()
	defs.Game.Title = ""
	errorsContain(t, validate(defs), "Game.title")
}

func TestValidate_UnknownConditionKind(t *testing.T) {
	defs := validDefs()
	defs.Tracks[0].Conditions[0].Kind = "weather"
	errorsContain(t, validate(defs), "unknown condition kind")
}

func TestValidate_UnknownOperator(t *testing.T) {
	defs := validDefs()
	defs.Ambience[0].Conditions[0].Op = "approx"
	errorsContain(t, validate(defs), "unknown operator")
}

func TestValidate_TierGap(t *testing.T) {
	defs := validDefs()
	f := defs.Factions["townsfolk"]
	f.Tiers = []types.ReputationTier{
		{MinRep: -100, MaxRep: -10, Label: "Outsider"},
		{MinRep: 0, MaxRep: 100, Label: "Neighbor"},
	}
	defs.Factions["townsfolk"] = f
	errorsContain(t, validate(defs), "gap or overlap")
}

func TestValidate_TierOverlap(t *testing.T) {
	defs := validDefs()
	f := defs.Factions["townsfolk"]
	f.Tiers = []types.ReputationTier{
		{MinRep: -100, MaxRep: 10, Label: "Outsider"},
		{MinRep: 0, MaxRep: 100, Label: "Neighbor"},
	}
	defs.Factions["townsfolk"] = f
	errorsContain(t, validate(defs), "gap or overlap")
}

func TestValidate_TierCoverage(t *testing.T) {
	defs := validDefs()
	f := defs.Factions["townsfolk"]
	f.Tiers = []types.ReputationTier{
		{MinRep: -50, MaxRep: 100, Label: "Partial"},
	}
	defs.Factions["townsfolk"] = f
	errorsContain(t, validate(defs), "tiers start at -50")
}

func TestValidate_RelationOutOfRange(t *testing.T) {
	defs := validDefs()
	f := defs.Factions["townsfolk"]
	f.Relations = map[string]float64{"outlaws": -1.5}
	defs.Factions["townsfolk"] = f
	errorsContain(t, validate(defs), "want [-1, 1]")
}

func TestValidate_UndefinedNextRole(t *testing.T) {
	defs := validDefs()
	tmpl := defs.Templates["chat"]
	tmpl.Patterns[0].Choices[0].NextRole = "bargain"
	defs.Templates["chat"] = tmpl
	defs.TemplateList[0] = tmpl
	errorsContain(t, validate(defs), "undefined role")
}

func TestValidate_DuplicateRole(t *testing.T) {
	defs := validDefs()
	tmpl := defs.Templates["chat"]
	tmpl.Patterns = append(tmpl.Patterns, types.NodePattern{Role: "greeting"})
	defs.Templates["chat"] = tmpl
	defs.TemplateList[0] = tmpl
	errorsContain(t, validate(defs), "duplicate role")
}

func TestValidate_SnippetBadTimeOfDay(t *testing.T) {
	defs := validDefs()
	defs.Snippets[0].ValidTimeOfDay = []string{"dusk"}
	errorsContain(t, validate(defs), "unknown time of day")
}

func TestValidate_SnippetMissingCategory(t *testing.T) {
	defs := validDefs()
	defs.Snippets[0].Category = ""
	errorsContain(t, validate(defs), "no category")
}

func TestValidate_NPCMissingName(t *testing.T) {
	defs := validDefs()
	npc := defs.NPCs["hank"]
	npc.Name = ""
	defs.NPCs["hank"] = npc
	errorsContain(t, validate(defs), "has no name")
}

func TestValidate_ScheduleHoursOutOfRange(t *testing.T) {
	defs := validDefs()
	npc := defs.NPCs["hank"]
	npc.Schedule = []types.ScheduleEntry{{StartHour: 6, EndHour: 25, Activity: "working"}}
	defs.NPCs["hank"] = npc
	errorsContain(t, validate(defs), "outside 0-23")
}

func TestValidate_SecretBadTimeOfDay(t *testing.T) {
	defs := validDefs()
	defs.Secrets[0].TimeOfDay = "noonish"
	errorsContain(t, validate(defs), "unknown time of day")
}

func TestValidate_UnknownFactionWarnsOnly(t *testing.T) {
	defs := validDefs()
	npc := defs.NPCs["hank"]
	npc.Faction = "railroad"
	defs.NPCs["hank"] = npc
	// Unknown faction references warn but do not fail the load.
	if err := validate(defs); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
