package dialogue

import (
	"testing"

	"github.com/nathoo/sundown/types"
)

func TestSubstitute(t *testing.T) {
	vars := map[string]string{
		"npc_name": "Hank Morrow",
		"location": "dusty_gulch",
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single placeholder",
			in:   "Howdy, I'm {{npc_name}}.",
			want: "Howdy, I'm Hank Morrow.",
		},
		{
			name: "multiple placeholders",
			in:   "{{npc_name}} of {{location}}",
			want: "Hank Morrow of dusty_gulch",
		},
		{
			name: "unknown key left verbatim",
			in:   "Hello {{unknown_key}}",
			want: "Hello {{unknown_key}}",
		},
		{
			name: "mixed known and unknown",
			in:   "{{npc_name}} says {{something}}",
			want: "Hank Morrow says {{something}}",
		},
		{
			name: "no placeholders",
			in:   "Plain text.",
			want: "Plain text.",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.in, vars); got != tt.want {
				t.Errorf("Substitute(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSubstitute_IdempotentOnUnknowns(t *testing.T) {
	in := "Hello {{unknown_key}}"
	once := Substitute(in, map[string]string{})
	twice := Substitute(once, map[string]string{})
	if once != in || twice != in {
		t.Errorf("expected unknown placeholders untouched, got %q then %q", once, twice)
	}
}

func TestBuildVars(t *testing.T) {
	npc := types.NPC{
		ID:         "hank",
		Name:       "Hank Morrow",
		Title:      "Old",
		Role:       "farmer",
		Faction:    "townsfolk",
		LocationID: "dusty_gulch",
	}
	ctx := types.Context{GameHour: 19, RegionID: "red_mesa"}

	vars := BuildVars(npc, ctx)

	want := map[string]string{
		"npc_name":    "Hank Morrow",
		"npc_title":   "Old",
		"npc_role":    "farmer",
		"npc_faction": "townsfolk",
		"location":    "dusty_gulch",
		"region":      "red_mesa",
		"time_of_day": Evening,
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("vars[%q] = %q, want %q", k, vars[k], v)
		}
	}
}
