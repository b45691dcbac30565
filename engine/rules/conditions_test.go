package rules

import (
	"testing"

	"github.com/nathoo/sundown/types"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func condTestState() *types.GameState {
	return &types.GameState{
		Location:         "dusty_gulch",
		Biome:            "desert",
		TimeOfDay:        "night",
		InCombat:         boolPtr(false),
		DangerLevel:      intPtr(3),
		PlayerHealth:     intPtr(40),
		FactionTerritory: "outlaws",
		Flags:            map[string]bool{"met_sheriff": true},
		ActiveQuests:     []string{"missing_cattle"},
		Reputation:       map[string]int{"townsfolk": 25},
	}
}

func TestEval(t *testing.T) {
	s := condTestState()

	tests := []struct {
		name string
		cond types.Condition
		want bool
	}{
		{
			name: "location: matches",
			cond: types.Condition{Kind: types.CondLocation, Value: "dusty_gulch"},
			want: true,
		},
		{
			name: "location: does not match",
			cond: types.Condition{Kind: types.CondLocation, Value: "fort_ashwood"},
			want: false,
		},
		{
			name: "biome: matches",
			cond: types.Condition{Kind: types.CondBiome, Value: "desert"},
			want: true,
		},
		{
			name: "time_of_day: matches",
			cond: types.Condition{Kind: types.CondTimeOfDay, Value: "night"},
			want: true,
		},
		{
			name: "faction_territory: matches",
			cond: types.Condition{Kind: types.CondFactionTerritory, Value: "outlaws"},
			want: true,
		},
		{
			name: "combat_state: matches false",
			cond: types.Condition{Kind: types.CondCombatState, Value: false},
			want: true,
		},
		{
			name: "combat_state: does not match",
			cond: types.Condition{Kind: types.CondCombatState, Value: true},
			want: false,
		},
		{
			name: "danger_level: default operator is eq",
			cond: types.Condition{Kind: types.CondDangerLevel, Value: 3},
			want: true,
		},
		{
			name: "danger_level: gte passes",
			cond: types.Condition{Kind: types.CondDangerLevel, Value: 3, Op: types.OpGte},
			want: true,
		},
		{
			name: "danger_level: gt fails on equal",
			cond: types.Condition{Kind: types.CondDangerLevel, Value: 3, Op: types.OpGt},
			want: false,
		},
		{
			name: "player_health: lt passes",
			cond: types.Condition{Kind: types.CondPlayerHealth, Value: 50, Op: types.OpLt},
			want: true,
		},
		{
			name: "player_health: lte passes on equal",
			cond: types.Condition{Kind: types.CondPlayerHealth, Value: 40, Op: types.OpLte},
			want: true,
		},
		{
			name: "player_health: unknown operator never matches",
			cond: types.Condition{Kind: types.CondPlayerHealth, Value: 40, Op: "near"},
			want: false,
		},
		{
			name: "reputation: threshold against faction",
			cond: types.Condition{Kind: types.CondReputation, Target: "townsfolk", Value: 20, Op: types.OpGte},
			want: true,
		},
		{
			name: "reputation: unknown faction is false, not zero",
			cond: types.Condition{Kind: types.CondReputation, Target: "railroad", Value: 0, Op: types.OpGte},
			want: false,
		},
		{
			name: "flag_set: flag is true",
			cond: types.Condition{Kind: types.CondFlagSet, Value: "met_sheriff"},
			want: true,
		},
		{
			name: "flag_set: flag is unset",
			cond: types.Condition{Kind: types.CondFlagSet, Value: "robbed_bank"},
			want: false,
		},
		{
			name: "quest_active: quest running",
			cond: types.Condition{Kind: types.CondQuestActive, Value: "missing_cattle"},
			want: true,
		},
		{
			name: "quest_active: quest not running",
			cond: types.Condition{Kind: types.CondQuestActive, Value: "gold_rush"},
			want: false,
		},
		{
			name: "unknown condition kind: false",
			cond: types.Condition{Kind: "moon_phase", Value: "full"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Eval(tt.cond, s)
			if got != tt.want {
				t.Errorf("Eval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEval_MissingFieldsNeverMatch(t *testing.T) {
	empty := &types.GameState{}

	tests := []struct {
		name string
		cond types.Condition
	}{
		{"location absent", types.Condition{Kind: types.CondLocation, Value: "dusty_gulch"}},
		{"combat state absent", types.Condition{Kind: types.CondCombatState, Value: false}},
		{"danger level absent is not zero", types.Condition{Kind: types.CondDangerLevel, Value: 0}},
		{"health absent", types.Condition{Kind: types.CondPlayerHealth, Value: 100, Op: types.OpLte}},
		{"flags absent", types.Condition{Kind: types.CondFlagSet, Value: "anything"}},
		{"quests absent", types.Condition{Kind: types.CondQuestActive, Value: "anything"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Eval(tt.cond, empty) {
				t.Error("expected missing state field to never match")
			}
		})
	}
}

func TestEvalAll_AllPass(t *testing.T) {
	s := condTestState()
	conds := []types.Condition{
		{Kind: types.CondLocation, Value: "dusty_gulch"},
		{Kind: types.CondTimeOfDay, Value: "night"},
		{Kind: types.CondFlagSet, Value: "met_sheriff"},
	}
	if !EvalAll(conds, s) {
		t.Error("expected all conditions to pass")
	}
}

func TestEvalAll_OneFails(t *testing.T) {
	s := condTestState()
	conds := []types.Condition{
		{Kind: types.CondLocation, Value: "dusty_gulch"},
		{Kind: types.CondFlagSet, Value: "robbed_bank"}, // fails
	}
	if EvalAll(conds, s) {
		t.Error("expected conditions to fail")
	}
}

func TestEvalAll_Empty(t *testing.T) {
	s := condTestState()
	if !EvalAll(nil, s) {
		t.Error("expected empty conditions to pass vacuously")
	}
}
