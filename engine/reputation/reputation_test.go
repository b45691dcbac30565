package reputation

import (
	"testing"

	"github.com/nathoo/sundown/types"
)

func testFactions() map[string]types.FactionTemplate {
	return map[string]types.FactionTemplate{
		"law_enforcement": {
			ID:   "law_enforcement",
			Name: "The Law",
			Tiers: []types.ReputationTier{
				{MinRep: -100, MaxRep: -50, Label: "Wanted", PriceModifier: 2.0, QuestAvailability: 0, Hostile: true},
				{MinRep: -49, MaxRep: -10, Label: "Suspect", PriceModifier: 1.5, QuestAvailability: 0.25},
				{MinRep: -9, MaxRep: 19, Label: "Stranger", PriceModifier: 1.0, QuestAvailability: 0.5},
				{MinRep: 20, MaxRep: 59, Label: "Deputy's Friend", PriceModifier: 0.9, QuestAvailability: 0.75},
				{MinRep: 60, MaxRep: 100, Label: "Trusted", PriceModifier: 0.8, QuestAvailability: 1},
			},
			Relations: map[string]float64{
				"townsfolk": 0.7,
				"outlaws":   -0.8,
				"railroad":  0.1,
			},
		},
		"townsfolk": {
			ID:   "townsfolk",
			Name: "Townsfolk",
			Tiers: []types.ReputationTier{
				{MinRep: -100, MaxRep: -1, Label: "Distrusted", PriceModifier: 1.2},
				{MinRep: 0, MaxRep: 100, Label: "Neighbor", PriceModifier: 1.0},
			},
		},
	}
}

func TestTierFor_PartitionCoversDomain(t *testing.T) {
	factions := testFactions()

	for rep := -100; rep <= 100; rep++ {
		tier := TierFor(factions, "law_enforcement", rep)
		if tier == nil {
			t.Fatalf("rep %d: no tier found", rep)
		}
		// Exactly one tier may contain the value.
		count := 0
		for _, candidate := range factions["law_enforcement"].Tiers {
			if rep >= candidate.MinRep && rep <= candidate.MaxRep {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("rep %d: contained in %d tiers, want 1", rep, count)
		}
	}
}

func TestTierFor_ClampsOutOfRange(t *testing.T) {
	factions := testFactions()

	low := TierFor(factions, "law_enforcement", -500)
	if low == nil || low.Label != "Wanted" {
		t.Errorf("rep -500: got %v, want Wanted tier", low)
	}
	high := TierFor(factions, "law_enforcement", 9999)
	if high == nil || high.Label != "Trusted" {
		t.Errorf("rep 9999: got %v, want Trusted tier", high)
	}
}

func TestTierFor_UnknownFaction(t *testing.T) {
	if tier := TierFor(testFactions(), "cattle_barons", 0); tier != nil {
		t.Errorf("expected nil tier for unknown faction, got %v", tier)
	}
}

func TestRelation(t *testing.T) {
	factions := testFactions()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"known edge", "law_enforcement", "townsfolk", 0.7},
		{"negative edge", "law_enforcement", "outlaws", -0.8},
		{"self is one", "law_enforcement", "law_enforcement", 1},
		{"missing edge is zero", "townsfolk", "outlaws", 0},
		{"unknown faction is zero", "cattle_barons", "townsfolk", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Relation(factions, tt.a, tt.b); got != tt.want {
				t.Errorf("Relation(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRipple_ZeroDeltaOnlyPrimary(t *testing.T) {
	got := Ripple(testFactions(), "law_enforcement", 0)

	if len(got) != 1 {
		t.Fatalf("expected only the primary faction, got %v", got)
	}
	if d, ok := got["law_enforcement"]; !ok || d != 0 {
		t.Errorf("expected {law_enforcement: 0}, got %v", got)
	}
}

func TestRipple_SignConsistency(t *testing.T) {
	got := Ripple(testFactions(), "law_enforcement", 10)

	if got["law_enforcement"] != 10 {
		t.Errorf("primary delta = %d, want unmodified 10", got["law_enforcement"])
	}
	// round(10 * 0.7 * 0.5) = 4
	if got["townsfolk"] != 4 {
		t.Errorf("townsfolk ripple = %d, want 4", got["townsfolk"])
	}
	// round(10 * -0.8 * 0.5) = -4
	if got["outlaws"] != -4 {
		t.Errorf("outlaws ripple = %d, want -4", got["outlaws"])
	}
}

func TestRipple_OmitsZeroResults(t *testing.T) {
	// round(1 * 0.1 * 0.5) = round(0.05) = 0 — railroad must be absent.
	got := Ripple(testFactions(), "law_enforcement", 1)

	if _, ok := got["railroad"]; ok {
		t.Errorf("expected zero-rounding ripple to be omitted, got %v", got)
	}
	if got["law_enforcement"] != 1 {
		t.Errorf("primary delta = %d, want 1", got["law_enforcement"])
	}
}

func TestRipple_NegativeHalfRoundsTowardZero(t *testing.T) {
	// relation -0.8, delta 1: 1 * -0.8 * 0.5 = -0.4 → 0, omitted.
	// relation -0.8, delta 2: -0.8 → -1.
	got := Ripple(testFactions(), "law_enforcement", 2)
	if got["outlaws"] != -1 {
		t.Errorf("outlaws ripple = %d, want -1", got["outlaws"])
	}

	got = Ripple(testFactions(), "law_enforcement", 1)
	if _, ok := got["outlaws"]; ok {
		t.Errorf("expected -0.4 ripple to round away, got %v", got)
	}
}

func TestRipple_UnknownFaction(t *testing.T) {
	got := Ripple(testFactions(), "cattle_barons", 5)
	if len(got) != 1 || got["cattle_barons"] != 5 {
		t.Errorf("expected only the primary delta for unknown faction, got %v", got)
	}
}

func TestIsHostile(t *testing.T) {
	factions := testFactions()

	if !IsHostile(factions, "law_enforcement", -80) {
		t.Error("expected Wanted tier to be hostile")
	}
	if IsHostile(factions, "law_enforcement", 50) {
		t.Error("expected friendly tier to be non-hostile")
	}
	// Fail open: unknown factions are never hostile.
	if IsHostile(factions, "cattle_barons", -100) {
		t.Error("expected unknown faction to default to non-hostile")
	}
}

func TestPriceFor(t *testing.T) {
	factions := testFactions()

	if got := PriceFor(factions, "law_enforcement", -80, 100); got != 200 {
		t.Errorf("Wanted price = %v, want 200", got)
	}
	if got := PriceFor(factions, "law_enforcement", 80, 100); got != 80 {
		t.Errorf("Trusted price = %v, want 80", got)
	}
	if got := PriceFor(factions, "cattle_barons", 0, 100); got != 100 {
		t.Errorf("unknown faction price = %v, want base 100", got)
	}
}
