// Package reputation maps faction standing to discrete tiers and ripples
// reputation changes across the faction relation graph. All functions are
// pure lookups over the read-only faction tables; reputation storage
// itself lives outside the engine.
package reputation

import (
	"math"

	"github.com/nathoo/sundown/types"
)

// Reputation values are clamped into [MinRep, MaxRep] before tier lookup.
const (
	MinRep = -100
	MaxRep = 100
)

// rippleFalloff dampens how strongly a delta carries to related factions.
const rippleFalloff = 0.5

// Clamp forces a reputation value into the legal [-100, 100] domain.
func Clamp(rep int) int {
	if rep < MinRep {
		return MinRep
	}
	if rep > MaxRep {
		return MaxRep
	}
	return rep
}

// TierFor returns the tier containing the clamped reputation value, or
// nil when the faction is unknown. For a known faction the tier partition
// guarantees exactly one match.
func TierFor(factions map[string]types.FactionTemplate, factionID string, rep int) *types.ReputationTier {
	f, ok := factions[factionID]
	if !ok {
		return nil
	}
	clamped := Clamp(rep)
	for i := range f.Tiers {
		t := &f.Tiers[i]
		if clamped >= t.MinRep && clamped <= t.MaxRep {
			return t
		}
	}
	return nil
}

// Relation returns the directed relation weight from faction a to
// faction b. Self-relation is 1; unknown factions or missing edges are 0.
func Relation(factions map[string]types.FactionTemplate, a, b string) float64 {
	if a == b {
		return 1
	}
	f, ok := factions[a]
	if !ok {
		return 0
	}
	return f.Relations[b]
}

// Ripple propagates a reputation delta from one faction to its related
// factions. The primary faction always receives the delta unmodified.
// Related factions receive round(delta * weight * falloff); entries that
// round to exactly zero are omitted, so small deltas decay to nothing.
func Ripple(factions map[string]types.FactionTemplate, factionID string, delta int) map[string]int {
	result := map[string]int{factionID: delta}

	f, ok := factions[factionID]
	if !ok {
		return result
	}
	for other, weight := range f.Relations {
		if weight == 0 {
			continue
		}
		d := jsRound(float64(delta) * weight * rippleFalloff)
		if d == 0 {
			continue
		}
		result[other] = d
	}
	return result
}

// IsHostile reports whether the faction's tier at the given reputation is
// hostile. Unknown factions default to non-hostile.
func IsHostile(factions map[string]types.FactionTemplate, factionID string, rep int) bool {
	t := TierFor(factions, factionID, rep)
	if t == nil {
		return false
	}
	return t.Hostile
}

// PriceFor applies the tier's price modifier to a base price. Unknown
// factions trade at face value.
func PriceFor(factions map[string]types.FactionTemplate, factionID string, rep int, base float64) float64 {
	t := TierFor(factions, factionID, rep)
	if t == nil {
		return base
	}
	return base * t.PriceModifier
}

// jsRound rounds half toward positive infinity, matching the rounding
// the authored ripple values were balanced against. math.Round would
// send -0.5 to -1 instead of 0 and shift negative ripples by one.
func jsRound(x float64) int {
	return int(math.Floor(x + 0.5))
}
