// Package audio selects background music and ambience layers for the
// current game state. It instantiates the generic best-match selector:
// tracks compete on priority, ambience layers on specificity.
package audio

import (
	"github.com/nathoo/sundown/engine/rules"
	"github.com/nathoo/sundown/types"
)

// SelectTrack returns the highest-priority track whose conditions all
// hold, or nil when no track applies. Ties keep the first candidate in
// table order, so repeated calls with the same state and table are
// stable.
func SelectTrack(tracks []types.MusicTrack, s *types.GameState) *types.MusicTrack {
	conds := func(t types.MusicTrack) []types.Condition { return t.Conditions }
	prio := func(t types.MusicTrack) int { return t.Priority }

	best, ok := rules.SelectBest(tracks, s, conds, rules.ByPriority(prio))
	if !ok {
		return nil
	}
	return &best
}

// SelectAmbience returns the matching layer with the most conditions
// ("more specific wins"), or nil when none applies.
func SelectAmbience(layers []types.AmbienceLayer, s *types.GameState) *types.AmbienceLayer {
	conds := func(l types.AmbienceLayer) []types.Condition { return l.Conditions }

	best, ok := rules.SelectBest(layers, s, conds, rules.BySpecificity(conds))
	if !ok {
		return nil
	}
	return &best
}
