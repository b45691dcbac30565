package rules

import (
	"github.com/nathoo/sundown/types"
)

// TieBreak decides whether a challenger beats the current best candidate.
// It must return false on an exact tie so that the first-encountered
// candidate wins — callers rely on stable candidate ordering for
// deterministic selection.
type TieBreak[T any] func(best, challenger T) bool

// SelectBest filters candidates to those whose every condition holds
// against the state, then reduces the survivors with the tie-break.
// The second return value is false when no candidate matches; callers
// must treat that as "no applicable entity", not an error.
func SelectBest[T any](candidates []T, s *types.GameState,
	conditionsOf func(T) []types.Condition, wins TieBreak[T]) (T, bool) {

	var best T
	found := false
	for _, c := range candidates {
		if !EvalAll(conditionsOf(c), s) {
			continue
		}
		if !found || wins(best, c) {
			best = c
			found = true
		}
	}
	return best, found
}

// ByPriority builds a tie-break that prefers the strictly higher priority.
func ByPriority[T any](priorityOf func(T) int) TieBreak[T] {
	return func(best, challenger T) bool {
		return priorityOf(challenger) > priorityOf(best)
	}
}

// BySpecificity builds a tie-break that prefers the candidate with
// strictly more conditions ("more specific wins").
func BySpecificity[T any](conditionsOf func(T) []types.Condition) TieBreak[T] {
	return func(best, challenger T) bool {
		return len(conditionsOf(challenger)) > len(conditionsOf(best))
	}
}

// BySpecificityThenPriority prefers more conditions first, falling back
// to declared priority on equal condition counts. Used for dialogue
// entry-point selection.
func BySpecificityThenPriority[T any](conditionsOf func(T) []types.Condition,
	priorityOf func(T) int) TieBreak[T] {

	return func(best, challenger T) bool {
		cb, cc := len(conditionsOf(best)), len(conditionsOf(challenger))
		if cc != cb {
			return cc > cb
		}
		return priorityOf(challenger) > priorityOf(best)
	}
}
