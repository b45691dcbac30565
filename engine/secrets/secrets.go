// Package secrets decides whether world secrets can be discovered from
// the player's exploration history. Discovery is all-or-nothing: every
// requirement present on a secret must hold.
package secrets

import (
	"github.com/nathoo/sundown/types"
)

// CanDiscover reports whether every requirement of the secret is met by
// the exploration state. Absent requirements impose no constraint.
// Triggers that depend on world geometry or scripted sequences arrive
// pre-resolved in state.Triggers.
func CanDiscover(secret types.Secret, state types.ExplorationState) bool {
	for _, loc := range secret.RequiredVisits {
		if !state.Visited[loc] {
			return false
		}
	}
	for _, item := range secret.RequiredItems {
		if !state.Inventory[item] {
			return false
		}
	}
	for _, quest := range secret.RequiredQuests {
		if !state.CompletedQuests[quest] {
			return false
		}
	}
	if secret.TimeOfDay != "" && secret.TimeOfDay != state.TimeOfDay {
		return false
	}
	if secret.TriggerID != "" && !state.Triggers[secret.TriggerID] {
		return false
	}
	return true
}

// Discoverable filters a secret table down to the secrets reachable from
// the given exploration state, preserving input order.
func Discoverable(pool []types.Secret, state types.ExplorationState) []types.Secret {
	var result []types.Secret
	for _, s := range pool {
		if CanDiscover(s, state) {
			result = append(result, s)
		}
	}
	return result
}
