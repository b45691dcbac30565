// Package engine ties the loaded content tables to the selection and
// generation algorithms behind one handle. Every method is a pure
// function of the tables and its arguments; the tables are read-only,
// so one Engine may serve any number of concurrent callers.
package engine

import (
	"github.com/nathoo/sundown/engine/audio"
	"github.com/nathoo/sundown/engine/catalog"
	"github.com/nathoo/sundown/engine/dialogue"
	"github.com/nathoo/sundown/engine/reputation"
	"github.com/nathoo/sundown/engine/rng"
	"github.com/nathoo/sundown/engine/secrets"
	"github.com/nathoo/sundown/types"
)

// Engine holds the immutable content definitions and the seeded random
// source used for dialogue generation.
type Engine struct {
	Defs *catalog.Defs
	RNG  *rng.RNG
}

// New creates an engine over loaded definitions with a seeded RNG.
func New(defs *catalog.Defs, seed int64) *Engine {
	return &Engine{
		Defs: defs,
		RNG:  rng.New(seed),
	}
}

// MusicFor returns the best background track for the state, or nil when
// no track applies (callers keep whatever is playing).
func (e *Engine) MusicFor(s *types.GameState) *types.MusicTrack {
	return audio.SelectTrack(e.Defs.Tracks, s)
}

// AmbienceFor returns the most specific matching ambience layer, or nil.
func (e *Engine) AmbienceFor(s *types.GameState) *types.AmbienceLayer {
	return audio.SelectAmbience(e.Defs.Ambience, s)
}

// CueFor returns the stinger for a game event, or nil.
func (e *Engine) CueFor(event string) *types.MusicCue {
	return e.Defs.CueFor(event)
}

// TierFor returns the reputation tier for a faction at the given
// standing, or nil for unknown factions.
func (e *Engine) TierFor(factionID string, rep int) *types.ReputationTier {
	return reputation.TierFor(e.Defs.Factions, factionID, rep)
}

// Ripple propagates a reputation delta across the relation graph.
func (e *Engine) Ripple(factionID string, delta int) map[string]int {
	return reputation.Ripple(e.Defs.Factions, factionID, delta)
}

// IsHostile reports tier hostility, defaulting to false for unknown data.
func (e *Engine) IsHostile(factionID string, rep int) bool {
	return reputation.IsHostile(e.Defs.Factions, factionID, rep)
}

// BuildDialogue picks the best template for the NPC given the state and
// builds a fresh tree from it. Returns nil when the NPC is unknown or no
// template's entry conditions hold.
func (e *Engine) BuildDialogue(npcID string, s *types.GameState, ctx types.Context) *types.DialogueTree {
	npc, ok := e.Defs.NPCs[npcID]
	if !ok {
		return nil
	}
	tmpl := dialogue.SelectTemplate(e.Defs.TemplateList, s)
	if tmpl == nil {
		return nil
	}
	return dialogue.Build(e.Defs.Templates, tmpl.ID, npc, ctx, e.Defs.Snippets, e.RNG)
}

// BuildDialogueFrom builds a tree from a specific template, bypassing
// entry-point selection. Returns nil when the NPC or template is unknown.
func (e *Engine) BuildDialogueFrom(templateID, npcID string, ctx types.Context) *types.DialogueTree {
	npc, ok := e.Defs.NPCs[npcID]
	if !ok {
		return nil
	}
	return dialogue.Build(e.Defs.Templates, templateID, npc, ctx, e.Defs.Snippets, e.RNG)
}

// DiscoverableSecrets filters the secret table against exploration state.
func (e *Engine) DiscoverableSecrets(state types.ExplorationState) []types.Secret {
	return secrets.Discoverable(e.Defs.Secrets, state)
}
