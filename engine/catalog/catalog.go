// Package catalog holds the immutable content tables loaded at startup.
// A Defs value is built once by the loader and read-only thereafter;
// concurrent readers need no synchronization.
package catalog

import (
	"sort"

	"github.com/nathoo/sundown/types"
)

// Defs holds every authored content table. Slice-backed tables keep
// their source order — selection determinism depends on it.
type Defs struct {
	Game     types.GameInfo
	Tracks   []types.MusicTrack
	Cues     map[string]types.MusicCue // keyed by event name
	Ambience []types.AmbienceLayer
	Factions map[string]types.FactionTemplate

	// Templates indexes TemplateList by ID; TemplateList preserves
	// source order for entry-point selection.
	Templates    map[string]types.DialogueTemplate
	TemplateList []types.DialogueTemplate

	Snippets []types.Snippet
	NPCs     map[string]types.NPC
	Secrets  []types.Secret
}

// TrackByID returns the track with the given ID, or nil if unknown.
func (d *Defs) TrackByID(id string) *types.MusicTrack {
	for i := range d.Tracks {
		if d.Tracks[i].ID == id {
			return &d.Tracks[i]
		}
	}
	return nil
}

// CueFor returns the one-shot stinger for a game event, or nil if none
// is authored.
func (d *Defs) CueFor(event string) *types.MusicCue {
	cue, ok := d.Cues[event]
	if !ok {
		return nil
	}
	return &cue
}

// NPCIDs returns all NPC IDs in sorted order for stable listings.
func (d *Defs) NPCIDs() []string {
	ids := make([]string, 0, len(d.NPCs))
	for id := range d.NPCs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FactionIDs returns all faction IDs in sorted order.
func (d *Defs) FactionIDs() []string {
	ids := make([]string, 0, len(d.Factions))
	for id := range d.Factions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ActivityAt returns an NPC's scheduled activity for the given hour.
// The first matching entry wins; ranges where EndHour < StartHour wrap
// midnight. Without a matching entry the NPC idles at home.
func ActivityAt(npc types.NPC, hour int) types.ScheduleEntry {
	for _, e := range npc.Schedule {
		if hourInRange(hour, e.StartHour, e.EndHour) {
			return e
		}
	}
	return types.ScheduleEntry{
		StartHour:  0,
		EndHour:    23,
		Activity:   "idle",
		LocationID: npc.LocationID,
	}
}

// hourInRange checks [start, end] inclusive, wrapping midnight when
// end < start (e.g. a 22–4 night shift).
func hourInRange(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour <= end
	}
	return hour >= start || hour <= end
}
