package dialogue

import (
	"regexp"

	"github.com/nathoo/sundown/types"
)

var placeholderRe = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

// Substitute replaces every {{key}} placeholder present in vars. Unknown
// keys are left verbatim so partially authored content still renders.
func Substitute(text string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		key := match[2 : len(match)-2]
		if v, ok := vars[key]; ok {
			return v
		}
		return match
	})
}

// BuildVars assembles the substitution map for one build call from the
// NPC's identity and the world context.
func BuildVars(npc types.NPC, ctx types.Context) map[string]string {
	return map[string]string{
		"npc_name":    npc.Name,
		"npc_title":   npc.Title,
		"npc_role":    npc.Role,
		"npc_faction": npc.Faction,
		"location":    npc.LocationID,
		"region":      ctx.RegionID,
		"time_of_day": TimeOfDay(ctx.GameHour),
	}
}
