package dialogue

import (
	"fmt"

	"github.com/nathoo/sundown/engine/rng"
	"github.com/nathoo/sundown/engine/rules"
	"github.com/nathoo/sundown/types"
)

// Build assembles a concrete dialogue tree from a template, an NPC, and
// a snippet pool. Returns nil when the template is unknown — the only
// failure mode. Missing snippets and unknown variables degrade to
// fallback text and verbatim placeholders instead of failing the build.
//
// Node IDs ("templateID_role_index") are assigned in a first pass over
// all patterns so that a choice may point at a role declared later in
// the template. Collapsing this into one pass would break forward
// references.
func Build(templates map[string]types.DialogueTemplate, templateID string,
	npc types.NPC, ctx types.Context, pool []types.Snippet, r *rng.RNG) *types.DialogueTree {

	tmpl, ok := templates[templateID]
	if !ok {
		return nil
	}

	vars := BuildVars(npc, ctx)
	eligible := FilterSnippets(pool, npc, ctx)

	// First pass: role → node ID.
	roleIDs := make(map[string]string, len(tmpl.Patterns))
	for i, p := range tmpl.Patterns {
		roleIDs[p.Role] = fmt.Sprintf("%s_%s_%d", templateID, p.Role, i)
	}

	// Second pass: node bodies and choice wiring.
	nodes := make([]types.DialogueNode, 0, len(tmpl.Patterns))
	for _, p := range tmpl.Patterns {
		text := nodeText(p, eligible, npc, vars, r)

		choices := make([]types.DialogueChoice, 0, len(p.Choices))
		for _, cp := range p.Choices {
			next := ""
			if cp.NextRole != "" {
				next = roleIDs[cp.NextRole]
			}
			choices = append(choices, types.DialogueChoice{
				Text:       Substitute(cp.TextTemplate, vars),
				NextNodeID: next,
				Tags:       cp.Tags,
			})
		}

		nodes = append(nodes, types.DialogueNode{
			ID:      roleIDs[p.Role],
			Text:    text,
			Choices: choices,
			Tags:    []string{p.Role},
		})
	}

	tree := &types.DialogueTree{
		ID:         fmt.Sprintf("%s_%s_%d", templateID, npc.ID, r.IntRange(0, 999999)),
		TemplateID: templateID,
		NPCID:      npc.ID,
		Nodes:      nodes,
		Tags:       append(append([]string{}, tmpl.Tags...), npc.Role, npc.Faction),
	}

	// Single entry at the first node, gated by the template's entry
	// conditions with their targets resolved for this NPC.
	if len(nodes) > 0 {
		entryConds := make([]types.Condition, len(tmpl.EntryConditions))
		for i, c := range tmpl.EntryConditions {
			c.Target = Substitute(c.Target, vars)
			entryConds[i] = c
		}
		tree.EntryPoints = []types.EntryPoint{{
			NodeID:     nodes[0].ID,
			Conditions: entryConds,
			Priority:   0,
		}}
	}

	return tree
}

// nodeText draws a snippet for the pattern's categories, or falls back to
// a deterministic role-keyed filler naming the NPC. No node is ever left
// blank.
func nodeText(p types.NodePattern, eligible []types.Snippet, npc types.NPC,
	vars map[string]string, r *rng.RNG) string {

	var matching []types.Snippet
	for _, sn := range eligible {
		for _, cat := range p.SnippetCategories {
			if sn.Category == cat {
				matching = append(matching, sn)
				break
			}
		}
	}

	if len(matching) > 0 {
		sn := rng.Pick(r, matching)
		if len(sn.TextTemplates) > 0 {
			return Substitute(rng.Pick(r, sn.TextTemplates), vars)
		}
	}
	return fallbackText(p.Role, npc)
}

// fallbackText produces filler dialogue when no snippet covers a role.
func fallbackText(role string, npc types.NPC) string {
	switch role {
	case "greeting":
		return fmt.Sprintf("%s gives you a slow nod.", npc.Name)
	case "rumor":
		return fmt.Sprintf("%s shrugs. \"Can't say I've heard much worth repeating.\"", npc.Name)
	case "farewell":
		return fmt.Sprintf("%s tips their hat and turns away.", npc.Name)
	default:
		return fmt.Sprintf("%s doesn't have much to say about that.", npc.Name)
	}
}

// SelectTemplate picks which template to build for an NPC given the game
// state: templates whose entry conditions all hold compete, preferring
// more conditions, then higher declared priority. Candidate order breaks
// remaining ties, so callers must pass a stable slice. Returns nil when
// nothing applies.
func SelectTemplate(candidates []types.DialogueTemplate, s *types.GameState) *types.DialogueTemplate {
	conds := func(t types.DialogueTemplate) []types.Condition { return t.EntryConditions }
	prio := func(t types.DialogueTemplate) int { return t.Priority }

	best, ok := rules.SelectBest(candidates, s, conds, rules.BySpecificityThenPriority(conds, prio))
	if !ok {
		return nil
	}
	return &best
}
