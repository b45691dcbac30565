// Package cli provides the plain-terminal content inspector: a REPL
// over a loaded content pack for previewing dialogue trees, reputation
// tiers, and audio selection against a simulated world state.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nathoo/sundown/engine"
	"github.com/nathoo/sundown/engine/catalog"
	"github.com/nathoo/sundown/engine/dialogue"
	"github.com/nathoo/sundown/engine/export"
	"github.com/nathoo/sundown/engine/reputation"
	"github.com/nathoo/sundown/types"
)

// CLI handles terminal interaction with the content author.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	ExportDir string
	Seed      int64
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat

	state       types.GameState
	exploration types.ExplorationState
	hour        int
	region      string
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, seed int64) *CLI {
	home, _ := os.UserHomeDir()
	exportDir := filepath.Join(home, ".sundown", "trees")
	c := &CLI{
		Engine:    eng,
		In:        os.Stdin,
		Out:       os.Stdout,
		ExportDir: exportDir,
		Seed:      seed,
	}
	c.reset()
	return c
}

// reset puts the simulated state back to a neutral noon baseline.
func (c *CLI) reset() {
	c.hour = 12
	c.region = ""
	c.state = types.GameState{
		TimeOfDay:    dialogue.TimeOfDay(c.hour),
		Flags:        map[string]bool{},
		ActiveQuests: nil,
		Reputation:   map[string]int{},
	}
	for id, f := range c.Engine.Defs.Factions {
		c.state.Reputation[id] = f.DefaultRep
	}
	c.exploration = types.ExplorationState{
		Visited:         map[string]bool{},
		Inventory:       map[string]bool{},
		CompletedQuests: map[string]bool{},
		TimeOfDay:       c.state.TimeOfDay,
		Triggers:        map[string]bool{},
	}
}

// Run starts the inspection loop: prompt, input, dispatch, output.
func (c *CLI) Run() {
	game := c.Engine.Defs.Game
	c.printLine(fmt.Sprintf("%s — content inspector", game.Title))
	c.printLine(fmt.Sprintf("%d NPCs, %d templates, %d snippets, %d factions loaded. Type /help for commands.",
		len(c.Engine.Defs.NPCs), len(c.Engine.Defs.Templates),
		len(c.Engine.Defs.Snippets), len(c.Engine.Defs.Factions)))
	c.printLine("")

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// "again" / "g" repeats the last command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else if !strings.HasPrefix(input, "/") {
			c.lastCmd = input
		}

		if c.Exec(input) {
			return // /quit
		}
	}
}

// Exec runs a single command line, meta or domain, and reports whether
// the inspector should exit. The TUI shares this interpreter.
func (c *CLI) Exec(input string) bool {
	if strings.HasPrefix(input, "/") {
		return c.handleMeta(input)
	}
	c.dispatch(input)
	return false
}

// Hour returns the simulated clock hour.
func (c *CLI) Hour() int { return c.hour }

// State returns the simulated selection state for display.
func (c *CLI) State() types.GameState { return c.state }

// dispatch routes a domain command to its handler.
func (c *CLI) dispatch(input string) {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "npcs":
		c.cmdNPCs()
	case "factions":
		c.cmdFactions()
	case "talk":
		c.cmdTalk(args)
	case "tree":
		c.cmdTree(args)
	case "tier":
		c.cmdTier(args)
	case "ripple":
		c.cmdRipple(args)
	case "price":
		c.cmdPrice(args)
	case "music":
		c.cmdMusic()
	case "cue":
		c.cmdCue(args)
	case "secrets":
		c.cmdSecrets()
	case "schedule":
		c.cmdSchedule(args)
	case "set":
		c.cmdSet(args)
	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}
}

// handleMeta dispatches meta-commands. Returns true if the inspector
// should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/reset":
		c.reset()
		c.printSystem("Simulated state reset.")

	case "/seed":
		c.cmdSeed(args)

	case "/export":
		c.cmdExport(args)

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdNPCs() {
	defs := c.Engine.Defs
	for _, id := range defs.NPCIDs() {
		npc := defs.NPCs[id]
		entry := catalog.ActivityAt(npc, c.hour)
		c.printLine(fmt.Sprintf("%-12s %s (%s, %s) — %s at %s",
			id, npc.Name, npc.Role, npc.Faction, entry.Activity, entry.LocationID))
	}
}

func (c *CLI) cmdFactions() {
	defs := c.Engine.Defs
	for _, id := range defs.FactionIDs() {
		f := defs.Factions[id]
		rep := c.state.Reputation[id]
		tier := c.Engine.TierFor(id, rep)
		label := "?"
		if tier != nil {
			label = tier.Label
		}
		c.printLine(fmt.Sprintf("%-16s %s — standing %+d (%s)", id, f.Name, rep, label))
	}
}

func (c *CLI) cmdTalk(args []string) {
	if len(args) < 1 {
		c.printSystem("Usage: talk <npc>")
		return
	}
	tree := c.Engine.BuildDialogue(args[0], &c.state, c.context())
	if tree == nil {
		c.printSystem(fmt.Sprintf("No dialogue for %q here (unknown NPC or no template matches).", args[0]))
		return
	}
	c.printTree(tree)
}

func (c *CLI) cmdTree(args []string) {
	if len(args) < 2 {
		c.printSystem("Usage: tree <template> <npc>")
		return
	}
	tree := c.Engine.BuildDialogueFrom(args[0], args[1], c.context())
	if tree == nil {
		c.printSystem(fmt.Sprintf("Cannot build %q for %q (unknown template or NPC).", args[0], args[1]))
		return
	}
	c.printTree(tree)
}

func (c *CLI) printTree(tree *types.DialogueTree) {
	c.printLine(fmt.Sprintf("tree %s (template %s, tags %v)", tree.ID, tree.TemplateID, tree.Tags))
	for _, node := range tree.Nodes {
		c.printLine(fmt.Sprintf("  [%s]", node.ID))
		c.printLine(fmt.Sprintf("    %s", node.Text))
		for i, choice := range node.Choices {
			next := "(end)"
			if choice.NextNodeID != "" {
				next = "-> " + choice.NextNodeID
			}
			c.printLine(fmt.Sprintf("    %d. %s %s", i+1, choice.Text, next))
		}
	}
}

func (c *CLI) cmdTier(args []string) {
	if len(args) < 1 {
		c.printSystem("Usage: tier <faction> [rep]")
		return
	}
	rep := c.state.Reputation[args[0]]
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			c.printSystem(fmt.Sprintf("Bad standing %q.", args[1]))
			return
		}
		rep = reputation.Clamp(n)
	}
	tier := c.Engine.TierFor(args[0], rep)
	if tier == nil {
		c.printSystem(fmt.Sprintf("Unknown faction %q.", args[0]))
		return
	}
	c.printLine(fmt.Sprintf("%s at %+d: %s (price x%.2f, quests x%.2f, hostile=%v)",
		args[0], rep, tier.Label, tier.PriceModifier, tier.QuestAvailability, tier.Hostile))
}

func (c *CLI) cmdRipple(args []string) {
	if len(args) < 2 {
		c.printSystem("Usage: ripple <faction> <delta>")
		return
	}
	delta, err := strconv.Atoi(args[1])
	if err != nil {
		c.printSystem(fmt.Sprintf("Bad delta %q.", args[1]))
		return
	}
	if _, ok := c.Engine.Defs.Factions[args[0]]; !ok {
		c.printSystem(fmt.Sprintf("Unknown faction %q.", args[0]))
		return
	}
	results := c.Engine.Ripple(args[0], delta)
	for _, id := range c.Engine.Defs.FactionIDs() {
		d, ok := results[id]
		if !ok {
			continue
		}
		c.printLine(fmt.Sprintf("%-16s %+d", id, d))
	}
}

func (c *CLI) cmdPrice(args []string) {
	if len(args) < 2 {
		c.printSystem("Usage: price <faction> <base>")
		return
	}
	base, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		c.printSystem(fmt.Sprintf("Bad price %q.", args[1]))
		return
	}
	rep := c.state.Reputation[args[0]]
	price := reputation.PriceFor(c.Engine.Defs.Factions, args[0], rep, base)
	c.printLine(fmt.Sprintf("%s at %+d: %.2f -> %.2f", args[0], rep, base, price))
}

func (c *CLI) cmdMusic() {
	if track := c.Engine.MusicFor(&c.state); track != nil {
		c.printLine(fmt.Sprintf("track: %s (%s, priority %d, looping=%v)",
			track.ID, track.File, track.Priority, track.Looping))
	} else {
		c.printLine("track: none (keep playing whatever is on)")
	}
	if layer := c.Engine.AmbienceFor(&c.state); layer != nil {
		c.printLine(fmt.Sprintf("ambience: %s (%s, volume %.2f)", layer.ID, layer.File, layer.Volume))
	} else {
		c.printLine("ambience: none")
	}
}

func (c *CLI) cmdCue(args []string) {
	if len(args) < 1 {
		c.printSystem("Usage: cue <event>")
		return
	}
	cue := c.Engine.CueFor(args[0])
	if cue == nil {
		c.printLine(fmt.Sprintf("no cue for event %q", args[0]))
		return
	}
	c.printLine(fmt.Sprintf("cue: %s (%s)", cue.ID, cue.File))
}

func (c *CLI) cmdSecrets() {
	c.exploration.TimeOfDay = c.state.TimeOfDay
	found := c.Engine.DiscoverableSecrets(c.exploration)
	if len(found) == 0 {
		c.printLine("No secrets discoverable with the current exploration state.")
		return
	}
	for _, s := range found {
		c.printLine(fmt.Sprintf("%-16s %s — %s", s.ID, s.Name, s.Hint))
	}
}

func (c *CLI) cmdSchedule(args []string) {
	if len(args) < 1 {
		c.printSystem("Usage: schedule <npc>")
		return
	}
	npc, ok := c.Engine.Defs.NPCs[args[0]]
	if !ok {
		c.printSystem(fmt.Sprintf("Unknown NPC %q.", args[0]))
		return
	}
	for _, e := range npc.Schedule {
		c.printLine(fmt.Sprintf("%02d-%02d %s at %s", e.StartHour, e.EndHour, e.Activity, e.LocationID))
	}
	entry := catalog.ActivityAt(npc, c.hour)
	c.printLine(fmt.Sprintf("now (%02d:00): %s at %s", c.hour, entry.Activity, entry.LocationID))
}

// cmdSet mutates the simulated world state one field at a time.
func (c *CLI) cmdSet(args []string) {
	if len(args) < 2 {
		c.printSystem("Usage: set <field> <value> (see /help)")
		return
	}
	field, value := strings.ToLower(args[0]), args[1]

	switch field {
	case "location":
		c.state.Location = value
	case "biome":
		c.state.Biome = value
	case "territory":
		c.state.FactionTerritory = value
	case "region":
		// lives on the generation context, not the selection state
		c.region = value
	case "hour":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 23 {
			c.printSystem(fmt.Sprintf("Bad hour %q (want 0-23).", value))
			return
		}
		c.hour = n
		c.state.TimeOfDay = dialogue.TimeOfDay(n)
		c.exploration.TimeOfDay = c.state.TimeOfDay
	case "combat":
		b := value == "true" || value == "on"
		c.state.InCombat = &b
	case "danger":
		n, err := strconv.Atoi(value)
		if err != nil {
			c.printSystem(fmt.Sprintf("Bad danger level %q.", value))
			return
		}
		c.state.DangerLevel = &n
	case "health":
		n, err := strconv.Atoi(value)
		if err != nil {
			c.printSystem(fmt.Sprintf("Bad health %q.", value))
			return
		}
		c.state.PlayerHealth = &n
	case "rep":
		if len(args) < 3 {
			c.printSystem("Usage: set rep <faction> <value>")
			return
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			c.printSystem(fmt.Sprintf("Bad standing %q.", args[2]))
			return
		}
		c.state.Reputation[value] = reputation.Clamp(n)
	case "flag":
		c.state.Flags[value] = true
	case "quest":
		c.state.ActiveQuests = append(c.state.ActiveQuests, value)
	case "visited":
		c.exploration.Visited[value] = true
	case "item":
		c.exploration.Inventory[value] = true
	case "done":
		c.exploration.CompletedQuests[value] = true
	case "trigger":
		c.exploration.Triggers[value] = true
	default:
		c.printSystem(fmt.Sprintf("Unknown field %q.", field))
		return
	}
	c.printSystem(fmt.Sprintf("%s set.", field))
}

func (c *CLI) cmdSeed(args []string) {
	if len(args) < 1 {
		c.printSystem(fmt.Sprintf("Seed: %d", c.Seed))
		return
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		c.printSystem(fmt.Sprintf("Bad seed %q.", args[0]))
		return
	}
	c.Seed = n
	c.Engine = engine.New(c.Engine.Defs, n)
	c.printSystem(fmt.Sprintf("Reseeded with %d.", n))
}

func (c *CLI) cmdExport(args []string) {
	if len(args) < 1 {
		c.printSystem("Usage: /export <npc>")
		return
	}
	tree := c.Engine.BuildDialogue(args[0], &c.state, c.context())
	if tree == nil {
		c.printSystem(fmt.Sprintf("No dialogue for %q to export.", args[0]))
		return
	}
	path, err := export.WriteFile(c.ExportDir, tree, c.Seed)
	if err != nil {
		c.printSystem(fmt.Sprintf("Export failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Tree written to %s.", path))
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /state          — Dump the simulated world state",
		"  /reset          — Reset the simulated state",
		"  /seed [n]       — Show or change the generation seed",
		"  /export <npc>   — Generate a tree and write it as JSON",
		"  /quit           — Exit",
		"  /help           — Show this help",
		"",
		"Inspection:",
		"  npcs                  — List NPCs with their current activity",
		"  factions              — List factions with current standing",
		"  talk <npc>            — Generate and print a dialogue tree",
		"  tree <template> <npc> — Generate from a specific template",
		"  tier <faction> [rep]  — Show the reputation tier",
		"  ripple <faction> <d>  — Show how a delta spreads to allies/rivals",
		"  price <faction> <p>   — Show the tier-adjusted price",
		"  music                 — Select track and ambience for the state",
		"  cue <event>           — Show the stinger for a game event",
		"  secrets               — List secrets discoverable right now",
		"  schedule <npc>        — Show an NPC's daily schedule",
		"  again (g)             — Repeat your last command",
		"",
		"State:",
		"  set location|biome|territory|region <id>",
		"  set hour <0-23>       set combat on|off",
		"  set danger|health <n> set rep <faction> <n>",
		"  set flag|quest <id>   set visited|item|done|trigger <id>",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	s := c.state
	c.printSystem(fmt.Sprintf("Hour: %02d:00 (%s)", c.hour, s.TimeOfDay))
	c.printSystem(fmt.Sprintf("Location: %s  Biome: %s  Territory: %s", s.Location, s.Biome, s.FactionTerritory))
	if s.InCombat != nil {
		c.printSystem(fmt.Sprintf("InCombat: %v", *s.InCombat))
	}
	if s.DangerLevel != nil {
		c.printSystem(fmt.Sprintf("Danger: %d", *s.DangerLevel))
	}
	if s.PlayerHealth != nil {
		c.printSystem(fmt.Sprintf("Health: %d", *s.PlayerHealth))
	}
	c.printSystem(fmt.Sprintf("Reputation: %v", s.Reputation))
	if len(s.Flags) > 0 {
		c.printSystem(fmt.Sprintf("Flags: %v", s.Flags))
	}
	if len(s.ActiveQuests) > 0 {
		c.printSystem(fmt.Sprintf("Quests: %v", s.ActiveQuests))
	}
}

// context builds the generation context from the simulated state.
func (c *CLI) context() types.Context {
	return types.Context{
		GameHour: c.hour,
		RegionID: c.region,
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
