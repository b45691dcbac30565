// Package types defines the shared data structures for the Sundown content
// engine. This package contains only type definitions — no logic, no methods.
package types

// Condition kinds understood by the evaluator. Unknown kinds always
// evaluate to false.
const (
	CondLocation         = "location"
	CondBiome            = "biome"
	CondTimeOfDay        = "time_of_day"
	CondCombatState      = "combat_state"
	CondFactionTerritory = "faction_territory"
	CondDangerLevel      = "danger_level"
	CondPlayerHealth     = "player_health"
	CondReputation       = "reputation"
	CondFlagSet          = "flag_set"
	CondQuestActive      = "quest_active"
)

// Comparison operators for numeric conditions. OpEq is the default when
// a condition leaves Op empty.
const (
	OpEq  = "eq"
	OpLt  = "lt"
	OpGt  = "gt"
	OpLte = "lte"
	OpGte = "gte"
)

// Condition is a single authored predicate evaluated against a GameState.
type Condition struct {
	Kind   string
	Target string // kind-specific qualifier (e.g. faction ID for reputation)
	Value  any
	Op     string // numeric kinds only; "" means OpEq
}

// GameState is a snapshot of the world consumed by the condition evaluator.
// Any field may be absent: empty strings and nil pointers mean "unknown",
// never a sentinel value.
type GameState struct {
	Location         string
	Biome            string
	TimeOfDay        string
	InCombat         *bool
	DangerLevel      *int
	PlayerHealth     *int
	FactionTerritory string
	Flags            map[string]bool
	ActiveQuests     []string
	Reputation       map[string]int
}

// MusicTrack is a conditioned, prioritized background track.
type MusicTrack struct {
	ID         string
	Name       string
	File       string
	Conditions []Condition
	Priority   int
	Looping    bool
}

// MusicCue is a one-shot stinger keyed by a game event name.
type MusicCue struct {
	ID    string
	Event string
	File  string
}

// AmbienceLayer is a conditioned environmental sound layer. Selection
// prefers layers with more conditions ("more specific wins").
type AmbienceLayer struct {
	ID         string
	Name       string
	File       string
	Conditions []Condition
	Volume     float64
}

// ReputationTier is a closed integer reputation bracket with its gameplay
// effects. The tiers of one faction partition [-100, 100] with no gaps
// and no overlaps.
type ReputationTier struct {
	MinRep            int
	MaxRep            int
	Label             string
	PriceModifier     float64
	QuestAvailability float64
	Hostile           bool
}

// FactionTemplate defines a faction's tier partition and its weighted
// relations to other factions. Relation weights lie in [-1, 1] and are
// not required to be symmetric.
type FactionTemplate struct {
	ID          string
	Name        string
	Description string
	DefaultRep  int
	Tiers       []ReputationTier
	Relations   map[string]float64
}

// ChoicePattern is one authored choice inside a node pattern. NextRole
// names another pattern's role within the same template; empty means the
// conversation ends at that branch.
type ChoicePattern struct {
	TextTemplate string
	NextRole     string
	Tags         []string
}

// NodePattern is one structural node of a dialogue template. Role is a
// template-local symbolic name, never a stable node ID.
type NodePattern struct {
	Role              string
	SnippetCategories []string
	Choices           []ChoicePattern
}

// DialogueTemplate is the content-free skeleton of a dialogue tree,
// shared across every NPC that uses it. Authored once, read-only.
type DialogueTemplate struct {
	ID              string
	Tags            []string
	EntryConditions []Condition
	Priority        int
	Patterns        []NodePattern
}

// Snippet is an authored dialogue fragment with eligibility constraints.
// Empty constraint lists/maps are unconstrained and always pass.
type Snippet struct {
	ID             string
	Category       string
	TextTemplates  []string
	ValidRoles     []string
	ValidFactions  []string
	ValidTimeOfDay []string
	PersonalityMin map[string]float64
	PersonalityMax map[string]float64
}

// DialogueChoice is a resolved choice in a generated node. An empty
// NextNodeID ends the conversation at that branch.
type DialogueChoice struct {
	Text       string
	NextNodeID string
	Tags       []string
}

// DialogueNode is a generated node with resolved text and a stable
// synthesized ID ("templateID_role_index").
type DialogueNode struct {
	ID      string
	Text    string
	Choices []DialogueChoice
	Tags    []string
}

// EntryPoint gates where a conversation may start inside a generated tree.
type EntryPoint struct {
	NodeID     string
	Conditions []Condition
	Priority   int
}

// DialogueTree is the builder's output: a concrete conversation graph,
// created fresh per conversation and never mutated after construction.
type DialogueTree struct {
	ID          string
	TemplateID  string
	NPCID       string
	Nodes       []DialogueNode
	EntryPoints []EntryPoint
	Tags        []string
}

// ScheduleEntry assigns an NPC an activity for an hour range. Ranges wrap
// midnight when EndHour < StartHour.
type ScheduleEntry struct {
	StartHour  int
	EndHour    int
	Activity   string
	LocationID string
}

// NPC describes a character for snippet filtering and tree generation.
type NPC struct {
	ID          string
	Name        string
	Title       string
	Role        string
	Faction     string
	LocationID  string
	Personality map[string]float64
	Schedule    []ScheduleEntry
}

// Context carries the world-side inputs of a single tree build.
type Context struct {
	GameHour int // 0–23
	RegionID string
}

// Secret is a discoverable with all-or-nothing requirements. Absent
// fields impose no constraint.
type Secret struct {
	ID             string
	Name           string
	Hint           string
	RequiredVisits []string // location IDs that must all have been visited
	RequiredItems  []string
	RequiredQuests []string // completed quest IDs
	TimeOfDay      string
	TriggerID      string // external trigger resolved by the caller
}

// ExplorationState is the caller-supplied snapshot for secret discovery.
// Triggers holds pre-resolved booleans for conditions outside this
// engine's authority (coordinate proximity, scripted sequences).
type ExplorationState struct {
	Visited         map[string]bool
	Inventory       map[string]bool
	CompletedQuests map[string]bool
	TimeOfDay       string
	Triggers        map[string]bool
}

// GameInfo holds content-pack metadata.
type GameInfo struct {
	Title   string
	Author  string
	Version string
}
