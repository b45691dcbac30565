// Package export implements JSON serialization of generated dialogue
// trees for inspection and debugging. Generated trees stay ephemeral
// in-game; this is a content-authoring aid only.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nathoo/sundown/types"
)

// TreeDump is the JSON export format for one generated tree.
type TreeDump struct {
	ID          string               `json:"id"`
	TemplateID  string               `json:"template_id"`
	NPCID       string               `json:"npc_id"`
	Seed        int64                `json:"seed"`
	Nodes       []types.DialogueNode `json:"nodes"`
	EntryPoints []types.EntryPoint   `json:"entry_points"`
	Tags        []string             `json:"tags"`
}

// Marshal serializes a generated tree with the seed that produced it.
func Marshal(tree *types.DialogueTree, seed int64) ([]byte, error) {
	dump := TreeDump{
		ID:          tree.ID,
		TemplateID:  tree.TemplateID,
		NPCID:       tree.NPCID,
		Seed:        seed,
		Nodes:       tree.Nodes,
		EntryPoints: tree.EntryPoints,
		Tags:        tree.Tags,
	}
	return json.MarshalIndent(dump, "", "  ")
}

// Unmarshal parses a previously exported tree dump.
func Unmarshal(data []byte) (*TreeDump, error) {
	var dump TreeDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, err
	}
	return &dump, nil
}

// WriteFile exports a tree to <dir>/<tree-id>.json, creating the
// directory if needed, and returns the written path.
func WriteFile(dir string, tree *types.DialogueTree, seed int64) (string, error) {
	data, err := Marshal(tree, seed)
	if err != nil {
		return "", fmt.Errorf("marshaling tree %s: %w", tree.ID, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, tree.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
