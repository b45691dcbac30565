package export

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nathoo/sundown/types"
)

func testTree() *types.DialogueTree {
	return &types.DialogueTree{
		ID:         "generic_townsfolk_hank_1234",
		TemplateID: "generic_townsfolk",
		NPCID:      "hank",
		Nodes: []types.DialogueNode{
			{
				ID:   "generic_townsfolk_greeting_0",
				Text: "Hank Morrow gives you a slow nod.",
				Choices: []types.DialogueChoice{
					{Text: "[Leave]", NextNodeID: ""},
				},
				Tags: []string{"greeting"},
			},
		},
		EntryPoints: []types.EntryPoint{
			{NodeID: "generic_townsfolk_greeting_0", Priority: 0},
		},
		Tags: []string{"casual", "farmer", "townsfolk"},
	}
}

func TestRoundTrip(t *testing.T) {
	tree := testTree()

	data, err := Marshal(tree, 42)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	dump, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if dump.ID != tree.ID || dump.Seed != 42 {
		t.Errorf("got id %q seed %d, want %q 42", dump.ID, dump.Seed, tree.ID)
	}
	if !reflect.DeepEqual(dump.Nodes, tree.Nodes) {
		t.Errorf("nodes differ after round trip")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	tree := testTree()

	path, err := WriteFile(filepath.Join(dir, "exports"), tree, 7)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	dump, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if dump.NPCID != "hank" {
		t.Errorf("npc_id = %q, want hank", dump.NPCID)
	}
}

func TestUnmarshal_Garbage(t *testing.T) {
	if _, err := Unmarshal([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
