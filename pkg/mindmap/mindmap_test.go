package mindmap

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       *Mindmap
		wantErr error
	}{
		{
			name:    "empty map is valid",
			m:       &Mindmap{},
			wantErr: nil,
		},
		{
			name: "valid map",
			m: &Mindmap{
				Nodes: []Node{{ID: "a"}, {ID: "b"}},
				Edges: []Edge{{Source: "a", Target: "b"}},
			},
			wantErr: nil,
		},
		{
			name:    "empty node ID",
			m:       &Mindmap{Nodes: []Node{{ID: "a"}, {ID: ""}}},
			wantErr: ErrInvalidNodeID,
		},
		{
			name:    "duplicate node ID",
			m:       &Mindmap{Nodes: []Node{{ID: "a"}, {ID: "a"}}},
			wantErr: ErrDuplicateNodeID,
		},
		{
			name: "dangling edge is allowed",
			m: &Mindmap{
				Nodes: []Node{{ID: "a"}},
				Edges: []Edge{{Source: "a", Target: "missing"}},
			},
			wantErr: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNodeLookup(t *testing.T) {
	m := &Mindmap{Nodes: []Node{{ID: "a"}, {ID: "b"}}}

	n, ok := m.Node("b")
	if !ok || n == nil {
		t.Fatal("Node(b) not found")
	}
	n.X = 42
	if m.Nodes[1].X != 42 {
		t.Error("Node() must return a pointer into the slice")
	}

	if _, ok := m.Node("zzz"); ok {
		t.Error("Node(zzz) should not be found")
	}
}

func TestDisplayLabel(t *testing.T) {
	n := Node{ID: "n1", Label: "Groceries"}
	if got := n.DisplayLabel(); got != "Groceries" {
		t.Errorf("DisplayLabel() = %q, want Groceries", got)
	}
	n.Label = ""
	if got := n.DisplayLabel(); got != "n1" {
		t.Errorf("DisplayLabel() = %q, want n1", got)
	}
}

func TestClone(t *testing.T) {
	orig := &Mindmap{
		Nodes:  []Node{{ID: "a", X: 1}, {ID: "b", X: 2}},
		Edges:  []Edge{{Source: "a", Target: "b"}},
		RootID: "a",
	}

	cp := orig.Clone()
	cp.Nodes[0].X = 99
	cp.Edges[0].Target = "zzz"
	cp.RootID = "b"

	if orig.Nodes[0].X != 1 {
		t.Error("Clone shares node storage with the original")
	}
	if orig.Edges[0].Target != "b" {
		t.Error("Clone shares edge storage with the original")
	}
	if orig.RootID != "a" {
		t.Error("Clone shares RootID with the original")
	}
}

func TestUnmarshalValidates(t *testing.T) {
	if _, err := Unmarshal([]byte(`{"nodes":[{"id":"a"},{"id":"a"}]}`)); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("Unmarshal of duplicate IDs = %v, want ErrDuplicateNodeID", err)
	}
	if _, err := Unmarshal([]byte(`not json`)); err == nil {
		t.Error("Unmarshal of garbage should fail")
	}
}

func TestFileRoundTrip(t *testing.T) {
	m := &Mindmap{
		Nodes: []Node{
			{ID: "root", Label: "Trip", Color: "#ff8800"},
			{ID: "packing", Label: "Packing", ParentID: "root", Width: 240, Height: 96},
		},
		Edges:  []Edge{{Source: "root", Target: "packing"}},
		RootID: "root",
	}

	path := filepath.Join(t.TempDir(), "map.json")
	if err := WriteFile(m, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.RootID != m.RootID || len(got.Nodes) != 2 || len(got.Edges) != 1 {
		t.Errorf("round trip lost structure: %+v", got)
	}
	if got.Nodes[1].Width != 240 || got.Nodes[1].Height != 96 {
		t.Errorf("round trip lost size: %+v", got.Nodes[1])
	}
	if got.Nodes[0].Color != "#ff8800" {
		t.Errorf("round trip lost color: %+v", got.Nodes[0])
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadFile of missing path should fail")
	}
}
