package layout

import (
	"testing"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

func TestResolveRootSelection(t *testing.T) {
	tests := []struct {
		name     string
		m        *mindmap.Mindmap
		wantRoot string
	}{
		{
			name: "explicit root id wins",
			m: &mindmap.Mindmap{
				Nodes:  []mindmap.Node{{ID: "a"}, {ID: "b"}},
				RootID: "b",
			},
			wantRoot: "b",
		},
		{
			name: "unknown root id ignored",
			m: &mindmap.Mindmap{
				Nodes:  []mindmap.Node{{ID: "a"}, {ID: "b"}},
				RootID: "ghost",
			},
			wantRoot: "a",
		},
		{
			name: "first parentless node",
			m: &mindmap.Mindmap{
				Nodes: []mindmap.Node{{ID: "child", ParentID: "top"}, {ID: "top"}},
			},
			wantRoot: "top",
		},
		{
			name: "edges beat parent id",
			m: &mindmap.Mindmap{
				Nodes: []mindmap.Node{{ID: "a", ParentID: "b"}, {ID: "b"}},
				Edges: []mindmap.Edge{{Source: "a", Target: "b"}},
			},
			// The edge a->b makes b a child of a; a's stale ParentID is
			// only a fallback and cannot override it.
			wantRoot: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Resolve(tt.m)
			if h.Root == nil {
				t.Fatal("no root resolved")
			}
			if h.Root.ID != tt.wantRoot {
				t.Errorf("root = %s, want %s", h.Root.ID, tt.wantRoot)
			}
		})
	}
}

func TestResolveNoRoot(t *testing.T) {
	m := &mindmap.Mindmap{
		Nodes: []mindmap.Node{{ID: "a"}, {ID: "b"}},
		Edges: []mindmap.Edge{{Source: "a", Target: "b"}, {Source: "b", Target: "a"}},
	}
	h := Resolve(m)
	if h.Root != nil {
		t.Fatalf("expected nil root for parent cycle, got %s", h.Root.ID)
	}
	if len(h.Orphans) != 1 {
		t.Fatalf("expected one orphan subtree, got %v", h.Orphans)
	}
	if len(h.DepthOf) != 2 {
		t.Fatalf("every node must receive a depth, got %v", h.DepthOf)
	}
}

func TestResolveDepths(t *testing.T) {
	m := branchTree(3, 2)
	// Poison the caller-supplied depths; the resolver must recompute.
	for i := range m.Nodes {
		m.Nodes[i].Depth = 99
	}
	h := Resolve(m)

	if h.DepthOf["root"] != 0 {
		t.Errorf("root depth = %d, want 0", h.DepthOf["root"])
	}
	if h.DepthOf["root.1"] != 1 {
		t.Errorf("depth of root.1 = %d, want 1", h.DepthOf["root.1"])
	}
	if h.DepthOf["root.0.1.0"] != 3 {
		t.Errorf("depth of root.0.1.0 = %d, want 3", h.DepthOf["root.0.1.0"])
	}
}

func TestResolveChildOrderStable(t *testing.T) {
	m := &mindmap.Mindmap{
		Nodes: []mindmap.Node{{ID: "r"}, {ID: "c"}, {ID: "a"}, {ID: "b"}},
		Edges: []mindmap.Edge{
			{Source: "r", Target: "b"},
			{Source: "r", Target: "a"},
			{Source: "r", Target: "c"},
		},
	}
	h := Resolve(m)
	got := h.Children("r")
	want := []string{"c", "a", "b"} // original node array order, not edge order
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("children = %v, want %v", got, want)
		}
	}
}

func TestResolveDanglingEdges(t *testing.T) {
	m := &mindmap.Mindmap{
		Nodes: []mindmap.Node{{ID: "r"}, {ID: "x"}},
		Edges: []mindmap.Edge{
			{Source: "r", Target: "nope"},
			{Source: "missing", Target: "x"},
			{Source: "r", Target: "x"},
			{Source: "x", Target: "x"}, // self reference
		},
	}
	h := Resolve(m)
	if h.Root == nil || h.Root.ID != "r" {
		t.Fatalf("root = %v, want r", h.Root)
	}
	if got := h.Children("r"); len(got) != 1 || got[0] != "x" {
		t.Fatalf("children of r = %v, want [x]", got)
	}
	if len(h.Orphans) != 0 {
		t.Fatalf("unexpected orphans: %v", h.Orphans)
	}
}

func TestResolveOrphanCompleteness(t *testing.T) {
	// The stream emitted grandchild and its edge before the parent node
	// arrived; stray has no connection at all.
	m := &mindmap.Mindmap{
		Nodes: []mindmap.Node{
			{ID: "root"},
			{ID: "grandchild", ParentID: "pending", Depth: 2},
			{ID: "stray"},
		},
		RootID: "root",
	}
	h := Resolve(m)

	total := 0
	for range h.DepthOf {
		total++
	}
	if total != 3 {
		t.Fatalf("resolver dropped nodes: %d depths for 3 nodes", total)
	}
	if h.DepthOf["grandchild"] != 2 {
		t.Errorf("orphan depth = %d, want preserved 2", h.DepthOf["grandchild"])
	}
	if h.DepthOf["stray"] != 1 {
		t.Errorf("stray depth = %d, want default 1", h.DepthOf["stray"])
	}
}

func TestSubtreeSize(t *testing.T) {
	m := branchTree(2, 2) // 1 + 2 + 4
	h := Resolve(m)
	if got := h.SubtreeSize("root"); got != 7 {
		t.Errorf("SubtreeSize(root) = %d, want 7", got)
	}
	if got := h.SubtreeSize("root.0"); got != 3 {
		t.Errorf("SubtreeSize(root.0) = %d, want 3", got)
	}
	if got := h.SubtreeSize("root.0.1"); got != 1 {
		t.Errorf("SubtreeSize(root.0.1) = %d, want 1", got)
	}
}
