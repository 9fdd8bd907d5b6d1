package mindmap

import (
	"errors"
)

// Default box dimensions applied when a node carries no explicit size.
// These match the canvas renderer's default card size.
const (
	DefaultWidth  = 200.0
	DefaultHeight = 80.0
)

var (
	// ErrInvalidNodeID is returned by [Mindmap.Validate] when a node has an
	// empty identifier. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Mindmap.Validate] when two nodes
	// share the same identifier. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")
)

// Node is one concept box on the canvas.
//
// Layout treats Label and Content as opaque display text; they only matter
// for sizing defaults. X and Y are assigned by the layout engine; Depth is
// recomputed by the hierarchy resolver and never trusted from caller input.
type Node struct {
	ID      string `json:"id" bson:"id"`
	Label   string `json:"label,omitempty" bson:"label,omitempty"`
	Content string `json:"content,omitempty" bson:"content,omitempty"`

	// Depth is the hierarchical distance from the resolved root.
	Depth int `json:"depth" bson:"depth"`

	// ParentID is a cached derivative of the edge list. When edges and
	// ParentID disagree, edges win.
	ParentID string `json:"parent_id,omitempty" bson:"parent_id,omitempty"`

	// Top-left position in canvas units.
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`

	// Box size; zero means "use the default" (200x80).
	Width  float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty"`

	// Rendering hints, opaque to layout.
	Color  string `json:"color,omitempty" bson:"color,omitempty"`
	Status string `json:"status,omitempty" bson:"status,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed relation between two nodes.
//
// Edges are the source of truth for parent/child structure: the hierarchy
// resolver derives parent assignments from them and only falls back to the
// cached ParentID field when no edge covers a node.
type Edge struct {
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
}

// Mindmap is the wire format between the layout engine and its callers:
// the canvas renderer, the generation stream, and the persistence layer.
//
// Nodes arrive with placeholder coordinates (typically 0,0) and are
// positioned in place by the layout engine. RootID, when set, fixes which
// node anchors the layout; otherwise the resolver infers one.
type Mindmap struct {
	Nodes  []Node `json:"nodes" bson:"nodes"`
	Edges  []Edge `json:"edges" bson:"edges"`
	RootID string `json:"root_id,omitempty" bson:"root_id,omitempty"`
}

// NodeCount returns the number of nodes in the map.
func (m *Mindmap) NodeCount() int { return len(m.Nodes) }

// EdgeCount returns the number of edges in the map.
func (m *Mindmap) EdgeCount() int { return len(m.Edges) }

// Node returns a pointer to the node with the given ID and true, or nil and
// false if not found. The pointer refers into the Nodes slice, so
// modifications affect the map.
func (m *Mindmap) Node(id string) (*Node, bool) {
	for i := range m.Nodes {
		if m.Nodes[i].ID == id {
			return &m.Nodes[i], true
		}
	}
	return nil, false
}

// Validate checks structural integrity and returns nil if valid.
// It verifies that every node has a non-empty, unique identifier.
//
// Dangling edges are deliberately not an error: the generation stream may
// emit an edge before the node it references, and the resolver ignores
// edges with unknown endpoints.
func (m *Mindmap) Validate() error {
	seen := make(map[string]struct{}, len(m.Nodes))
	for i := range m.Nodes {
		id := m.Nodes[i].ID
		if id == "" {
			return ErrInvalidNodeID
		}
		if _, dup := seen[id]; dup {
			return ErrDuplicateNodeID
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Clone returns a deep copy of the mind map. Useful when a caller wants to
// lay out a map without mutating the original node positions.
func (m *Mindmap) Clone() *Mindmap {
	out := &Mindmap{
		Nodes:  make([]Node, len(m.Nodes)),
		Edges:  make([]Edge, len(m.Edges)),
		RootID: m.RootID,
	}
	copy(out.Nodes, m.Nodes)
	copy(out.Edges, m.Edges)
	return out
}
