package layout

import "github.com/mindweave/mindweave/pkg/mindmap"

// Hierarchy is the resolved tree structure of a mind map: parent/child
// lookups, recomputed depths, and the set of orphan subtree roots.
//
// The resolver is deliberately forgiving. The generation stream may emit a
// node before the edge naming its parent arrives, callers may leave stale
// ParentID fields behind, and edges may reference nodes that do not exist.
// None of that is an error here; every node in the input appears in the
// output, reachable from the root or not.
type Hierarchy struct {
	// Root is the anchor node, or nil when the map is empty or no root
	// could be resolved (every node claims a parent, e.g. a cycle).
	Root *mindmap.Node

	// ChildrenOf maps a node ID to its child IDs, ordered by the position
	// of the child in the original node array. The adjacency is a forest:
	// parent references that would close a cycle are dropped during
	// traversal, so recursive walks always terminate.
	ChildrenOf map[string][]string

	// ParentOf maps a node ID to its tree parent ID. Roots, orphan
	// subtree roots, and nodes with no resolvable parent are absent.
	ParentOf map[string]string

	// DepthOf maps a node ID to its distance from the root. Orphans keep
	// their incoming depth, defaulting to 1.
	DepthOf map[string]int

	// Orphans holds the roots of subtrees unreachable from Root, in
	// original array order. Their descendants are reachable through
	// ChildrenOf as usual.
	Orphans []string
}

// Children returns the ordered child IDs of a node.
func (h *Hierarchy) Children(id string) []string { return h.ChildrenOf[id] }

// Depth returns the resolved depth of a node, or 0 if unknown.
func (h *Hierarchy) Depth(id string) int { return h.DepthOf[id] }

// SubtreeSize returns the number of nodes in the subtree rooted at id,
// including id itself.
func (h *Hierarchy) SubtreeSize(id string) int {
	size := 1
	for _, c := range h.ChildrenOf[id] {
		size += h.SubtreeSize(c)
	}
	return size
}

// resolver carries the intermediate state of Resolve.
type resolver struct {
	m       *mindmap.Mindmap
	index   map[string]*mindmap.Node
	order   map[string]int
	rawKids map[string][]string // adjacency before cycle pruning
	visited map[string]bool
	h       *Hierarchy
}

// Resolve turns the flat node/edge list into a rooted hierarchy.
//
// Parent assignment: edges win over the cached ParentID field. For each
// edge source→target whose endpoints both exist, target's parent becomes
// source (first such edge wins). Nodes not covered by any edge fall back to
// their ParentID when it names a known, distinct node. Self references are
// ignored.
//
// Root selection: the map's RootID if it names a known node, else the first
// node in array order with no resolvable parent, else nil (flat fallback -
// every node becomes an orphan subtree root).
//
// Depth is recomputed by breadth-first traversal from the root; callers
// must never rely on the depth values they passed in.
func Resolve(m *mindmap.Mindmap) Hierarchy {
	h := Hierarchy{
		ChildrenOf: make(map[string][]string, len(m.Nodes)),
		ParentOf:   make(map[string]string, len(m.Nodes)),
		DepthOf:    make(map[string]int, len(m.Nodes)),
	}
	if len(m.Nodes) == 0 {
		return h
	}

	r := resolver{
		m:       m,
		index:   make(map[string]*mindmap.Node, len(m.Nodes)),
		order:   make(map[string]int, len(m.Nodes)),
		rawKids: make(map[string][]string, len(m.Nodes)),
		visited: make(map[string]bool, len(m.Nodes)),
		h:       &h,
	}
	for i := range m.Nodes {
		n := &m.Nodes[i]
		if _, dup := r.index[n.ID]; dup {
			continue // first occurrence wins
		}
		r.index[n.ID] = n
		r.order[n.ID] = i
	}

	parentOf := r.assignParents()
	r.buildAdjacency(parentOf)

	h.Root = r.pickRoot(parentOf)
	if h.Root != nil {
		r.walk(h.Root.ID, 0)
	}

	// Everything the root walk missed is grouped into orphan subtrees,
	// taken in array order so the grouping is deterministic. Parentless
	// nodes are preferred as subtree roots; a second pass catches parent
	// cycles, which can only occur among unreachable nodes. Orphans keep
	// their incoming depth, defaulting to 1.
	for pass := 0; pass < 2; pass++ {
		for i := range m.Nodes {
			n := &m.Nodes[i]
			if r.order[n.ID] != i || r.visited[n.ID] {
				continue
			}
			if _, hasParent := parentOf[n.ID]; hasParent && pass == 0 {
				continue
			}
			base := n.Depth
			if base <= 0 {
				base = 1
			}
			h.Orphans = append(h.Orphans, n.ID)
			r.walk(n.ID, base)
		}
	}

	return h
}

// assignParents resolves each node's parent: edges first, cached ParentID
// as fallback.
func (r *resolver) assignParents() map[string]string {
	parentOf := make(map[string]string, len(r.m.Nodes))
	for _, e := range r.m.Edges {
		if e.Source == e.Target {
			continue
		}
		if _, ok := r.index[e.Source]; !ok {
			continue
		}
		if _, ok := r.index[e.Target]; !ok {
			continue
		}
		if _, assigned := parentOf[e.Target]; assigned {
			continue
		}
		parentOf[e.Target] = e.Source
	}
	for i := range r.m.Nodes {
		n := &r.m.Nodes[i]
		if _, assigned := parentOf[n.ID]; assigned {
			continue
		}
		if n.ParentID == "" || n.ParentID == n.ID {
			continue
		}
		if _, ok := r.index[n.ParentID]; !ok {
			continue
		}
		// A stale ParentID must not close a cycle against edge-derived
		// structure: if the claimed parent already descends from this
		// node, the cached field lost and is dropped.
		if ancestorOf(parentOf, n.ID, n.ParentID, len(r.m.Nodes)) {
			continue
		}
		parentOf[n.ID] = n.ParentID
	}
	return parentOf
}

// ancestorOf reports whether node is an ancestor of candidate under the
// parent assignments made so far. The step limit guards against cycles
// already present among edge-derived parents.
func ancestorOf(parentOf map[string]string, node, candidate string, limit int) bool {
	curr := candidate
	for steps := 0; steps < limit; steps++ {
		if curr == node {
			return true
		}
		next, ok := parentOf[curr]
		if !ok {
			return false
		}
		curr = next
	}
	return false
}

// buildAdjacency orders each node's children by original array position.
func (r *resolver) buildAdjacency(parentOf map[string]string) {
	for i := range r.m.Nodes {
		n := &r.m.Nodes[i]
		if r.order[n.ID] != i {
			continue // duplicate id
		}
		if p, ok := parentOf[n.ID]; ok {
			r.rawKids[p] = append(r.rawKids[p], n.ID)
		}
	}
}

func (r *resolver) pickRoot(parentOf map[string]string) *mindmap.Node {
	if r.m.RootID != "" {
		if n, ok := r.index[r.m.RootID]; ok {
			return n
		}
	}
	for i := range r.m.Nodes {
		n := &r.m.Nodes[i]
		if r.order[n.ID] != i {
			continue
		}
		if _, hasParent := parentOf[n.ID]; !hasParent {
			return n
		}
	}
	return nil
}

// walk traverses the subtree rooted at id breadth-first, assigning depths
// and recording the tree edges actually taken into ChildrenOf/ParentOf.
// Already-visited children are skipped, which both deduplicates diamond
// shapes and breaks parent cycles.
func (r *resolver) walk(id string, depth int) {
	r.visited[id] = true
	r.h.DepthOf[id] = depth
	queue := []string{id}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, child := range r.rawKids[curr] {
			if r.visited[child] {
				continue
			}
			r.visited[child] = true
			r.h.DepthOf[child] = r.h.DepthOf[curr] + 1
			r.h.ChildrenOf[curr] = append(r.h.ChildrenOf[curr], child)
			r.h.ParentOf[child] = curr
			queue = append(queue, child)
		}
	}
}
