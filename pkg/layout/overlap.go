package layout

import (
	"sort"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

// ResolveOverlaps relieves residual collisions left behind by a strategy,
// typically when caller-supplied box sizes exceed the spacing the measure
// pass assumed. It is a safety net, not a layout algorithm: nodes are
// bucketed by resolved depth and only same-depth collisions are resolved,
// so the strategies' depth-ordering contracts (monotonic x in tree layout,
// outward growth in balanced) survive untouched.
//
// Within a bucket, nodes are visited top to bottom (original index breaks
// ties) and a collider is pushed straight down by the minimal offset that
// clears the earlier node plus twice the padding. Pushing only ever moves
// later nodes further down, so relative vertical order is preserved and
// the pass is idempotent: a second run finds no collisions and moves
// nothing.
func ResolveOverlaps(nodes []mindmap.Node, depthOf map[string]int, padding float64) []mindmap.Node {
	buckets := make(map[int][]int)
	for i := range nodes {
		d := depthOf[nodes[i].ID]
		buckets[d] = append(buckets[d], i)
	}

	for _, bucket := range buckets {
		if len(bucket) < 2 {
			continue
		}
		sort.SliceStable(bucket, func(a, b int) bool {
			na, nb := &nodes[bucket[a]], &nodes[bucket[b]]
			if na.Y != nb.Y {
				return na.Y < nb.Y
			}
			return bucket[a] < bucket[b]
		})
		for i := 1; i < len(bucket); i++ {
			curr := &nodes[bucket[i]]
			// Rescan from the top after every push: moving down can run
			// into a node that was already clear before the push.
			for moved := true; moved; {
				moved = false
				cb := BoxOf(curr)
				for j := 0; j < i; j++ {
					prev := &nodes[bucket[j]]
					if Overlaps(BoxOf(prev), cb, padding) {
						curr.Y = BoxOf(prev).Bottom() + 2*padding
						moved = true
						break
					}
				}
			}
		}
	}
	return nodes
}
