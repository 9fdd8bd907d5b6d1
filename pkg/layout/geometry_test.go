package layout

import (
	"testing"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

func TestBoxOfDefaults(t *testing.T) {
	tests := []struct {
		name string
		node mindmap.Node
		want Box
	}{
		{
			name: "defaults applied",
			node: mindmap.Node{ID: "a", X: 10, Y: 20},
			want: Box{X: 10, Y: 20, W: 200, H: 80},
		},
		{
			name: "explicit size kept",
			node: mindmap.Node{ID: "a", X: 1, Y: 2, Width: 320, Height: 100},
			want: Box{X: 1, Y: 2, W: 320, H: 100},
		},
		{
			name: "negative size treated as unset",
			node: mindmap.Node{ID: "a", Width: -5, Height: -5},
			want: Box{W: 200, H: 80},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoxOf(&tt.node); got != tt.want {
				t.Errorf("BoxOf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := Box{X: 0, Y: 0, W: 100, H: 50}
	tests := []struct {
		name    string
		other   Box
		padding float64
		want    bool
	}{
		{"identical", base, 0, true},
		{"disjoint right", Box{X: 150, Y: 0, W: 100, H: 50}, 0, false},
		{"touching edges", Box{X: 100, Y: 0, W: 100, H: 50}, 0, false},
		{"corner intrusion", Box{X: 90, Y: 40, W: 100, H: 50}, 0, true},
		{"clear without padding", Box{X: 110, Y: 0, W: 100, H: 50}, 0, false},
		{"collides with padding", Box{X: 110, Y: 0, W: 100, H: 50}, 10, true},
		{"exactly twice padding apart", Box{X: 140, Y: 0, W: 100, H: 50}, 20, false},
		{"diagonal separation", Box{X: 200, Y: 200, W: 100, H: 50}, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(base, tt.other, tt.padding); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v, %v) = %v, want %v", base, tt.other, tt.padding, got, tt.want)
			}
			// Symmetric by construction.
			if got := Overlaps(tt.other, base, tt.padding); got != tt.want {
				t.Errorf("Overlaps not symmetric for %s", tt.name)
			}
		})
	}
}

func TestAccumulateBounds(t *testing.T) {
	t.Run("empty list is degenerate, not infinite", func(t *testing.T) {
		b := AccumulateBounds(nil)
		if b != (Bounds{}) {
			t.Errorf("AccumulateBounds(nil) = %+v, want zero box", b)
		}
	})

	t.Run("single node", func(t *testing.T) {
		b := AccumulateBounds([]mindmap.Node{{ID: "a", X: 10, Y: 20}})
		want := Bounds{MinX: 10, MinY: 20, MaxX: 210, MaxY: 100}
		if b != want {
			t.Errorf("bounds = %+v, want %+v", b, want)
		}
	})

	t.Run("tight around all boxes", func(t *testing.T) {
		nodes := []mindmap.Node{
			{ID: "a", X: -50, Y: 0},
			{ID: "b", X: 300, Y: 500, Width: 100, Height: 40},
			{ID: "c", X: 0, Y: -120},
		}
		b := AccumulateBounds(nodes)
		want := Bounds{MinX: -50, MinY: -120, MaxX: 400, MaxY: 540}
		if b != want {
			t.Errorf("bounds = %+v, want %+v", b, want)
		}
		for i := range nodes {
			if !b.Contains(BoxOf(&nodes[i])) {
				t.Errorf("bounds do not contain node %s", nodes[i].ID)
			}
		}
	})
}
