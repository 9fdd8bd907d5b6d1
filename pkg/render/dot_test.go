package render

import (
	"strings"
	"testing"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

func TestToDOT_Basic(t *testing.T) {
	m := &mindmap.Mindmap{
		Nodes: []mindmap.Node{
			{ID: "root", Label: "Plan"},
			{ID: "a", Label: "Ideas", Depth: 1},
		},
		Edges: []mindmap.Edge{{Source: "root", Target: "a"}},
	}

	dot := ToDOT(m, Options{})

	if !strings.Contains(dot, "graph G") {
		t.Error("ToDOT() output missing graph declaration")
	}
	if !strings.Contains(dot, `"root"`) {
		t.Error("ToDOT() output missing root node")
	}
	if !strings.Contains(dot, `label="Plan"`) {
		t.Error("ToDOT() output missing label")
	}
	if !strings.Contains(dot, `"root" -- "a"`) {
		t.Error("ToDOT() output missing edge")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	m := &mindmap.Mindmap{
		Nodes: []mindmap.Node{
			{ID: "n", Label: "Task", Depth: 2, Status: "done"},
		},
	}

	dot := ToDOT(m, Options{Detailed: true})

	if !strings.Contains(dot, "depth: 2") {
		t.Error("ToDOT() detailed output missing depth info")
	}
	if !strings.Contains(dot, "status: done") {
		t.Error("ToDOT() detailed output missing status")
	}
}

func TestToDOT_ColorAndRoot(t *testing.T) {
	m := &mindmap.Mindmap{
		Nodes: []mindmap.Node{
			{ID: "root", Depth: 0, Color: "#ffcc00"},
			{ID: "a", Depth: 1},
		},
	}

	dot := ToDOT(m, Options{})

	if !strings.Contains(dot, `fillcolor="#ffcc00"`) {
		t.Error("ToDOT() missing node color")
	}
	if !strings.Contains(dot, "penwidth=2") {
		t.Error("ToDOT() root missing emphasis")
	}
}

func TestFmtLabel(t *testing.T) {
	n := mindmap.Node{ID: "n1", Label: "Groceries", Depth: 1}
	if got := fmtLabel(&n, false); got != "Groceries" {
		t.Errorf("fmtLabel() simple mode = %q, want %q", got, "Groceries")
	}
	n.Label = ""
	if got := fmtLabel(&n, false); got != "n1" {
		t.Errorf("fmtLabel() without label = %q, want %q", got, "n1")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00">`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if !strings.Contains(out, `width="100"`) {
		t.Errorf("normalizeViewBox() missing width: %s", out)
	}

	// SVG without a viewBox passes through unchanged
	plain := []byte(`<svg>`)
	if string(normalizeViewBox(plain)) != `<svg>` {
		t.Error("normalizeViewBox() should leave viewBox-less SVG alone")
	}
}
