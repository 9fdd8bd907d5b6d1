package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mindweave/mindweave/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"dot only", "dot", []string{"dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "plan.json", "plan"},
		{"derive from layout input", "", "plan.layout.json", "plan.layout"},
		{"output with format ext", "out.svg", "plan.json", "out"},
		{"output without format ext", "diagrams/plan", "plan.json", "diagrams/plan"},
		{"output with unknown ext", "plan.backup", "plan.json", "plan.backup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := basePath(tt.output, tt.input)
			if got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "plan.json")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{
			"svg": []byte("<svg/>"),
			"dot": []byte("graph G {}"),
		},
		formats:   []string{"svg", "dot"},
		input:     input,
		nodeCount: 3,
		edgeCount: 2,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	for _, name := range []string{"plan.svg", "plan.dot"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestWriteArtifactsSingleFormatOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "custom-name.svg")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>")},
		formats:   []string{"svg"},
		input:     filepath.Join(dir, "plan.json"),
		output:    out,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected artifact at %s: %v", out, err)
	}
}

func TestValidFormatsMap(t *testing.T) {
	for _, f := range []string{"svg", "png", "pdf", "dot", "json"} {
		if !pipeline.ValidFormats[f] {
			t.Errorf("ValidFormats[%q] should be true", f)
		}
	}
	if pipeline.ValidFormats["gif"] {
		t.Error("ValidFormats[gif] should be false")
	}
}
