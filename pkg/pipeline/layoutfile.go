package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mindweave/mindweave/pkg/errors"
	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/mindmap"
)

// LayoutFile is the on-disk form of a computed layout. It carries the
// positioned map so rendering can run later without recomputing geometry.
type LayoutFile struct {
	Strategy string          `json:"strategy"`
	Map      *mindmap.Mindmap `json:"map"`
	Bounds   layout.Bounds   `json:"bounds"`
}

// WriteLayoutFile writes a positioned map and its bounds to a JSON file.
func WriteLayoutFile(m *mindmap.Mindmap, res layout.Result, strategy, path string) error {
	lf := LayoutFile{Strategy: strategy, Map: m, Bounds: res.Bounds}
	data, err := json.MarshalIndent(lf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a layout file and reconstructs the layout result.
func ReadLayoutFile(path string) (*mindmap.Mindmap, layout.Result, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, layout.Result{}, "", fmt.Errorf("read %s: %w", path, err)
	}

	var lf LayoutFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, layout.Result{}, "", errors.Wrap(errors.ErrCodeInvalidMindmap, err, "parse layout file %s", path)
	}
	if lf.Map == nil {
		return nil, layout.Result{}, "", errors.New(errors.ErrCodeInvalidMindmap, "layout file %s has no map", path)
	}
	if err := lf.Map.Validate(); err != nil {
		return nil, layout.Result{}, "", errors.Wrap(errors.ErrCodeInvalidMindmap, err, "invalid map in %s", path)
	}

	res := layout.Result{Nodes: lf.Map.Nodes, Bounds: lf.Bounds, RootID: lf.Map.RootID}
	return lf.Map, res, lf.Strategy, nil
}
