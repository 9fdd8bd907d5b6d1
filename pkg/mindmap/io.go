package mindmap

import (
	"encoding/json"
	"fmt"
	"os"
)

// Marshal serializes a Mindmap to pretty-printed JSON bytes.
func Marshal(m *Mindmap) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Mindmap and validates it.
func Unmarshal(data []byte) (*Mindmap, error) {
	var m Mindmap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal mindmap: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// WriteFile writes a Mindmap to a JSON file.
func WriteFile(m *Mindmap, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Mindmap from a JSON file.
func ReadFile(path string) (*Mindmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
