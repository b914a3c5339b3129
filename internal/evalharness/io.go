package evalharness

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadCases reads the JSON fixture file of evaluation cases.
func LoadCases(path string) ([]Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("evalharness: read case file: %w", err)
	}
	var cases []Case
	if err := json.Unmarshal(raw, &cases); err != nil {
		return nil, fmt.Errorf("evalharness: decode case file: %w", err)
	}
	return cases, nil
}

// WriteJSONFile writes a JSON payload with indentation, creating parent
// directories as needed, the way the teacher's internal/app writeJSON
// helper does for its own artifact bundle.
func WriteJSONFile(path string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("evalharness: mkdir result dir: %w", err)
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("evalharness: marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("evalharness: write result file: %w", err)
	}
	return nil
}
