package publish

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultManifest is written by the publish command.
	DefaultManifest = "postman_ids.json"
	// WizardManifest is written by both wizard variants.
	WizardManifest = "postman_ids_live_demo.json"
)

// Manifest records the identifiers returned by a successful publish run.
// It is overwritten on every run and never read back.
type Manifest struct {
	EnvironmentUID string `json:"environment_uid"`
	CollectionUID  string `json:"collection_uid"`
}

// WriteManifest writes m to path as JSON, replacing any previous file.
func WriteManifest(path string, m Manifest) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create manifest directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
