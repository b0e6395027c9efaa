// Package config loads, validates, and persists the organizer rule set.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// ErrSchemaVersion reports a rule file written by a different schema
// generation. There are no migrations; callers fall back to defaults.
var ErrSchemaVersion = errors.New("unsupported config schema version")

// knownKeys are the top-level fields this build owns. Anything else found in
// the file is carried through a rewrite untouched.
var knownKeys = map[string]bool{
	"folders":       true,
	"exceptions":    true,
	"settings":      true,
	"schemaVersion": true,
}

// Document couples a parsed rule set with the unknown top-level fields of
// the file it came from, so saving the document preserves them.
type Document struct {
	extra  map[string]json.RawMessage
	Config model.OrganizerConfig
}

// NewDocument wraps a rule set built in code, with no foreign fields.
func NewDocument(cfg model.OrganizerConfig) *Document {
	return &Document{Config: cfg}
}

// Load reads, structurally checks, schema-gates, and validates a rule file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from the caller's own invocation
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return doc, nil
}

// Parse builds a Document from raw JSON. The shape contract is enforced
// before full decoding; a schema version other than the one this build
// writes is rejected with ErrSchemaVersion.
func Parse(data []byte) (*Document, error) {
	raw, err := structuralCheck(data)
	if err != nil {
		return nil, err
	}

	var cfg model.OrganizerConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.SchemaVersion != model.SchemaVersion {
		return nil, fmt.Errorf("%w: file has %d, this build reads %d",
			ErrSchemaVersion, cfg.SchemaVersion, model.SchemaVersion)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	extra := make(map[string]json.RawMessage)
	for k, v := range raw {
		if !knownKeys[k] {
			extra[k] = v
		}
	}
	return &Document{Config: cfg, extra: extra}, nil
}

// Save writes the document to disk, replacing the file atomically. Unknown
// top-level fields observed at load time are written back verbatim.
func (d *Document) Save(path string) error {
	merged := make(map[string]any, len(d.extra)+len(knownKeys))
	for k, v := range d.extra {
		merged[k] = v
	}
	folders := d.Config.Folders
	if folders == nil {
		folders = []model.FolderRule{}
	}
	exceptions := d.Config.Exceptions
	if exceptions == nil {
		exceptions = []model.ExceptionRule{}
	}
	merged["folders"] = folders
	merged["exceptions"] = exceptions
	merged["settings"] = d.Config.Settings
	merged["schemaVersion"] = d.Config.SchemaVersion

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data = append(data, '\n')

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}
