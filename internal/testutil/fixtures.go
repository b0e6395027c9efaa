// Package testutil provides shared fixtures for organizer tests: canonical
// rule sets, ready-made project snapshots, and a fluent project builder.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/project"
)

// ScenarioConfig returns the canonical two-folder rule set used across the
// test suite: a render folder keyed on "final" and a source folder holding
// Footage (sequence detection on, one mp4 subcategory) and Images.
func ScenarioConfig() model.OrganizerConfig {
	return model.OrganizerConfig{
		Folders: []model.FolderRule{
			{
				ID:             "renders",
				Name:           "Renders",
				Order:          0,
				IsRenderFolder: true,
				RenderKeywords: []string{"final"},
			},
			{
				ID:    "source",
				Name:  "Source",
				Order: 1,
				Categories: []model.CategoryRule{
					{
						Type:             model.CategoryFootage,
						Enabled:          true,
						Order:            0,
						CreateSubfolders: true,
						DetectSequences:  true,
						Subcategories: []model.Subcategory{
							{
								ID:      "video",
								Name:    "Video",
								Order:   0,
								Filters: []model.Filter{{Kind: model.FilterExtension, Value: "mp4"}},
							},
						},
					},
					{Type: model.CategoryImages, Enabled: true, Order: 1},
				},
			},
		},
		SchemaVersion: model.SchemaVersion,
	}
}

// ScenarioProject returns a flat snapshot holding one item of each canonical
// shape: a render composition, a plain clip, a still, and a frame sequence.
func ScenarioProject() *project.Project {
	p := project.New("scenario")
	p.Root.Items = []*project.Item{
		{ItemSnapshot: Composition("comp-1", "shot_final.mov")},
		{ItemSnapshot: Media("clip-1", "clip.mp4")},
		{ItemSnapshot: Media("photo-1", "photo.png")},
		{ItemSnapshot: SequenceFrame("seq-1", "render.[####].exr")},
	}
	return p
}

// Composition returns a composition item snapshot.
func Composition(id, name string) model.ItemSnapshot {
	return model.ItemSnapshot{ID: id, Name: name, Kind: model.ItemKindComposition}
}

// Media returns a plain media item snapshot.
func Media(id, name string) model.ItemSnapshot {
	return model.ItemSnapshot{ID: id, Name: name, Kind: model.ItemKindMedia}
}

// SequenceFrame returns a media item flagged as an image-sequence frame.
func SequenceFrame(id, name string) model.ItemSnapshot {
	return model.ItemSnapshot{ID: id, Name: name, Kind: model.ItemKindMedia, IsSequenceFrame: true}
}

// Solid returns a solid or null media item snapshot.
func Solid(id, name string) model.ItemSnapshot {
	return model.ItemSnapshot{ID: id, Name: name, Kind: model.ItemKindMedia, IsSolidOrNull: true}
}

// WriteProjectFile writes the snapshot into dir and returns its path.
func WriteProjectFile(t *testing.T, dir string, p *project.Project) string {
	t.Helper()
	path := filepath.Join(dir, "project.json")
	if err := p.Save(path); err != nil {
		t.Fatalf("failed to write project fixture: %v", err)
	}
	return path
}

// WriteConfigFile writes the rule set into dir as JSON and returns its path.
func WriteConfigFile(t *testing.T, dir string, cfg model.OrganizerConfig) string {
	t.Helper()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		t.Fatalf("failed to encode config fixture: %v", err)
	}
	path := filepath.Join(dir, "organizer.json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}
