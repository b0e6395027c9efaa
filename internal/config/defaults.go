package config

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// newID returns a prefixed unique id for a generated rule entity.
func newID(prefix string) string {
	return prefix + "-" + gonanoid.Must()
}

// Default returns the stock rule set: Comps, Source (footage with sequence
// detection, images, audio), Renders keyed on common render names, and the
// reserved system folder catching solids. Generated ids differ per call; the
// system folder id never does.
func Default() model.OrganizerConfig {
	return model.OrganizerConfig{
		Folders: []model.FolderRule{
			{
				ID:    newID("fld"),
				Name:  "Comps",
				Order: 0,
				Categories: []model.CategoryRule{
					{
						Type:             model.CategoryComps,
						Enabled:          true,
						Order:            0,
						CreateSubfolders: true,
						Subcategories: []model.Subcategory{
							{
								ID:    newID("sub"),
								Name:  "Precomps",
								Order: 0,
								Filters: []model.Filter{
									{Kind: model.FilterNamePrefix, Value: "pre_"},
								},
							},
						},
					},
				},
			},
			{
				ID:    newID("fld"),
				Name:  "Source",
				Order: 1,
				Categories: []model.CategoryRule{
					{
						Type:             model.CategoryFootage,
						Enabled:          true,
						Order:            0,
						CreateSubfolders: true,
						DetectSequences:  true,
					},
					{Type: model.CategoryImages, Enabled: true, Order: 1},
					{Type: model.CategoryAudio, Enabled: true, Order: 2},
				},
			},
			{
				ID:             newID("fld"),
				Name:           "Renders",
				Order:          2,
				IsRenderFolder: true,
				RenderKeywords: []string{"render", "final", "output"},
			},
			{
				ID:    model.SystemFolderID,
				Name:  "System",
				Order: model.SystemFolderOrder,
				Categories: []model.CategoryRule{
					{Type: model.CategorySolids, Enabled: true, Order: 0},
				},
			},
		},
		Exceptions: []model.ExceptionRule{},
		Settings: model.Settings{
			DeleteEmptyFoldersAfterRun: true,
			ApplyFolderLabelColor:      false,
		},
		SchemaVersion: model.SchemaVersion,
	}
}
