package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// scenarioConfig mirrors the canonical two-folder setup: a render folder
// keyed on "final" and a source folder holding Footage (sequence detection
// on, one mp4 subcategory) and Images.
func scenarioConfig() model.OrganizerConfig {
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

func placeOne(t *testing.T, cfg model.OrganizerConfig, item model.ItemSnapshot) model.Placement {
	t.Helper()
	normalized := cfg.Normalized()
	plan := ComputePlacements(&normalized, []model.ItemSnapshot{item})
	require.Len(t, plan.Placements, 1)
	return plan.Placements[0]
}

func TestPlacementScenario(t *testing.T) {
	cfg := scenarioConfig()

	tests := []struct {
		name       string
		item       model.ItemSnapshot
		wantPath   []string
		wantStatus model.PlacementStatus
	}{
		{
			name:       "render composition lands at the render folder root",
			item:       model.ItemSnapshot{ID: "1", Name: "shot_final.mov", Kind: model.ItemKindComposition},
			wantPath:   []string{"00_Renders"},
			wantStatus: model.PlacementRender,
		},
		{
			name:       "mp4 goes through the footage subcategory",
			item:       model.ItemSnapshot{ID: "2", Name: "clip.mp4", Kind: model.ItemKindMedia},
			wantPath:   []string{"01_Source", "01_Footage", "00_Video"},
			wantStatus: model.PlacementCategory,
		},
		{
			name:       "png goes to the images subfolder",
			item:       model.ItemSnapshot{ID: "3", Name: "photo.png", Kind: model.ItemKindMedia},
			wantPath:   []string{"01_Source", "02_Images"},
			wantStatus: model.PlacementCategory,
		},
		{
			name: "exr sequence gets the sequence bucket",
			item: model.ItemSnapshot{
				ID: "4", Name: "render.[####].exr",
				Kind:            model.ItemKindMedia,
				IsSequenceFrame: true,
			},
			wantPath:   []string{"01_Source", "01_Footage", "Sequences", "EXR Sequence"},
			wantStatus: model.PlacementSequence,
		},
		{
			name:       "non-final composition classifies as comps and finds no mapping",
			item:       model.ItemSnapshot{ID: "5", Name: "shot_wip", Kind: model.ItemKindComposition},
			wantStatus: model.PlacementSkipped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := placeOne(t, cfg, tt.item)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantPath, got.Path)
		})
	}
}

func TestPlacementExceptionPrecedence(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Exceptions = []model.ExceptionRule{
		{ID: "e1", Kind: model.ExceptionExtension, Pattern: "mp4", TargetFolderID: "renders"},
	}

	got := placeOne(t, cfg, model.ItemSnapshot{ID: "1", Name: "clip.mp4", Kind: model.ItemKindMedia})
	assert.Equal(t, model.PlacementException, got.Status)
	assert.Equal(t, []string{"00_Renders"}, got.Path, "exception discards every subfolder segment")
	assert.Equal(t, "renders", got.FolderID)
}

func TestPlacementExceptionOverridesRenderMatch(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Exceptions = []model.ExceptionRule{
		{ID: "e1", Kind: model.ExceptionNameContains, Pattern: "final", TargetFolderID: "source"},
	}

	got := placeOne(t, cfg, model.ItemSnapshot{ID: "1", Name: "shot_final.mov", Kind: model.ItemKindComposition})
	assert.Equal(t, model.PlacementException, got.Status)
	assert.Equal(t, []string{"01_Source"}, got.Path)
}

func TestPlacementExceptionUnknownTargetIgnored(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Exceptions = []model.ExceptionRule{
		{ID: "e1", Kind: model.ExceptionExtension, Pattern: "mp4", TargetFolderID: "gone"},
	}

	got := placeOne(t, cfg, model.ItemSnapshot{ID: "1", Name: "clip.mp4", Kind: model.ItemKindMedia})
	assert.Equal(t, model.PlacementCategory, got.Status, "broken exception leaves classification standing")
	assert.Equal(t, []string{"01_Source", "01_Footage", "00_Video"}, got.Path)
}

func TestPlacementExceptionClaimsContainer(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Exceptions = []model.ExceptionRule{
		{ID: "e1", Kind: model.ExceptionNameContains, Pattern: "ref", TargetFolderID: "source"},
	}

	claimed := placeOne(t, cfg, model.ItemSnapshot{ID: "1", Name: "ref_boards", Kind: model.ItemKindContainer})
	assert.Equal(t, model.PlacementException, claimed.Status)
	assert.Equal(t, []string{"01_Source"}, claimed.Path)

	plain := placeOne(t, cfg, model.ItemSnapshot{ID: "2", Name: "old_assets", Kind: model.ItemKindContainer})
	assert.Equal(t, model.PlacementSkipped, plain.Status)
	assert.Equal(t, "container", plain.Reason)
}

func TestPlacementOthersFallback(t *testing.T) {
	build := func(createSubfolders bool, subs ...model.Subcategory) model.OrganizerConfig {
		return model.OrganizerConfig{
			Folders: []model.FolderRule{
				{
					ID: "src", Name: "Source", Order: 0,
					Categories: []model.CategoryRule{
						{
							Type:             model.CategoryFootage,
							Enabled:          true,
							CreateSubfolders: createSubfolders,
							Subcategories:    subs,
						},
					},
				},
			},
		}
	}
	subA := model.Subcategory{ID: "a", Name: "A", Order: 0, Filters: []model.Filter{{Kind: model.FilterExtension, Value: "mp4"}}}
	subB := model.Subcategory{ID: "b", Name: "B", Order: 1, Filters: []model.Filter{{Kind: model.FilterExtension, Value: "mov"}}}
	item := model.ItemSnapshot{ID: "1", Name: "clip.mxf", Kind: model.ItemKindMedia}

	// Two subcategories, no match: the generated Others bucket is numbered
	// one past the subcategory count.
	got := placeOne(t, build(false, subA, subB), item)
	assert.Equal(t, []string{"00_Source", "01_Footage", "03_Others"}, got.Path)

	// One subcategory, no match, no createSubfolders: stays in the parent
	// category folder.
	got = placeOne(t, build(false, subA), item)
	assert.Equal(t, []string{"00_Source", "01_Footage"}, got.Path)

	// One subcategory, no match, createSubfolders: the legacy extension leaf.
	got = placeOne(t, build(true, subA), item)
	assert.Equal(t, []string{"00_Source", "01_Footage", "_MXF"}, got.Path)
}

func TestPlacementLabelPriority(t *testing.T) {
	cfg := model.OrganizerConfig{
		Folders: []model.FolderRule{
			{
				ID: "src", Name: "Source", Order: 0, LabelColor: 3,
				Categories: []model.CategoryRule{
					{
						Type: model.CategoryFootage, Enabled: true, LabelColor: 7,
						Subcategories: []model.Subcategory{
							{ID: "v", Name: "Video", Order: 0, LabelColor: 11,
								Filters: []model.Filter{{Kind: model.FilterExtension, Value: "mp4"}}},
						},
					},
					{Type: model.CategoryAudio, Enabled: true},
				},
			},
		},
	}

	// Subcategory label wins.
	got := placeOne(t, cfg, model.ItemSnapshot{ID: "1", Name: "clip.mp4", Kind: model.ItemKindMedia})
	assert.Equal(t, 11, got.LabelColor)

	// No subcategory match: category label wins over folder label.
	got = placeOne(t, cfg, model.ItemSnapshot{ID: "2", Name: "clip.mxf", Kind: model.ItemKindMedia})
	assert.Equal(t, 7, got.LabelColor)

	// Category without its own label falls back to the folder label.
	got = placeOne(t, cfg, model.ItemSnapshot{ID: "3", Name: "score.wav", Kind: model.ItemKindMedia})
	assert.Equal(t, 3, got.LabelColor)
}

func TestPlacementLabelSurvivesException(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Folders[1].Categories[0].LabelColor = 9
	cfg.Exceptions = []model.ExceptionRule{
		{ID: "e1", Kind: model.ExceptionExtension, Pattern: "mp4", TargetFolderID: "renders"},
	}

	got := placeOne(t, cfg, model.ItemSnapshot{ID: "1", Name: "clip.mp4", Kind: model.ItemKindMedia})
	assert.Equal(t, model.PlacementException, got.Status)
	assert.Equal(t, 9, got.LabelColor, "exceptions override placement, not label resolution")
}

func TestPlacementKeywordDisambiguation(t *testing.T) {
	cfg := model.OrganizerConfig{
		Folders: []model.FolderRule{
			{
				ID: "main", Name: "Main", Order: 0,
				Categories: []model.CategoryRule{{Type: model.CategoryFootage, Enabled: true}},
			},
			{
				ID: "plates", Name: "Plates", Order: 1,
				Categories: []model.CategoryRule{
					{Type: model.CategoryFootage, Enabled: true, Keywords: []string{"bg", "plate"}},
				},
			},
		},
	}

	keyword := placeOne(t, cfg, model.ItemSnapshot{ID: "1", Name: "BG_city.mov", Kind: model.ItemKindMedia})
	assert.Equal(t, []string{"01_Plates", "01_Footage"}, keyword.Path)

	plain := placeOne(t, cfg, model.ItemSnapshot{ID: "2", Name: "clip.mov", Kind: model.ItemKindMedia})
	assert.Equal(t, []string{"00_Main", "01_Footage"}, plain.Path, "default is the first mapping entry")
}

func TestPlacementSolidsToSystemFolder(t *testing.T) {
	cfg := model.OrganizerConfig{
		Folders: []model.FolderRule{
			{ID: "src", Name: "Source", Order: 0,
				Categories: []model.CategoryRule{{Type: model.CategoryFootage, Enabled: true}}},
			{ID: "system", Name: "System", Order: 99,
				Categories: []model.CategoryRule{{Type: model.CategorySolids, Enabled: true}}},
		},
	}

	got := placeOne(t, cfg, model.ItemSnapshot{ID: "1", Name: "White Solid 1", Kind: model.ItemKindMedia, IsSolidOrNull: true})
	assert.Equal(t, []string{"99_System", "01_Solids"}, got.Path)
}

func TestPlacementSequenceDetectionFollowsFootageEntry(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Folders[1].Categories[0].DetectSequences = false

	item := model.ItemSnapshot{ID: "1", Name: "render.[####].exr", Kind: model.ItemKindMedia, IsSequenceFrame: true}
	got := placeOne(t, cfg, item)

	// With detection off the frame classifies by extension as a CG still.
	assert.Equal(t, model.PlacementCategory, got.Status)
	assert.Equal(t, []string{"01_Source", "02_Images"}, got.Path)
}

func TestPlacementSequenceWithoutCreateSubfolders(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Folders[1].Categories[0].CreateSubfolders = false

	item := model.ItemSnapshot{ID: "1", Name: "render.[####].exr", Kind: model.ItemKindMedia, IsSequenceFrame: true}
	got := placeOne(t, cfg, item)
	assert.Equal(t, []string{"01_Source", "01_Footage"}, got.Path, "no sequence leaf without createSubfolders")
}

func TestPlacementSequenceCapturedBySubcategory(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Folders[1].Categories[0].Subcategories = []model.Subcategory{
		{ID: "cg", Name: "CG", Order: 0, Filters: []model.Filter{{Kind: model.FilterExtension, Value: "exr"}}},
	}

	item := model.ItemSnapshot{ID: "1", Name: "render.[####].exr", Kind: model.ItemKindMedia, IsSequenceFrame: true}
	got := placeOne(t, cfg, item)
	assert.Equal(t, []string{"01_Source", "01_Footage", "00_CG"}, got.Path, "subcategory filters get first refusal on sequences")
}

func TestPlacementRankCountsDisabledSlots(t *testing.T) {
	cfg := model.OrganizerConfig{
		Folders: []model.FolderRule{
			{
				ID: "src", Name: "Source", Order: 0,
				Categories: []model.CategoryRule{
					{Type: model.CategoryFootage, Enabled: false, Order: 0},
					{Type: model.CategoryImages, Enabled: true, Order: 1},
				},
			},
		},
	}

	got := placeOne(t, cfg, model.ItemSnapshot{ID: "1", Name: "photo.png", Kind: model.ItemKindMedia})
	assert.Equal(t, []string{"00_Source", "02_Images"}, got.Path, "rank reflects the list slot, disabled entries included")
}

func TestPlacementDisabledRuleDoesNotClaim(t *testing.T) {
	cfg := model.OrganizerConfig{
		Folders: []model.FolderRule{
			{
				ID: "src", Name: "Source", Order: 0,
				Categories: []model.CategoryRule{{Type: model.CategoryFootage, Enabled: false}},
			},
		},
	}

	got := placeOne(t, cfg, model.ItemSnapshot{ID: "1", Name: "clip.mov", Kind: model.ItemKindMedia})
	assert.Equal(t, model.PlacementSkipped, got.Status)
	assert.Equal(t, "no matching rule", got.Reason)
}

func TestComputePlacementsDeterministic(t *testing.T) {
	cfg := scenarioConfig().Normalized()
	items := []model.ItemSnapshot{
		{ID: "1", Name: "clip.mp4", Kind: model.ItemKindMedia},
		{ID: "2", Name: "photo.png", Kind: model.ItemKindMedia},
		{ID: "3", Name: "shot_final", Kind: model.ItemKindComposition},
	}

	first := ComputePlacements(&cfg, items)
	second := ComputePlacements(&cfg, items)
	assert.Equal(t, first, second)
}
