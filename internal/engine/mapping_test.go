package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

func TestBuildCategoryMap(t *testing.T) {
	cfg := model.OrganizerConfig{
		Folders: []model.FolderRule{
			{
				ID: "a", Name: "A", Order: 0,
				Categories: []model.CategoryRule{
					{Type: model.CategoryComps, Enabled: true, Order: 0},
					{Type: model.CategoryFootage, Enabled: false, Order: 1},
					{Type: model.CategoryImages, Enabled: true, Order: 2},
				},
			},
			{
				ID: "b", Name: "B", Order: 1,
				Categories: []model.CategoryRule{
					{Type: model.CategoryImages, Enabled: true, Order: 0, Keywords: []string{"tex"}},
				},
			},
		},
	}
	cfg.Normalize()

	m := BuildCategoryMap(&cfg)

	require.Len(t, m[model.CategoryComps], 1)
	assert.Equal(t, "a", m[model.CategoryComps][0].Folder.ID)
	assert.Equal(t, 1, m[model.CategoryComps][0].Rank)

	// Disabled rules produce no entry but still occupy their rank slot.
	assert.Empty(t, m[model.CategoryFootage])
	require.Len(t, m[model.CategoryImages], 2)
	assert.Equal(t, 3, m[model.CategoryImages][0].Rank)
	assert.Equal(t, "a", m[model.CategoryImages][0].Folder.ID)
	assert.Equal(t, "b", m[model.CategoryImages][1].Folder.ID)
	assert.Equal(t, 1, m[model.CategoryImages][1].Rank)
}

func TestCategoryMapSelect(t *testing.T) {
	cfg := model.OrganizerConfig{
		Folders: []model.FolderRule{
			{ID: "first", Name: "First", Order: 0,
				Categories: []model.CategoryRule{{Type: model.CategoryFootage, Enabled: true}}},
			{ID: "bg", Name: "Backgrounds", Order: 1,
				Categories: []model.CategoryRule{{Type: model.CategoryFootage, Enabled: true, Keywords: []string{"bg"}}}},
			{ID: "fx", Name: "Effects", Order: 2,
				Categories: []model.CategoryRule{{Type: model.CategoryFootage, Enabled: true, Keywords: []string{"fx", "bg"}}}},
		},
	}
	cfg.Normalize()
	m := BuildCategoryMap(&cfg)

	tests := []struct {
		name     string
		itemName string
		wantID   string
	}{
		{name: "no keyword hit selects the first entry", itemName: "clip.mov", wantID: "first"},
		{name: "keyword routes to the matching entry", itemName: "fx_burst.mov", wantID: "fx"},
		{name: "first keyword-matching entry wins", itemName: "bg_city.mov", wantID: "bg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := m.Select(model.CategoryFootage, tt.itemName)
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantID, entry.Folder.ID)
		})
	}

	assert.Nil(t, m.Select(model.CategoryAudio, "score.wav"), "unmapped category yields no entry")
}
