package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

func TestResolveSubcategoryFirstMatchWins(t *testing.T) {
	subs := []model.Subcategory{
		{ID: "a", Name: "A", Order: 0, Filters: []model.Filter{{Kind: model.FilterExtension, Value: "mp4"}}},
		{ID: "b", Name: "B", Order: 1, Filters: []model.Filter{{Kind: model.FilterNameKeyword, Value: "vfx"}}},
	}

	// Both subcategories match; the first by order wins.
	got := ResolveSubcategory(mediaItem("vfx_shot.mp4"), subs)
	require.NotNil(t, got)
	assert.Equal(t, "A", got.Name)
}

func TestResolveSubcategoryOrderSort(t *testing.T) {
	subs := []model.Subcategory{
		{ID: "late", Name: "Late", Order: 5, Filters: []model.Filter{{Kind: model.FilterExtension, Value: "mov"}}},
		{ID: "early", Name: "Early", Order: 1, Filters: []model.Filter{{Kind: model.FilterExtension, Value: "mov"}}},
	}

	got := ResolveSubcategory(mediaItem("clip.mov"), subs)
	require.NotNil(t, got)
	assert.Equal(t, "Early", got.Name, "evaluation order follows the order field, not list position")
}

func TestResolveSubcategoryAllItems(t *testing.T) {
	subs := []model.Subcategory{
		{ID: "all", Name: "All Items", Order: 0},
		{ID: "video", Name: "Video", Order: 1, Filters: []model.Filter{{Kind: model.FilterExtension, Value: "mp4"}}},
	}

	// The empty-filter bucket matches everything, shadowing later entries.
	got := ResolveSubcategory(mediaItem("clip.mp4"), subs)
	require.NotNil(t, got)
	assert.Equal(t, "All Items", got.Name)
}

func TestResolveSubcategoryNoMatch(t *testing.T) {
	subs := []model.Subcategory{
		{ID: "video", Name: "Video", Order: 0, Filters: []model.Filter{{Kind: model.FilterExtension, Value: "mp4"}}},
	}

	assert.Nil(t, ResolveSubcategory(mediaItem("photo.png"), subs))
	assert.Nil(t, ResolveSubcategory(mediaItem("photo.png"), nil))
}

func TestResolveSubcategoryDoesNotMutateInput(t *testing.T) {
	subs := []model.Subcategory{
		{ID: "z", Name: "Z", Order: 9},
		{ID: "a", Name: "A", Order: 0},
	}

	ResolveSubcategory(mediaItem("clip.mp4"), subs)
	assert.Equal(t, "z", subs[0].ID, "caller's slice order must stay intact")
}
