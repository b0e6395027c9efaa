package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

func mediaItem(name string) model.ItemSnapshot {
	return model.ItemSnapshot{ID: name, Name: name, Kind: model.ItemKindMedia}
}

func TestMatchFilter(t *testing.T) {
	tests := []struct {
		name   string
		item   string
		filter model.Filter
		want   bool
	}{
		{
			name:   "extension without dot",
			item:   "clip.mp4",
			filter: model.Filter{Kind: model.FilterExtension, Value: "mp4"},
			want:   true,
		},
		{
			name:   "extension with dot is equivalent",
			item:   "clip.mp4",
			filter: model.Filter{Kind: model.FilterExtension, Value: ".mp4"},
			want:   true,
		},
		{
			name:   "extension is case-insensitive",
			item:   "CLIP.MP4",
			filter: model.Filter{Kind: model.FilterExtension, Value: "mp4"},
			want:   true,
		},
		{
			name:   "extension sees through sequence tokens",
			item:   "shot.[####].exr",
			filter: model.Filter{Kind: model.FilterExtension, Value: "exr"},
			want:   true,
		},
		{
			name:   "extension mismatch",
			item:   "clip.mov",
			filter: model.Filter{Kind: model.FilterExtension, Value: "mp4"},
			want:   false,
		},
		{
			name:   "prefix match",
			item:   "BG_plate_01.mov",
			filter: model.Filter{Kind: model.FilterNamePrefix, Value: "bg_"},
			want:   true,
		},
		{
			name:   "prefix must be at the start",
			item:   "plate_bg_01.mov",
			filter: model.Filter{Kind: model.FilterNamePrefix, Value: "bg_"},
			want:   false,
		},
		{
			name:   "keyword anywhere",
			item:   "shot_PLATE_v2.mov",
			filter: model.Filter{Kind: model.FilterNameKeyword, Value: "plate"},
			want:   true,
		},
		{
			name:   "blank value never matches",
			item:   "clip.mp4",
			filter: model.Filter{Kind: model.FilterNameKeyword, Value: "   "},
			want:   false,
		},
		{
			name:   "unknown kind never matches",
			item:   "clip.mp4",
			filter: model.Filter{Kind: "glob", Value: "*"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchFilter(mediaItem(tt.item), tt.filter))
		})
	}
}

func TestMatchFilterHostExtensionWins(t *testing.T) {
	item := model.ItemSnapshot{Name: "weird name", Extension: "mp4", Kind: model.ItemKindMedia}
	assert.True(t, MatchFilter(item, model.Filter{Kind: model.FilterExtension, Value: ".MP4"}))
}

func TestMatchAny(t *testing.T) {
	filters := []model.Filter{
		{Kind: model.FilterExtension, Value: "mp4"},
		{Kind: model.FilterNameKeyword, Value: "plate"},
	}

	assert.True(t, MatchAny(mediaItem("clip.mp4"), filters))
	assert.True(t, MatchAny(mediaItem("plate.mov"), filters))
	assert.False(t, MatchAny(mediaItem("photo.png"), filters))

	// Empty list never matches; "All Items" semantics live in the resolver.
	assert.False(t, MatchAny(mediaItem("clip.mp4"), nil))
}

func TestContainsAnyKeyword(t *testing.T) {
	assert.True(t, ContainsAnyKeyword("shot_FINAL_v3", []string{" final "}))
	assert.False(t, ContainsAnyKeyword("shot_v3", []string{"final", ""}))
	assert.False(t, ContainsAnyKeyword("shot_v3", nil))
}
