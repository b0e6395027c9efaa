package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

func TestResolveException(t *testing.T) {
	exceptions := []model.ExceptionRule{
		{ID: "e1", Kind: model.ExceptionNameContains, Pattern: "REF", TargetFolderID: "refs"},
		{ID: "e2", Kind: model.ExceptionExtension, Pattern: ".exr", TargetFolderID: "cg"},
	}

	tests := []struct {
		name     string
		item     string
		wantID   string
		wantsNil bool
	}{
		{name: "name contains is case-insensitive", item: "client_ref_v2.mov", wantID: "e1"},
		{name: "extension is dot-insensitive", item: "shot.exr", wantID: "e2"},
		{name: "first match in list order wins", item: "ref.exr", wantID: "e1"},
		{name: "no match", item: "clip.mp4", wantsNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveException(mediaItem(tt.item), exceptions)
			if tt.wantsNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestResolveExceptionBlankPatternSkipped(t *testing.T) {
	exceptions := []model.ExceptionRule{
		{ID: "blank", Kind: model.ExceptionNameContains, Pattern: "  ", TargetFolderID: "x"},
		{ID: "real", Kind: model.ExceptionNameContains, Pattern: "clip", TargetFolderID: "y"},
	}

	got := ResolveException(mediaItem("clip.mp4"), exceptions)
	require.NotNil(t, got)
	assert.Equal(t, "real", got.ID)
}

func TestMatchesRenderFolder(t *testing.T) {
	render := &model.FolderRule{
		ID: "renders", Name: "Renders",
		IsRenderFolder: true,
		RenderKeywords: []string{"final", "render"},
	}
	plain := &model.FolderRule{ID: "src", Name: "Source"}

	comp := model.ItemSnapshot{Name: "shot_FINAL.mov", Kind: model.ItemKindComposition}
	media := model.ItemSnapshot{Name: "shot_final.mov", Kind: model.ItemKindMedia}

	assert.True(t, MatchesRenderFolder(comp, render))
	assert.False(t, MatchesRenderFolder(media, render), "only compositions qualify")
	assert.False(t, MatchesRenderFolder(comp, plain), "folder must be marked as a render folder")
	assert.False(t, MatchesRenderFolder(model.ItemSnapshot{Name: "shot_wip", Kind: model.ItemKindComposition}, render))
}
