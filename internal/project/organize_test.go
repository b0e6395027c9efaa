package project_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/engine"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/project"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/testutil"
)

// itemPath returns the folder path currently holding the item, root-relative.
func itemPath(t *testing.T, p *project.Project, itemID string) []string {
	t.Helper()
	var found []string
	var walk func(f *project.Folder, prefix []string) bool
	walk = func(f *project.Folder, prefix []string) bool {
		for _, it := range f.Items {
			if it.ID == itemID {
				found = append([]string{}, prefix...)
				return true
			}
		}
		for _, sub := range f.Folders {
			if walk(sub, append(prefix, sub.Name)) {
				return true
			}
		}
		return false
	}
	require.True(t, walk(p.Root, nil), "item %s not found anywhere", itemID)
	return found
}

func TestOrganizeScenarioEndToEnd(t *testing.T) {
	proj := testutil.ScenarioProject()
	repo := project.NewRepository(proj)
	org := engine.New(repo, testutil.ScenarioConfig())

	report, err := org.Run(context.Background(), engine.Options{})
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, 4, report.MovedCount)
	assert.Zero(t, report.SkippedCount)

	assert.Equal(t, []string{"00_Renders"}, itemPath(t, proj, "comp-1"))
	assert.Equal(t, []string{"01_Source", "01_Footage", "00_Video"}, itemPath(t, proj, "clip-1"))
	assert.Equal(t, []string{"01_Source", "02_Images"}, itemPath(t, proj, "photo-1"))
	assert.Equal(t, []string{"01_Source", "01_Footage", "Sequences", "EXR Sequence"}, itemPath(t, proj, "seq-1"))
}

func TestOrganizeTwiceIsIdempotent(t *testing.T) {
	proj := testutil.ScenarioProject()
	cfg := testutil.ScenarioConfig()

	_, err := engine.New(project.NewRepository(proj), cfg).Run(context.Background(), engine.Options{})
	require.NoError(t, err)

	folders := proj.CountFolders()
	firstClip := itemPath(t, proj, "clip-1")

	_, err = engine.New(project.NewRepository(proj), cfg).Run(context.Background(), engine.Options{})
	require.NoError(t, err)

	assert.Equal(t, folders, proj.CountFolders(), "re-running creates no new folders")
	assert.Equal(t, firstClip, itemPath(t, proj, "clip-1"))
	assert.Equal(t, []string{"00_Renders"}, itemPath(t, proj, "comp-1"))
	assert.Equal(t, []string{"01_Source", "01_Footage", "Sequences", "EXR Sequence"}, itemPath(t, proj, "seq-1"))
}

func TestOrganizeCleanupPrunesAbandonedFolders(t *testing.T) {
	proj := testutil.NewProjectBuilder(t).
		InFolder("Old", "Deeper").
		AtRoot().
		WithItems(testutil.Media("clip-1", "clip.mp4")).
		Build()

	cfg := testutil.ScenarioConfig()
	cfg.Settings.DeleteEmptyFoldersAfterRun = true

	report, err := engine.New(project.NewRepository(proj), cfg).Run(context.Background(), engine.Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.DeletedFolders, "the empty chain is pruned bottom-up")
	assert.Nil(t, proj.Root.Child("Old"))
	assert.NotNil(t, proj.Root.Child("01_Source"))
	assert.Equal(t, []string{"01_Source", "01_Footage", "00_Video"}, itemPath(t, proj, "clip-1"))
}

func TestOrganizeExceptionMovesContainer(t *testing.T) {
	proj := testutil.NewProjectBuilder(t).
		InFolder("refs_pack").
		WithItems(testutil.Media("ref-1", "board.jpg")).
		Build()

	cfg := testutil.ScenarioConfig()
	cfg.Exceptions = []model.ExceptionRule{
		{ID: "e1", Kind: model.ExceptionNameContains, Pattern: "refs", TargetFolderID: "renders"},
	}

	report, err := engine.New(project.NewRepository(proj), cfg).Run(context.Background(), engine.Options{})
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, 2, report.MovedCount)

	renders := proj.Root.Child("00_Renders")
	require.NotNil(t, renders)
	assert.NotNil(t, renders.Child("refs_pack"), "the claimed container moved to the exception target")
	assert.Equal(t, []string{"01_Source", "02_Images"}, itemPath(t, proj, "ref-1"),
		"the container's contents still classify on their own")
}

func TestOrganizeExceptionCannotMoveFolderIntoItself(t *testing.T) {
	proj := testutil.NewProjectBuilder(t).
		InFolder("01_Source").
		AtRoot().
		WithItems(testutil.Media("clip-1", "clip.mp4")).
		Build()

	cfg := testutil.ScenarioConfig()
	cfg.Exceptions = []model.ExceptionRule{
		{ID: "e1", Kind: model.ExceptionNameContains, Pattern: "source", TargetFolderID: "source"},
	}

	report, err := engine.New(project.NewRepository(proj), cfg).Run(context.Background(), engine.Options{})
	require.NoError(t, err, "the rejected move is tallied, not fatal")
	assert.True(t, report.Success)
	assert.Equal(t, 1, report.MovedCount)
	assert.Equal(t, 1, report.SkippedCount)
	assert.Equal(t, []string{"01_Source", "01_Footage", "00_Video"}, itemPath(t, proj, "clip-1"))
}
