package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/tests/testutil"
)

func TestAddTagToTask(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	task := addTask(t, s, "tagged")

	got, err := s.AddTagToTask(ctx, task.ID, "  Urgent ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Urgent"}, got.Tags)

	// Case-insensitive duplicate.
	_, err = s.AddTagToTask(ctx, task.ID, "urgent")
	require.ErrorIs(t, err, model.ErrTagExists)

	_, err = s.AddTagToTask(ctx, task.ID, "   ")
	require.ErrorIs(t, err, model.ErrTagEmpty)

	_, err = s.AddTagToTask(ctx, "missing", "x")
	require.ErrorIs(t, err, model.ErrTaskNotFound)

	for i := 1; i < 10; i++ {
		_, err = s.AddTagToTask(ctx, task.ID, fmt.Sprintf("tag-%d", i))
		require.NoError(t, err)
	}
	_, err = s.AddTagToTask(ctx, task.ID, "one-more")
	require.ErrorIs(t, err, model.ErrTagLimit)
}

func TestRemoveTagFromTask(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	task, err := s.AddTask(ctx, store.TaskInput{Title: "t", Tags: []string{"alpha", "beta"}})
	require.NoError(t, err)

	got, err := s.RemoveTagFromTask(ctx, task.ID, "ALPHA")
	require.NoError(t, err)
	assert.Equal(t, []string{"beta"}, got.Tags)

	_, err = s.RemoveTagFromTask(ctx, task.ID, "alpha")
	require.ErrorIs(t, err, model.ErrTagNotFound)
}

func TestRenameTagEverywhere(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	first, err := s.AddTask(ctx, store.TaskInput{Title: "a", Tags: []string{"urgent", "bug"}})
	require.NoError(t, err)
	second, err := s.AddTask(ctx, store.TaskInput{Title: "b", Tags: []string{"Urgent"}})
	require.NoError(t, err)
	untouched, err := s.AddTask(ctx, store.TaskInput{Title: "c", Tags: []string{"calm"}})
	require.NoError(t, err)

	s.SetTagFilter(ctx, []string{"urgent"})

	require.NoError(t, s.RenameTagEverywhere(ctx, "urgent", "critical"))

	got, err := s.TaskByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"critical", "bug"}, got.Tags)

	got, err = s.TaskByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"critical"}, got.Tags)

	got, err = s.TaskByID(untouched.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"calm"}, got.Tags)

	// The active tag filter follows the rename.
	assert.Equal(t, []string{"critical"}, s.TagFilter())

	require.ErrorIs(t, s.RenameTagEverywhere(ctx, "urgent", "whatever"), model.ErrTagNotFound)
}

func TestRenameTagDeduplicatesOnTarget(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	task, err := s.AddTask(ctx, store.TaskInput{Title: "t", Tags: []string{"old", "new"}})
	require.NoError(t, err)

	require.NoError(t, s.RenameTagEverywhere(ctx, "old", "NEW"))

	got, err := s.TaskByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got.Tags)
}

func TestMergeTagsEverywhere(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	first, err := s.AddTask(ctx, store.TaskInput{Title: "a", Tags: []string{"bug", "defect"}})
	require.NoError(t, err)
	second, err := s.AddTask(ctx, store.TaskInput{Title: "b", Tags: []string{"Defect", "issue"}})
	require.NoError(t, err)
	third, err := s.AddTask(ctx, store.TaskInput{Title: "c", Tags: []string{"bug"}})
	require.NoError(t, err)

	s.SetTagFilter(ctx, []string{"defect", "calm"})

	require.NoError(t, s.MergeTagsEverywhere(ctx, []string{"defect", "issue"}, "bug"))

	got, err := s.TaskByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bug"}, got.Tags)

	got, err = s.TaskByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bug"}, got.Tags)

	got, err = s.TaskByID(third.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bug"}, got.Tags)

	assert.Equal(t, []string{"calm", "bug"}, s.TagFilter())
}

func TestAllTags(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := s.AddTask(ctx, store.TaskInput{Title: "a", Tags: []string{"Zebra", "apple"}})
	require.NoError(t, err)
	_, err = s.AddTask(ctx, store.TaskInput{Title: "b", Tags: []string{"ZEBRA", "Mango"}})
	require.NoError(t, err)

	// Case-insensitive identity with first-seen casing, sorted
	// case-insensitively.
	assert.Equal(t, []string{"apple", "Mango", "Zebra"}, s.AllTags())

	assert.Equal(t, 2, s.TagUsageCount("zebra"))
	assert.Equal(t, 1, s.TagUsageCount("apple"))
	assert.Equal(t, 0, s.TagUsageCount("ghost"))

	with := s.TasksWithTag("zebra")
	require.Len(t, with, 2)
}

func TestRemoveTagEverywhere(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	first, err := s.AddTask(ctx, store.TaskInput{Title: "a", Tags: []string{"junk", "keep"}})
	require.NoError(t, err)

	s.SetTagFilter(ctx, []string{"junk"})

	require.NoError(t, s.RemoveTagEverywhere(ctx, "JUNK"))

	got, err := s.TaskByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, got.Tags)
	assert.Empty(t, s.TagFilter())

	require.ErrorIs(t, s.RemoveTagEverywhere(ctx, "junk"), model.ErrTagNotFound)
}
