package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/tests/testutil"
)

func TestSelection(t *testing.T) {
	s := testutil.NewTestStore(t)

	t1 := addTask(t, s, "one")
	t2 := addTask(t, s, "two")

	s.Select(t1.ID)
	s.Select("ghost") // unknown ids are ignored
	assert.True(t, s.IsSelected(t1.ID))
	assert.False(t, s.IsSelected("ghost"))

	s.ToggleSelect(t2.ID)
	assert.True(t, s.IsSelected(t2.ID))
	s.ToggleSelect(t2.ID)
	assert.False(t, s.IsSelected(t2.ID))

	visible := []string{t1.ID, t2.ID}
	assert.False(t, s.AreAllSelected(visible))
	s.SelectAll(visible)
	assert.True(t, s.AreAllSelected(visible))
	assert.False(t, s.AreAllSelected(nil))

	s.Deselect(t1.ID)
	assert.Equal(t, []string{t2.ID}, s.Selected())

	s.ClearSelection()
	assert.Empty(t, s.Selected())
}

func TestBulkComplete(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	t1 := addTask(t, s, "one")
	t2 := addTask(t, s, "two")
	t3 := addTask(t, s, "three")

	s.SelectAll([]string{t1.ID, t2.ID})
	s.BulkComplete(ctx, []string{t1.ID, t2.ID, "ghost"})

	for _, id := range []string{t1.ID, t2.ID} {
		got, err := s.TaskByID(id)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, got.Status)
		assert.NotNil(t, got.CompletedAt)
	}
	got, err := s.TaskByID(t3.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, got.Status)

	// The selection is always cleared afterward.
	assert.Empty(t, s.Selected())

	// Completing an already-completed task keeps it completed.
	s.BulkComplete(ctx, []string{t1.ID})
	got, err = s.TaskByID(t1.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)

	// Empty input is a successful no-op.
	s.BulkComplete(ctx, nil)
}

func TestBulkDelete(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	t1 := addTask(t, s, "one")
	t2 := addTask(t, s, "two")
	t3 := addTask(t, s, "three")

	s.Select(t3.ID)
	s.BulkDelete(ctx, []string{t1.ID, "ghost", t3.ID})

	assert.Equal(t, 1, s.TaskCounts().Total)
	got, err := s.TaskByID(t2.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CustomOrder)
	assert.Empty(t, s.Selected())
}

func TestBulkSetCategory(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	cat := addCategory(t, s, "Work", "3b82f6")
	t1 := addTask(t, s, "one")
	t2 := addTask(t, s, "two")

	s.Select(t1.ID)
	s.BulkSetCategory(ctx, []string{t1.ID, t2.ID, "ghost"}, &cat.ID)

	for _, id := range []string{t1.ID, t2.ID} {
		got, err := s.TaskByID(id)
		require.NoError(t, err)
		require.NotNil(t, got.CategoryID)
		assert.Equal(t, cat.ID, *got.CategoryID)
	}
	assert.Empty(t, s.Selected())

	// nil categoryID uncategorizes.
	s.BulkSetCategory(ctx, []string{t1.ID}, nil)
	got, err := s.TaskByID(t1.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)

	// An invalid category skips the mutation but still clears selection.
	s.Select(t1.ID)
	ghost := "no-such-category"
	s.BulkSetCategory(ctx, []string{t1.ID}, &ghost)
	got, err = s.TaskByID(t1.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
	assert.Empty(t, s.Selected())
}
