package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/query"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/tests/testutil"
)

func TestDefaultView(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	t1 := addTask(t, s, "alpha")
	t2 := addTask(t, s, "beta")
	t3 := addTask(t, s, "gamma")
	_, err := s.ToggleComplete(ctx, t2.ID)
	require.NoError(t, err)

	// Unfiltered default view shows everything by creation date.
	got := s.Tasks()
	require.Len(t, got, 3)
	assert.Equal(t, t1.ID, got[0].ID)

	s.SetStatusFilter(ctx, model.FilterActive)
	got = s.Tasks()
	require.Len(t, got, 2)
	assert.Equal(t, t1.ID, got[0].ID)
	assert.Equal(t, t3.ID, got[1].ID)

	s.SetSearch("gam")
	got = s.Tasks()
	require.Len(t, got, 1)
	assert.Equal(t, t3.ID, got[0].ID)

	// Search text is transient and not part of persisted view state, but
	// it feeds the default view until changed.
	s.SetSearch("")
	assert.Len(t, s.Tasks(), 2)
}

func TestQueryBypassesStoredFilters(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	addTask(t, s, "alpha")
	done := addTask(t, s, "beta")
	_, err := s.ToggleComplete(ctx, done.ID)
	require.NoError(t, err)

	s.SetStatusFilter(ctx, model.FilterActive)

	// An explicit spec ignores the store's view state entirely.
	got := s.Query(query.Spec{Status: model.FilterCompleted})
	require.Len(t, got, 1)
	assert.Equal(t, done.ID, got[0].ID)
}

func TestTaskCounts(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	assert.Equal(t, store.Counts{}, s.TaskCounts())

	addTask(t, s, "one")
	two := addTask(t, s, "two")
	addTask(t, s, "three")
	_, err := s.ToggleComplete(ctx, two.ID)
	require.NoError(t, err)

	assert.Equal(t, store.Counts{Total: 3, Active: 2, Completed: 1}, s.TaskCounts())
}
