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

// requireDenseRanks asserts the core ordering invariant: CustomOrder
// values form exactly the permutation 0..N-1 in index order.
func requireDenseRanks(t *testing.T, s *store.Store) {
	t.Helper()
	for i, task := range s.OrderedTasks() {
		require.Equal(t, i, task.CustomOrder, "rank gap or duplicate at position %d", i)
	}
}

func orderedIDs(s *store.Store) []string {
	tasks := s.OrderedTasks()
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.ID
	}
	return out
}

func TestMoveUp(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	t1 := addTask(t, s, "T1")
	t2 := addTask(t, s, "T2")
	t3 := addTask(t, s, "T3")

	require.NoError(t, s.MoveUp(ctx, t3.ID))

	assert.Equal(t, []string{t1.ID, t3.ID, t2.ID}, orderedIDs(s))
	requireDenseRanks(t, s)

	// Already at the top is a no-op.
	require.NoError(t, s.MoveUp(ctx, t1.ID))
	assert.Equal(t, []string{t1.ID, t3.ID, t2.ID}, orderedIDs(s))

	require.ErrorIs(t, s.MoveUp(ctx, "missing"), model.ErrTaskNotFound)
}

func TestMoveDown(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	t1 := addTask(t, s, "T1")
	t2 := addTask(t, s, "T2")
	t3 := addTask(t, s, "T3")

	require.NoError(t, s.MoveDown(ctx, t1.ID))
	assert.Equal(t, []string{t2.ID, t1.ID, t3.ID}, orderedIDs(s))
	requireDenseRanks(t, s)

	// Already at the bottom is a no-op.
	require.NoError(t, s.MoveDown(ctx, t3.ID))
	assert.Equal(t, []string{t2.ID, t1.ID, t3.ID}, orderedIDs(s))
}

func TestMoveToPosition(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	t1 := addTask(t, s, "T1")
	t2 := addTask(t, s, "T2")
	t3 := addTask(t, s, "T3")
	t4 := addTask(t, s, "T4")

	require.NoError(t, s.MoveToPosition(ctx, t4.ID, 0))
	assert.Equal(t, []string{t4.ID, t1.ID, t2.ID, t3.ID}, orderedIDs(s))
	requireDenseRanks(t, s)

	require.NoError(t, s.MoveToPosition(ctx, t4.ID, 2))
	assert.Equal(t, []string{t1.ID, t2.ID, t4.ID, t3.ID}, orderedIDs(s))
	requireDenseRanks(t, s)

	// Out-of-range targets clamp to the boundaries.
	require.NoError(t, s.MoveToPosition(ctx, t1.ID, 99))
	assert.Equal(t, []string{t2.ID, t4.ID, t3.ID, t1.ID}, orderedIDs(s))
	requireDenseRanks(t, s)

	require.NoError(t, s.MoveToPosition(ctx, t3.ID, -5))
	assert.Equal(t, []string{t3.ID, t2.ID, t4.ID, t1.ID}, orderedIDs(s))
	requireDenseRanks(t, s)
}

func TestReorderFullPermutation(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	t1 := addTask(t, s, "T1")
	t2 := addTask(t, s, "T2")
	t3 := addTask(t, s, "T3")

	require.NoError(t, s.Reorder(ctx, []string{t3.ID, t1.ID, t2.ID}))
	assert.Equal(t, []string{t3.ID, t1.ID, t2.ID}, orderedIDs(s))
	requireDenseRanks(t, s)

	// Unknown ids in the sequence are ignored.
	require.NoError(t, s.Reorder(ctx, []string{"ghost", t2.ID, t1.ID, t3.ID}))
	requireDenseRanks(t, s)
}

func TestOrderingInvariantAcrossMixedOps(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	ids := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		ids = append(ids, addTask(t, s, fmt.Sprintf("task %d", i)).ID)
	}

	require.NoError(t, s.MoveUp(ctx, ids[5]))
	require.NoError(t, s.MoveDown(ctx, ids[0]))
	require.NoError(t, s.MoveToPosition(ctx, ids[7], 1))
	require.NoError(t, s.DeleteTask(ctx, ids[3]))
	require.NoError(t, s.MoveToPosition(ctx, ids[6], 0))
	require.NoError(t, s.Reorder(ctx, orderedIDs(s)))
	require.NoError(t, s.MoveUp(ctx, ids[2]))

	requireDenseRanks(t, s)
	assert.Len(t, s.OrderedTasks(), 7)
}
