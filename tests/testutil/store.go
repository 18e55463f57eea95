package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/persist"
	"github.com/taskdeck/taskdeck/internal/store"
)

// NewTestKV creates an in-memory SQLite-backed KV with migrations applied.
// It automatically closes the database when the test completes.
func NewTestKV(t *testing.T) *persist.SQLiteKV {
	t.Helper()

	kv, err := persist.NewSQLiteKV(":memory:")
	if err != nil {
		t.Fatalf("creating test kv: %v", err)
	}

	t.Cleanup(func() {
		if err := kv.Close(); err != nil {
			t.Errorf("closing test kv: %v", err)
		}
	})

	return kv
}

// NewTestStore creates a Store rehydrated from a fresh in-memory KV, with
// a deterministic clock ticking one second per call.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(context.Background(), NewTestKV(t),
		store.WithClock(TestClock()))
}

// TestClock returns a deterministic time source advancing one second per
// call, starting at a fixed instant so assertions stay reproducible.
func TestClock() func() time.Time {
	current := time.Date(2030, time.March, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}
