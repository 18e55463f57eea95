// Package store owns the canonical in-memory state of tasks and categories,
// enforces its invariants, and mirrors every mutation into durable storage
// on a best-effort basis. A Store is an explicit instance wired by the
// composition root; there is no package-level singleton.
package store

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/persist"
)

// Store is the single-writer state engine. All methods are synchronous:
// when a mutation returns, the in-memory invariants hold, though the
// persisted copy may have failed silently.
type Store struct {
	log *zap.Logger
	kv  persist.KV
	now func() time.Time

	// lastStamp enforces strictly increasing mutation timestamps even
	// across same-instant calls.
	lastStamp time.Time

	tasks      map[string]*model.Task
	order      []string // task ids by CustomOrder, always a dense 0..N-1 rank
	categories []model.Category

	statusFilter   model.StatusFilter
	categoryFilter []string
	tagFilter      []string
	sortBy         model.SortKey
	sortDir        model.SortDirection

	// search and selection are transient; neither is persisted.
	search    string
	selection map[string]struct{}
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a Store rehydrated from kv. A missing or unreadable snapshot
// yields the empty initial state; rehydration never fails.
func New(ctx context.Context, kv persist.KV, opts ...Option) *Store {
	s := &Store{
		log:       zap.NewNop(),
		kv:        kv,
		now:       time.Now,
		tasks:     make(map[string]*model.Task),
		selection: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	st := persist.EmptyState()
	blob, found, err := kv.Get(ctx, persist.StateKey)
	switch {
	case err != nil:
		s.log.Warn("reading stored snapshot, starting empty", zap.Error(err))
	case found:
		decoded, derr := persist.DecodeState(blob)
		if derr != nil {
			s.log.Warn("discarding unreadable snapshot, starting empty", zap.Error(derr))
		} else {
			st = decoded
		}
	}
	s.applyState(st)

	return s
}

// applyState loads a decoded snapshot into the arena and normalizes the
// ordering index back to a dense 0..N-1 rank.
func (s *Store) applyState(st persist.State) {
	s.tasks = make(map[string]*model.Task, len(st.Tasks))
	s.order = make([]string, 0, len(st.Tasks))
	for _, t := range st.Tasks {
		task := t.Clone()
		s.tasks[task.ID] = &task
		s.order = append(s.order, task.ID)
		if task.UpdatedAt.After(s.lastStamp) {
			s.lastStamp = task.UpdatedAt
		}
	}
	sort.SliceStable(s.order, func(i, j int) bool {
		return s.tasks[s.order[i]].CustomOrder < s.tasks[s.order[j]].CustomOrder
	})
	s.renumber()

	s.categories = append([]model.Category(nil), st.Categories...)
	s.statusFilter = st.CurrentFilter
	s.categoryFilter = append([]string(nil), st.CategoryFilters...)
	s.tagFilter = append([]string(nil), st.TagFilters...)
	s.sortBy = st.SortBy
	s.sortDir = st.SortDirection
}

// renumber reassigns CustomOrder = position for every id in the order
// index, keeping ranks a permutation of 0..N-1.
func (s *Store) renumber() {
	for i, id := range s.order {
		s.tasks[id].CustomOrder = i
	}
}

// stamp returns the next mutation timestamp, guaranteed strictly greater
// than every previous one even within the same millisecond.
func (s *Store) stamp() time.Time {
	now := s.now().UTC()
	if !now.After(s.lastStamp) {
		now = s.lastStamp.Add(time.Millisecond)
	}
	s.lastStamp = now
	return now
}

// save writes the current snapshot to durable storage. Failures are logged
// and swallowed: the mutation that triggered the save still succeeds
// against in-memory state.
func (s *Store) save(ctx context.Context) {
	blob, err := persist.EncodeState(s.snapshotState())
	if err != nil {
		s.log.Warn("encoding snapshot", zap.Error(err))
		return
	}
	if err := s.kv.Put(ctx, persist.StateKey, blob); err != nil {
		s.log.Warn("persisting snapshot, continuing with in-memory state only",
			zap.Error(err))
	}
}

// snapshotState captures persisted state: tasks in custom order, the
// categories, and the filter and sort preferences. Selection and search
// text are transient and excluded.
func (s *Store) snapshotState() persist.State {
	tasks := make([]model.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.tasks[id].Clone())
	}
	return persist.State{
		Tasks:           tasks,
		Categories:      append([]model.Category(nil), s.categories...),
		CurrentFilter:   s.statusFilter,
		CategoryFilters: append([]string(nil), s.categoryFilter...),
		TagFilters:      append([]string(nil), s.tagFilter...),
		SortBy:          s.sortBy,
		SortDirection:   s.sortDir,
	}
}
