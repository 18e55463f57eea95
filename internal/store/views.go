package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/persist"
	"github.com/taskdeck/taskdeck/internal/query"
)

// Query runs an arbitrary composed view over the task set.
func (s *Store) Query(spec query.Spec) []model.Task {
	return query.Apply(s.OrderedTasks(), spec)
}

// Tasks returns the default view: the current status, category and tag
// filters plus the transient search text, ordered by the active sort
// preference.
func (s *Store) Tasks() []model.Task {
	return s.Query(s.ViewSpec())
}

// ViewSpec returns the query spec for the store's current view state.
func (s *Store) ViewSpec() query.Spec {
	return query.Spec{
		Status:        s.statusFilter,
		CategoryIDs:   append([]string(nil), s.categoryFilter...),
		Tags:          append([]string(nil), s.tagFilter...),
		Search:        s.search,
		SortKey:       s.sortBy,
		SortDirection: s.sortDir,
	}
}

// SetStatusFilter switches the All / Active / Completed view.
func (s *Store) SetStatusFilter(ctx context.Context, f model.StatusFilter) {
	s.statusFilter = f
	s.save(ctx)
}

// SetCategoryFilter replaces the selected category id set. Entries may
// include the model.UncategorizedFilter sentinel; empty means no filter.
func (s *Store) SetCategoryFilter(ctx context.Context, categoryIDs []string) {
	s.categoryFilter = append([]string(nil), categoryIDs...)
	s.save(ctx)
}

// SetTagFilter replaces the selected tag set; empty means no filter.
func (s *Store) SetTagFilter(ctx context.Context, tags []string) {
	s.tagFilter = append([]string(nil), tags...)
	s.save(ctx)
}

// SetSort updates the sort preference and additionally caches it under its
// own key for fast cold-start rendering.
func (s *Store) SetSort(ctx context.Context, key model.SortKey, dir model.SortDirection) {
	s.sortBy = key
	s.sortDir = dir
	s.save(ctx)

	blob, err := persist.EncodeSortPref(persist.SortPref{SortBy: key, SortDirection: dir})
	if err != nil {
		s.log.Warn("encoding sort preference", zap.Error(err))
		return
	}
	if err := s.kv.Put(ctx, persist.SortPrefKey, blob); err != nil {
		s.log.Warn("caching sort preference", zap.Error(err))
	}
}

// SetSearch updates the transient search text. It is never persisted.
func (s *Store) SetSearch(text string) {
	s.search = text
}

// Sort returns the active sort preference.
func (s *Store) Sort() (model.SortKey, model.SortDirection) {
	return s.sortBy, s.sortDir
}

// StatusFilter returns the active status filter.
func (s *Store) StatusFilter() model.StatusFilter {
	return s.statusFilter
}

// CategoryFilter returns the active category filter set.
func (s *Store) CategoryFilter() []string {
	return append([]string(nil), s.categoryFilter...)
}

// TagFilter returns the active tag filter set.
func (s *Store) TagFilter() []string {
	return append([]string(nil), s.tagFilter...)
}

// Counts summarizes the task list for header/status views.
type Counts struct {
	Total     int
	Active    int
	Completed int
}

// TaskCounts returns total, active, and completed task counts.
func (s *Store) TaskCounts() Counts {
	c := Counts{Total: len(s.tasks)}
	for _, task := range s.tasks {
		if task.Status == model.StatusCompleted {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}
