package store

import (
	"context"
	"sort"
)

// Selection is a transient set of task ids the next bulk action applies
// to. It is never persisted; deleting a task drops it from the selection.

// Select adds a task id to the selection. Unknown ids are ignored.
func (s *Store) Select(id string) {
	if _, ok := s.tasks[id]; ok {
		s.selection[id] = struct{}{}
	}
}

// Deselect removes a task id from the selection.
func (s *Store) Deselect(id string) {
	delete(s.selection, id)
}

// ToggleSelect flips a task id's membership in the selection.
func (s *Store) ToggleSelect(id string) {
	if _, ok := s.selection[id]; ok {
		delete(s.selection, id)
		return
	}
	s.Select(id)
}

// SelectAll adds every visible id to the selection.
func (s *Store) SelectAll(visibleIDs []string) {
	for _, id := range visibleIDs {
		s.Select(id)
	}
}

// ClearSelection empties the selection.
func (s *Store) ClearSelection() {
	s.selection = make(map[string]struct{})
}

// IsSelected reports whether the id is currently selected.
func (s *Store) IsSelected(id string) bool {
	_, ok := s.selection[id]
	return ok
}

// Selected returns the selected ids in a stable order.
func (s *Store) Selected() []string {
	out := make([]string, 0, len(s.selection))
	for id := range s.selection {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// AreAllSelected reports whether every visible id is selected. An empty
// visible set is never "all selected".
func (s *Store) AreAllSelected(visibleIDs []string) bool {
	if len(visibleIDs) == 0 {
		return false
	}
	for _, id := range visibleIDs {
		if !s.IsSelected(id) {
			return false
		}
	}
	return true
}

// BulkComplete marks every given task completed, best-effort per id, and
// clears the selection. An empty id list is a successful no-op.
func (s *Store) BulkComplete(ctx context.Context, taskIDs []string) {
	changed := false
	for _, id := range taskIDs {
		if s.complete(id) {
			changed = true
		}
	}
	s.ClearSelection()
	if changed {
		s.save(ctx)
	}
}

// BulkDelete removes every given task, best-effort per id, renumbers the
// remaining ranks, and clears the selection.
func (s *Store) BulkDelete(ctx context.Context, taskIDs []string) {
	changed := false
	for _, id := range taskIDs {
		if _, ok := s.tasks[id]; !ok {
			continue
		}
		delete(s.tasks, id)
		for i, ordered := range s.order {
			if ordered == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		changed = true
	}
	s.ClearSelection()
	if changed {
		s.renumber()
		s.save(ctx)
	}
}

// BulkSetCategory assigns the category (or nil to uncategorize) to every
// given task and clears the selection. An invalid category id silently
// skips the mutation, matching best-effort bulk semantics.
func (s *Store) BulkSetCategory(ctx context.Context, taskIDs []string, categoryID *string) {
	valid := categoryID == nil
	if categoryID != nil {
		_, valid = s.categoryIndex(*categoryID)
	}

	changed := false
	if valid {
		for _, id := range taskIDs {
			task, ok := s.tasks[id]
			if !ok {
				continue
			}
			if categoryID == nil {
				task.CategoryID = nil
			} else {
				cid := *categoryID
				task.CategoryID = &cid
			}
			task.UpdatedAt = s.stamp()
			changed = true
		}
	}
	s.ClearSelection()
	if changed {
		s.save(ctx)
	}
}
