package store

import (
	"context"
	"sort"

	"github.com/taskdeck/taskdeck/internal/model"
)

// Reorder is the single ordering primitive: every id present in
// idsInNewOrder gets rank = its array index, other tasks keep their rank,
// and the whole index is then re-sorted and renumbered back to a dense
// 0..N-1 permutation. MoveUp, MoveDown, and MoveToPosition all reduce to
// a call into Reorder with a recomputed id sequence.
func (s *Store) Reorder(ctx context.Context, idsInNewOrder []string) error {
	now := s.stamp()
	changed := false
	for i, id := range idsInNewOrder {
		task, ok := s.tasks[id]
		if !ok {
			continue
		}
		if task.CustomOrder != i {
			task.CustomOrder = i
			task.UpdatedAt = now
			changed = true
		}
	}
	if !changed {
		return nil
	}

	sort.SliceStable(s.order, func(i, j int) bool {
		return s.tasks[s.order[i]].CustomOrder < s.tasks[s.order[j]].CustomOrder
	})
	s.renumber()
	s.save(ctx)
	return nil
}

// MoveUp swaps a task with the neighbor above it in custom order.
// Already at the top is a no-op.
func (s *Store) MoveUp(ctx context.Context, id string) error {
	pos, err := s.orderPosition(id)
	if err != nil {
		return err
	}
	if pos == 0 {
		return nil
	}
	seq := append([]string(nil), s.order...)
	seq[pos-1], seq[pos] = seq[pos], seq[pos-1]
	return s.Reorder(ctx, seq)
}

// MoveDown swaps a task with the neighbor below it in custom order.
// Already at the bottom is a no-op.
func (s *Store) MoveDown(ctx context.Context, id string) error {
	pos, err := s.orderPosition(id)
	if err != nil {
		return err
	}
	if pos == len(s.order)-1 {
		return nil
	}
	seq := append([]string(nil), s.order...)
	seq[pos], seq[pos+1] = seq[pos+1], seq[pos]
	return s.Reorder(ctx, seq)
}

// MoveToPosition removes the task from its current rank slot and
// reinserts it at target, renumbering every affected task contiguously.
// Targets beyond either end clamp to the boundary.
func (s *Store) MoveToPosition(ctx context.Context, id string, target int) error {
	pos, err := s.orderPosition(id)
	if err != nil {
		return err
	}
	if target < 0 {
		target = 0
	}
	if target > len(s.order)-1 {
		target = len(s.order) - 1
	}
	if target == pos {
		return nil
	}

	seq := append([]string(nil), s.order...)
	seq = append(seq[:pos], seq[pos+1:]...)
	seq = append(seq[:target], append([]string{id}, seq[target:]...)...)
	return s.Reorder(ctx, seq)
}

// OrderedTasks returns all tasks in custom order, the canonical manual
// display order independent of sort settings.
func (s *Store) OrderedTasks() []model.Task {
	out := make([]model.Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.tasks[id].Clone())
	}
	return out
}

func (s *Store) orderPosition(id string) (int, error) {
	for i, ordered := range s.order {
		if ordered == id {
			return i, nil
		}
	}
	return 0, model.ErrTaskNotFound
}
