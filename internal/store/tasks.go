package store

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/internal/ids"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/validate"
)

// TaskInput carries the fields accepted when creating a task.
type TaskInput struct {
	Title       string
	Description string
	Priority    model.Priority // empty defaults to medium
	DueDate     *time.Time
	CategoryID  *string
	Tags        []string
}

// TaskPatch carries a partial task update. Nil pointers leave the field
// untouched; the Clear flags null out the optional fields.
type TaskPatch struct {
	Title         *string
	Description   *string
	Priority      *model.Priority
	DueDate       *time.Time
	ClearDueDate  bool
	CategoryID    *string
	ClearCategory bool
	Tags          []string
	SetTags       bool
}

// AddTask validates the input and appends a new pending task with
// CustomOrder equal to the current task count.
func (s *Store) AddTask(ctx context.Context, in TaskInput) (model.Task, error) {
	if err := validate.Title(in.Title); err != nil {
		return model.Task{}, err
	}
	if err := validate.Description(in.Description); err != nil {
		return model.Task{}, err
	}
	if err := validate.Priority(in.Priority); err != nil {
		return model.Task{}, err
	}
	if in.DueDate != nil {
		if err := validate.DueDate(*in.DueDate, s.now()); err != nil {
			return model.Task{}, err
		}
	}
	if in.CategoryID != nil {
		if _, ok := s.categoryIndex(*in.CategoryID); !ok {
			return model.Task{}, model.ErrCategoryNotFound
		}
	}
	tags, err := validate.TagList(in.Tags)
	if err != nil {
		return model.Task{}, err
	}

	now := s.stamp()
	task := model.Task{
		ID:          ids.New(),
		Title:       in.Title,
		Description: in.Description,
		Status:      model.StatusPending,
		Priority:    in.Priority,
		Tags:        tags,
		CustomOrder: len(s.order),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if in.DueDate != nil {
		due := validate.DayOf(*in.DueDate)
		task.DueDate = &due
	}
	if in.CategoryID != nil {
		id := *in.CategoryID
		task.CategoryID = &id
	}

	s.tasks[task.ID] = &task
	s.order = append(s.order, task.ID)
	s.save(ctx)

	return task.Clone(), nil
}

// UpdateTask merges the patch into an existing task and bumps UpdatedAt.
func (s *Store) UpdateTask(ctx context.Context, id string, patch TaskPatch) (model.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return model.Task{}, model.ErrTaskNotFound
	}

	if patch.Title != nil {
		if err := validate.Title(*patch.Title); err != nil {
			return model.Task{}, err
		}
	}
	if patch.Description != nil {
		if err := validate.Description(*patch.Description); err != nil {
			return model.Task{}, err
		}
	}
	if patch.Priority != nil {
		if err := validate.Priority(*patch.Priority); err != nil {
			return model.Task{}, err
		}
	}
	if patch.CategoryID != nil {
		if _, ok := s.categoryIndex(*patch.CategoryID); !ok {
			return model.Task{}, model.ErrCategoryNotFound
		}
	}
	var tags []string
	if patch.SetTags {
		normalized, err := validate.TagList(patch.Tags)
		if err != nil {
			return model.Task{}, err
		}
		tags = normalized
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil && *patch.Priority != "" {
		task.Priority = *patch.Priority
	}
	if patch.ClearDueDate {
		task.DueDate = nil
	} else if patch.DueDate != nil {
		due := validate.DayOf(*patch.DueDate)
		task.DueDate = &due
	}
	if patch.ClearCategory {
		task.CategoryID = nil
	} else if patch.CategoryID != nil {
		cid := *patch.CategoryID
		task.CategoryID = &cid
	}
	if patch.SetTags {
		task.Tags = tags
	}
	task.UpdatedAt = s.stamp()
	s.save(ctx)

	return task.Clone(), nil
}

// DeleteTask removes a task, renumbers the remaining ranks, and drops the
// task from any pending selection.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	if _, ok := s.tasks[id]; !ok {
		return model.ErrTaskNotFound
	}

	delete(s.tasks, id)
	delete(s.selection, id)
	for i, ordered := range s.order {
		if ordered == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.renumber()
	s.save(ctx)

	return nil
}

// ToggleComplete flips a task's status and maintains CompletedAt.
func (s *Store) ToggleComplete(ctx context.Context, id string) (model.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return model.Task{}, model.ErrTaskNotFound
	}

	now := s.stamp()
	if task.Status == model.StatusCompleted {
		task.Status = model.StatusPending
		task.CompletedAt = nil
	} else {
		task.Status = model.StatusCompleted
		done := now
		task.CompletedAt = &done
	}
	task.UpdatedAt = now
	s.save(ctx)

	return task.Clone(), nil
}

// TaskByID returns a copy of the task with the given id.
func (s *Store) TaskByID(id string) (model.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return model.Task{}, model.ErrTaskNotFound
	}
	return task.Clone(), nil
}

// complete marks a task completed without toggling; used by bulk actions.
func (s *Store) complete(id string) bool {
	task, ok := s.tasks[id]
	if !ok {
		return false
	}
	now := s.stamp()
	if task.Status != model.StatusCompleted {
		task.Status = model.StatusCompleted
		done := now
		task.CompletedAt = &done
	}
	task.UpdatedAt = now
	return true
}
