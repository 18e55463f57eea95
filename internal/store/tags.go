package store

import (
	"context"
	"sort"
	"strings"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/validate"
)

// AddTagToTask normalizes the tag and appends it to the task's tag set.
// The stored casing is preserved; identity is case-insensitive.
func (s *Store) AddTagToTask(ctx context.Context, taskID, tag string) (model.Task, error) {
	task, ok := s.tasks[taskID]
	if !ok {
		return model.Task{}, model.ErrTaskNotFound
	}
	normalized, err := validate.Tag(tag)
	if err != nil {
		return model.Task{}, err
	}
	if task.HasTag(normalized) {
		return model.Task{}, model.ErrTagExists
	}
	if len(task.Tags) >= validate.MaxTagsPerTask {
		return model.Task{}, model.ErrTagLimit
	}

	task.Tags = append(task.Tags, normalized)
	task.UpdatedAt = s.stamp()
	s.save(ctx)

	return task.Clone(), nil
}

// RemoveTagFromTask removes a tag from one task, matching case-insensitively.
func (s *Store) RemoveTagFromTask(ctx context.Context, taskID, tag string) (model.Task, error) {
	task, ok := s.tasks[taskID]
	if !ok {
		return model.Task{}, model.ErrTaskNotFound
	}
	idx := task.TagIndex(tag)
	if idx < 0 {
		return model.Task{}, model.ErrTagNotFound
	}

	task.Tags = append(task.Tags[:idx], task.Tags[idx+1:]...)
	task.UpdatedAt = s.stamp()
	s.save(ctx)

	return task.Clone(), nil
}

// RemoveTagEverywhere strips a tag from every task carrying it and from
// the active tag filter.
func (s *Store) RemoveTagEverywhere(ctx context.Context, tag string) error {
	touched := false
	for _, task := range s.tasks {
		idx := task.TagIndex(tag)
		if idx < 0 {
			continue
		}
		task.Tags = append(task.Tags[:idx], task.Tags[idx+1:]...)
		task.UpdatedAt = s.stamp()
		touched = true
	}
	if !touched {
		return model.ErrTagNotFound
	}

	s.tagFilter = removeTagFold(s.tagFilter, tag)
	s.save(ctx)
	return nil
}

// RenameTagEverywhere replaces every case-insensitive occurrence of oldTag
// with the literal newTag across all tasks, deduplicating when the target
// already exists on a task. An active tag filter referencing the old value
// follows the rename.
func (s *Store) RenameTagEverywhere(ctx context.Context, oldTag, newTag string) error {
	normalized, err := validate.Tag(newTag)
	if err != nil {
		return err
	}

	touched := false
	for _, task := range s.tasks {
		idx := task.TagIndex(oldTag)
		if idx < 0 {
			continue
		}
		touched = true

		existing := task.TagIndex(normalized)
		if existing >= 0 && existing != idx {
			// Target already on the task; drop the old tag instead of duplicating.
			task.Tags = append(task.Tags[:idx], task.Tags[idx+1:]...)
		} else {
			task.Tags[idx] = normalized
		}
		task.UpdatedAt = s.stamp()
	}
	if !touched {
		return model.ErrTagNotFound
	}

	if containsFold(s.tagFilter, oldTag) {
		s.tagFilter = removeTagFold(s.tagFilter, oldTag)
		if !containsFold(s.tagFilter, normalized) {
			s.tagFilter = append(s.tagFilter, normalized)
		}
	}
	s.save(ctx)
	return nil
}

// MergeTagsEverywhere removes every source tag from every task and adds
// the target tag (deduplicated) to tasks that carried any of them. The
// active tag filter is updated analogously.
func (s *Store) MergeTagsEverywhere(ctx context.Context, sources []string, target string) error {
	normalized, err := validate.Tag(target)
	if err != nil {
		return err
	}

	for _, task := range s.tasks {
		carried := false
		for _, src := range sources {
			idx := task.TagIndex(src)
			if idx < 0 {
				continue
			}
			task.Tags = append(task.Tags[:idx], task.Tags[idx+1:]...)
			carried = true
		}
		if !carried {
			continue
		}
		if !task.HasTag(normalized) {
			task.Tags = append(task.Tags, normalized)
		}
		task.UpdatedAt = s.stamp()
	}

	filterHit := false
	for _, src := range sources {
		if containsFold(s.tagFilter, src) {
			s.tagFilter = removeTagFold(s.tagFilter, src)
			filterHit = true
		}
	}
	if filterHit && !containsFold(s.tagFilter, normalized) {
		s.tagFilter = append(s.tagFilter, normalized)
	}

	s.save(ctx)
	return nil
}

// AllTags returns each distinct tag across all tasks, case-insensitive
// identity with first-seen casing, sorted case-insensitively.
func (s *Store) AllTags() []string {
	seen := make(map[string]string)
	for _, id := range s.order {
		for _, tag := range s.tasks[id].Tags {
			key := strings.ToLower(tag)
			if _, ok := seen[key]; !ok {
				seen[key] = tag
			}
		}
	}

	out := make([]string, 0, len(seen))
	for _, tag := range seen {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// TagUsageCount returns how many tasks carry the tag.
func (s *Store) TagUsageCount(tag string) int {
	count := 0
	for _, task := range s.tasks {
		if task.HasTag(tag) {
			count++
		}
	}
	return count
}

// TasksWithTag returns the tasks carrying the tag, in custom order.
func (s *Store) TasksWithTag(tag string) []model.Task {
	var out []model.Task
	for _, id := range s.order {
		if s.tasks[id].HasTag(tag) {
			out = append(out, s.tasks[id].Clone())
		}
	}
	return out
}

func containsFold(tags []string, tag string) bool {
	for _, existing := range tags {
		if strings.EqualFold(existing, tag) {
			return true
		}
	}
	return false
}

func removeTagFold(tags []string, tag string) []string {
	out := tags[:0]
	for _, existing := range tags {
		if !strings.EqualFold(existing, tag) {
			out = append(out, existing)
		}
	}
	return out
}
