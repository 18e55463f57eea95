// Package query composes status, category and tag filters, free-text
// search, and sorting into one deterministic ordered view. Every list the
// UI renders goes through Apply; there are no per-combination accessors.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/taskdeck/taskdeck/internal/model"
)

// Spec describes one composed view of the task list.
type Spec struct {
	// Status narrows by completion state; FilterAll (or zero) passes everything.
	Status model.StatusFilter

	// CategoryIDs is a set of category ids, optionally including the
	// model.UncategorizedFilter sentinel. Empty means no category filter;
	// non-empty passes tasks matching any entry (OR).
	CategoryIDs []string

	// Tags is a set of tag values compared case-insensitively. Empty means
	// no tag filter; non-empty passes tasks carrying at least one (OR).
	Tags []string

	// Search is a trimmed, case-insensitive substring match against
	// title or description. Empty passes everything.
	Search string

	SortKey       model.SortKey
	SortDirection model.SortDirection
}

// Apply runs the filter -> search -> sort pipeline over tasks and returns
// the resulting view. The input slice is not modified.
func Apply(tasks []model.Task, spec Spec) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !Matches(t, spec) {
			continue
		}
		out = append(out, t)
	}
	Sort(out, spec.SortKey, spec.SortDirection)
	return out
}

// Matches reports whether a single task passes every filter in the spec.
func Matches(t model.Task, spec Spec) bool {
	return spec.Status.Matches(t.Status) &&
		matchesCategory(t, spec.CategoryIDs) &&
		matchesTags(t, spec.Tags) &&
		matchesSearch(t, spec.Search)
}

func matchesCategory(t model.Task, ids []string) bool {
	if len(ids) == 0 {
		return true
	}
	for _, id := range ids {
		if id == model.UncategorizedFilter {
			if t.CategoryID == nil {
				return true
			}
			continue
		}
		if t.CategoryID != nil && *t.CategoryID == id {
			return true
		}
	}
	return false
}

func matchesTags(t model.Task, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if t.HasTag(tag) {
			return true
		}
	}
	return false
}

func matchesSearch(t model.Task, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

// Sort orders tasks in place by the given key and direction. Ties always
// break by creation date ascending, regardless of direction, so views stay
// stable while outer keys flip.
func Sort(tasks []model.Task, key model.SortKey, dir model.SortDirection) {
	desc := dir == model.SortDesc

	var collator *collate.Collator
	if key == model.SortByTitle {
		collator = collate.New(language.Und, collate.IgnoreCase)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		c := compare(tasks[i], tasks[j], key, collator, desc)
		if c != 0 {
			return c < 0
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}

// compare returns a direction-adjusted ordering for the primary sort key.
// Due-date presence is deliberately not direction-adjusted: a dated task
// sorts before an undated one in both modes.
func compare(a, b model.Task, key model.SortKey, collator *collate.Collator, desc bool) int {
	var c int
	switch key {
	case model.SortByPriority:
		c = a.Priority.Rank() - b.Priority.Rank()
	case model.SortByTitle:
		c = collator.CompareString(a.Title, b.Title)
	case model.SortByDueDate:
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return 0
		case a.DueDate == nil:
			return 1
		case b.DueDate == nil:
			return -1
		}
		c = a.DueDate.Compare(*b.DueDate)
	default: // model.SortByCreated
		c = a.CreatedAt.Compare(b.CreatedAt)
	}
	if desc {
		c = -c
	}
	return c
}
