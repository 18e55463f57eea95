// Package validate holds the pure field validators and normalizers shared
// by the store's mutation paths. Every function either returns a domain
// error from the model package or a normalized value; nothing here touches
// state.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taskdeck/taskdeck/internal/model"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
	maxTagLen         = 30

	// MaxTagsPerTask bounds the tag set of a single task.
	MaxTagsPerTask = 10
)

var hexColorRe = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Title checks the 1-100 character bound on a task title.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return model.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return model.ErrTitleTooLong
	}
	return nil
}

// Description checks the 500 character bound on a task description.
func Description(desc string) error {
	if utf8.RuneCountInString(desc) > maxDescriptionLen {
		return model.ErrDescriptionTooLong
	}
	return nil
}

// Priority checks that p is a known level. Empty is allowed; callers
// default it to medium.
func Priority(p model.Priority) error {
	if p == "" || p.Valid() {
		return nil
	}
	return model.ErrInvalidPriority
}

// DueDate rejects dates strictly before the current calendar day.
// Comparison is day-granular; time of day is ignored.
func DueDate(due, now time.Time) error {
	if DayOf(due).Before(DayOf(now)) {
		return model.ErrDueDateInPast
	}
	return nil
}

// DayOf truncates a timestamp to its calendar day in UTC.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CategoryName checks that a category name is non-empty.
func CategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return model.ErrCategoryNameRequired
	}
	return nil
}

// Color normalizes a 6-hex-digit color (with or without leading '#')
// to lowercase "#rrggbb" form.
func Color(color string) (string, error) {
	if strings.TrimSpace(color) == "" {
		return "", model.ErrColorRequired
	}
	if !hexColorRe.MatchString(color) {
		return "", model.ErrInvalidColor
	}
	return "#" + strings.ToLower(strings.TrimPrefix(color, "#")), nil
}

// Tag trims a tag and checks its bounds. The trimmed original casing
// is returned; comparisons elsewhere are case-insensitive.
func Tag(tag string) (string, error) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return "", model.ErrTagEmpty
	}
	if utf8.RuneCountInString(trimmed) > maxTagLen {
		return "", model.ErrTagTooLong
	}
	return trimmed, nil
}

// TagList normalizes a tag slice: each entry is trimmed and validated,
// case-insensitive duplicates are dropped keeping the first casing, and
// the per-task cap is enforced on the result.
func TagList(tags []string) ([]string, error) {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, raw := range tags {
		tag, err := Tag(raw)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	if len(out) > MaxTagsPerTask {
		return nil, model.ErrTagLimit
	}
	return out, nil
}
