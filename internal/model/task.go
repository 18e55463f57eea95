package model

import (
	"strings"
	"time"
)

// Status is the completion state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// priorityRanks orders priorities from least to most urgent.
var priorityRanks = map[Priority]int{
	PriorityLow:      0,
	PriorityMedium:   1,
	PriorityHigh:     2,
	PriorityCritical: 3,
}

// Rank returns the sort rank of a priority (low < medium < high < critical).
// Unknown values rank as medium.
func (p Priority) Rank() int {
	if r, ok := priorityRanks[p]; ok {
		return r
	}
	return priorityRanks[PriorityMedium]
}

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	_, ok := priorityRanks[p]
	return ok
}

// Task is the core trackable unit of work.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`

	// CategoryID is a weak reference; deleting the category nulls it out.
	CategoryID *string `json:"category_id,omitempty"`

	// Tags preserve their original casing; identity is case-insensitive.
	Tags []string `json:"tags"`

	// CustomOrder is the dense manual display rank, 0..N-1 across all tasks.
	CustomOrder int `json:"custom_order"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// HasTag reports whether the task carries the tag, comparing case-insensitively.
func (t Task) HasTag(tag string) bool {
	return t.TagIndex(tag) >= 0
}

// TagIndex returns the position of the tag within the task's tag list,
// comparing case-insensitively, or -1 when absent.
func (t Task) TagIndex(tag string) int {
	for i, existing := range t.Tags {
		if strings.EqualFold(existing, tag) {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can't mutate store-owned state.
func (t Task) Clone() Task {
	out := t
	if t.Tags != nil {
		out.Tags = append([]string(nil), t.Tags...)
	}
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	if t.CategoryID != nil {
		id := *t.CategoryID
		out.CategoryID = &id
	}
	if t.CompletedAt != nil {
		done := *t.CompletedAt
		out.CompletedAt = &done
	}
	return out
}
