package model

// StatusFilter narrows the task list by completion state.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active"
	FilterCompleted StatusFilter = "completed"
)

// Matches reports whether a task status passes the filter.
// Unknown filter values pass everything.
func (f StatusFilter) Matches(status Status) bool {
	switch f {
	case FilterActive:
		return status == StatusPending
	case FilterCompleted:
		return status == StatusCompleted
	default:
		return true
	}
}

// UncategorizedFilter is the sentinel inside a category filter set that
// matches tasks with no category.
const UncategorizedFilter = "uncategorized"

// SortKey selects the field tasks are ordered by.
type SortKey string

const (
	SortByCreated  SortKey = "created_at"
	SortByPriority SortKey = "priority"
	SortByTitle    SortKey = "title"
	SortByDueDate  SortKey = "due_date"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)
