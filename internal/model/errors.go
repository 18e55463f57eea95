package model

import "errors"

// Domain errors surfaced to callers. The UI is expected to catch these and
// present them as form or field errors; persistence failures are never
// reported through this set.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")

	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title must be 100 characters or fewer")
	ErrDescriptionTooLong = errors.New("description must be 500 characters or fewer")
	ErrDueDateInPast      = errors.New("due date cannot be in the past")
	ErrInvalidPriority    = errors.New("invalid priority")

	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryNameTaken    = errors.New("category name must be unique")
	ErrCategoryLimit        = errors.New("maximum 20 categories allowed")
	ErrColorRequired        = errors.New("category color is required")
	ErrInvalidColor         = errors.New("color must be a 6-digit hex value")

	ErrTagEmpty   = errors.New("tag must not be empty")
	ErrTagTooLong = errors.New("tag must be 30 characters or fewer")
	ErrTagExists  = errors.New("tag already present on task")
	ErrTagLimit   = errors.New("maximum 10 tags per task")
)
