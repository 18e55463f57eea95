package model

import "time"

// MaxCategories bounds the category collection.
const MaxCategories = 20

// Category is a single-select, uniquely-named, colored grouping label.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Color is normalized to a lowercase "#rrggbb" value.
	Color string `json:"color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
