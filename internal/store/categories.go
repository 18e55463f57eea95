package store

import (
	"context"
	"strings"

	"github.com/taskdeck/taskdeck/internal/ids"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/validate"
)

// CategoryInput carries the fields accepted when creating a category.
type CategoryInput struct {
	Name  string
	Color string
}

// CategoryPatch carries a partial category update.
type CategoryPatch struct {
	Name  *string
	Color *string
}

// AddCategory validates and appends a new category. The collection is
// bounded to model.MaxCategories members and names are unique
// case-insensitively.
func (s *Store) AddCategory(ctx context.Context, in CategoryInput) (model.Category, error) {
	if len(s.categories) >= model.MaxCategories {
		return model.Category{}, model.ErrCategoryLimit
	}
	if err := validate.CategoryName(in.Name); err != nil {
		return model.Category{}, err
	}
	if s.categoryNameTaken(in.Name, "") {
		return model.Category{}, model.ErrCategoryNameTaken
	}
	color, err := validate.Color(in.Color)
	if err != nil {
		return model.Category{}, err
	}

	now := s.stamp()
	cat := model.Category{
		ID:        ids.New(),
		Name:      in.Name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.categories = append(s.categories, cat)
	s.save(ctx)

	return cat, nil
}

// UpdateCategory merges the patch into an existing category. Renaming a
// category to its own current name is a no-op, not a uniqueness violation.
func (s *Store) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (model.Category, error) {
	idx, ok := s.categoryIndex(id)
	if !ok {
		return model.Category{}, model.ErrCategoryNotFound
	}
	cat := &s.categories[idx]

	if patch.Name != nil {
		if err := validate.CategoryName(*patch.Name); err != nil {
			return model.Category{}, err
		}
		if s.categoryNameTaken(*patch.Name, id) {
			return model.Category{}, model.ErrCategoryNameTaken
		}
	}
	var color string
	if patch.Color != nil {
		normalized, err := validate.Color(*patch.Color)
		if err != nil {
			return model.Category{}, err
		}
		color = normalized
	}

	if patch.Name != nil {
		cat.Name = *patch.Name
	}
	if patch.Color != nil {
		cat.Color = color
	}
	cat.UpdatedAt = s.stamp()
	s.save(ctx)

	return *cat, nil
}

// DeleteCategory removes a category, nulls out CategoryID on every task
// that referenced it, and drops it from the active category filter. The
// referencing tasks themselves are kept.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	idx, ok := s.categoryIndex(id)
	if !ok {
		return model.ErrCategoryNotFound
	}
	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)

	for _, task := range s.tasks {
		if task.CategoryID != nil && *task.CategoryID == id {
			task.CategoryID = nil
			task.UpdatedAt = s.stamp()
		}
	}

	filtered := s.categoryFilter[:0]
	for _, fid := range s.categoryFilter {
		if fid != id {
			filtered = append(filtered, fid)
		}
	}
	s.categoryFilter = filtered

	s.save(ctx)
	return nil
}

// CategoryByID returns a copy of the category with the given id.
func (s *Store) CategoryByID(id string) (model.Category, error) {
	idx, ok := s.categoryIndex(id)
	if !ok {
		return model.Category{}, model.ErrCategoryNotFound
	}
	return s.categories[idx], nil
}

// Categories returns all categories in creation order.
func (s *Store) Categories() []model.Category {
	return append([]model.Category(nil), s.categories...)
}

func (s *Store) categoryIndex(id string) (int, bool) {
	for i, cat := range s.categories {
		if cat.ID == id {
			return i, true
		}
	}
	return 0, false
}

// categoryNameTaken reports whether another category already uses the name,
// comparing case-insensitively and excluding excludeID.
func (s *Store) categoryNameTaken(name, excludeID string) bool {
	for _, cat := range s.categories {
		if cat.ID != excludeID && strings.EqualFold(cat.Name, name) {
			return true
		}
	}
	return false
}
