package domain

import (
	"context"
	"strings"
)

// Category is a free-text label attached to events.
// Names are unique case-insensitively, but only this client enforces it.
// swagger:model Category
type Category struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// CategoryGateway is the remote /categories collection.
type CategoryGateway interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, name string) (Category, error)
}

// FoldName is the identity key for category names.
func FoldName(name string) string {
	return strings.ToLower(name)
}

// FindCategoryByName returns the first category whose name matches case-insensitively.
func FindCategoryByName(categories []Category, name string) (Category, bool) {
	key := FoldName(name)
	for _, c := range categories {
		if FoldName(c.Name) == key {
			return c, true
		}
	}
	return Category{}, false
}

// FindCategory returns the category with the given id.
func FindCategory(categories []Category, id int64) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
