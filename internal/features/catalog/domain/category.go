package domain

import (
	"sort"
	"strings"
)

// Category is a product category as reported by the storefront backend.
type Category struct {
	// ID is the unique category identifier.
	ID string `json:"_id"`
	// Name is the category display name.
	Name string `json:"name"`
	// Description is an optional free-text description.
	Description string `json:"description,omitempty"`
}

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	// Name is the category display name. Required.
	Name string `json:"name"`
	// Description is an optional free-text description.
	Description string `json:"description"`
}

// SortCategories orders categories by name, case-insensitively, for display.
func SortCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	copy(out, categories)

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
