package categories

import (
	"context"
	"errors"
)

// All is the pseudo-category clients send to mean "no category filter"
const All = "All"

// Names is the fixed set of categories seeded by migration 001.
// Posts may only reference one of these.
var Names = []string{
	"Books and Magazines",
	"Entertainment",
	"Electronics",
	"Food and Beverage",
	"Clothing",
	"Health and Beauty",
}

// ErrCategoryNotFound indicates the category name is not part of the seeded set
var ErrCategoryNotFound = errors.New("category not found")

// Category is a seeded, immutable post category
type Category struct {
	Name string `json:"name" db:"name"`
	ID   int    `json:"id" db:"id"`
}

// IsKnown reports whether name is one of the seeded category names
func IsKnown(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Repository defines data access for categories
type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
}

// Service exposes category lookups to the post services and handlers
type Service interface {
	// ListNames returns every category name ordered by id
	ListNames(ctx context.Context) ([]string, error)

	// Resolve maps a category name to its stored row.
	// Returns ErrCategoryNotFound for unknown names.
	Resolve(ctx context.Context, name string) (*Category, error)
}
