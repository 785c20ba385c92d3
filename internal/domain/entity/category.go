// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
)

// CategoryKind represents the kind of category (expense or income).
type CategoryKind string

const (
	CategoryKindExpense CategoryKind = "expense"
	CategoryKindIncome  CategoryKind = "income"
)

// DefaultCategoryIcon is the icon used when the caller supplies none.
const DefaultCategoryIcon = "help_outline"

// DefaultCategoryColor is the color used when the caller supplies none.
const DefaultCategoryColor = "0xFF000000"

// Category represents a transaction category in the Money Keeper system.
// A category with a nil OwnerID is global: it is visible to every user.
// System-seeded categories are global and flagged IsDefault.
type Category struct {
	ID        uuid.UUID
	Name      string
	Kind      CategoryKind
	Icon      string
	Color     string
	OwnerID   *uuid.UUID
	IsDefault bool
}

// NewCategory creates a new user-owned Category entity.
// Note: defaulting logic for icon and color is applied in the Application
// layer (UseCase) before calling this constructor.
func NewCategory(name string, kind CategoryKind, icon, color string, ownerID uuid.UUID) *Category {
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		Icon:      icon,
		Color:     color,
		OwnerID:   &ownerID,
		IsDefault: false,
	}
}

// NewDefaultCategory creates a system-seeded global Category entity.
// The ID is derived from the category name so repeated seeding produces
// identical rows.
func NewDefaultCategory(id uuid.UUID, name string, kind CategoryKind, icon, color string) *Category {
	return &Category{
		ID:        id,
		Name:      name,
		Kind:      kind,
		Icon:      icon,
		Color:     color,
		OwnerID:   nil,
		IsDefault: true,
	}
}

// VisibleTo reports whether the category can be seen by the given user.
// Defaults are visible to everyone; owned categories only to their owner.
func (c *Category) VisibleTo(userID uuid.UUID) bool {
	if c.OwnerID == nil {
		return true
	}
	return *c.OwnerID == userID
}
