// Package model defines database models for persistence layer.
package model

import (
	"github.com/google/uuid"

	"github.com/moneykeeper/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(50);not null"`
	Kind      string     `gorm:"type:varchar(10);not null"`
	Icon      string     `gorm:"type:varchar(50);default:'help_outline'"`
	Color     string     `gorm:"type:varchar(12);default:'0xFF000000'"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;index"` // nil means global/default category
	IsDefault bool       `gorm:"not null;default:false;index"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Kind:      entity.CategoryKind(m.Kind),
		Icon:      m.Icon,
		Color:     m.Color,
		OwnerID:   m.OwnerID,
		IsDefault: m.IsDefault,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Kind:      string(category.Kind),
		Icon:      category.Icon,
		Color:     category.Color,
		OwnerID:   category.OwnerID,
		IsDefault: category.IsDefault,
	}
}
