// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/moneykeeper/backend/internal/application/adapter"
	"github.com/moneykeeper/backend/internal/domain/entity"
	domainerror "github.com/moneykeeper/backend/internal/domain/error"
	"github.com/moneykeeper/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// InsertDefaults inserts the default categories in one batch. Default
// category IDs are deterministic, so ON CONFLICT DO NOTHING makes the
// batch safe under concurrent first-time seeding.
func (r *categoryRepository) InsertDefaults(ctx context.Context, categories []*entity.Category) error {
	categoryModels := make([]*model.CategoryModel, len(categories))
	for i, category := range categories {
		categoryModels[i] = model.CategoryFromEntity(category)
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(categoryModels)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CountDefaults returns the number of system-seeded categories.
func (r *categoryRepository) CountDefaults(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("is_default = ?", true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindVisible retrieves every default category plus the user's owned
// categories. With a nil userID only defaults are returned. Rows come back
// in store order.
func (r *categoryRepository) FindVisible(ctx context.Context, userID *uuid.UUID) ([]*entity.Category, error) {
	query := r.db.WithContext(ctx)
	if userID != nil {
		query = query.Where("is_default = ? OR owner_id = ?", true, *userID)
	} else {
		query = query.Where("is_default = ?", true)
	}

	var categoryModels []model.CategoryModel
	result := query.Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// Delete removes a category from the database. Deleting an absent ID is a no-op.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
