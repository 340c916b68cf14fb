package shelfcats

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// Repository handles shelf category persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to shelf category operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new category row.
func (r *Repository) Create(ctx context.Context, dto CreateShelfCategoryDTO) (*models.ShelfCategory, error) {
	category := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// FindByID loads a category by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ShelfCategory, error) {
	var category models.ShelfCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns all categories ordered by creation time.
func (r *Repository) List(ctx context.Context) ([]models.ShelfCategory, error) {
	var categories []models.ShelfCategory
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListByShelf returns the categories bound to the provided shelf.
func (r *Repository) ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]models.ShelfCategory, error) {
	var categories []models.ShelfCategory
	if err := r.db.WithContext(ctx).
		Where("shelf_id = ?", shelfID).
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Update saves the provided category.
func (r *Repository) Update(ctx context.Context, category *models.ShelfCategory) error {
	if category == nil {
		return fmt.Errorf("category is required")
	}
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes the category row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ShelfCategory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByID reports whether a category row exists.
func (r *Repository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ShelfCategory{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
