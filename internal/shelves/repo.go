package shelves

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// Repository handles shelf persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to shelf operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new shelf row.
func (r *Repository) Create(ctx context.Context, dto CreateShelfDTO) (*models.Shelf, error) {
	shelf := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(shelf).Error; err != nil {
		return nil, err
	}
	return shelf, nil
}

// FindByID loads a shelf by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error) {
	var shelf models.Shelf
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&shelf).Error; err != nil {
		return nil, err
	}
	return &shelf, nil
}

// List returns all shelves ordered by number.
func (r *Repository) List(ctx context.Context) ([]models.Shelf, error) {
	var shelves []models.Shelf
	if err := r.db.WithContext(ctx).Order("number ASC").Find(&shelves).Error; err != nil {
		return nil, err
	}
	return shelves, nil
}

// Update saves the provided shelf.
func (r *Repository) Update(ctx context.Context, shelf *models.Shelf) error {
	if shelf == nil {
		return fmt.Errorf("shelf is required")
	}
	return r.db.WithContext(ctx).Save(shelf).Error
}

// Delete removes the shelf row. Categories and placements keep their
// shelf_id; nothing cascades.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Shelf{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByID reports whether a shelf row exists.
func (r *Repository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Shelf{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
