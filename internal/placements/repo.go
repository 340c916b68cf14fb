package placements

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// Repository handles placement persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to placement operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new placement row.
func (r *Repository) Create(ctx context.Context, dto CreatePlacementDTO) (*models.Placement, error) {
	placement := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(placement).Error; err != nil {
		return nil, err
	}
	return placement, nil
}

// FindByID loads a placement by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Placement, error) {
	var placement models.Placement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&placement).Error; err != nil {
		return nil, err
	}
	return &placement, nil
}

// List returns all placements ordered by creation time.
func (r *Repository) List(ctx context.Context) ([]models.Placement, error) {
	var placements []models.Placement
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&placements).Error; err != nil {
		return nil, err
	}
	return placements, nil
}

// ListByShelf returns the placements stored on the provided shelf.
func (r *Repository) ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]models.Placement, error) {
	var placements []models.Placement
	if err := r.db.WithContext(ctx).
		Where("shelf_id = ?", shelfID).
		Order("created_at ASC").
		Find(&placements).Error; err != nil {
		return nil, err
	}
	return placements, nil
}

// ListByProduct returns the placements holding the provided product.
func (r *Repository) ListByProduct(ctx context.Context, productDetailID uuid.UUID) ([]models.Placement, error) {
	var placements []models.Placement
	if err := r.db.WithContext(ctx).
		Where("product_detail_id = ?", productDetailID).
		Order("created_at ASC").
		Find(&placements).Error; err != nil {
		return nil, err
	}
	return placements, nil
}

// Update saves the provided placement.
func (r *Repository) Update(ctx context.Context, placement *models.Placement) error {
	if placement == nil {
		return fmt.Errorf("placement is required")
	}
	return r.db.WithContext(ctx).Save(placement).Error
}

// Delete removes the placement row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Placement{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
