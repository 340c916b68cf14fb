package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// Repository handles product catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to catalog operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new catalog row.
func (r *Repository) Create(ctx context.Context, dto CreateProductDetailDTO) (*models.ProductDetail, error) {
	product := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// FindByID loads a catalog entry by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ProductDetail, error) {
	var product models.ProductDetail
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns all catalog entries ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.ProductDetail, error) {
	var products []models.ProductDetail
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Update saves the provided catalog entry.
func (r *Repository) Update(ctx context.Context, product *models.ProductDetail) error {
	if product == nil {
		return fmt.Errorf("product is required")
	}
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes the catalog row. Placements and movement logs keep their
// product_detail_id.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductDetail{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByID reports whether a catalog row exists.
func (r *Repository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProductDetail{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
