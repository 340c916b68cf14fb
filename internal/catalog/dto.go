package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// ProductDetailDTO exposes catalog entries in API responses. Stock is the sum
// of placed quantities and is filled in by the service on reads.
type ProductDetailDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	SKU         *string         `json:"sku,omitempty"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateProductDetailDTO holds creation-time data for a catalog entry.
type CreateProductDetailDTO struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	SKU         *string
}

// RecommendationDTO names the shelf best suited for restocking a product.
type RecommendationDTO struct {
	ProductDetailID uuid.UUID `json:"product_detail_id"`
	ShelfID         uuid.UUID `json:"shelf_id"`
	ShelfNumber     string    `json:"shelf_number"`
	Quantity        int       `json:"quantity"`
	RemainingVolume float64   `json:"remaining_volume"`
}

// FromModel maps the persisted catalog entry into a DTO.
func FromModel(m *models.ProductDetail) *ProductDetailDTO {
	if m == nil {
		return nil
	}
	return &ProductDetailDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		SKU:         m.SKU,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation DTO.
func (c CreateProductDetailDTO) ToModel() *models.ProductDetail {
	return &models.ProductDetail{
		ID:          uuid.New(),
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		SKU:         c.SKU,
	}
}
