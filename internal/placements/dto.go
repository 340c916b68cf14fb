package placements

import (
	"time"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// PlacementDTO exposes placement data in API responses. The *Name fields are
// shallow joins resolved at read time; they stay nil when the referenced row
// has been deleted.
type PlacementDTO struct {
	ID              uuid.UUID `json:"id"`
	ProductDetailID uuid.UUID `json:"product_detail_id"`
	ProductName     *string   `json:"product_name,omitempty"`
	ShelfID         uuid.UUID `json:"shelf_id"`
	ShelfNumber     *string   `json:"shelf_number,omitempty"`
	CategoryID      uuid.UUID `json:"category_id"`
	CategoryName    *string   `json:"category_name,omitempty"`
	BoxWidth        float64   `json:"box_width"`
	BoxHeight       float64   `json:"box_height"`
	BoxDepth        float64   `json:"box_depth"`
	Quantity        int       `json:"quantity"`
	PlacedBy        uuid.UUID `json:"placed_by"`
	PlacedByName    *string   `json:"placed_by_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreatePlacementDTO holds creation-time data for a placement.
type CreatePlacementDTO struct {
	ProductDetailID uuid.UUID
	ShelfID         uuid.UUID
	CategoryID      uuid.UUID
	BoxWidth        float64
	BoxHeight       float64
	BoxDepth        float64
	Quantity        int
	PlacedBy        uuid.UUID
}

// FromModel maps the persisted placement into a DTO without resolving refs.
func FromModel(m *models.Placement) *PlacementDTO {
	if m == nil {
		return nil
	}
	return &PlacementDTO{
		ID:              m.ID,
		ProductDetailID: m.ProductDetailID,
		ShelfID:         m.ShelfID,
		CategoryID:      m.CategoryID,
		BoxWidth:        m.BoxWidth,
		BoxHeight:       m.BoxHeight,
		BoxDepth:        m.BoxDepth,
		Quantity:        m.Quantity,
		PlacedBy:        m.PlacedBy,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation DTO.
func (c CreatePlacementDTO) ToModel() *models.Placement {
	return &models.Placement{
		ID:              uuid.New(),
		ProductDetailID: c.ProductDetailID,
		ShelfID:         c.ShelfID,
		CategoryID:      c.CategoryID,
		BoxWidth:        c.BoxWidth,
		BoxHeight:       c.BoxHeight,
		BoxDepth:        c.BoxDepth,
		Quantity:        c.Quantity,
		PlacedBy:        c.PlacedBy,
	}
}
