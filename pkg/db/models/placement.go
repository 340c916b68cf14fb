package models

import (
	"time"

	"github.com/google/uuid"
)

// Placement is a physical box of a catalog product stored on a shelf within
// a shelf category. Many placements may reference the same product or shelf.
type Placement struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProductDetailID uuid.UUID `gorm:"column:product_detail_id;type:uuid;not null;index"`
	ShelfID         uuid.UUID `gorm:"column:shelf_id;type:uuid;not null;index"`
	CategoryID      uuid.UUID `gorm:"column:category_id;type:uuid;not null"`
	BoxWidth        float64   `gorm:"column:box_width;not null;default:0"`
	BoxHeight       float64   `gorm:"column:box_height;not null;default:0"`
	BoxDepth        float64   `gorm:"column:box_depth;not null;default:0"`
	Quantity        int       `gorm:"column:quantity;not null;default:0"`
	PlacedBy        uuid.UUID `gorm:"column:placed_by;type:uuid;not null"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
