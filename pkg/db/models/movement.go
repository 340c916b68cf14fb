package models

import (
	"time"

	"github.com/google/uuid"
)

// Inbound is an append-only stock arrival event. No running balance is
// derived from these rows; current stock is read from placements.
type Inbound struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProductDetailID uuid.UUID `gorm:"column:product_detail_id;type:uuid;not null;index"`
	MovedOn         time.Time `gorm:"column:moved_on;not null"`
	Quantity        int       `gorm:"column:quantity;not null;default:0"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Outbound is an append-only stock departure event.
type Outbound struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProductDetailID uuid.UUID `gorm:"column:product_detail_id;type:uuid;not null;index"`
	MovedOn         time.Time `gorm:"column:moved_on;not null"`
	Quantity        int       `gorm:"column:quantity;not null;default:0"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
