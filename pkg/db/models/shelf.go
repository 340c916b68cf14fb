package models

import (
	"time"

	"github.com/google/uuid"
)

// Shelf is a physical storage unit with fixed dimensions and a grid position.
type Shelf struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Number    string    `gorm:"column:number;not null"`
	Name      string    `gorm:"column:name;not null"`
	Width     float64   `gorm:"column:width;not null;default:0"`
	Height    float64   `gorm:"column:height;not null;default:0"`
	Depth     float64   `gorm:"column:depth;not null;default:0"`
	LocationX float64   `gorm:"column:location_x;not null;default:0"`
	LocationY float64   `gorm:"column:location_y;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
