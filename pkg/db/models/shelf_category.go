package models

import (
	"time"

	"github.com/google/uuid"
)

// ShelfCategory is a named, color-tagged subdivision of a shelf.
//
// ShelfID is a plain reference column: existence is checked at write time in
// the service layer and deleting a shelf leaves its categories in place.
type ShelfCategory struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Color     *string   `gorm:"column:color"`
	ShelfID   uuid.UUID `gorm:"column:shelf_id;type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
