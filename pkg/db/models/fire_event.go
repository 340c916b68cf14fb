package models

import (
	"time"

	"github.com/google/uuid"
)

// FireEvent is a detection record pushed in by an external sensor feed.
type FireEvent struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	DetectedAt time.Time `gorm:"column:detected_at;not null"`
	Size       *float64  `gorm:"column:size"`
	Distance   *float64  `gorm:"column:distance"`
	Direction  *string   `gorm:"column:direction"`
	Active     bool      `gorm:"column:active;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
