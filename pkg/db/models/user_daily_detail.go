package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDailyDetail is a per-day performance snapshot for a staff member.
type UserDailyDetail struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	LoggedAt    time.Time `gorm:"column:logged_at;not null"`
	Shift       *string   `gorm:"column:shift"`
	ItemsPacked int       `gorm:"column:items_packed;not null;default:0"`
	ItemsPicked int       `gorm:"column:items_picked;not null;default:0"`
	ErrorCount  int       `gorm:"column:error_count;not null;default:0"`
	LateCheckIn bool      `gorm:"column:late_check_in;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
