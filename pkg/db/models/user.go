package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/pkg/enums"
)

// User represents a warehouse staff member.
type User struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Email            string     `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash     string     `gorm:"column:password_hash;not null"`
	FullName         string     `gorm:"column:full_name;not null"`
	EmployeeID       string     `gorm:"column:employee_id;not null"`
	Phone            *string    `gorm:"column:phone"`
	DateOfBirth      *time.Time `gorm:"column:date_of_birth"`
	Address          *string    `gorm:"column:address"`
	NationalID       *string    `gorm:"column:national_id"`
	FaceImageURL     *string    `gorm:"column:face_image_url"`
	Role             enums.Role  `gorm:"column:role;not null;default:staff"`
	Shift            *enums.Shift `gorm:"column:shift"`
	PerformanceLevel *string    `gorm:"column:performance_level"`
	SupervisorRating *float64   `gorm:"column:supervisor_rating"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
