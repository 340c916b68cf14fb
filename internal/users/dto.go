package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	"github.com/warehousehq/warehouse-backend/pkg/enums"
)

// UserDTO exposes safe personnel data in API responses. The password hash
// never leaves the service layer.
type UserDTO struct {
	ID               uuid.UUID    `json:"id"`
	Email            string       `json:"email"`
	FullName         string       `json:"full_name"`
	EmployeeID       string       `json:"employee_id"`
	Phone            *string      `json:"phone,omitempty"`
	DateOfBirth      *time.Time   `json:"date_of_birth,omitempty"`
	Address          *string      `json:"address,omitempty"`
	NationalID       *string      `json:"national_id,omitempty"`
	FaceImageURL     *string      `json:"face_image_url,omitempty"`
	Role             enums.Role   `json:"role"`
	Shift            *enums.Shift `json:"shift,omitempty"`
	PerformanceLevel *string      `json:"performance_level,omitempty"`
	SupervisorRating *float64     `json:"supervisor_rating,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// CreateUserDTO holds creation-time data for a new staff record.
type CreateUserDTO struct {
	Email            string
	PasswordHash     string
	FullName         string
	EmployeeID       string
	Phone            *string
	DateOfBirth      *time.Time
	Address          *string
	NationalID       *string
	FaceImageURL     *string
	Role             *enums.Role
	Shift            *enums.Shift
	PerformanceLevel *string
}

// FromModel maps the persisted user into a DTO.
func FromModel(m *models.User) *UserDTO {
	if m == nil {
		return nil
	}
	return &UserDTO{
		ID:               m.ID,
		Email:            m.Email,
		FullName:         m.FullName,
		EmployeeID:       m.EmployeeID,
		Phone:            m.Phone,
		DateOfBirth:      m.DateOfBirth,
		Address:          m.Address,
		NationalID:       m.NationalID,
		FaceImageURL:     m.FaceImageURL,
		Role:             m.Role,
		Shift:            m.Shift,
		PerformanceLevel: m.PerformanceLevel,
		SupervisorRating: m.SupervisorRating,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation DTO, supplying defaults.
// The ID is assigned here so the insert works the same on Postgres and the
// sqlite dev database.
func (c CreateUserDTO) ToModel() *models.User {
	model := &models.User{
		ID:               uuid.New(),
		Email:            c.Email,
		PasswordHash:     c.PasswordHash,
		FullName:         c.FullName,
		EmployeeID:       c.EmployeeID,
		Phone:            c.Phone,
		DateOfBirth:      c.DateOfBirth,
		Address:          c.Address,
		NationalID:       c.NationalID,
		FaceImageURL:     c.FaceImageURL,
		Role:             enums.RoleStaff,
		Shift:            c.Shift,
		PerformanceLevel: c.PerformanceLevel,
	}
	if c.Role != nil {
		model.Role = *c.Role
	}
	return model
}
