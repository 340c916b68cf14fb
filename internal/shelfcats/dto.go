package shelfcats

import (
	"time"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// ShelfCategoryDTO exposes shelf category data in API responses. ShelfNumber
// is resolved inline on list endpoints when the shelf still exists.
type ShelfCategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Color       *string   `json:"color,omitempty"`
	ShelfID     uuid.UUID `json:"shelf_id"`
	ShelfNumber *string   `json:"shelf_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateShelfCategoryDTO holds creation-time data for a new category.
type CreateShelfCategoryDTO struct {
	Name    string
	Color   *string
	ShelfID uuid.UUID
}

// FromModel maps the persisted category into a DTO.
func FromModel(m *models.ShelfCategory) *ShelfCategoryDTO {
	if m == nil {
		return nil
	}
	return &ShelfCategoryDTO{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		ShelfID:   m.ShelfID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation DTO.
func (c CreateShelfCategoryDTO) ToModel() *models.ShelfCategory {
	return &models.ShelfCategory{
		ID:      uuid.New(),
		Name:    c.Name,
		Color:   c.Color,
		ShelfID: c.ShelfID,
	}
}
