package shelves

import (
	"time"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// ShelfDTO exposes shelf data in API responses.
type ShelfDTO struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	Name      string    `json:"name"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Depth     float64   `json:"depth"`
	LocationX float64   `json:"location_x"`
	LocationY float64   `json:"location_y"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateShelfDTO holds creation-time data for a new shelf.
type CreateShelfDTO struct {
	Number    string
	Name      string
	Width     float64
	Height    float64
	Depth     float64
	LocationX float64
	LocationY float64
}

// CapacityDTO reports the advisory free volume of a shelf. The estimate
// ignores packing geometry; it is bounding volume minus occupied volume.
type CapacityDTO struct {
	ShelfID         uuid.UUID `json:"shelf_id"`
	TotalVolume     float64   `json:"total_volume"`
	OccupiedVolume  float64   `json:"occupied_volume"`
	RemainingVolume float64   `json:"remaining_volume"`
}

// FromModel maps the persisted shelf into a DTO.
func FromModel(m *models.Shelf) *ShelfDTO {
	if m == nil {
		return nil
	}
	return &ShelfDTO{
		ID:        m.ID,
		Number:    m.Number,
		Name:      m.Name,
		Width:     m.Width,
		Height:    m.Height,
		Depth:     m.Depth,
		LocationX: m.LocationX,
		LocationY: m.LocationY,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation DTO.
func (c CreateShelfDTO) ToModel() *models.Shelf {
	return &models.Shelf{
		ID:        uuid.New(),
		Number:    c.Number,
		Name:      c.Name,
		Width:     c.Width,
		Height:    c.Height,
		Depth:     c.Depth,
		LocationX: c.LocationX,
		LocationY: c.LocationY,
	}
}
