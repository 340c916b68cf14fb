package fires

import (
	"time"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// FireEventDTO exposes a sensor detection record over the API.
type FireEventDTO struct {
	ID         uuid.UUID `json:"id"`
	DetectedAt time.Time `json:"detected_at"`
	Size       *float64  `json:"size,omitempty"`
	Distance   *float64  `json:"distance,omitempty"`
	Direction  *string   `json:"direction,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateFireEventDTO holds creation-time data for a detection record.
type CreateFireEventDTO struct {
	DetectedAt time.Time
	Size       *float64
	Distance   *float64
	Direction  *string
	Active     bool
}

// FromModel converts a persistence row into its API shape.
func FromModel(m *models.FireEvent) *FireEventDTO {
	if m == nil {
		return nil
	}
	return &FireEventDTO{
		ID:         m.ID,
		DetectedAt: m.DetectedAt,
		Size:       m.Size,
		Distance:   m.Distance,
		Direction:  m.Direction,
		Active:     m.Active,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToModel builds a persistence row with a fresh UUID assigned.
func (c CreateFireEventDTO) ToModel() *models.FireEvent {
	return &models.FireEvent{
		ID:         uuid.New(),
		DetectedAt: c.DetectedAt,
		Size:       c.Size,
		Distance:   c.Distance,
		Direction:  c.Direction,
		Active:     c.Active,
	}
}
