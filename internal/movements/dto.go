package movements

import (
	"time"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// Kind selects which movement ledger an operation targets.
type Kind string

const (
	KindInbound  Kind = "inbound"
	KindOutbound Kind = "outbound"
)

// IsValid reports whether the value is a known Kind.
func (k Kind) IsValid() bool {
	return k == KindInbound || k == KindOutbound
}

// MovementDTO exposes a single ledger entry in API responses. ProductName is
// resolved inline when the catalog entry still exists.
type MovementDTO struct {
	ID              uuid.UUID `json:"id"`
	ProductDetailID uuid.UUID `json:"product_detail_id"`
	ProductName     *string   `json:"product_name,omitempty"`
	MovedOn         time.Time `json:"moved_on"`
	Quantity        int       `json:"quantity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateMovementDTO holds creation-time data for a ledger entry.
type CreateMovementDTO struct {
	ProductDetailID uuid.UUID
	MovedOn         time.Time
	Quantity        int
}

func fromInbound(m *models.Inbound) *MovementDTO {
	if m == nil {
		return nil
	}
	return &MovementDTO{
		ID:              m.ID,
		ProductDetailID: m.ProductDetailID,
		MovedOn:         m.MovedOn,
		Quantity:        m.Quantity,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromOutbound(m *models.Outbound) *MovementDTO {
	if m == nil {
		return nil
	}
	return &MovementDTO{
		ID:              m.ID,
		ProductDetailID: m.ProductDetailID,
		MovedOn:         m.MovedOn,
		Quantity:        m.Quantity,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
