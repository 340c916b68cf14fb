package movements

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// Repository handles the two movement ledgers. Both tables share the same
// shape; the Kind argument picks which one a call touches.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to movement operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new ledger entry.
func (r *Repository) Create(ctx context.Context, kind Kind, dto CreateMovementDTO) (*MovementDTO, error) {
	switch kind {
	case KindInbound:
		row := &models.Inbound{
			ID:              uuid.New(),
			ProductDetailID: dto.ProductDetailID,
			MovedOn:         dto.MovedOn,
			Quantity:        dto.Quantity,
		}
		if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
			return nil, err
		}
		return fromInbound(row), nil
	case KindOutbound:
		row := &models.Outbound{
			ID:              uuid.New(),
			ProductDetailID: dto.ProductDetailID,
			MovedOn:         dto.MovedOn,
			Quantity:        dto.Quantity,
		}
		if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
			return nil, err
		}
		return fromOutbound(row), nil
	default:
		return nil, fmt.Errorf("unknown movement kind %q", kind)
	}
}

// FindByID loads a ledger entry by its UUID.
func (r *Repository) FindByID(ctx context.Context, kind Kind, id uuid.UUID) (*MovementDTO, error) {
	switch kind {
	case KindInbound:
		var row models.Inbound
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
			return nil, err
		}
		return fromInbound(&row), nil
	case KindOutbound:
		var row models.Outbound
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
			return nil, err
		}
		return fromOutbound(&row), nil
	default:
		return nil, fmt.Errorf("unknown movement kind %q", kind)
	}
}

// List returns all ledger entries, newest movement first.
func (r *Repository) List(ctx context.Context, kind Kind) ([]MovementDTO, error) {
	switch kind {
	case KindInbound:
		var rows []models.Inbound
		if err := r.db.WithContext(ctx).Order("moved_on DESC").Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]MovementDTO, 0, len(rows))
		for i := range rows {
			out = append(out, *fromInbound(&rows[i]))
		}
		return out, nil
	case KindOutbound:
		var rows []models.Outbound
		if err := r.db.WithContext(ctx).Order("moved_on DESC").Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]MovementDTO, 0, len(rows))
		for i := range rows {
			out = append(out, *fromOutbound(&rows[i]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown movement kind %q", kind)
	}
}

// Update persists changed fields of a ledger entry.
func (r *Repository) Update(ctx context.Context, kind Kind, entry *MovementDTO) error {
	if entry == nil {
		return fmt.Errorf("entry is required")
	}
	updates := map[string]any{
		"product_detail_id": entry.ProductDetailID,
		"moved_on":          entry.MovedOn,
		"quantity":          entry.Quantity,
	}
	switch kind {
	case KindInbound:
		return r.db.WithContext(ctx).Model(&models.Inbound{}).Where("id = ?", entry.ID).Updates(updates).Error
	case KindOutbound:
		return r.db.WithContext(ctx).Model(&models.Outbound{}).Where("id = ?", entry.ID).Updates(updates).Error
	default:
		return fmt.Errorf("unknown movement kind %q", kind)
	}
}

// Delete removes the ledger entry.
func (r *Repository) Delete(ctx context.Context, kind Kind, id uuid.UUID) error {
	var res *gorm.DB
	switch kind {
	case KindInbound:
		res = r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Inbound{})
	case KindOutbound:
		res = r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Outbound{})
	default:
		return fmt.Errorf("unknown movement kind %q", kind)
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of entries in the selected ledger.
func (r *Repository) Count(ctx context.Context, kind Kind) (int64, error) {
	var count int64
	switch kind {
	case KindInbound:
		if err := r.db.WithContext(ctx).Model(&models.Inbound{}).Count(&count).Error; err != nil {
			return 0, err
		}
	case KindOutbound:
		if err := r.db.WithContext(ctx).Model(&models.Outbound{}).Count(&count).Error; err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("unknown movement kind %q", kind)
	}
	return count, nil
}
