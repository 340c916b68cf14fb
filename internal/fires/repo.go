package fires

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// Repository handles fire event persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to fire event operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new detection record.
func (r *Repository) Create(ctx context.Context, dto CreateFireEventDTO) (*models.FireEvent, error) {
	event := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// FindByID loads a detection record by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.FireEvent, error) {
	var event models.FireEvent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns all detection records, newest detection first.
func (r *Repository) List(ctx context.Context) ([]models.FireEvent, error) {
	var events []models.FireEvent
	if err := r.db.WithContext(ctx).Order("detected_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Update saves the provided detection record.
func (r *Repository) Update(ctx context.Context, event *models.FireEvent) error {
	if event == nil {
		return fmt.Errorf("fire event is required")
	}
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete removes the detection record row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.FireEvent{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
