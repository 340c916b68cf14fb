package fires

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

type fireRepository interface {
	Create(ctx context.Context, dto CreateFireEventDTO) (*models.FireEvent, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.FireEvent, error)
	List(ctx context.Context) ([]models.FireEvent, error)
	Update(ctx context.Context, event *models.FireEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes fire detection record operations.
type Service interface {
	Create(ctx context.Context, input CreateFireEventDTO) (*FireEventDTO, error)
	List(ctx context.Context) ([]FireEventDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*FireEventDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateFireEventInput) (*FireEventDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo fireRepository
}

// NewService builds a fire event service.
func NewService(repo fireRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("fire repository required")
	}
	return &service{repo: repo}, nil
}

// UpdateFireEventInput captures the mutable detection record fields.
type UpdateFireEventInput struct {
	DetectedAt *time.Time
	Size       *float64
	Distance   *float64
	Direction  *string
	Active     *bool
}

func (s *service) Create(ctx context.Context, input CreateFireEventDTO) (*FireEventDTO, error) {
	if input.DetectedAt.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "detected_at is required")
	}

	event, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create fire event")
	}
	return FromModel(event), nil
}

func (s *service) List(ctx context.Context) ([]FireEventDTO, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list fire events")
	}
	dtos := make([]FireEventDTO, 0, len(events))
	for i := range events {
		dtos = append(dtos, *FromModel(&events[i]))
	}
	return dtos, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*FireEventDTO, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "fire event not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load fire event")
	}
	return FromModel(event), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateFireEventInput) (*FireEventDTO, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "fire event not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load fire event")
	}

	if input.DetectedAt != nil {
		if input.DetectedAt.IsZero() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "detected_at must not be zero")
		}
		event.DetectedAt = *input.DetectedAt
	}
	if input.Size != nil {
		size := *input.Size
		event.Size = &size
	}
	if input.Distance != nil {
		distance := *input.Distance
		event.Distance = &distance
	}
	if input.Direction != nil {
		direction := *input.Direction
		event.Direction = &direction
	}
	if input.Active != nil {
		event.Active = *input.Active
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update fire event")
	}
	return FromModel(event), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "fire event not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete fire event")
	}
	return nil
}
