package shelves

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

type shelfRepository interface {
	Create(ctx context.Context, dto CreateShelfDTO) (*models.Shelf, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error)
	List(ctx context.Context) ([]models.Shelf, error)
	Update(ctx context.Context, shelf *models.Shelf) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type placementsReader interface {
	ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]models.Placement, error)
}

// Service exposes shelf operations.
type Service interface {
	Create(ctx context.Context, input CreateShelfDTO) (*ShelfDTO, error)
	List(ctx context.Context) ([]ShelfDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ShelfDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateShelfInput) (*ShelfDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Capacity(ctx context.Context, id uuid.UUID) (*CapacityDTO, error)
}

type service struct {
	repo       shelfRepository
	placements placementsReader
}

// NewService builds a shelf service with the provided repositories.
func NewService(repo shelfRepository, placements placementsReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shelf repository required")
	}
	if placements == nil {
		return nil, fmt.Errorf("placements reader required")
	}
	return &service{repo: repo, placements: placements}, nil
}

// UpdateShelfInput captures the allowed shelf fields for mutation.
type UpdateShelfInput struct {
	Number    *string
	Name      *string
	Width     *float64
	Height    *float64
	Depth     *float64
	LocationX *float64
	LocationY *float64
}

func (s *service) Create(ctx context.Context, input CreateShelfDTO) (*ShelfDTO, error) {
	if strings.TrimSpace(input.Number) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shelf number is required")
	}
	if input.Width < 0 || input.Height < 0 || input.Depth < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shelf dimensions must not be negative")
	}

	shelf, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shelf")
	}
	return FromModel(shelf), nil
}

func (s *service) List(ctx context.Context) ([]ShelfDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shelves")
	}
	dtos := make([]ShelfDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *FromModel(&records[i]))
	}
	return dtos, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ShelfDTO, error) {
	shelf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shelf not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shelf")
	}
	return FromModel(shelf), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateShelfInput) (*ShelfDTO, error) {
	shelf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shelf not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shelf")
	}

	if input.Number != nil {
		shelf.Number = *input.Number
	}
	if input.Name != nil {
		shelf.Name = *input.Name
	}
	if input.Width != nil {
		shelf.Width = *input.Width
	}
	if input.Height != nil {
		shelf.Height = *input.Height
	}
	if input.Depth != nil {
		shelf.Depth = *input.Depth
	}
	if input.LocationX != nil {
		shelf.LocationX = *input.LocationX
	}
	if input.LocationY != nil {
		shelf.LocationY = *input.LocationY
	}

	if err := s.repo.Update(ctx, shelf); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shelf")
	}
	return FromModel(shelf), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "shelf not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete shelf")
	}
	return nil
}

// Capacity reports the shelf bounding volume minus the volume occupied by
// every placed box, quantity included. A shelf that was over-packed on paper
// reports zero remaining volume rather than a negative number.
func (s *service) Capacity(ctx context.Context, id uuid.UUID) (*CapacityDTO, error) {
	shelf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shelf not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shelf")
	}

	placements, err := s.placements.ListByShelf(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shelf placements")
	}

	total := shelf.Width * shelf.Height * shelf.Depth
	occupied := OccupiedVolume(placements)
	remaining := total - occupied
	if remaining < 0 {
		remaining = 0
	}

	return &CapacityDTO{
		ShelfID:         shelf.ID,
		TotalVolume:     total,
		OccupiedVolume:  occupied,
		RemainingVolume: remaining,
	}, nil
}

// OccupiedVolume sums box volume times quantity across placements.
func OccupiedVolume(placements []models.Placement) float64 {
	var occupied float64
	for i := range placements {
		p := &placements[i]
		occupied += p.BoxWidth * p.BoxHeight * p.BoxDepth * float64(p.Quantity)
	}
	return occupied
}
