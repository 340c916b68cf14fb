package shelfcats

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

type categoryRepository interface {
	Create(ctx context.Context, dto CreateShelfCategoryDTO) (*models.ShelfCategory, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.ShelfCategory, error)
	List(ctx context.Context) ([]models.ShelfCategory, error)
	ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]models.ShelfCategory, error)
	Update(ctx context.Context, category *models.ShelfCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type shelvesReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error)
}

// Service exposes shelf category operations.
type Service interface {
	Create(ctx context.Context, input CreateShelfCategoryDTO) (*ShelfCategoryDTO, error)
	List(ctx context.Context) ([]ShelfCategoryDTO, error)
	ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]ShelfCategoryDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ShelfCategoryDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateShelfCategoryInput) (*ShelfCategoryDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo    categoryRepository
	shelves shelvesReader
}

// NewService builds a shelf category service.
func NewService(repo categoryRepository, shelves shelvesReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("category repository required")
	}
	if shelves == nil {
		return nil, fmt.Errorf("shelves reader required")
	}
	return &service{repo: repo, shelves: shelves}, nil
}

// UpdateShelfCategoryInput captures the allowed category fields for mutation.
type UpdateShelfCategoryInput struct {
	Name    *string
	Color   *string
	ShelfID *uuid.UUID
}

func (s *service) Create(ctx context.Context, input CreateShelfCategoryDTO) (*ShelfCategoryDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}
	if input.ShelfID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shelf id is required")
	}
	if err := s.requireShelf(ctx, input.ShelfID); err != nil {
		return nil, err
	}

	category, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create category")
	}
	return s.resolve(ctx, category), nil
}

func (s *service) List(ctx context.Context) ([]ShelfCategoryDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return s.resolveAll(ctx, records), nil
}

func (s *service) ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]ShelfCategoryDTO, error) {
	records, err := s.repo.ListByShelf(ctx, shelfID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shelf categories")
	}
	return s.resolveAll(ctx, records), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ShelfCategoryDTO, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}
	return s.resolve(ctx, category), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateShelfCategoryInput) (*ShelfCategoryDTO, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}

	if input.ShelfID != nil {
		if err := s.requireShelf(ctx, *input.ShelfID); err != nil {
			return nil, err
		}
		category.ShelfID = *input.ShelfID
	}
	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Color != nil {
		color := *input.Color
		category.Color = &color
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update category")
	}
	return s.resolve(ctx, category), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete category")
	}
	return nil
}

func (s *service) requireShelf(ctx context.Context, shelfID uuid.UUID) error {
	if _, err := s.shelves.FindByID(ctx, shelfID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "referenced shelf does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check shelf")
	}
	return nil
}

// resolve fills in the shelf number when the referenced shelf still exists.
// Orphaned categories stay listable with a bare shelf_id.
func (s *service) resolve(ctx context.Context, category *models.ShelfCategory) *ShelfCategoryDTO {
	dto := FromModel(category)
	if shelf, err := s.shelves.FindByID(ctx, category.ShelfID); err == nil && shelf != nil {
		number := shelf.Number
		dto.ShelfNumber = &number
	}
	return dto
}

func (s *service) resolveAll(ctx context.Context, records []models.ShelfCategory) []ShelfCategoryDTO {
	dtos := make([]ShelfCategoryDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *s.resolve(ctx, &records[i]))
	}
	return dtos
}
