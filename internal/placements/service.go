package placements

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

type placementRepository interface {
	Create(ctx context.Context, dto CreatePlacementDTO) (*models.Placement, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Placement, error)
	List(ctx context.Context) ([]models.Placement, error)
	ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]models.Placement, error)
	Update(ctx context.Context, placement *models.Placement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productsReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.ProductDetail, error)
}

type shelvesReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error)
}

type categoriesReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.ShelfCategory, error)
}

type usersReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service exposes placement operations.
type Service interface {
	Create(ctx context.Context, input CreatePlacementDTO) (*PlacementDTO, error)
	List(ctx context.Context) ([]PlacementDTO, error)
	ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]PlacementDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PlacementDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePlacementInput) (*PlacementDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo       placementRepository
	products   productsReader
	shelves    shelvesReader
	categories categoriesReader
	users      usersReader
}

// NewService builds a placement service with the provided collaborators.
func NewService(repo placementRepository, products productsReader, shelvesRepo shelvesReader, categories categoriesReader, usersRepo usersReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("placement repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("products reader required")
	}
	if shelvesRepo == nil {
		return nil, fmt.Errorf("shelves reader required")
	}
	if categories == nil {
		return nil, fmt.Errorf("categories reader required")
	}
	if usersRepo == nil {
		return nil, fmt.Errorf("users reader required")
	}
	return &service{
		repo:       repo,
		products:   products,
		shelves:    shelvesRepo,
		categories: categories,
		users:      usersRepo,
	}, nil
}

// UpdatePlacementInput captures the allowed placement fields for mutation.
type UpdatePlacementInput struct {
	ProductDetailID *uuid.UUID
	ShelfID         *uuid.UUID
	CategoryID      *uuid.UUID
	BoxWidth        *float64
	BoxHeight       *float64
	BoxDepth        *float64
	Quantity        *int
	PlacedBy        *uuid.UUID
}

func (s *service) Create(ctx context.Context, input CreatePlacementDTO) (*PlacementDTO, error) {
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}
	if input.BoxWidth < 0 || input.BoxHeight < 0 || input.BoxDepth < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "box dimensions must not be negative")
	}
	if err := s.requireRefs(ctx, &input.ProductDetailID, &input.ShelfID, &input.CategoryID, &input.PlacedBy); err != nil {
		return nil, err
	}

	placement, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create placement")
	}
	return s.resolve(ctx, placement), nil
}

func (s *service) List(ctx context.Context) ([]PlacementDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list placements")
	}
	return s.resolveAll(ctx, records), nil
}

func (s *service) ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]PlacementDTO, error) {
	records, err := s.repo.ListByShelf(ctx, shelfID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shelf placements")
	}
	return s.resolveAll(ctx, records), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*PlacementDTO, error) {
	placement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "placement not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load placement")
	}
	return s.resolve(ctx, placement), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdatePlacementInput) (*PlacementDTO, error) {
	placement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "placement not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load placement")
	}

	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}
	if err := s.requireRefs(ctx, input.ProductDetailID, input.ShelfID, input.CategoryID, input.PlacedBy); err != nil {
		return nil, err
	}

	if input.ProductDetailID != nil {
		placement.ProductDetailID = *input.ProductDetailID
	}
	if input.ShelfID != nil {
		placement.ShelfID = *input.ShelfID
	}
	if input.CategoryID != nil {
		placement.CategoryID = *input.CategoryID
	}
	if input.BoxWidth != nil {
		placement.BoxWidth = *input.BoxWidth
	}
	if input.BoxHeight != nil {
		placement.BoxHeight = *input.BoxHeight
	}
	if input.BoxDepth != nil {
		placement.BoxDepth = *input.BoxDepth
	}
	if input.Quantity != nil {
		placement.Quantity = *input.Quantity
	}
	if input.PlacedBy != nil {
		placement.PlacedBy = *input.PlacedBy
	}

	if err := s.repo.Update(ctx, placement); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update placement")
	}
	return s.resolve(ctx, placement), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "placement not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete placement")
	}
	return nil
}

// requireRefs checks that every provided reference points at an existing row.
// Nil references are skipped so partial updates only validate what changed.
func (s *service) requireRefs(ctx context.Context, productID, shelfID, categoryID, placedBy *uuid.UUID) error {
	if productID != nil {
		if _, err := s.products.FindByID(ctx, *productID); err != nil {
			return refError(err, "referenced product does not exist", "check product")
		}
	}
	if shelfID != nil {
		if _, err := s.shelves.FindByID(ctx, *shelfID); err != nil {
			return refError(err, "referenced shelf does not exist", "check shelf")
		}
	}
	if categoryID != nil {
		if _, err := s.categories.FindByID(ctx, *categoryID); err != nil {
			return refError(err, "referenced category does not exist", "check category")
		}
	}
	if placedBy != nil {
		if _, err := s.users.FindByID(ctx, *placedBy); err != nil {
			return refError(err, "referenced user does not exist", "check user")
		}
	}
	return nil
}

func refError(err error, validationMsg, wrapMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeValidation, validationMsg)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, wrapMsg)
}

func (s *service) resolve(ctx context.Context, placement *models.Placement) *PlacementDTO {
	dto := FromModel(placement)
	if product, err := s.products.FindByID(ctx, placement.ProductDetailID); err == nil && product != nil {
		name := product.Name
		dto.ProductName = &name
	}
	if shelf, err := s.shelves.FindByID(ctx, placement.ShelfID); err == nil && shelf != nil {
		number := shelf.Number
		dto.ShelfNumber = &number
	}
	if category, err := s.categories.FindByID(ctx, placement.CategoryID); err == nil && category != nil {
		name := category.Name
		dto.CategoryName = &name
	}
	if user, err := s.users.FindByID(ctx, placement.PlacedBy); err == nil && user != nil {
		name := user.FullName
		dto.PlacedByName = &name
	}
	return dto
}

func (s *service) resolveAll(ctx context.Context, records []models.Placement) []PlacementDTO {
	dtos := make([]PlacementDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *s.resolve(ctx, &records[i]))
	}
	return dtos
}
