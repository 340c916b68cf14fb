package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/internal/shelves"
	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

type productRepository interface {
	Create(ctx context.Context, dto CreateProductDetailDTO) (*models.ProductDetail, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.ProductDetail, error)
	List(ctx context.Context) ([]models.ProductDetail, error)
	Update(ctx context.Context, product *models.ProductDetail) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type placementsReader interface {
	ListByProduct(ctx context.Context, productDetailID uuid.UUID) ([]models.Placement, error)
	ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]models.Placement, error)
}

type shelvesReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error)
}

// Service exposes product catalog operations.
type Service interface {
	Create(ctx context.Context, input CreateProductDetailDTO) (*ProductDetailDTO, error)
	List(ctx context.Context) ([]ProductDetailDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductDetailDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductDetailInput) (*ProductDetailDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Recommendation(ctx context.Context, id uuid.UUID) (*RecommendationDTO, error)
}

type service struct {
	repo       productRepository
	placements placementsReader
	shelves    shelvesReader
}

// NewService builds a catalog service with the provided collaborators.
func NewService(repo productRepository, placements placementsReader, shelvesRepo shelvesReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if placements == nil {
		return nil, fmt.Errorf("placements reader required")
	}
	if shelvesRepo == nil {
		return nil, fmt.Errorf("shelves reader required")
	}
	return &service{repo: repo, placements: placements, shelves: shelvesRepo}, nil
}

// UpdateProductDetailInput captures the allowed catalog fields for mutation.
type UpdateProductDetailInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	SKU         *string
}

func (s *service) Create(ctx context.Context, input CreateProductDetailDTO) (*ProductDetailDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}

	product, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return FromModel(product), nil
}

func (s *service) List(ctx context.Context) ([]ProductDetailDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	dtos := make([]ProductDetailDTO, 0, len(records))
	for i := range records {
		dto := FromModel(&records[i])
		stock, err := s.stockFor(ctx, records[i].ID)
		if err != nil {
			return nil, err
		}
		dto.Stock = stock
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ProductDetailDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	dto := FromModel(product)
	stock, err := s.stockFor(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	dto.Stock = stock
	return dto, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductDetailInput) (*ProductDetailDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	if input.Price != nil && input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		description := *input.Description
		product.Description = &description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.SKU != nil {
		sku := *input.SKU
		product.SKU = &sku
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	dto := FromModel(product)
	stock, err := s.stockFor(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	dto.Stock = stock
	return dto, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

// Recommendation picks the shelf already holding the highest quantity of the
// product. Ties go to the shelf with more remaining volume.
func (s *service) Recommendation(ctx context.Context, id uuid.UUID) (*RecommendationDTO, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	placements, err := s.placements.ListByProduct(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list product placements")
	}
	if len(placements) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product has no placements to recommend from")
	}

	quantityByShelf := make(map[uuid.UUID]int)
	for i := range placements {
		quantityByShelf[placements[i].ShelfID] += placements[i].Quantity
	}

	var best *RecommendationDTO
	for shelfID, quantity := range quantityByShelf {
		shelf, err := s.shelves.FindByID(ctx, shelfID)
		if err != nil {
			// a shelf deleted after placement stays out of the running
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shelf")
		}

		onShelf, err := s.placements.ListByShelf(ctx, shelfID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shelf placements")
		}
		remaining := shelf.Width*shelf.Height*shelf.Depth - shelves.OccupiedVolume(onShelf)
		if remaining < 0 {
			remaining = 0
		}

		candidate := &RecommendationDTO{
			ProductDetailID: id,
			ShelfID:         shelfID,
			ShelfNumber:     shelf.Number,
			Quantity:        quantity,
			RemainingVolume: remaining,
		}
		if best == nil ||
			candidate.Quantity > best.Quantity ||
			(candidate.Quantity == best.Quantity && candidate.RemainingVolume > best.RemainingVolume) {
			best = candidate
		}
	}

	if best == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product has no placements on existing shelves")
	}
	return best, nil
}

// stockFor sums placed quantities. Movement logs are append-only history and
// do not feed this number.
func (s *service) stockFor(ctx context.Context, id uuid.UUID) (int, error) {
	placements, err := s.placements.ListByProduct(ctx, id)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum product stock")
	}
	total := 0
	for i := range placements {
		total += placements[i].Quantity
	}
	return total, nil
}
