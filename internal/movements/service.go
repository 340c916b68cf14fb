package movements

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

type movementRepository interface {
	Create(ctx context.Context, kind Kind, dto CreateMovementDTO) (*MovementDTO, error)
	FindByID(ctx context.Context, kind Kind, id uuid.UUID) (*MovementDTO, error)
	List(ctx context.Context, kind Kind) ([]MovementDTO, error)
	Update(ctx context.Context, kind Kind, entry *MovementDTO) error
	Delete(ctx context.Context, kind Kind, id uuid.UUID) error
}

type productsReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.ProductDetail, error)
}

// Service exposes movement ledger operations. The ledgers are append-mostly
// history; they do not adjust placement stock.
type Service interface {
	Create(ctx context.Context, kind Kind, input CreateMovementDTO) (*MovementDTO, error)
	List(ctx context.Context, kind Kind) ([]MovementDTO, error)
	GetByID(ctx context.Context, kind Kind, id uuid.UUID) (*MovementDTO, error)
	Update(ctx context.Context, kind Kind, id uuid.UUID, input UpdateMovementInput) (*MovementDTO, error)
	Delete(ctx context.Context, kind Kind, id uuid.UUID) error
}

type service struct {
	repo     movementRepository
	products productsReader
}

// NewService builds a movement service with the provided collaborators.
func NewService(repo movementRepository, products productsReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("movement repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("products reader required")
	}
	return &service{repo: repo, products: products}, nil
}

// UpdateMovementInput captures the allowed ledger fields for mutation.
type UpdateMovementInput struct {
	ProductDetailID *uuid.UUID
	MovedOn         *time.Time
	Quantity        *int
}

func (s *service) Create(ctx context.Context, kind Kind, input CreateMovementDTO) (*MovementDTO, error) {
	if !kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown movement kind")
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}
	if input.MovedOn.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "movement date is required")
	}
	if err := s.requireProduct(ctx, input.ProductDetailID); err != nil {
		return nil, err
	}

	entry, err := s.repo.Create(ctx, kind, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create movement")
	}
	s.resolve(ctx, entry)
	return entry, nil
}

func (s *service) List(ctx context.Context, kind Kind) ([]MovementDTO, error) {
	if !kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown movement kind")
	}
	entries, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list movements")
	}
	for i := range entries {
		s.resolve(ctx, &entries[i])
	}
	return entries, nil
}

func (s *service) GetByID(ctx context.Context, kind Kind, id uuid.UUID) (*MovementDTO, error) {
	if !kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown movement kind")
	}
	entry, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "movement not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load movement")
	}
	s.resolve(ctx, entry)
	return entry, nil
}

func (s *service) Update(ctx context.Context, kind Kind, id uuid.UUID, input UpdateMovementInput) (*MovementDTO, error) {
	if !kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown movement kind")
	}
	entry, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "movement not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load movement")
	}

	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}
	if input.ProductDetailID != nil {
		if err := s.requireProduct(ctx, *input.ProductDetailID); err != nil {
			return nil, err
		}
		entry.ProductDetailID = *input.ProductDetailID
	}
	if input.MovedOn != nil {
		entry.MovedOn = *input.MovedOn
	}
	if input.Quantity != nil {
		entry.Quantity = *input.Quantity
	}

	if err := s.repo.Update(ctx, kind, entry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update movement")
	}
	s.resolve(ctx, entry)
	return entry, nil
}

func (s *service) Delete(ctx context.Context, kind Kind, id uuid.UUID) error {
	if !kind.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown movement kind")
	}
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "movement not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete movement")
	}
	return nil
}

func (s *service) requireProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "referenced product does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check product")
	}
	return nil
}

func (s *service) resolve(ctx context.Context, entry *MovementDTO) {
	if product, err := s.products.FindByID(ctx, entry.ProductDetailID); err == nil && product != nil {
		name := product.Name
		entry.ProductName = &name
	}
}
