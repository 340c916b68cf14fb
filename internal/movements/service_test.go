package movements

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

func TestCreateRejectsUnknownKind(t *testing.T) {
	svc := newTestService(t, newStubMovementRepo(), &stubProducts{})

	_, err := svc.Create(context.Background(), Kind("sideways"), CreateMovementDTO{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRejectsDanglingProduct(t *testing.T) {
	svc := newTestService(t, newStubMovementRepo(), &stubProducts{})

	_, err := svc.Create(context.Background(), KindInbound, CreateMovementDTO{
		ProductDetailID: uuid.New(),
		MovedOn:         time.Now(),
		Quantity:        5,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestInboundAndOutboundLedgersAreSeparate(t *testing.T) {
	product := &models.ProductDetail{ID: uuid.New(), Name: "pallet wrap"}
	products := &stubProducts{products: map[uuid.UUID]*models.ProductDetail{product.ID: product}}
	svc := newTestService(t, newStubMovementRepo(), products)

	in, err := svc.Create(context.Background(), KindInbound, CreateMovementDTO{
		ProductDetailID: product.ID,
		MovedOn:         time.Now(),
		Quantity:        5,
	})
	if err != nil {
		t.Fatalf("create inbound: %v", err)
	}
	if in.ProductName == nil || *in.ProductName != "pallet wrap" {
		t.Fatalf("expected resolved product name, got %v", in.ProductName)
	}

	inbounds, err := svc.List(context.Background(), KindInbound)
	if err != nil {
		t.Fatalf("list inbounds: %v", err)
	}
	outbounds, err := svc.List(context.Background(), KindOutbound)
	if err != nil {
		t.Fatalf("list outbounds: %v", err)
	}
	if len(inbounds) != 1 || len(outbounds) != 0 {
		t.Fatalf("ledgers must not mix: %d inbounds, %d outbounds", len(inbounds), len(outbounds))
	}

	if _, err := svc.GetByID(context.Background(), KindOutbound, in.ID); err == nil {
		t.Fatalf("inbound id should not resolve in the outbound ledger")
	}
}

func TestUpdatePartialPreservesFields(t *testing.T) {
	product := &models.ProductDetail{ID: uuid.New(), Name: "pallet wrap"}
	products := &stubProducts{products: map[uuid.UUID]*models.ProductDetail{product.ID: product}}
	svc := newTestService(t, newStubMovementRepo(), products)

	movedOn := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), KindOutbound, CreateMovementDTO{
		ProductDetailID: product.ID,
		MovedOn:         movedOn,
		Quantity:        5,
	})
	if err != nil {
		t.Fatalf("create outbound: %v", err)
	}

	qty := 8
	updated, err := svc.Update(context.Background(), KindOutbound, created.ID, UpdateMovementInput{Quantity: &qty})
	if err != nil {
		t.Fatalf("update outbound: %v", err)
	}
	if updated.Quantity != 8 {
		t.Fatalf("expected quantity updated, got %d", updated.Quantity)
	}
	if !updated.MovedOn.Equal(movedOn) {
		t.Fatalf("omitted moved_on should be preserved")
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := newTestService(t, newStubMovementRepo(), &stubProducts{})

	err := svc.Delete(context.Background(), KindInbound, uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func newTestService(t *testing.T, repo movementRepository, products productsReader) Service {
	t.Helper()
	svc, err := NewService(repo, products)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

type stubMovementRepo struct {
	ledgers map[Kind]map[uuid.UUID]*MovementDTO
}

func newStubMovementRepo() *stubMovementRepo {
	return &stubMovementRepo{
		ledgers: map[Kind]map[uuid.UUID]*MovementDTO{
			KindInbound:  {},
			KindOutbound: {},
		},
	}
}

func (s *stubMovementRepo) Create(ctx context.Context, kind Kind, dto CreateMovementDTO) (*MovementDTO, error) {
	entry := &MovementDTO{
		ID:              uuid.New(),
		ProductDetailID: dto.ProductDetailID,
		MovedOn:         dto.MovedOn,
		Quantity:        dto.Quantity,
	}
	s.ledgers[kind][entry.ID] = entry
	return entry, nil
}

func (s *stubMovementRepo) FindByID(ctx context.Context, kind Kind, id uuid.UUID) (*MovementDTO, error) {
	entry, ok := s.ledgers[kind][id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cpy := *entry
	return &cpy, nil
}

func (s *stubMovementRepo) List(ctx context.Context, kind Kind) ([]MovementDTO, error) {
	out := make([]MovementDTO, 0, len(s.ledgers[kind]))
	for _, entry := range s.ledgers[kind] {
		out = append(out, *entry)
	}
	return out, nil
}

func (s *stubMovementRepo) Update(ctx context.Context, kind Kind, entry *MovementDTO) error {
	if _, ok := s.ledgers[kind][entry.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cpy := *entry
	s.ledgers[kind][entry.ID] = &cpy
	return nil
}

func (s *stubMovementRepo) Delete(ctx context.Context, kind Kind, id uuid.UUID) error {
	if _, ok := s.ledgers[kind][id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.ledgers[kind], id)
	return nil
}

type stubProducts struct {
	products map[uuid.UUID]*models.ProductDetail
}

func (s *stubProducts) FindByID(ctx context.Context, id uuid.UUID) (*models.ProductDetail, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}
