package placements

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

type fixture struct {
	repo       *stubPlacementRepo
	products   *stubProducts
	shelves    *stubShelves
	categories *stubCategories
	users      *stubUsers
	svc        Service

	product  *models.ProductDetail
	shelf    *models.Shelf
	category *models.ShelfCategory
	user     *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:       &stubPlacementRepo{},
		products:   &stubProducts{products: map[uuid.UUID]*models.ProductDetail{}},
		shelves:    &stubShelves{shelves: map[uuid.UUID]*models.Shelf{}},
		categories: &stubCategories{categories: map[uuid.UUID]*models.ShelfCategory{}},
		users:      &stubUsers{users: map[uuid.UUID]*models.User{}},
	}

	f.product = &models.ProductDetail{ID: uuid.New(), Name: "pallet wrap"}
	f.shelf = &models.Shelf{ID: uuid.New(), Number: "A1"}
	f.category = &models.ShelfCategory{ID: uuid.New(), Name: "fragile", ShelfID: f.shelf.ID}
	f.user = &models.User{ID: uuid.New(), FullName: "Dana Packer"}

	f.products.products[f.product.ID] = f.product
	f.shelves.shelves[f.shelf.ID] = f.shelf
	f.categories.categories[f.category.ID] = f.category
	f.users.users[f.user.ID] = f.user

	svc, err := NewService(f.repo, f.products, f.shelves, f.categories, f.users)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	f.svc = svc
	return f
}

func (f *fixture) validCreate() CreatePlacementDTO {
	return CreatePlacementDTO{
		ProductDetailID: f.product.ID,
		ShelfID:         f.shelf.ID,
		CategoryID:      f.category.ID,
		BoxWidth:        10, BoxHeight: 10, BoxDepth: 10,
		Quantity: 4,
		PlacedBy: f.user.ID,
	}
}

func TestCreateResolvesReferences(t *testing.T) {
	f := newFixture(t)

	dto, err := f.svc.Create(context.Background(), f.validCreate())
	if err != nil {
		t.Fatalf("create placement: %v", err)
	}
	if dto.ProductName == nil || *dto.ProductName != "pallet wrap" {
		t.Fatalf("expected resolved product name, got %v", dto.ProductName)
	}
	if dto.ShelfNumber == nil || *dto.ShelfNumber != "A1" {
		t.Fatalf("expected resolved shelf number, got %v", dto.ShelfNumber)
	}
	if dto.CategoryName == nil || *dto.CategoryName != "fragile" {
		t.Fatalf("expected resolved category name, got %v", dto.CategoryName)
	}
	if dto.PlacedByName == nil || *dto.PlacedByName != "Dana Packer" {
		t.Fatalf("expected resolved user name, got %v", dto.PlacedByName)
	}
}

func TestCreateRejectsDanglingProduct(t *testing.T) {
	f := newFixture(t)

	input := f.validCreate()
	input.ProductDetailID = uuid.New()
	_, err := f.svc.Create(context.Background(), input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRejectsNegativeQuantity(t *testing.T) {
	f := newFixture(t)

	input := f.validCreate()
	input.Quantity = -1
	_, err := f.svc.Create(context.Background(), input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListByShelfFilters(t *testing.T) {
	f := newFixture(t)

	otherShelf := &models.Shelf{ID: uuid.New(), Number: "B1"}
	f.shelves.shelves[otherShelf.ID] = otherShelf

	if _, err := f.svc.Create(context.Background(), f.validCreate()); err != nil {
		t.Fatalf("create placement: %v", err)
	}
	other := f.validCreate()
	other.ShelfID = otherShelf.ID
	if _, err := f.svc.Create(context.Background(), other); err != nil {
		t.Fatalf("create placement: %v", err)
	}

	listed, err := f.svc.ListByShelf(context.Background(), f.shelf.ID)
	if err != nil {
		t.Fatalf("list by shelf: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 placement on shelf, got %d", len(listed))
	}
	if listed[0].ShelfID != f.shelf.ID {
		t.Fatalf("wrong shelf in filtered list")
	}
}

func TestListKeepsOrphansAfterProductDelete(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(context.Background(), f.validCreate())
	if err != nil {
		t.Fatalf("create placement: %v", err)
	}

	// product removed after placement; the row survives unresolved
	delete(f.products.products, f.product.ID)

	listed, err := f.svc.List(context.Background())
	if err != nil {
		t.Fatalf("list placements: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("orphan placement should still list")
	}
	if listed[0].ProductName != nil {
		t.Fatalf("deleted product should not resolve")
	}
	if listed[0].ProductDetailID != f.product.ID {
		t.Fatalf("orphan keeps the original product id")
	}
}

func TestUpdatePartialValidatesOnlyChangedRefs(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(context.Background(), f.validCreate())
	if err != nil {
		t.Fatalf("create placement: %v", err)
	}

	// product deleted afterwards; updating quantity alone must still work
	delete(f.products.products, f.product.ID)

	qty := 9
	updated, err := f.svc.Update(context.Background(), created.ID, UpdatePlacementInput{Quantity: &qty})
	if err != nil {
		t.Fatalf("update placement: %v", err)
	}
	if updated.Quantity != 9 {
		t.Fatalf("expected quantity updated, got %d", updated.Quantity)
	}
	if updated.BoxWidth != 10 {
		t.Fatalf("omitted fields should be preserved")
	}

	// moving to a dangling shelf still fails
	missing := uuid.New()
	_, err = f.svc.Update(context.Background(), created.ID, UpdatePlacementInput{ShelfID: &missing})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteThenGetNotFound(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(context.Background(), f.validCreate())
	if err != nil {
		t.Fatalf("create placement: %v", err)
	}
	if err := f.svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete placement: %v", err)
	}
	_, err = f.svc.GetByID(context.Background(), created.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

type stubPlacementRepo struct {
	placements map[uuid.UUID]*models.Placement
}

func (s *stubPlacementRepo) ensure() {
	if s.placements == nil {
		s.placements = make(map[uuid.UUID]*models.Placement)
	}
}

func (s *stubPlacementRepo) Create(ctx context.Context, dto CreatePlacementDTO) (*models.Placement, error) {
	s.ensure()
	placement := dto.ToModel()
	s.placements[placement.ID] = placement
	return placement, nil
}

func (s *stubPlacementRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Placement, error) {
	s.ensure()
	placement, ok := s.placements[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return placement, nil
}

func (s *stubPlacementRepo) List(ctx context.Context) ([]models.Placement, error) {
	s.ensure()
	out := make([]models.Placement, 0, len(s.placements))
	for _, placement := range s.placements {
		out = append(out, *placement)
	}
	return out, nil
}

func (s *stubPlacementRepo) ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]models.Placement, error) {
	s.ensure()
	var out []models.Placement
	for _, placement := range s.placements {
		if placement.ShelfID == shelfID {
			out = append(out, *placement)
		}
	}
	return out, nil
}

func (s *stubPlacementRepo) Update(ctx context.Context, placement *models.Placement) error {
	s.ensure()
	s.placements[placement.ID] = placement
	return nil
}

func (s *stubPlacementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.ensure()
	if _, ok := s.placements[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.placements, id)
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

type stubShelves struct {
	shelves map[uuid.UUID]*models.Shelf
}

func (s *stubShelves) FindByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error) {
	shelf, ok := s.shelves[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return shelf, nil
}

type stubCategories struct {
	categories map[uuid.UUID]*models.ShelfCategory
}

func (s *stubCategories) FindByID(ctx context.Context, id uuid.UUID) (*models.ShelfCategory, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

type stubUsers struct {
	users map[uuid.UUID]*models.User
}

func (s *stubUsers) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}
