package shelfcats

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

func TestCreateRejectsDanglingShelf(t *testing.T) {
	svc := newTestService(t, &stubCategoryRepo{}, &stubShelvesReader{})

	_, err := svc.Create(context.Background(), CreateShelfCategoryDTO{
		Name:    "fragile",
		ShelfID: uuid.New(),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for dangling shelf, got %v", err)
	}
}

func TestCreateResolvesShelfNumber(t *testing.T) {
	shelf := &models.Shelf{ID: uuid.New(), Number: "A1", Name: "east wall"}
	shelves := &stubShelvesReader{shelves: map[uuid.UUID]*models.Shelf{shelf.ID: shelf}}
	svc := newTestService(t, &stubCategoryRepo{}, shelves)

	dto, err := svc.Create(context.Background(), CreateShelfCategoryDTO{
		Name:    "fragile",
		ShelfID: shelf.ID,
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if dto.ShelfNumber == nil || *dto.ShelfNumber != "A1" {
		t.Fatalf("expected resolved shelf number, got %v", dto.ShelfNumber)
	}
}

func TestListKeepsOrphanedCategories(t *testing.T) {
	repo := &stubCategoryRepo{}
	shelves := &stubShelvesReader{}
	svc := newTestService(t, repo, shelves)

	orphan := &models.ShelfCategory{ID: uuid.New(), Name: "fragile", ShelfID: uuid.New()}
	repo.add(orphan)

	dtos, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(dtos) != 1 {
		t.Fatalf("expected orphan listed, got %d rows", len(dtos))
	}
	if dtos[0].ShelfNumber != nil {
		t.Fatalf("orphan should have no resolved shelf number")
	}
	if dtos[0].ShelfID != orphan.ShelfID {
		t.Fatalf("orphan keeps its shelf id")
	}
}

func TestUpdateRejectsDanglingShelfMove(t *testing.T) {
	shelf := &models.Shelf{ID: uuid.New(), Number: "A1"}
	shelves := &stubShelvesReader{shelves: map[uuid.UUID]*models.Shelf{shelf.ID: shelf}}
	repo := &stubCategoryRepo{}
	svc := newTestService(t, repo, shelves)

	created, err := svc.Create(context.Background(), CreateShelfCategoryDTO{
		Name:    "fragile",
		ShelfID: shelf.ID,
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	missing := uuid.New()
	_, err = svc.Update(context.Background(), created.ID, UpdateShelfCategoryInput{ShelfID: &missing})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := newTestService(t, &stubCategoryRepo{}, &stubShelvesReader{})

	err := svc.Delete(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func newTestService(t *testing.T, repo *stubCategoryRepo, shelves *stubShelvesReader) Service {
	t.Helper()
	svc, err := NewService(repo, shelves)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

type stubCategoryRepo struct {
	categories map[uuid.UUID]*models.ShelfCategory
}

func (s *stubCategoryRepo) ensure() {
	if s.categories == nil {
		s.categories = make(map[uuid.UUID]*models.ShelfCategory)
	}
}

func (s *stubCategoryRepo) add(category *models.ShelfCategory) {
	s.ensure()
	s.categories[category.ID] = category
}

func (s *stubCategoryRepo) Create(ctx context.Context, dto CreateShelfCategoryDTO) (*models.ShelfCategory, error) {
	s.ensure()
	category := dto.ToModel()
	s.categories[category.ID] = category
	return category, nil
}

func (s *stubCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.ShelfCategory, error) {
	s.ensure()
	category, ok := s.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (s *stubCategoryRepo) List(ctx context.Context) ([]models.ShelfCategory, error) {
	s.ensure()
	out := make([]models.ShelfCategory, 0, len(s.categories))
	for _, category := range s.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (s *stubCategoryRepo) ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]models.ShelfCategory, error) {
	s.ensure()
	var out []models.ShelfCategory
	for _, category := range s.categories {
		if category.ShelfID == shelfID {
			out = append(out, *category)
		}
	}
	return out, nil
}

func (s *stubCategoryRepo) Update(ctx context.Context, category *models.ShelfCategory) error {
	s.ensure()
	s.categories[category.ID] = category
	return nil
}

func (s *stubCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.ensure()
	if _, ok := s.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.categories, id)
	return nil
}

type stubShelvesReader struct {
	shelves map[uuid.UUID]*models.Shelf
}

func (s *stubShelvesReader) FindByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error) {
	shelf, ok := s.shelves[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return shelf, nil
}
