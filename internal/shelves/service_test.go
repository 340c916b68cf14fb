package shelves

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

func TestCreateRequiresNumber(t *testing.T) {
	svc := newTestService(t, &stubShelfRepo{}, &stubPlacementsReader{})

	_, err := svc.Create(context.Background(), CreateShelfDTO{Name: "east wall"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	repo := &stubShelfRepo{}
	svc := newTestService(t, repo, &stubPlacementsReader{})

	created, err := svc.Create(context.Background(), CreateShelfDTO{
		Number: "A1",
		Name:   "east wall",
		Width:  200, Height: 100, Depth: 50,
	})
	if err != nil {
		t.Fatalf("create shelf: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get shelf: %v", err)
	}
	if got.Number != "A1" || got.Width != 200 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestUpdatePreservesOmittedFields(t *testing.T) {
	repo := &stubShelfRepo{}
	svc := newTestService(t, repo, &stubPlacementsReader{})

	created, err := svc.Create(context.Background(), CreateShelfDTO{
		Number: "A1", Name: "east wall", Width: 200, Height: 100, Depth: 50,
	})
	if err != nil {
		t.Fatalf("create shelf: %v", err)
	}

	newName := "west wall"
	updated, err := svc.Update(context.Background(), created.ID, UpdateShelfInput{Name: &newName})
	if err != nil {
		t.Fatalf("update shelf: %v", err)
	}
	if updated.Name != "west wall" {
		t.Fatalf("expected updated name, got %s", updated.Name)
	}
	if updated.Number != "A1" || updated.Width != 200 {
		t.Fatalf("omitted fields should be preserved: %+v", updated)
	}
}

func TestDeleteThenGetNotFound(t *testing.T) {
	repo := &stubShelfRepo{}
	svc := newTestService(t, repo, &stubPlacementsReader{})

	created, err := svc.Create(context.Background(), CreateShelfDTO{Number: "A1"})
	if err != nil {
		t.Fatalf("create shelf: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete shelf: %v", err)
	}
	_, err = svc.GetByID(context.Background(), created.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestCapacityFactorsQuantity(t *testing.T) {
	repo := &stubShelfRepo{}
	placements := &stubPlacementsReader{}
	svc := newTestService(t, repo, placements)

	created, err := svc.Create(context.Background(), CreateShelfDTO{
		Number: "A1", Width: 100, Height: 100, Depth: 100,
	})
	if err != nil {
		t.Fatalf("create shelf: %v", err)
	}

	placements.placements = []models.Placement{
		{ShelfID: created.ID, BoxWidth: 10, BoxHeight: 10, BoxDepth: 10, Quantity: 3},
		{ShelfID: created.ID, BoxWidth: 20, BoxHeight: 10, BoxDepth: 10, Quantity: 1},
	}

	capacity, err := svc.Capacity(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("capacity: %v", err)
	}
	if capacity.TotalVolume != 1_000_000 {
		t.Fatalf("expected total 1000000, got %f", capacity.TotalVolume)
	}
	if capacity.OccupiedVolume != 5000 {
		t.Fatalf("expected occupied 5000, got %f", capacity.OccupiedVolume)
	}
	if capacity.RemainingVolume != 995_000 {
		t.Fatalf("expected remaining 995000, got %f", capacity.RemainingVolume)
	}
}

func TestCapacityClampsToZero(t *testing.T) {
	repo := &stubShelfRepo{}
	placements := &stubPlacementsReader{}
	svc := newTestService(t, repo, placements)

	created, err := svc.Create(context.Background(), CreateShelfDTO{
		Number: "A1", Width: 10, Height: 10, Depth: 10,
	})
	if err != nil {
		t.Fatalf("create shelf: %v", err)
	}

	placements.placements = []models.Placement{
		{ShelfID: created.ID, BoxWidth: 20, BoxHeight: 20, BoxDepth: 20, Quantity: 2},
	}

	capacity, err := svc.Capacity(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("capacity: %v", err)
	}
	if capacity.RemainingVolume != 0 {
		t.Fatalf("over-packed shelf should report zero remaining, got %f", capacity.RemainingVolume)
	}
}

func newTestService(t *testing.T, repo *stubShelfRepo, placements *stubPlacementsReader) Service {
	t.Helper()
	svc, err := NewService(repo, placements)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

type stubShelfRepo struct {
	shelves map[uuid.UUID]*models.Shelf
}

func (s *stubShelfRepo) ensure() {
	if s.shelves == nil {
		s.shelves = make(map[uuid.UUID]*models.Shelf)
	}
}

func (s *stubShelfRepo) Create(ctx context.Context, dto CreateShelfDTO) (*models.Shelf, error) {
	s.ensure()
	shelf := dto.ToModel()
	s.shelves[shelf.ID] = shelf
	return shelf, nil
}

func (s *stubShelfRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error) {
	s.ensure()
	shelf, ok := s.shelves[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return shelf, nil
}

func (s *stubShelfRepo) List(ctx context.Context) ([]models.Shelf, error) {
	s.ensure()
	out := make([]models.Shelf, 0, len(s.shelves))
	for _, shelf := range s.shelves {
		out = append(out, *shelf)
	}
	return out, nil
}

func (s *stubShelfRepo) Update(ctx context.Context, shelf *models.Shelf) error {
	s.ensure()
	s.shelves[shelf.ID] = shelf
	return nil
}

func (s *stubShelfRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.ensure()
	if _, ok := s.shelves[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.shelves, id)
	return nil
}

type stubPlacementsReader struct {
	placements []models.Placement
}

func (s *stubPlacementsReader) ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]models.Placement, error) {
	var out []models.Placement
	for _, p := range s.placements {
		if p.ShelfID == shelfID {
			out = append(out, p)
		}
	}
	return out, nil
}
