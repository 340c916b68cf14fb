package stats

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/internal/movements"
	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

func TestOverviewMergesCounts(t *testing.T) {
	counts := &stubCounts{counts: EntityCounts{Users: 4, Shelves: 6, ProductDetails: 2}}
	mv := &stubMovementsCounter{inbounds: 9, outbounds: 3}
	svc := newTestService(t, counts, mv, &stubProductsList{}, &stubPlacementsList{}, 0)

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.Counts.Users != 4 || overview.Counts.Shelves != 6 {
		t.Fatalf("entity counts not carried through: %+v", overview.Counts)
	}
	if overview.Counts.Inbounds != 9 || overview.Counts.Outbounds != 3 {
		t.Fatalf("ledger counts not carried through: %+v", overview.Counts)
	}
	if overview.Threshold != DefaultLowStockThreshold {
		t.Fatalf("expected default threshold, got %d", overview.Threshold)
	}
}

func TestOverviewFlagsLowStockFromPlacementsOnly(t *testing.T) {
	scarce := models.ProductDetail{ID: uuid.New(), Name: "label rolls"}
	plenty := models.ProductDetail{ID: uuid.New(), Name: "pallet wrap"}
	unplaced := models.ProductDetail{ID: uuid.New(), Name: "box cutters"}

	products := &stubProductsList{products: []models.ProductDetail{scarce, plenty, unplaced}}
	placements := &stubPlacementsList{placements: []models.Placement{
		{ID: uuid.New(), ProductDetailID: scarce.ID, Quantity: 2},
		{ID: uuid.New(), ProductDetailID: scarce.ID, Quantity: 1},
		{ID: uuid.New(), ProductDetailID: plenty.ID, Quantity: 50},
	}}
	svc := newTestService(t, &stubCounts{}, &stubMovementsCounter{}, products, placements, 10)

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.LowStock) != 2 {
		t.Fatalf("expected 2 low-stock products, got %d", len(overview.LowStock))
	}
	if overview.LowStock[0].Name != "box cutters" || overview.LowStock[0].Stock != 0 {
		t.Fatalf("unplaced product should rank first at zero stock, got %+v", overview.LowStock[0])
	}
	if overview.LowStock[1].Name != "label rolls" || overview.LowStock[1].Stock != 3 {
		t.Fatalf("expected summed placement stock of 3, got %+v", overview.LowStock[1])
	}
	for _, entry := range overview.LowStock {
		if entry.Name == "pallet wrap" {
			t.Fatalf("well-stocked product must not be flagged")
		}
	}
}

func TestOverviewThresholdBoundary(t *testing.T) {
	atThreshold := models.ProductDetail{ID: uuid.New(), Name: "tape"}
	products := &stubProductsList{products: []models.ProductDetail{atThreshold}}
	placements := &stubPlacementsList{placements: []models.Placement{
		{ID: uuid.New(), ProductDetailID: atThreshold.ID, Quantity: 10},
	}}
	svc := newTestService(t, &stubCounts{}, &stubMovementsCounter{}, products, placements, 10)

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.LowStock) != 0 {
		t.Fatalf("stock equal to the threshold is not low, got %+v", overview.LowStock)
	}
}

func newTestService(t *testing.T, counts countsReader, mv movementsCounter, products productsReader, placements placementsReader, threshold int) Service {
	t.Helper()
	svc, err := NewService(counts, mv, products, placements, threshold)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

type stubCounts struct {
	counts EntityCounts
}

func (s *stubCounts) CountEntities(ctx context.Context) (*EntityCounts, error) {
	cpy := s.counts
	return &cpy, nil
}

type stubMovementsCounter struct {
	inbounds  int64
	outbounds int64
}

func (s *stubMovementsCounter) Count(ctx context.Context, kind movements.Kind) (int64, error) {
	if kind == movements.KindInbound {
		return s.inbounds, nil
	}
	return s.outbounds, nil
}

type stubProductsList struct {
	products []models.ProductDetail
}

func (s *stubProductsList) List(ctx context.Context) ([]models.ProductDetail, error) {
	return s.products, nil
}

type stubPlacementsList struct {
	placements []models.Placement
}

func (s *stubPlacementsList) List(ctx context.Context) ([]models.Placement, error) {
	return s.placements, nil
}
