package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/internal/movements"
	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

// DefaultLowStockThreshold flags products whose placed stock falls below it.
const DefaultLowStockThreshold = 10

type countsReader interface {
	CountEntities(ctx context.Context) (*EntityCounts, error)
}

type movementsCounter interface {
	Count(ctx context.Context, kind movements.Kind) (int64, error)
}

type productsReader interface {
	List(ctx context.Context) ([]models.ProductDetail, error)
}

type placementsReader interface {
	List(ctx context.Context) ([]models.Placement, error)
}

// OverviewDTO is the dashboard snapshot: row counts per collection plus the
// products running low on placed stock.
type OverviewDTO struct {
	Counts    OverviewCounts `json:"counts"`
	LowStock  []LowStockDTO  `json:"low_stock"`
	Threshold int            `json:"low_stock_threshold"`
}

// OverviewCounts mirrors EntityCounts with the two movement ledgers added.
type OverviewCounts struct {
	Users            int64 `json:"users"`
	Shelves          int64 `json:"shelves"`
	ShelfCategories  int64 `json:"shelf_categories"`
	ProductDetails   int64 `json:"product_details"`
	Placements       int64 `json:"placements"`
	Inbounds         int64 `json:"inbounds"`
	Outbounds        int64 `json:"outbounds"`
	FireEvents       int64 `json:"fire_events"`
	UserLogs         int64 `json:"user_logs"`
	UserDailyDetails int64 `json:"user_daily_details"`
}

// LowStockDTO names a product whose placed stock is under the threshold.
// Stock sums placement quantities only, movement ledgers are not reconciled.
type LowStockDTO struct {
	ProductDetailID uuid.UUID `json:"product_detail_id"`
	Name            string    `json:"name"`
	Stock           int       `json:"stock"`
}

// Service exposes the overview aggregate.
type Service interface {
	Overview(ctx context.Context) (*OverviewDTO, error)
}

type service struct {
	counts     countsReader
	movements  movementsCounter
	products   productsReader
	placements placementsReader
	threshold  int
}

// NewService builds the stats service. A non-positive threshold falls back
// to DefaultLowStockThreshold.
func NewService(counts countsReader, mv movementsCounter, products productsReader, placements placementsReader, threshold int) (Service, error) {
	if counts == nil {
		return nil, fmt.Errorf("counts reader required")
	}
	if mv == nil {
		return nil, fmt.Errorf("movements counter required")
	}
	if products == nil {
		return nil, fmt.Errorf("products reader required")
	}
	if placements == nil {
		return nil, fmt.Errorf("placements reader required")
	}
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return &service{
		counts:     counts,
		movements:  mv,
		products:   products,
		placements: placements,
		threshold:  threshold,
	}, nil
}

func (s *service) Overview(ctx context.Context) (*OverviewDTO, error) {
	entityCounts, err := s.counts.CountEntities(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count entities")
	}
	inbounds, err := s.movements.Count(ctx, movements.KindInbound)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count inbounds")
	}
	outbounds, err := s.movements.Count(ctx, movements.KindOutbound)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count outbounds")
	}

	lowStock, err := s.lowStock(ctx)
	if err != nil {
		return nil, err
	}

	return &OverviewDTO{
		Counts: OverviewCounts{
			Users:            entityCounts.Users,
			Shelves:          entityCounts.Shelves,
			ShelfCategories:  entityCounts.ShelfCategories,
			ProductDetails:   entityCounts.ProductDetails,
			Placements:       entityCounts.Placements,
			Inbounds:         inbounds,
			Outbounds:        outbounds,
			FireEvents:       entityCounts.FireEvents,
			UserLogs:         entityCounts.UserLogs,
			UserDailyDetails: entityCounts.UserDailyDetails,
		},
		LowStock:  lowStock,
		Threshold: s.threshold,
	}, nil
}

func (s *service) lowStock(ctx context.Context) ([]LowStockDTO, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	placements, err := s.placements.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list placements")
	}

	stockByProduct := make(map[uuid.UUID]int)
	for _, placement := range placements {
		stockByProduct[placement.ProductDetailID] += placement.Quantity
	}

	low := make([]LowStockDTO, 0)
	for i := range products {
		stock := stockByProduct[products[i].ID]
		if stock < s.threshold {
			low = append(low, LowStockDTO{
				ProductDetailID: products[i].ID,
				Name:            products[i].Name,
				Stock:           stock,
			})
		}
	}
	sort.Slice(low, func(i, j int) bool {
		if low[i].Stock != low[j].Stock {
			return low[i].Stock < low[j].Stock
		}
		return low[i].Name < low[j].Name
	})
	return low, nil
}
