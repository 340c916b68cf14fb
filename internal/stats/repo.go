package stats

import (
	"context"

	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// Repository runs the aggregate count queries behind the overview.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to the overview counts.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// EntityCounts holds one row-count per warehouse collection. Inbound and
// outbound counts come from the movements repository, not from here.
type EntityCounts struct {
	Users            int64
	Shelves          int64
	ShelfCategories  int64
	ProductDetails   int64
	Placements       int64
	FireEvents       int64
	UserLogs         int64
	UserDailyDetails int64
}

// CountEntities counts every collection in one pass.
func (r *Repository) CountEntities(ctx context.Context) (*EntityCounts, error) {
	counts := &EntityCounts{}
	targets := []struct {
		model any
		dest  *int64
	}{
		{&models.User{}, &counts.Users},
		{&models.Shelf{}, &counts.Shelves},
		{&models.ShelfCategory{}, &counts.ShelfCategories},
		{&models.ProductDetail{}, &counts.ProductDetails},
		{&models.Placement{}, &counts.Placements},
		{&models.FireEvent{}, &counts.FireEvents},
		{&models.UserLog{}, &counts.UserLogs},
		{&models.UserDailyDetail{}, &counts.UserDailyDetails},
	}
	for _, target := range targets {
		if err := r.db.WithContext(ctx).Model(target.model).Count(target.dest).Error; err != nil {
			return nil, err
		}
	}
	return counts, nil
}
