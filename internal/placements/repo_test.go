package placements

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPlacementsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS placements (
  id TEXT PRIMARY KEY,
  product_detail_id TEXT NOT NULL,
  shelf_id TEXT NOT NULL,
  category_id TEXT NOT NULL,
  box_width REAL NOT NULL DEFAULT 0,
  box_height REAL NOT NULL DEFAULT 0,
  box_depth REAL NOT NULL DEFAULT 0,
  quantity INTEGER NOT NULL DEFAULT 0,
  placed_by TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)

	return db
}

func TestRepositoryListByShelfFiltersRows(t *testing.T) {
	db := setupPlacementsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	shelfA := uuid.New()
	shelfB := uuid.New()
	product := uuid.New()
	placedBy := uuid.New()

	first, err := repo.Create(ctx, CreatePlacementDTO{
		ProductDetailID: product,
		ShelfID:         shelfA,
		CategoryID:      uuid.New(),
		BoxWidth:        10,
		BoxHeight:       5,
		BoxDepth:        5,
		Quantity:        4,
		PlacedBy:        placedBy,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, CreatePlacementDTO{
		ProductDetailID: product,
		ShelfID:         shelfB,
		CategoryID:      uuid.New(),
		Quantity:        2,
		PlacedBy:        placedBy,
	})
	require.NoError(t, err)

	onShelfA, err := repo.ListByShelf(ctx, shelfA)
	require.NoError(t, err)
	require.Len(t, onShelfA, 1)
	assert.Equal(t, first.ID, onShelfA[0].ID)
	assert.Equal(t, 4, onShelfA[0].Quantity)

	byProduct, err := repo.ListByProduct(ctx, product)
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)
}

func TestRepositoryDeleteReportsMissingRow(t *testing.T) {
	db := setupPlacementsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	created, err := repo.Create(ctx, CreatePlacementDTO{
		ProductDetailID: uuid.New(),
		ShelfID:         uuid.New(),
		CategoryID:      uuid.New(),
		Quantity:        1,
		PlacedBy:        uuid.New(),
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
