package migrate

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/pkg/config"
	"github.com/warehousehq/warehouse-backend/pkg/db"
	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
)

func TestMaybeRunDevCreatesSQLiteSchema(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Env: "dev"},
		DB:  config.DBConfig{DSN: "file::memory:?cache=shared", Driver: "sqlite"},
		FeatureFlags: config.FeatureFlagsConfig{
			UseSQLite:   true,
			AutoMigrate: true,
		},
	}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	client, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer client.Close()

	if err := MaybeRunDev(context.Background(), cfg, logg, client); err != nil {
		t.Fatalf("dev migration: %v", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        "packer@warehouse.test",
		PasswordHash: "hash",
		FullName:     "Dana Packer",
		EmployeeID:   "EMP-1",
	}
	if err := client.DB().Create(user).Error; err != nil {
		t.Fatalf("insert into migrated schema: %v", err)
	}

	var found models.User
	if err := client.DB().Where("id = ?", user.ID).First(&found).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if found.Email != user.Email {
		t.Fatalf("unexpected row %+v", found)
	}

	placement := &models.Placement{
		ID:              uuid.New(),
		ProductDetailID: uuid.New(),
		ShelfID:         uuid.New(),
		CategoryID:      uuid.New(),
		Quantity:        3,
		PlacedBy:        user.ID,
	}
	if err := client.DB().Create(placement).Error; err != nil {
		t.Fatalf("insert placement: %v", err)
	}
}

func TestMaybeRunDevSkipsOutsideDev(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Env: "prod"},
		FeatureFlags: config.FeatureFlagsConfig{
			UseSQLite:   true,
			AutoMigrate: true,
		},
	}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	if err := MaybeRunDev(context.Background(), cfg, logg, nil); err != nil {
		t.Fatalf("expected no-op outside dev, got %v", err)
	}
}
