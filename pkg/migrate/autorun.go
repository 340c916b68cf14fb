package migrate

import (
	"context"
	"fmt"

	"github.com/warehousehq/warehouse-backend/pkg/config"
	"github.com/warehousehq/warehouse-backend/pkg/db"
	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
)

// MaybeRunDev executes migrations automatically when the app is running in dev
// mode and the feature flag is enabled.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}
	if cfg.FeatureFlags.UseSQLite {
		// goose migrations are written for Postgres; sqlite gets its schema
		// from the models instead
		ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env})
		logg.Info(ctx, "running model auto-migration (sqlite dev)")
		if err := client.DB().WithContext(ctx).AutoMigrate(
			&models.User{},
			&models.Shelf{},
			&models.ShelfCategory{},
			&models.ProductDetail{},
			&models.Placement{},
			&models.Inbound{},
			&models.Outbound{},
			&models.FireEvent{},
			&models.UserLog{},
			&models.UserDailyDetail{},
		); err != nil {
			return fmt.Errorf("auto-migrating sqlite schema: %w", err)
		}
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": DefaultDir})
	logg.Info(ctx, "running Goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "Goose migrations completed")
	return nil
}
