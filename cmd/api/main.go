package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/warehousehq/warehouse-backend/api/controllers"
	"github.com/warehousehq/warehouse-backend/api/routes"
	"github.com/warehousehq/warehouse-backend/internal/auth"
	"github.com/warehousehq/warehouse-backend/internal/catalog"
	"github.com/warehousehq/warehouse-backend/internal/fires"
	"github.com/warehousehq/warehouse-backend/internal/movements"
	"github.com/warehousehq/warehouse-backend/internal/placements"
	"github.com/warehousehq/warehouse-backend/internal/shelfcats"
	"github.com/warehousehq/warehouse-backend/internal/shelves"
	"github.com/warehousehq/warehouse-backend/internal/stats"
	"github.com/warehousehq/warehouse-backend/internal/users"
	"github.com/warehousehq/warehouse-backend/internal/worklogs"
	"github.com/warehousehq/warehouse-backend/pkg/config"
	"github.com/warehousehq/warehouse-backend/pkg/db"
	"github.com/warehousehq/warehouse-backend/pkg/imagehost"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
	"github.com/warehousehq/warehouse-backend/pkg/metrics"
	"github.com/warehousehq/warehouse-backend/pkg/migrate"
	"github.com/warehousehq/warehouse-backend/pkg/redis"
	"github.com/warehousehq/warehouse-backend/pkg/renderer"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)
	metricsHandler := promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})

	gormDB := dbClient.DB()
	usersRepo := users.NewRepository(gormDB)
	shelvesRepo := shelves.NewRepository(gormDB)
	categoriesRepo := shelfcats.NewRepository(gormDB)
	catalogRepo := catalog.NewRepository(gormDB)
	placementsRepo := placements.NewRepository(gormDB)
	movementsRepo := movements.NewRepository(gormDB)
	worklogsRepo := worklogs.NewRepository(gormDB)
	firesRepo := fires.NewRepository(gormDB)
	statsRepo := stats.NewRepository(gormDB)

	authService, err := auth.NewService(usersRepo, cfg.JWT, cfg.Password)
	requireService(logg, "auth", err)
	usersService, err := users.NewService(usersRepo)
	requireService(logg, "users", err)
	shelvesService, err := shelves.NewService(shelvesRepo, placementsRepo)
	requireService(logg, "shelves", err)
	categoriesService, err := shelfcats.NewService(categoriesRepo, shelvesRepo)
	requireService(logg, "shelf categories", err)
	catalogService, err := catalog.NewService(catalogRepo, placementsRepo, shelvesRepo)
	requireService(logg, "catalog", err)
	placementsService, err := placements.NewService(placementsRepo, catalogRepo, shelvesRepo, categoriesRepo, usersRepo)
	requireService(logg, "placements", err)
	movementsService, err := movements.NewService(movementsRepo, catalogRepo)
	requireService(logg, "movements", err)
	worklogsService, err := worklogs.NewService(worklogsRepo, usersRepo)
	requireService(logg, "worklogs", err)
	firesService, err := fires.NewService(firesRepo)
	requireService(logg, "fires", err)
	statsService, err := stats.NewService(statsRepo, movementsRepo, catalogRepo, placementsRepo, 0)
	requireService(logg, "stats", err)

	var faceUploader controllers.FaceUploader
	if cfg.ImageHost.UploadURL != "" {
		imageClient, err := imagehost.NewClient(cfg.ImageHost)
		if err != nil {
			logg.Error(context.Background(), "failed to create image host client", err)
			os.Exit(1)
		}
		faceUploader = imageClient
	} else {
		logg.Warn(context.Background(), "image host not configured, face uploads disabled")
	}

	rendererClient, err := renderer.NewClient(cfg.Renderer)
	if err != nil {
		logg.Error(context.Background(), "failed to create renderer client", err)
		os.Exit(1)
	}

	svcs := routes.Services{
		Auth:       authService,
		Users:      usersService,
		Shelves:    shelvesService,
		ShelfCats:  categoriesService,
		Catalog:    catalogService,
		Placements: placementsService,
		Movements:  movementsService,
		Worklogs:   worklogsService,
		Fires:      firesService,
		Stats:      statsService,
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, httpMetrics, metricsHandler, svcs, faceUploader, rendererClient),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func requireService(logg *logger.Logger, name string, err error) {
	if err != nil {
		logg.Error(context.Background(), "failed to create "+name+" service", err)
		os.Exit(1)
	}
}
