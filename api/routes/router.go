package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warehousehq/warehouse-backend/api/controllers"
	"github.com/warehousehq/warehouse-backend/api/middleware"
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
	"github.com/warehousehq/warehouse-backend/pkg/enums"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
	"github.com/warehousehq/warehouse-backend/pkg/metrics"
	"github.com/warehousehq/warehouse-backend/pkg/redis"
)

// Services bundles the domain services the router dispatches to.
type Services struct {
	Auth       auth.Service
	Users      users.Service
	Shelves    shelves.Service
	ShelfCats  shelfcats.Service
	Catalog    catalog.Service
	Placements placements.Service
	Movements  movements.Service
	Worklogs   worklogs.Service
	Fires      fires.Service
	Stats      stats.Service
}

// NewRouter assembles the full REST surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	svcs Services,
	faceUploader controllers.FaceUploader,
	layoutRenderer controllers.LayoutRenderer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.Register(svcs.Auth, faceUploader, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.Login(svcs.Auth, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, logg))
				r.Get("/profile", controllers.Profile(svcs.Auth, logg))
				r.Get("/", controllers.UsersList(svcs.Users, logg))
				r.Get("/{id}", controllers.UserGet(svcs.Users, logg))

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(string(enums.RoleAdmin), logg))
					r.Put("/{id}", controllers.UserUpdate(svcs.Users, logg))
					r.Delete("/{id}", controllers.UserDelete(svcs.Users, logg))
				})
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Route("/shelves", func(r chi.Router) {
				r.Post("/", controllers.ShelfCreate(svcs.Shelves, logg))
				r.Get("/", controllers.ShelvesList(svcs.Shelves, logg))
				r.Get("/{id}", controllers.ShelfGet(svcs.Shelves, logg))
				r.Get("/{id}/capacity", controllers.ShelfCapacity(svcs.Shelves, logg))
				r.Put("/{id}", controllers.ShelfUpdate(svcs.Shelves, logg))
				r.Delete("/{id}", controllers.ShelfDelete(svcs.Shelves, logg))
			})

			r.Route("/shelfCats", func(r chi.Router) {
				r.Post("/", controllers.ShelfCategoryCreate(svcs.ShelfCats, logg))
				r.Get("/", controllers.ShelfCategoriesList(svcs.ShelfCats, logg))
				r.Get("/shelf/{shelfId}", controllers.ShelfCategoriesByShelf(svcs.ShelfCats, logg))
				r.Get("/{id}", controllers.ShelfCategoryGet(svcs.ShelfCats, logg))
				r.Put("/{id}", controllers.ShelfCategoryUpdate(svcs.ShelfCats, logg))
				r.Delete("/{id}", controllers.ShelfCategoryDelete(svcs.ShelfCats, logg))
			})

			r.Route("/productDetails", func(r chi.Router) {
				r.Post("/", controllers.ProductDetailCreate(svcs.Catalog, logg))
				r.Get("/", controllers.ProductDetailsList(svcs.Catalog, logg))
				r.Get("/{id}", controllers.ProductDetailGet(svcs.Catalog, logg))
				r.Get("/{id}/recommendation", controllers.ProductDetailRecommendation(svcs.Catalog, logg))
				r.Put("/{id}", controllers.ProductDetailUpdate(svcs.Catalog, logg))
				r.Delete("/{id}", controllers.ProductDetailDelete(svcs.Catalog, logg))
			})

			r.Route("/products", func(r chi.Router) {
				r.Post("/", controllers.PlacementCreate(svcs.Placements, logg))
				r.Get("/", controllers.PlacementsList(svcs.Placements, logg))
				r.Get("/shelf/{shelfId}", controllers.PlacementsByShelf(svcs.Placements, logg))
				r.Get("/{id}", controllers.PlacementGet(svcs.Placements, logg))
				r.Put("/{id}", controllers.PlacementUpdate(svcs.Placements, logg))
				r.Delete("/{id}", controllers.PlacementDelete(svcs.Placements, logg))
			})

			r.Route("/inbounds", func(r chi.Router) {
				mountMovementRoutes(r, svcs.Movements, movements.KindInbound, logg)
			})
			r.Route("/outbounds", func(r chi.Router) {
				mountMovementRoutes(r, svcs.Movements, movements.KindOutbound, logg)
			})

			r.Route("/fires", func(r chi.Router) {
				r.Post("/", controllers.FireEventCreate(svcs.Fires, logg))
				r.Get("/", controllers.FireEventsList(svcs.Fires, logg))
				r.Get("/{id}", controllers.FireEventGet(svcs.Fires, logg))
				r.Put("/{id}", controllers.FireEventUpdate(svcs.Fires, logg))
				r.Delete("/{id}", controllers.FireEventDelete(svcs.Fires, logg))
			})

			r.Route("/userLogs", func(r chi.Router) {
				r.Post("/", controllers.UserLogCreate(svcs.Worklogs, logg))
				r.Get("/", controllers.UserLogsList(svcs.Worklogs, logg))
				r.Get("/user/{userId}", controllers.UserLogsByUser(svcs.Worklogs, logg))
				r.Get("/{id}", controllers.UserLogGet(svcs.Worklogs, logg))
				r.Put("/{id}", controllers.UserLogUpdate(svcs.Worklogs, logg))
				r.Delete("/{id}", controllers.UserLogDelete(svcs.Worklogs, logg))
			})

			r.Route("/userDailyDetails", func(r chi.Router) {
				r.Post("/", controllers.UserDailyDetailCreate(svcs.Worklogs, logg))
				r.Get("/", controllers.UserDailyDetailsList(svcs.Worklogs, logg))
				r.Get("/user/{userId}", controllers.UserDailyDetailsByUser(svcs.Worklogs, logg))
				r.Get("/{id}", controllers.UserDailyDetailGet(svcs.Worklogs, logg))
				r.Put("/{id}", controllers.UserDailyDetailUpdate(svcs.Worklogs, logg))
				r.Delete("/{id}", controllers.UserDailyDetailDelete(svcs.Worklogs, logg))
			})

			r.Get("/stats/overview", controllers.StatsOverview(svcs.Stats, logg))

			r.Route("/layout", func(r chi.Router) {
				r.Post("/route", controllers.LayoutRoute(layoutRenderer, logg))
				r.Post("/shelves", controllers.LayoutShelves(layoutRenderer, logg))
			})
		})
	})

	return r
}

func mountMovementRoutes(r chi.Router, svc movements.Service, kind movements.Kind, logg *logger.Logger) {
	r.Post("/", controllers.MovementCreate(svc, kind, logg))
	r.Get("/", controllers.MovementsList(svc, kind, logg))
	r.Get("/{id}", controllers.MovementGet(svc, kind, logg))
	r.Put("/{id}", controllers.MovementUpdate(svc, kind, logg))
	r.Delete("/{id}", controllers.MovementDelete(svc, kind, logg))
}
