package server

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/wichananm65/plant-shop-storefront/internal/banner"
	"github.com/wichananm65/plant-shop-storefront/internal/cart"
	"github.com/wichananm65/plant-shop-storefront/internal/catalog"
	"github.com/wichananm65/plant-shop-storefront/internal/clock"
	"github.com/wichananm65/plant-shop-storefront/internal/config"
	"github.com/wichananm65/plant-shop-storefront/internal/infrastructure/logging"
	"github.com/wichananm65/plant-shop-storefront/internal/order"
	"github.com/wichananm65/plant-shop-storefront/internal/preference"
	"github.com/wichananm65/plant-shop-storefront/internal/scheduler"
	"github.com/wichananm65/plant-shop-storefront/internal/search"
	"github.com/wichananm65/plant-shop-storefront/internal/share"
	"github.com/wichananm65/plant-shop-storefront/internal/storefront"
	"github.com/wichananm65/plant-shop-storefront/internal/visitor"
)

const (
	JobCatalogRefresh = "catalog:refresh"
	JobCartSweep      = "cart:sweep"

	cartSweepSchedule = "@every 1m"
)

// Deps are the collaborators that differ between production and tests.
type Deps struct {
	Preferences preference.Store
	Catalog     catalog.Client
	Encoder     share.Encoder
}

// Server is the assembled storefront.
type Server struct {
	App     *fiber.App
	Carts   *cart.Service
	Catalog *catalog.Service
	Orders  *order.Service

	cfg    config.Config
	logger *zap.Logger
}

// New wires services and handlers. It does not fetch the catalog; call
// Catalog.Refresh or run the refresh job before serving.
func New(cfg config.Config, deps Deps, logger *zap.Logger) *Server {
	logger = logging.OrNop(logger)
	if deps.Preferences == nil {
		deps.Preferences = preference.NewInMemoryStore()
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.NewHTTPClient(cfg.CatalogBaseURL, cfg.CatalogTimeout)
	}
	if deps.Encoder == nil {
		deps.Encoder = share.LocalEncoder{}
	}

	prefs := preference.NewService(deps.Preferences, logger)
	registry := cart.NewRegistry(cfg.CartIdleTTL)
	carts := cart.NewService(registry, prefs, logger)
	cat := catalog.NewService(deps.Catalog, nil, cfg.CatalogLimit, logger)
	orders := order.NewService(order.NewInMemoryRepository(), carts, logger)

	app := fiber.New(fiber.Config{DisableStartupMessage: true, Immutable: true})
	app.Use(recover.New())
	setupCORS(app)
	app.Use(logging.RequestLogger(logger))
	app.Use(visitor.Middleware(visitor.Config{
		Secret: []byte(cfg.VisitorSecret),
		Secure: strings.HasPrefix(cfg.PublicURL, "https:"),
		Logger: logger,
	}))

	shareHandler := share.NewHandler(cfg.PublicURL, deps.Encoder, logger)

	preference.NewHandler(prefs).RegisterRoutes(app)
	cart.NewHandler(carts).RegisterRoutes(app)
	order.NewHandler(orders).RegisterRoutes(app)
	catalog.NewHandler(cat).RegisterRoutes(app)
	search.NewHandler(cat).RegisterRoutes(app)
	clock.NewHandler().RegisterRoutes(app)
	banner.NewHandler(banner.NewService(), shareHandler.PageURL).RegisterRoutes(app)
	shareHandler.RegisterRoutes(app)
	storefront.NewHandler(registry, prefs, cat, shareHandler, deps.Encoder, logger).RegisterRoutes(app)

	return &Server{App: app, Carts: carts, Catalog: cat, Orders: orders, cfg: cfg, logger: logger}
}

// Jobs returns the background work the server needs while running.
func (s *Server) Jobs(ctx context.Context) []scheduler.Job {
	return []scheduler.Job{
		{
			Name:     JobCatalogRefresh,
			Schedule: s.cfg.CatalogRefreshSchedule,
			Run:      func() { s.Catalog.Refresh(ctx) },
		},
		{
			Name:     JobCartSweep,
			Schedule: cartSweepSchedule,
			Run:      s.Carts.SweepIdle,
		},
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}
