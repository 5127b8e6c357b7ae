// Package server contains the HTTP handlers for the fleet rental API. The
// handlers are deliberately thin: they parse primitives, call services, and
// relay typed errors. All business rules live in internal/service.
package server

import (
	"context"
	"fmt"

	"motorpool/internal/config"
	"motorpool/internal/database"
	"motorpool/internal/middleware"
	"motorpool/internal/observability"
	"motorpool/internal/repository"
	"motorpool/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config          *config.Config
	db              *gorm.DB
	promMiddleware  *fiberprometheus.FiberPrometheus
	tracingShutdown func(context.Context) error

	userRepo    repository.UserRepository
	vehicleRepo repository.VehicleRepository
	rentalRepo  repository.RentalRequestRepository

	vehicleService *service.VehicleService
	rentalService  *service.RentalService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	tracingShutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "motorpool-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExport,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing init failed: %w", err)
	}

	srv := newServerWithDB(cfg, db)
	srv.promMiddleware = middleware.InitMetrics("motorpool-api")
	srv.tracingShutdown = tracingShutdown
	return srv, nil
}

// newServerWithDB wires repositories and services over an existing database
// handle. Tests use it to run the full stack against in-memory SQLite.
func newServerWithDB(cfg *config.Config, db *gorm.DB) *Server {
	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	rentalRepo := repository.NewRentalRequestRepository(db)

	vehicleService := service.NewVehicleService(vehicleRepo)
	rentalService := service.NewRentalService(rentalRepo, userRepo, vehicleService, cfg.MaxRentalDays)

	return &Server{
		config:         cfg,
		db:             db,
		userRepo:       userRepo,
		vehicleRepo:    vehicleRepo,
		rentalRepo:     rentalRepo,
		vehicleService: vehicleService,
		rentalService:  rentalService,
	}
}

// SetupMiddleware registers the global middleware chain.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.RequestLogger())

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
		app.Use(s.promMiddleware.Middleware)
	}
}

// SetupRoutes registers all API routes.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", s.Health)

	vehicles := api.Group("/vehicles")
	vehicles.Get("/", s.ListVehicles)
	vehicles.Post("/", s.CreateVehicle)
	vehicles.Get("/:plate", s.GetVehicleByPlate)
	vehicles.Patch("/:plate/mileage", s.UpdateVehicleMileage)
	vehicles.Patch("/:plate/status", s.SetVehicleStatus)
	vehicles.Post("/:plate/maintenance", s.RecordVehicleMaintenance)

	rentals := api.Group("/rentals")
	rentals.Get("/", s.ListRentalRequests)
	rentals.Post("/", s.CreateRentalRequest)
	rentals.Post("/admin", s.AdminCreateReservation)
	rentals.Patch("/:id/approve", s.ApproveRentalRequest)
	rentals.Patch("/:id/reject", s.RejectRentalRequest)
}

// Health handles GET /api/health.
func (s *Server) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.tracingShutdown != nil {
		if err := s.tracingShutdown(ctx); err != nil {
			middleware.Logger.Warn("tracing shutdown failed", "error", err)
		}
	}
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
