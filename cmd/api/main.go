package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alnubras/pos-api/internal/application/service"
	"github.com/alnubras/pos-api/internal/config"
	"github.com/alnubras/pos-api/internal/infrastructure/database"
	"github.com/alnubras/pos-api/internal/infrastructure/repository"
	applog "github.com/alnubras/pos-api/internal/logger"
	"github.com/alnubras/pos-api/internal/presentation/http/handler"
	"github.com/alnubras/pos-api/internal/presentation/http/routes"
	"github.com/alnubras/pos-api/pkg/printer"
	"github.com/alnubras/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	applog.Init(cfg.App.Env)
	defer applog.Sync()
	log := applog.L()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Seed the catalog, promotions and default cashier
	if err := database.SeedDefaultData(db, &cfg.POS); err != nil {
		log.Warn("failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	cashierRepo := repository.NewCashierRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	heldOrderRepo := repository.NewHeldOrderRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(cashierRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, productRepo, customerRepo, promotionRepo, heldOrderRepo)
	heldOrderService := service.NewHeldOrderService(heldOrderRepo, productRepo, customerRepo)
	promotionService := service.NewPromotionService(promotionRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, orderRepo, customerRepo, productRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Enabled, cfg.Printer.Host, cfg.Printer.Port)
	if err != nil {
		log.Warn("failed to initialize printer", zap.Error(err))
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, orderRepo, cfg.POS, cfg.Printer)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Customer:  handler.NewCustomerHandler(customerService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Order:     handler.NewOrderHandler(orderService),
		HeldOrder: handler.NewHeldOrderHandler(heldOrderService),
		Promotion: handler.NewPromotionHandler(promotionService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env))

	if err := router.Run(":" + port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
