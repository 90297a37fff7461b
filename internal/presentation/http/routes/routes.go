package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alnubras/pos-api/internal/config"
	domainRepo "github.com/alnubras/pos-api/internal/domain/repository"
	"github.com/alnubras/pos-api/internal/presentation/http/handler"
	"github.com/alnubras/pos-api/internal/presentation/http/middleware"
	"github.com/alnubras/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Customer  *handler.CustomerHandler
	Catalog   *handler.CatalogHandler
	Order     *handler.OrderHandler
	HeldOrder *handler.HeldOrderHandler
	Promotion *handler.PromotionHandler
	Dashboard *handler.DashboardHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-cashier rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/register", middleware.RequireAdmin(), h.Auth.Register)

	registerOrderRoutes(protected, h, deps)
	registerHeldOrderRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerCatalogRoutes(protected, h)
	registerPromotionRoutes(protected, h)
	registerDashboardRoutes(protected, h)
	registerPrinterRoutes(protected, h)
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/due", h.Order.Due)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/cancel", h.Order.Cancel)
		orders.POST("/:id/pay", h.Order.PayDue)
	}
}

func registerHeldOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	held := protected.Group("/held-orders")
	{
		held.GET("", h.HeldOrder.List)
		held.POST("", h.HeldOrder.Hold)
		held.POST("/:id/restore", h.HeldOrder.Restore)
		held.DELETE("/:id", h.HeldOrder.Delete)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", middleware.RequireAdmin(), h.Customer.Delete)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/catalog", h.Catalog.Browse)

	products := protected.Group("/products")
	{
		products.GET("", h.Catalog.ListProducts)
		products.POST("", middleware.RequireAdmin(), h.Catalog.CreateProduct)
		products.GET("/:id", h.Catalog.GetProduct)
		products.PUT("/:id", middleware.RequireAdmin(), h.Catalog.UpdateProduct)
		products.DELETE("/:id", middleware.RequireAdmin(), h.Catalog.DeleteProduct)
		products.POST("/:id/models", middleware.RequireAdmin(), h.Catalog.AddModel)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Catalog.ListCategories)
		categories.POST("", middleware.RequireAdmin(), h.Catalog.CreateCategory)
	}
}

func registerPromotionRoutes(protected *gin.RouterGroup, h *Handlers) {
	promotions := protected.Group("/promotions")
	{
		promotions.GET("", h.Promotion.List)
		promotions.POST("", middleware.RequireAdmin(), h.Promotion.Create)
		promotions.POST("/apply", h.Promotion.Apply)
		promotions.DELETE("/:id", middleware.RequireAdmin(), h.Promotion.Deactivate)
	}
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/stats", h.Dashboard.Stats)
		dashboard.GET("/daily-sales", h.Dashboard.DailySales)
		dashboard.GET("/top-products", h.Dashboard.TopProducts)
		dashboard.GET("/sales-by-item-type", h.Dashboard.SalesByItemType)
		dashboard.GET("/sales-by-payment-method", h.Dashboard.SalesByPaymentMethod)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/orders/:id/receipt", h.Printer.PrintReceipt)
	}
}
