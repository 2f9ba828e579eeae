package router

import (
	"time"

	"github.com/Digga-coder/POS-FRECUENZY/internal/config"
	"github.com/Digga-coder/POS-FRECUENZY/internal/handler"
	"github.com/Digga-coder/POS-FRECUENZY/internal/middleware"
	"github.com/Digga-coder/POS-FRECUENZY/internal/repository"
	"github.com/Digga-coder/POS-FRECUENZY/internal/service"
	"github.com/Digga-coder/POS-FRECUENZY/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	waiterRepo := repository.NewWaiterRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	stockLogRepo := repository.NewStockLogRepository(db)
	cartStore := repository.NewRedisCartStore(rdb, time.Duration(cfg.CartTTLHours)*time.Hour)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(waiterRepo, cfg)
	catalogSvc := service.NewCatalogService(productRepo, categoryRepo)
	cartSvc := service.NewCartService(cartStore, productRepo)
	checkoutSvc := service.NewCheckoutService(cartStore, productRepo, orderRepo, stockLogRepo, dispatcher)
	inventorySvc := service.NewInventoryService(productRepo, stockLogRepo)
	staffSvc := service.NewStaffService(waiterRepo)
	reportSvc := service.NewReportService(orderRepo, stockLogRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	healthH := handler.NewHealthHandler(db, rdb)
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(catalogSvc, inventorySvc)
	categoriesH := handler.NewCategoriesHandler(catalogSvc)
	cartH := handler.NewCartHandler(cartSvc)
	checkoutH := handler.NewCheckoutHandler(checkoutSvc)
	ordersH := handler.NewOrdersHandler(reportSvc, orderRepo)
	stockLogsH := handler.NewStockLogsHandler(inventorySvc)
	waitersH := handler.NewWaitersHandler(staffSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", healthH.Check)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/admin", middleware.LoginRateLimiter(), authH.AdminLogin)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Catalog reads — both terminals need them
		v1.GET("/categories", middleware.RequireRole("waiter", "admin"), categoriesH.List)
		v1.GET("/products", middleware.RequireRole("waiter", "admin"), productsH.List)
		v1.GET("/products/mixers", middleware.RequireRole("waiter", "admin"), productsH.ListMixers)

		// Sales flow — waiter terminal
		cart := v1.Group("/cart", middleware.RequireRole("waiter"))
		{
			cart.GET("", cartH.Get)
			cart.DELETE("", cartH.Clear)
			cart.POST("/items", cartH.AddItem)
			cart.DELETE("/items/:uniqueId", cartH.RemoveItem)
		}
		v1.POST("/checkout", middleware.RequireRole("waiter"), checkoutH.Checkout)

		// Orders — admin reads history, waiters print receipts
		v1.GET("/orders", middleware.RequireRole("admin"), ordersH.List)
		v1.GET("/orders/:id/receipt", middleware.RequireRole("waiter", "admin"), ordersH.Receipt)

		// Stock movements — admin panel and post-checkout refresh
		v1.GET("/stock-logs", middleware.RequireRole("waiter", "admin"), stockLogsH.List)

		// Product management — admin only
		prods := v1.Group("/products", middleware.RequireRole("admin"))
		{
			prods.POST("", productsH.Create)
			prods.PUT("/:id", productsH.Update)
			prods.DELETE("/:id", productsH.Delete)
		}

		// Staff management — admin only
		waiters := v1.Group("/waiters", middleware.RequireRole("admin"))
		{
			waiters.GET("", waitersH.List)
			waiters.POST("", waitersH.Create)
			waiters.PATCH("/:id/active", waitersH.Toggle)
			waiters.DELETE("/:id", waitersH.Delete)
		}

		// Reporting — admin only
		v1.GET("/reports/daily", middleware.RequireRole("admin"), reportsH.Daily)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
