package api

import (
	"fmt"
	"time"

	"recipe-quantity/internal/api/handlers/health"
	quantityHandler "recipe-quantity/internal/api/handlers/quantity"
	"recipe-quantity/internal/api/middleware"
	"recipe-quantity/internal/core/cache"
	recipeService "recipe-quantity/internal/core/recipe"
	"recipe-quantity/internal/infrastructure/config"
	"recipe-quantity/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 設置路由，cacheManager 可為 nil（停用快取）
func SetupRouter(cfg *config.Config, cacheManager *cache.CacheManager) *gin.Engine {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(common.GenerateUUID)))
	router.Use(middleware.Logger())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// 初始化服務
	ingredientSvc := recipeService.NewIngredientService(cacheManager, cfg.Scaling)
	healthHandler := health.NewHandler(cfg, cacheManager)
	qtyHandler := quantityHandler.NewHandler(ingredientSvc)

	// 健康檢查路由
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		api.GET("/units", qtyHandler.ListUnits)
		api.GET("/units/:unit", qtyHandler.GetUnit)
		api.GET("/conversions", qtyHandler.Conversions)

		quantityGroup := api.Group("/quantity")
		{
			quantityGroup.POST("/parse", qtyHandler.Parse)
			quantityGroup.POST("/format", qtyHandler.Format)
			quantityGroup.POST("/scale", qtyHandler.Scale)
		}

		recipeGroup := api.Group("/recipe")
		{
			recipeGroup.POST("/scale", qtyHandler.ScaleRecipe)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		common.WriteError(c, common.ErrNotFound.WithErr(fmt.Errorf("%s %s", c.Request.Method, c.Request.URL.Path)))
	})

	common.LogInfo("Router setup completed successfully",
		zap.Bool("cache_enabled", cacheManager != nil),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router
}
