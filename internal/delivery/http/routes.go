package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrysync/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		ingredients := v1.Group("/ingredients")
		{
			ingredients.POST("/parse", handler.ParseIngredients)
		}

		recipes := v1.Group("/recipes")
		{
			recipes.POST("/classify", handler.ClassifyRecipe)
		}

		lists := v1.Group("/lists")
		{
			lists.POST("", handler.CreateList)
			lists.GET("/:id", handler.GetList)
			lists.POST("/:id/items", handler.AddItems)
			lists.POST("/:id/recipes", handler.AddRecipe)
			lists.POST("/:id/mealplan", handler.AddMealPlan)
		}
	}

	return router
}
