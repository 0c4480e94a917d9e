package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	cachefx "placefinder/cmd/fx/cache_fx"
	configfx "placefinder/cmd/fx/config_fx"
	"placefinder/cmd/fx/controllers_fx"
	llmfx "placefinder/cmd/fx/llm_fx"
	mapsfx "placefinder/cmd/fx/maps_fx"
	searchfx "placefinder/cmd/fx/search_fx"
	"placefinder/internal/api/controllers"
	"placefinder/pkg/config"
	"placefinder/pkg/middleware"
)

func main() {
	app := fx.New(
		configfx.Module,
		llmfx.Module,
		mapsfx.Module,
		cachefx.Module,
		searchfx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	limiter middleware.RateLimiter,
	searchController *controllers.SearchController,
	directionsController *controllers.DirectionsController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	RegisterRoutes(r, cfg, limiter, searchController, directionsController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	limiter middleware.RateLimiter,
	searchController *controllers.SearchController,
	directionsController *controllers.DirectionsController,
	healthController *controllers.HealthController) {

	r.GET("/health", healthController.Health)

	api := r.Group("/")
	api.Use(middleware.APIKeyMiddleware(cfg.APIKey))
	api.Use(middleware.RateLimitMiddleware(limiter))
	api.POST("/search", searchController.Search)
	api.POST("/directions", directionsController.Directions)
}
