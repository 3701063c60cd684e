package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"tripcast/cmd/fx/audio_fx"
	"tripcast/cmd/fx/config_fx"
	"tripcast/cmd/fx/controllers_fx"
	"tripcast/cmd/fx/fallback_fx"
	"tripcast/cmd/fx/llm_fx"
	"tripcast/cmd/fx/planner_fx"
	"tripcast/cmd/fx/session_fx"
	"tripcast/cmd/fx/tools_fx"
	"tripcast/cmd/fx/tts_fx"
	"tripcast/internal/api/controllers"
	"tripcast/internal/config"
	"tripcast/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		tools_fx.Module,
		llm_fx.Module,
		fallback_fx.Module,
		tts_fx.Module,
		planner_fx.Module,
		audio_fx.Module,
		session_fx.Module,
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
	sessionController *controllers.SessionController,
	itineraryController *controllers.ItineraryController,
	audioController *controllers.AudioController,
	toolsController *controllers.ToolsController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cfg, sessionController, itineraryController, audioController, toolsController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	sessionController *controllers.SessionController,
	itineraryController *controllers.ItineraryController,
	audioController *controllers.AudioController,
	toolsController *controllers.ToolsController,
) {
	r.POST("/sessions", sessionController.CreateSession)

	itineraries := r.Group("/itineraries")
	itineraries.Use(middleware.SessionAuthMiddleware([]byte(cfg.JWTSecret)))
	itineraries.POST("/generate", itineraryController.GenerateItinerary)
	itineraries.GET("/current", itineraryController.CurrentItinerary)
	itineraries.POST("/days/:index/audio", audioController.DayAudio)

	toolsGroup := r.Group("/tools")
	toolsGroup.GET("/location-details", toolsController.LocationDetails)
	toolsGroup.GET("/travel-time", toolsController.TravelTime)
}
