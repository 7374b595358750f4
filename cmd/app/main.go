package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"lounge/cmd/fx/bookmark_fx"
	"lounge/cmd/fx/catalog_fx"
	"lounge/cmd/fx/config_fx"
	"lounge/cmd/fx/controllers_fx"
	"lounge/cmd/fx/profile_fx"
	"lounge/cmd/fx/quiz_fx"
	"lounge/internal/api/controllers"
	"lounge/internal/config"
	"lounge/pkg/middleware"

	"lounge/cmd/fx/db_fx"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		catalog_fx.Module,
		quiz_fx.Module,
		profile_fx.Module,
		bookmark_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
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
	destinationsController *controllers.DestinationsController,
	quizController *controllers.QuizController,
	profilesController *controllers.ProfilesController,
	bookmarksController *controllers.BookmarksController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, destinationsController, quizController, profilesController, bookmarksController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	destinationsController *controllers.DestinationsController,
	quizController *controllers.QuizController,
	profilesController *controllers.ProfilesController,
	bookmarksController *controllers.BookmarksController) {

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("", destinationsController.ListDestinations)
	destinationsGroup.GET("/:id", destinationsController.GetDestinationByID)
	destinationsGroup.POST("/:id/quiz", middleware.OptionalProfileMiddleware(), quizController.StartSession)

	sessionsGroup := r.Group("/quiz/sessions")
	sessionsGroup.POST("/:sessionId/answer", quizController.SubmitAnswer)
	sessionsGroup.POST("/:sessionId/advance", quizController.Advance)
	sessionsGroup.GET("/:sessionId/result", quizController.GetResult)
	sessionsGroup.DELETE("/:sessionId", quizController.AbandonSession)

	resultsGroup := r.Group("/results")
	resultsGroup.Use(middleware.ProfileAuthMiddleware())
	resultsGroup.GET("", quizController.ListResults)

	profilesGroup := r.Group("/profiles")
	profilesGroup.POST("", profilesController.CreateProfile)
	profilesGroup.GET("", profilesController.ListProfiles)
	profilesGroup.DELETE("/:id", profilesController.DeleteProfile)

	bookmarksGroup := r.Group("/bookmarks")
	bookmarksGroup.Use(middleware.ProfileAuthMiddleware())
	bookmarksGroup.POST("", bookmarksController.CreateBookmark)
	bookmarksGroup.GET("", bookmarksController.ListBookmarks)
	bookmarksGroup.DELETE("/:id", bookmarksController.DeleteBookmark)
}
