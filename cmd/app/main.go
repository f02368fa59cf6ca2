package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wanderplan/cmd/fx/account_fx"
	"wanderplan/cmd/fx/db_fx"
	"wanderplan/cmd/fx/itinerary_fx"
	"wanderplan/cmd/fx/trip_fx"
	"wanderplan/internal/api/controllers"
	"wanderplan/pkg/middleware"
)

func main() {
	// Ignored in production where env vars are set directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "5000"
				}
				log.Printf("Starting HTTP server on port %s", port)
				if err := engine.Run(":" + port); err != nil {
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
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, itineraryController, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController) {

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend running")
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	api.POST("/itinerary", itineraryController.GenerateItinerary)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.POST("/saveTrip", tripController.SaveTrip)
	protected.GET("/myTrips", tripController.GetMyTrips)
	protected.DELETE("/trip/:id", tripController.DeleteTrip)
}
