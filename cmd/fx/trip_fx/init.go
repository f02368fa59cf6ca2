package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderplan/internal/api/controllers"
	"wanderplan/internal/repositories"
	"wanderplan/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideTripService, provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
