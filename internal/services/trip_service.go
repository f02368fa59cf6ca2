package services

import (
	"context"

	"github.com/google/uuid"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, userId string, request request_models.SaveTripRequest) (*response_models.TripResponse, error)
	GetMyTrips(ctx context.Context, userId string) ([]response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripId string, userId string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (t *TripService) SaveTrip(ctx context.Context, userId string, request request_models.SaveTripRequest) (*response_models.TripResponse, error) {

	ownerId, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	trip := &db_models.Trip{
		UserID:      ownerId,
		Destination: request.Destination,
		Days:        request.Days,
		Interest:    request.Interest,
		Plan:        request.Plan,
	}

	if err := t.tripRepo.InsertTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toTripResponse(trip)
	return &response, nil
}

func (t *TripService) GetMyTrips(ctx context.Context, userId string) ([]response_models.TripResponse, error) {

	trips, err := t.tripRepo.ListTripsByUser(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	tripResponses := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		tripResponses = append(tripResponses, toTripResponse(&trips[i]))
	}

	return tripResponses, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, tripId string, userId string) error {

	deleted, err := t.tripRepo.DeleteTripByIdAndUser(ctx, tripId, userId)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if deleted == nil {
		return utils.ErrTripNotFound
	}

	return nil
}

func toTripResponse(trip *db_models.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:          trip.ID.String(),
		User:        trip.UserID.String(),
		Destination: trip.Destination,
		Days:        trip.Days,
		Interest:    trip.Interest,
		Plan:        trip.Plan,
		CreatedAt:   trip.CreatedAt,
	}
}
