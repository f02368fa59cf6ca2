package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wanderplan/internal/models/db_models"
)

type TripRepository interface {
	InsertTrip(ctx context.Context, trip *db_models.Trip) error
	ListTripsByUser(ctx context.Context, userId string) ([]db_models.Trip, error)
	DeleteTripByIdAndUser(ctx context.Context, tripId string, userId string) (*db_models.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

func (t *tripRepository) InsertTrip(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Create(trip).Error
}

func (t *tripRepository) ListTripsByUser(ctx context.Context, userId string) ([]db_models.Trip, error) {

	var trips []db_models.Trip
	err := t.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// DeleteTripByIdAndUser removes a trip only when the owner matches. A trip id
// belonging to another user reports not found, same as an absent id.
func (t *tripRepository) DeleteTripByIdAndUser(ctx context.Context, tripId string, userId string) (*db_models.Trip, error) {

	var trip db_models.Trip
	err := t.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripId, userId).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := t.db.WithContext(ctx).Delete(&trip).Error; err != nil {
		return nil, err
	}

	return &trip, nil
}
