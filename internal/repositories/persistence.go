package repositories

import (
	"context"

	"triptalk/internal/models/trip_models"
)

// Persistence loads and saves the whole trip store as one snapshot, in store
// order.
type Persistence interface {
	Load(ctx context.Context) ([]trip_models.TripPlan, error)
	Save(ctx context.Context, trips []trip_models.TripPlan) error
	Close() error
}
