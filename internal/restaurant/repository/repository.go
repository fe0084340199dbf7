package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant"
)

// Repository is the storage contract for restaurants. Implementations return
// *restaurant.Error values tagged with the matching Kind and never validate
// field contents; that is the service's job.
type Repository interface {
	// Create stores r, assigning its ID and timestamps.
	Create(ctx context.Context, r *restaurant.Restaurant) (*restaurant.Restaurant, error)
	// List returns one page of restaurants ordered by ascending ID. An empty
	// borough disables the filter.
	List(ctx context.Context, q restaurant.ListQuery) ([]*restaurant.Restaurant, error)
	Get(ctx context.Context, id string) (*restaurant.Restaurant, error)
	// Replace overwrites every caller-owned field of the stored record,
	// keeping ID and CreatedAt.
	Replace(ctx context.Context, id string, r *restaurant.Restaurant) (*restaurant.Restaurant, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) (*restaurant.Restaurant, error)
}

// parseID converts a hex key into an ObjectID or returns a KindInvalidKey error.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, restaurant.InvalidKey(id)
	}
	return oid, nil
}
