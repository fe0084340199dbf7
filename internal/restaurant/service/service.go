package service

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant/repository"
	"github.com/restaurants/restaurants-api/backend/go-services/pkg/metrics"
)

// Service defines the restaurant operations used by the handler layer. Writes
// are normalized and validated before they reach storage.
type Service interface {
	Create(ctx context.Context, r *restaurant.Restaurant) (*restaurant.Restaurant, error)
	List(ctx context.Context, q restaurant.ListQuery) ([]*restaurant.Restaurant, error)
	Get(ctx context.Context, id string) (*restaurant.Restaurant, error)
	Replace(ctx context.Context, id string, r *restaurant.Restaurant) (*restaurant.Restaurant, error)
	Delete(ctx context.Context, id string) error
	// Deactivate is the soft-delete variant: the record stays and isActive
	// becomes false. Delete always removes the record.
	Deactivate(ctx context.Context, id string) (*restaurant.Restaurant, error)
}

// New returns a Service over the given storage repository.
func New(repo repository.Repository) Service {
	return &restaurantService{repo: repo, validator: restaurant.NewValidator()}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() Service {
	return New(repository.NewMemoryRepo())
}

// NewMongoService returns a Service backed by a MongoDB collection.
// Caller owns the client and is responsible for index creation.
func NewMongoService(col *mongo.Collection) Service {
	return New(repository.NewMongoRepo(col))
}

type restaurantService struct {
	repo      repository.Repository
	validator *restaurant.Validator
}

func (s *restaurantService) check(r *restaurant.Restaurant) error {
	restaurant.Normalize(r)
	if vs := s.validator.Validate(r); len(vs) > 0 {
		return restaurant.ValidationFailed(vs)
	}
	return nil
}

func (s *restaurantService) Create(ctx context.Context, r *restaurant.Restaurant) (*restaurant.Restaurant, error) {
	if err := s.check(r); err != nil {
		return nil, observe("create", err)
	}
	out, err := s.repo.Create(ctx, r)
	return out, observe("create", err)
}

func (s *restaurantService) List(ctx context.Context, q restaurant.ListQuery) ([]*restaurant.Restaurant, error) {
	out, err := s.repo.List(ctx, q)
	return out, observe("list", err)
}

func (s *restaurantService) Get(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	out, err := s.repo.Get(ctx, id)
	return out, observe("get", err)
}

func (s *restaurantService) Replace(ctx context.Context, id string, r *restaurant.Restaurant) (*restaurant.Restaurant, error) {
	if err := s.check(r); err != nil {
		return nil, observe("replace", err)
	}
	out, err := s.repo.Replace(ctx, id, r)
	return out, observe("replace", err)
}

func (s *restaurantService) Delete(ctx context.Context, id string) error {
	return observe("delete", s.repo.Delete(ctx, id))
}

func (s *restaurantService) Deactivate(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	out, err := s.repo.SetActive(ctx, id, false)
	return out, observe("deactivate", err)
}

// observe counts the operation outcome and passes err through unchanged.
func observe(op string, err error) error {
	outcome := "ok"
	if err != nil {
		outcome = restaurant.KindOf(err).String()
	}
	metrics.RestaurantOperations.WithLabelValues(op, outcome).Inc()
	return err
}
