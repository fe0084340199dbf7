package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant/service"
)

const records = `[
  {"name": "Luigi's", "address": {"street": "1 Mott St", "city": "New York", "state": "NY", "zipCode": "10013"},
   "borough": "Manhattan", "cuisine": "Italian", "phone": "(212) 555-0101", "email": "luigi@example.com"},
  {"name": "Bad Cuisine", "address": {"street": "2 Elm", "city": "New York", "state": "NY", "zipCode": "10013"},
   "cuisine": "Klingon", "phone": "(212) 555-0102", "email": "bad@example.com"},
  {"name": "Luigi Again", "address": {"street": "3 Mott St", "city": "New York", "state": "NY", "zipCode": "10013"},
   "cuisine": "Italian", "phone": "(212) 555-0103", "email": "LUIGI@example.com"},
  {"name": "Thai Garden", "address": {"street": "4 Main St", "city": "Flushing", "state": "NY", "zipCode": "11354"},
   "borough": "Queens", "cuisine": "Thai", "phone": "(718) 555-0104", "email": "thai@example.com"}
]`

func TestLoadSkipsInvalidAndDuplicates(t *testing.T) {
	svc := service.NewMemoryService()
	res, err := Load(context.Background(), svc, strings.NewReader(records))
	require.NoError(t, err)
	require.Equal(t, Result{Created: 2, Skipped: 2}, res)

	items, err := svc.List(context.Background(), restaurant.ListQuery{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestLoadRejectsMalformedInput(t *testing.T) {
	_, err := Load(context.Background(), service.NewMemoryService(), strings.NewReader(`{"name": "not an array"}`))
	require.Error(t, err)
}

type brokenService struct{ service.Service }

func (brokenService) Create(context.Context, *restaurant.Restaurant) (*restaurant.Restaurant, error) {
	return nil, restaurant.Storage("insert", errors.New("not primary"))
}

func TestLoadStopsOnStorageError(t *testing.T) {
	res, err := Load(context.Background(), brokenService{}, strings.NewReader(records))
	require.Error(t, err)
	require.Equal(t, restaurant.KindStorage, restaurant.KindOf(err))
	require.Zero(t, res.Created)
}
