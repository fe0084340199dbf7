package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant"
)

func sample(i int, borough string) *restaurant.Restaurant {
	return &restaurant.Restaurant{
		Name:       fmt.Sprintf("Place %d", i),
		Address:    restaurant.Address{Street: "1 St", City: "NYC", State: "NY", ZipCode: "10001"},
		Borough:    borough,
		Cuisine:    "Other",
		Phone:      "(212) 555-0000",
		Email:      fmt.Sprintf("place%d@example.com", i),
		Rating:     3,
		PriceRange: "$$",
		IsActive:   true,
	}
}

func TestMemoryRepoCRUD(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, sample(1, "Queens"))
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())
	require.False(t, created.CreatedAt.IsZero())
	id := created.ID.Hex()

	got, err := r.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Place 1", got.Name)

	repl := sample(1, "Brooklyn")
	repl.Name = "Renamed"
	updated, err := r.Replace(ctx, id, repl)
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.Equal(t, created.ID, updated.ID)

	off, err := r.SetActive(ctx, id, false)
	require.NoError(t, err)
	require.False(t, off.IsActive)

	require.NoError(t, r.Delete(ctx, id))
	_, err = r.Get(ctx, id)
	require.Equal(t, restaurant.KindNotFound, restaurant.KindOf(err))
	err = r.Delete(ctx, id)
	require.Equal(t, restaurant.KindNotFound, restaurant.KindOf(err))
}

func TestMemoryRepo_InvalidKey(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	_, err := r.Get(ctx, "nope")
	require.Equal(t, restaurant.KindInvalidKey, restaurant.KindOf(err))
	_, err = r.Replace(ctx, "nope", sample(1, ""))
	require.Equal(t, restaurant.KindInvalidKey, restaurant.KindOf(err))
	require.Equal(t, restaurant.KindInvalidKey, restaurant.KindOf(r.Delete(ctx, "nope")))
	_, err = r.SetActive(ctx, "nope", false)
	require.Equal(t, restaurant.KindInvalidKey, restaurant.KindOf(err))
}

func TestMemoryRepo_DuplicateEmail(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	a, err := r.Create(ctx, sample(1, ""))
	require.NoError(t, err)
	_, err = r.Create(ctx, sample(1, ""))
	require.Equal(t, restaurant.KindDuplicate, restaurant.KindOf(err))

	b, err := r.Create(ctx, sample(2, ""))
	require.NoError(t, err)
	_, err = r.Replace(ctx, b.ID.Hex(), sample(1, ""))
	require.Equal(t, restaurant.KindDuplicate, restaurant.KindOf(err))

	// replacing a record with its own email is fine
	_, err = r.Replace(ctx, a.ID.Hex(), sample(1, "Bronx"))
	require.NoError(t, err)
}

func TestMemoryRepo_ListPaginationIsDisjointAndOrdered(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	for i := 0; i < 7; i++ {
		_, err := r.Create(ctx, sample(i, ""))
		require.NoError(t, err)
	}
	p1, err := r.List(ctx, restaurant.ListQuery{Page: 1, PerPage: 2})
	require.NoError(t, err)
	p2, err := r.List(ctx, restaurant.ListQuery{Page: 2, PerPage: 2})
	require.NoError(t, err)
	all, err := r.List(ctx, restaurant.ListQuery{Page: 1, PerPage: 4})
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, all, append(p1, p2...))
	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].ID.Hex(), all[i].ID.Hex())
	}

	last, err := r.List(ctx, restaurant.ListQuery{Page: 4, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, last, 1)

	beyond, err := r.List(ctx, restaurant.ListQuery{Page: 50, PerPage: 10})
	require.NoError(t, err)
	require.NotNil(t, beyond)
	require.Empty(t, beyond)
}

func TestMemoryRepo_BoroughFilterMatchesSubstringInEitherField(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	_, err := r.Create(ctx, sample(1, "Manhattan"))
	require.NoError(t, err)
	nested := sample(2, "")
	nested.Address.Borough = "MANHATTAN"
	_, err = r.Create(ctx, nested)
	require.NoError(t, err)
	_, err = r.Create(ctx, sample(3, "Queens"))
	require.NoError(t, err)

	got, err := r.List(ctx, restaurant.ListQuery{Page: 1, PerPage: 10, Borough: "hatt"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = r.List(ctx, restaurant.ListQuery{Page: 1, PerPage: 10, Borough: "Staten"})
	require.NoError(t, err)
	require.Empty(t, got)
}
