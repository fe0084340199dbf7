package restaurant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validRestaurant() *Restaurant {
	return &Restaurant{
		Name:       "Luigi's",
		Address:    Address{Street: "1 Main St", City: "New York", State: "NY", ZipCode: "10001", Borough: "Manhattan"},
		Borough:    "Manhattan",
		Cuisine:    "Italian",
		Phone:      "(212) 555-1234",
		Email:      "luigi@example.com",
		Website:    "https://luigi.example.com",
		Rating:     4.5,
		PriceRange: "$$$",
		IsActive:   true,
	}
}

func fields(vs []Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Field)
	}
	return out
}

func TestValidator_Valid(t *testing.T) {
	v := NewValidator()
	r := validRestaurant()
	Normalize(r)
	require.Empty(t, v.Validate(r))

	r.Website = ""
	require.Empty(t, v.Validate(r), "website is optional")
}

func TestValidator_AggregatesEveryViolation(t *testing.T) {
	v := NewValidator()
	r := &Restaurant{
		Name:       strings.Repeat("x", 101),
		Cuisine:    "Klingon",
		Phone:      "555-1234",
		Email:      "not-an-email",
		Website:    "ftp://example.com",
		Rating:     6,
		PriceRange: "$$$$$",
	}
	vs := v.Validate(r)
	require.ElementsMatch(t, []string{
		"name", "cuisine", "phone", "email", "website", "rating", "priceRange",
		"address.street", "address.city", "address.state", "address.zipCode",
	}, fields(vs))

	err := ValidationFailed(vs)
	require.Equal(t, KindValidation, KindOf(err))
	require.True(t, strings.HasPrefix(err.Error(), "Validation error: "))
	require.Contains(t, err.Error(), "cuisine must be one of")
	require.Contains(t, err.Error(), "Klingon")
	require.Contains(t, err.Error(), "phone must match the format (123) 456-7890")
	require.Contains(t, err.Error(), "website must start with http:// or https://")
}

func TestValidator_RatingBounds(t *testing.T) {
	v := NewValidator()
	r := validRestaurant()
	for _, ok := range []float64{1, 3.3, 5} {
		r.Rating = ok
		require.Empty(t, v.Validate(r), ok)
	}
	for _, bad := range []float64{0, 0.99, 5.01, -1} {
		r.Rating = bad
		require.Equal(t, []string{"rating"}, fields(v.Validate(r)), bad)
	}
}

func TestPayloadDefaultsAndNormalize(t *testing.T) {
	p := &Payload{
		Name:  "  Noodle Bar ",
		Email: " Owner@Example.COM ",
		Hours: Hours{Monday: "9-5", Friday: "  "},
	}
	r := p.Restaurant()
	require.Equal(t, DefaultRating, r.Rating)
	require.Equal(t, DefaultPriceRange, r.PriceRange)
	require.True(t, r.IsActive)

	Normalize(r)
	require.Equal(t, "Noodle Bar", r.Name)
	require.Equal(t, "owner@example.com", r.Email)
	require.Equal(t, "9-5", r.Hours.Monday)
	require.Equal(t, ClosedHours, r.Hours.Tuesday)
	require.Equal(t, ClosedHours, r.Hours.Friday)
	require.Equal(t, ClosedHours, r.Hours.Sunday)

	zero := 0.0
	inactive := false
	p = &Payload{Rating: &zero, IsActive: &inactive}
	r = p.Restaurant()
	require.Equal(t, 0.0, r.Rating, "explicit rating must not be defaulted")
	require.False(t, r.IsActive)
}
