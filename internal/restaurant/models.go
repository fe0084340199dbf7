package restaurant

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cuisines lists every accepted cuisine value.
var Cuisines = []string{"Italian", "Chinese", "Mexican", "Indian", "American", "French", "Japanese", "Thai", "Mediterranean", "Other"}

// PriceRanges lists every accepted price range value.
var PriceRanges = []string{"$", "$$", "$$$", "$$$$"}

const (
	DefaultRating     = 1.0
	DefaultPriceRange = "$$"
	ClosedHours       = "Closed"
)

// Address is the structured postal address of a restaurant.
type Address struct {
	Street  string `json:"street" bson:"street" validate:"required"`
	City    string `json:"city" bson:"city" validate:"required"`
	State   string `json:"state" bson:"state" validate:"required"`
	ZipCode string `json:"zipCode" bson:"zipCode" validate:"required"`
	Borough string `json:"borough,omitempty" bson:"borough,omitempty"`
}

// Hours holds free-text opening hours for each weekday.
type Hours struct {
	Monday    string `json:"monday" bson:"monday"`
	Tuesday   string `json:"tuesday" bson:"tuesday"`
	Wednesday string `json:"wednesday" bson:"wednesday"`
	Thursday  string `json:"thursday" bson:"thursday"`
	Friday    string `json:"friday" bson:"friday"`
	Saturday  string `json:"saturday" bson:"saturday"`
	Sunday    string `json:"sunday" bson:"sunday"`
}

// days returns pointers to every weekday field in calendar order.
func (h *Hours) days() []*string {
	return []*string{&h.Monday, &h.Tuesday, &h.Wednesday, &h.Thursday, &h.Friday, &h.Saturday, &h.Sunday}
}

// Restaurant is the persistent restaurant entity.
type Restaurant struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name" validate:"required,max=100"`
	Address    Address            `json:"address" bson:"address"`
	Borough    string             `json:"borough,omitempty" bson:"borough,omitempty"`
	Cuisine    string             `json:"cuisine" bson:"cuisine" validate:"required,cuisine"`
	Phone      string             `json:"phone" bson:"phone" validate:"required,phone"`
	Email      string             `json:"email" bson:"email" validate:"required,email"`
	Website    string             `json:"website,omitempty" bson:"website,omitempty" validate:"omitempty,website"`
	Rating     float64            `json:"rating" bson:"rating" validate:"gte=1,lte=5"`
	PriceRange string             `json:"priceRange" bson:"priceRange" validate:"required,pricerange"`
	Hours      Hours              `json:"hours" bson:"hours"`
	IsActive   bool               `json:"isActive" bson:"isActive"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Payload is the request body accepted by create and replace. Pointer fields
// distinguish "absent" from an explicit zero value so defaults only apply to
// omitted fields.
type Payload struct {
	Name       string   `json:"name"`
	Address    Address  `json:"address"`
	Borough    string   `json:"borough"`
	Cuisine    string   `json:"cuisine"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Website    string   `json:"website"`
	Rating     *float64 `json:"rating"`
	PriceRange *string  `json:"priceRange"`
	Hours      Hours    `json:"hours"`
	IsActive   *bool    `json:"isActive"`
}

// Restaurant converts the payload into an entity with defaults applied.
func (p *Payload) Restaurant() *Restaurant {
	r := &Restaurant{
		Name:       p.Name,
		Address:    p.Address,
		Borough:    p.Borough,
		Cuisine:    p.Cuisine,
		Phone:      p.Phone,
		Email:      p.Email,
		Website:    p.Website,
		Rating:     DefaultRating,
		PriceRange: DefaultPriceRange,
		Hours:      p.Hours,
		IsActive:   true,
	}
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.PriceRange != nil {
		r.PriceRange = *p.PriceRange
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
	return r
}

// Normalize trims string fields, lower-cases the email and fills every
// missing weekday with "Closed". It is applied before validation on every
// write.
func Normalize(r *Restaurant) {
	r.Name = strings.TrimSpace(r.Name)
	r.Address.Street = strings.TrimSpace(r.Address.Street)
	r.Address.City = strings.TrimSpace(r.Address.City)
	r.Address.State = strings.TrimSpace(r.Address.State)
	r.Address.ZipCode = strings.TrimSpace(r.Address.ZipCode)
	r.Address.Borough = strings.TrimSpace(r.Address.Borough)
	r.Borough = strings.TrimSpace(r.Borough)
	r.Cuisine = strings.TrimSpace(r.Cuisine)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Website = strings.TrimSpace(r.Website)
	for _, d := range r.Hours.days() {
		*d = strings.TrimSpace(*d)
		if *d == "" {
			*d = ClosedHours
		}
	}
}
