package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant"
)

// MongoRepo implements Repository on a MongoDB collection. Documents are keyed
// by ObjectID "_id"; email carries a unique index.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

// EnsureIndexes creates the unique email index and the borough lookup indexes.
// It is idempotent.
func (m *MongoRepo) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "borough", Value: 1}}},
		{Keys: bson.D{{Key: "address.borough", Value: 1}}},
	}
	if _, err := m.col.Indexes().CreateMany(ctx, models); err != nil {
		return restaurant.Storage("create indexes", err)
	}
	return nil
}

func (m *MongoRepo) Create(ctx context.Context, r *restaurant.Restaurant) (*restaurant.Restaurant, error) {
	rec := *r
	rec.ID = primitive.NewObjectID()
	rec.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	rec.UpdatedAt = rec.CreatedAt
	if _, err := m.col.InsertOne(ctx, &rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, restaurant.Duplicate("email", r.Email, err)
		}
		return nil, restaurant.Storage("insert", err)
	}
	return &rec, nil
}

// listFilter matches the borough text case-insensitively anywhere in the
// top-level or the address borough.
func listFilter(borough string) bson.M {
	if borough == "" {
		return bson.M{}
	}
	rx := primitive.Regex{Pattern: regexp.QuoteMeta(borough), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"borough": rx},
		bson.M{"address.borough": rx},
	}}
}

func listOptions(q restaurant.ListQuery) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.PerPage))
}

func (m *MongoRepo) List(ctx context.Context, q restaurant.ListQuery) ([]*restaurant.Restaurant, error) {
	cur, err := m.col.Find(ctx, listFilter(q.Borough), listOptions(q))
	if err != nil {
		return nil, restaurant.Storage("find", err)
	}
	defer cur.Close(ctx)
	out := []*restaurant.Restaurant{}
	for cur.Next(ctx) {
		var r restaurant.Restaurant
		if err := cur.Decode(&r); err != nil {
			return nil, restaurant.Storage("decode", err)
		}
		out = append(out, &r)
	}
	if err := cur.Err(); err != nil {
		return nil, restaurant.Storage("cursor", err)
	}
	return out, nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var r restaurant.Restaurant
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&r); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, restaurant.NotFound(id)
		}
		return nil, restaurant.Storage("find", err)
	}
	return &r, nil
}

// replaceUpdate builds a single $set/$unset update that overwrites every
// caller-owned field, leaving _id and createdAt untouched.
func replaceUpdate(r *restaurant.Restaurant, now time.Time) bson.M {
	set := bson.M{
		"name":       r.Name,
		"address":    r.Address,
		"cuisine":    r.Cuisine,
		"phone":      r.Phone,
		"email":      r.Email,
		"rating":     r.Rating,
		"priceRange": r.PriceRange,
		"hours":      r.Hours,
		"isActive":   r.IsActive,
		"updatedAt":  now,
	}
	unset := bson.M{}
	if r.Borough != "" {
		set["borough"] = r.Borough
	} else {
		unset["borough"] = ""
	}
	if r.Website != "" {
		set["website"] = r.Website
	} else {
		unset["website"] = ""
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

func (m *MongoRepo) Replace(ctx context.Context, id string, r *restaurant.Restaurant) (*restaurant.Restaurant, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	update := replaceUpdate(r, time.Now().UTC().Truncate(time.Millisecond))
	return m.findOneAndUpdate(ctx, id, oid, update)
}

func (m *MongoRepo) SetActive(ctx context.Context, id string, active bool) (*restaurant.Restaurant, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now().UTC().Truncate(time.Millisecond)}}
	return m.findOneAndUpdate(ctx, id, oid, update)
}

func (m *MongoRepo) findOneAndUpdate(ctx context.Context, id string, oid primitive.ObjectID, update bson.M) (*restaurant.Restaurant, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out restaurant.Restaurant
	if err := m.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, restaurant.NotFound(id)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, restaurant.Duplicate("email", emailOf(update), err)
		}
		return nil, restaurant.Storage("update", err)
	}
	return &out, nil
}

func emailOf(update bson.M) string {
	if set, ok := update["$set"].(bson.M); ok {
		if e, ok := set["email"].(string); ok {
			return e
		}
	}
	return ""
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return restaurant.Storage("delete", err)
	}
	if res.DeletedCount == 0 {
		return restaurant.NotFound(id)
	}
	return nil
}
