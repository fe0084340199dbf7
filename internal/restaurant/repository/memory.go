package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant"
)

// MemoryRepo is an in-memory repository used by unit tests and by local runs
// without MongoDB. It honours the same ordering, filtering and uniqueness
// rules as MongoRepo.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[primitive.ObjectID]restaurant.Restaurant
	now   func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[primitive.ObjectID]restaurant.Restaurant), now: time.Now}
}

func (m *MemoryRepo) Create(_ context.Context, r *restaurant.Restaurant) (*restaurant.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emailTaken(r.Email, primitive.NilObjectID) {
		return nil, restaurant.Duplicate("email", r.Email, nil)
	}
	rec := *r
	rec.ID = primitive.NewObjectID()
	rec.CreatedAt = m.now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	m.store[rec.ID] = rec
	out := rec
	return &out, nil
}

func (m *MemoryRepo) List(_ context.Context, q restaurant.ListQuery) ([]*restaurant.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	needle := strings.ToLower(q.Borough)
	matches := make([]restaurant.Restaurant, 0, len(m.store))
	for _, r := range m.store {
		if needle == "" || containsFold(r.Borough, needle) || containsFold(r.Address.Borough, needle) {
			matches = append(matches, r)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID.Hex() < matches[j].ID.Hex() })

	out := []*restaurant.Restaurant{}
	for i := q.Offset(); i < len(matches) && len(out) < q.PerPage; i++ {
		r := matches[i]
		out = append(out, &r)
	}
	return out, nil
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

func (m *MemoryRepo) Get(_ context.Context, id string) (*restaurant.Restaurant, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.store[oid]
	if !ok {
		return nil, restaurant.NotFound(id)
	}
	return &r, nil
}

func (m *MemoryRepo) Replace(_ context.Context, id string, r *restaurant.Restaurant) (*restaurant.Restaurant, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.store[oid]
	if !ok {
		return nil, restaurant.NotFound(id)
	}
	if m.emailTaken(r.Email, oid) {
		return nil, restaurant.Duplicate("email", r.Email, nil)
	}
	rec := *r
	rec.ID = oid
	rec.CreatedAt = cur.CreatedAt
	rec.UpdatedAt = m.now().UTC()
	m.store[oid] = rec
	out := rec
	return &out, nil
}

func (m *MemoryRepo) Delete(_ context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[oid]; !ok {
		return restaurant.NotFound(id)
	}
	delete(m.store, oid)
	return nil
}

func (m *MemoryRepo) SetActive(_ context.Context, id string, active bool) (*restaurant.Restaurant, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.store[oid]
	if !ok {
		return nil, restaurant.NotFound(id)
	}
	rec.IsActive = active
	rec.UpdatedAt = m.now().UTC()
	m.store[oid] = rec
	return &rec, nil
}

// emailTaken reports whether another record (not self) already uses email.
// Caller must hold m.mu.
func (m *MemoryRepo) emailTaken(email string, self primitive.ObjectID) bool {
	for id, r := range m.store {
		if id != self && r.Email == email {
			return true
		}
	}
	return false
}
