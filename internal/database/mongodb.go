package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/restaurants/restaurants-api/backend/go-services/pkg/logger"
)

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// ConnectionInfo describes how to reach the store.
type ConnectionInfo struct {
	URI      string
	Database string
	Timeout  time.Duration
	// Attempts bounds the connection retries; the delay doubles after each failure.
	Attempts int
	Backoff  time.Duration
}

// Handle owns the process-wide Mongo client and its connection state. It is
// created once at startup and shared by every request.
type Handle struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration

	mu        sync.RWMutex
	connected bool
}

// Initialize blocks until MongoDB answers a ping or the attempts are used up.
func Initialize(ctx context.Context, info ConnectionInfo) (*Handle, error) {
	attempts := info.Attempts
	if attempts < 1 {
		attempts = 1
	}
	backoff := info.Backoff
	if backoff <= 0 {
		backoff = time.Second
	}
	if info.Timeout <= 0 {
		info.Timeout = 10 * time.Second
	}
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		client, err := ConnectMongo(ctx, info.URI, info.Timeout)
		if err == nil {
			return &Handle{client: client, db: client.Database(info.Database), timeout: info.Timeout, connected: true}, nil
		}
		lastErr = err
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, attempts, err)
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}
	return nil, fmt.Errorf("could not connect to MongoDB after %d attempts: %w", attempts, lastErr)
}

// Collection returns a collection of the configured database.
func (h *Handle) Collection(name string) *mongo.Collection {
	return h.db.Collection(name)
}

// Ping checks the server and records the result as the connection state.
func (h *Handle) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	err := h.client.Ping(ctx, readpref.Primary())
	h.mu.Lock()
	h.connected = err == nil
	h.mu.Unlock()
	return err
}

// Connected reports the connection state observed by the last ping.
func (h *Handle) Connected() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.connected
}

// Close disconnects the client; the handle reports disconnected afterwards.
func (h *Handle) Close(ctx context.Context) error {
	h.mu.Lock()
	h.connected = false
	h.mu.Unlock()
	return h.client.Disconnect(ctx)
}
