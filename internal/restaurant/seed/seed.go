// Package seed loads sample restaurants through the validating service.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant/service"
	"github.com/restaurants/restaurants-api/backend/go-services/pkg/logger"
)

// Result counts the outcome of a load.
type Result struct {
	Created int
	Skipped int
}

// Load reads a JSON array of restaurant payloads from r and creates each one.
// Records that fail validation or collide with an existing email are skipped;
// any other error stops the load.
func Load(ctx context.Context, svc service.Service, r io.Reader) (Result, error) {
	var res Result
	var records []restaurant.Payload
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return res, fmt.Errorf("decode seed data: %w", err)
	}
	for i := range records {
		item, err := svc.Create(ctx, records[i].Restaurant())
		if err == nil {
			res.Created++
			logger.Debugf("seed: created %s (%s)", item.Name, item.ID.Hex())
			continue
		}
		switch restaurant.KindOf(err) {
		case restaurant.KindValidation, restaurant.KindDuplicate:
			res.Skipped++
			logger.Warnf("seed: skipping record %d (%q): %v", i, records[i].Name, err)
		default:
			return res, fmt.Errorf("seed record %d: %w", i, err)
		}
	}
	return res, nil
}
