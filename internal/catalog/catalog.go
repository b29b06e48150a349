// Package catalog serves the static restaurant reference data. The catalog
// is read once at startup and never mutated; reservations reference it by
// numeric id for display purposes only.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

type Restaurant struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Cuisine    string `json:"cuisine"`
	PriceRange string `json:"price_range"`
}

type Store struct {
	restaurants []Restaurant
	byID        map[int]Restaurant
}

// Load reads the restaurant catalog from a JSON file. A missing or corrupt
// file is a startup failure, not a per-request condition.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read restaurant catalog: %w", err)
	}

	var restaurants []Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		return nil, fmt.Errorf("parse restaurant catalog: %w", err)
	}

	return New(restaurants), nil
}

// New builds a Store from an already-loaded record set.
func New(restaurants []Restaurant) *Store {
	byID := make(map[int]Restaurant, len(restaurants))
	for _, r := range restaurants {
		byID[r.ID] = r
	}
	return &Store{restaurants: restaurants, byID: byID}
}

// List returns a copy so callers cannot mutate the catalog through it.
func (s *Store) List() []Restaurant {
	return slices.Clone(s.restaurants)
}

// GetByID returns nil when the id is unknown. A reservation pointing at an
// absent restaurant is served without display data, never rejected.
func (s *Store) GetByID(id int) *Restaurant {
	r, ok := s.byID[id]
	if !ok {
		return nil
	}
	return &r
}
