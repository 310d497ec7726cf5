// Package inventory holds the item rules and the service the console and
// subcommands call into.
package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/saltyorg/stockroom/internal/database"
)

// ErrNotFound is returned when no item has the requested ID.
var ErrNotFound = errors.New("item not found")

// Item is an inventory record.
type Item = database.Item

// Store is the persistence the service needs; *database.Manager satisfies it.
type Store interface {
	CreateItem(name string, quantity int) (*database.Item, error)
	UpdateItem(id int64, name string, quantity int) (int64, error)
	DeleteItem(id int64) (int64, error)
	GetItem(id int64) (*database.Item, error)
	ListItems() ([]database.Item, error)
}

// Service validates input before handing it to the store.
type Service struct {
	store Store
}

// NewService creates an inventory service backed by store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Add validates and stores a new item.
func (s *Service) Add(ctx context.Context, name string, quantity int) (*Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name = normalizeName(name)
	if err := Validate(name, quantity); err != nil {
		return nil, err
	}

	item, err := s.store.CreateItem(name, quantity)
	if err != nil {
		return nil, err
	}

	log.Debug().Int64("id", item.ID).Str("name", item.Name).Int("quantity", item.Quantity).Msg("Item added")
	return item, nil
}

// Update replaces the name and quantity of an existing item.
func (s *Service) Update(ctx context.Context, id int64, name string, quantity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateID(id); err != nil {
		return err
	}
	name = normalizeName(name)
	if err := Validate(name, quantity); err != nil {
		return err
	}

	n, err := s.store.UpdateItem(id, name, quantity)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	log.Debug().Int64("id", id).Str("name", name).Int("quantity", quantity).Msg("Item updated")
	return nil
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateID(id); err != nil {
		return err
	}

	n, err := s.store.DeleteItem(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	log.Debug().Int64("id", id).Msg("Item deleted")
	return nil
}

// Get returns a single item.
func (s *Service) Get(ctx context.Context, id int64) (*Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	item, err := s.store.GetItem(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// List returns every item in ID order.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items, err := s.store.ListItems()
	if err != nil {
		return nil, err
	}

	log.Debug().Int("count", len(items)).Msg("Listed items")
	return items, nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}
