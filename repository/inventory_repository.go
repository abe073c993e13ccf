package repository

import (
	"context"
	"rpbank/logger"
	"rpbank/model"
	"rpbank/store"
)

// IInventoryRepository defines the contract for the inventory document.
type IInventoryRepository interface {
	Get(identity string) model.Inventory
	Add(identity, item string, quantity int) int
	Remove(identity, item string, quantity int) (int, bool)
	Flush(ctx context.Context) error
}

type InventoryRepository struct {
	store       store.DocumentStore
	inventories map[string]model.Inventory
}

func NewInventoryRepository(ctx context.Context, s store.DocumentStore) (*InventoryRepository, error) {
	inventories := make(map[string]model.Inventory)
	if err := s.Load(ctx, store.KeyInventory, &inventories); err != nil {
		return nil, err
	}
	logger.Log.WithField("count", len(inventories)).Info("Inventories loaded")
	return &InventoryRepository{store: s, inventories: inventories}, nil
}

// Get returns a copy of the identity's inventory; empty when it has none.
func (r *InventoryRepository) Get(identity string) model.Inventory {
	out := make(model.Inventory, len(r.inventories[identity]))
	for item, n := range r.inventories[identity] {
		out[item] = n
	}
	return out
}

// Add increases the item count and returns the new count.
func (r *InventoryRepository) Add(identity, item string, quantity int) int {
	inv, ok := r.inventories[identity]
	if !ok || inv == nil {
		inv = make(model.Inventory)
		r.inventories[identity] = inv
	}
	inv[item] += quantity
	return inv[item]
}

// Remove takes quantity units of item from the identity and returns what is
// left. It changes nothing and reports false when fewer units are held. An
// item that reaches zero is dropped, and so is an inventory left empty.
func (r *InventoryRepository) Remove(identity, item string, quantity int) (int, bool) {
	inv := r.inventories[identity]
	if quantity <= 0 || inv[item] < quantity {
		return inv[item], false
	}
	inv[item] -= quantity
	left := inv[item]
	if left <= 0 {
		delete(inv, item)
	}
	if len(inv) == 0 {
		delete(r.inventories, identity)
	}
	return left, true
}

func (r *InventoryRepository) Flush(ctx context.Context) error {
	if err := r.store.Flush(ctx, store.KeyInventory, r.inventories); err != nil {
		logger.Log.WithField("key", store.KeyInventory).WithError(err).Error("Failed to flush inventories")
		return err
	}
	return nil
}
