package service

import (
	"context"
	"fmt"
	"math/rand"
	"rpbank/config"
	"rpbank/logger"
	"rpbank/model"
	"rpbank/repository"
	"rpbank/store"
	"sort"

	"github.com/sirupsen/logrus"
)

// stealChance is the probability that a theft succeeds.
const stealChance = 0.5

// ShopService sells catalog items against the card balance and moves items
// between inventories.
type ShopService struct {
	ledger      *AccountService
	inventories repository.IInventoryRepository
	catalog     []config.ShopItem
	roll        func() float64
}

func NewShopService(ledger *AccountService, inventories repository.IInventoryRepository, catalog []config.ShopItem) *ShopService {
	items := make([]config.ShopItem, len(catalog))
	copy(items, catalog)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Price != items[j].Price {
			return items[i].Price < items[j].Price
		}
		return items[i].Name < items[j].Name
	})
	return &ShopService{ledger: ledger, inventories: inventories, catalog: items, roll: rand.Float64}
}

// Catalog lists items by price, then name.
func (s *ShopService) Catalog() []config.ShopItem {
	out := make([]config.ShopItem, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Purchase charges the item's price to the card and adds one unit to the
// identity's inventory.
func (s *ShopService) Purchase(ctx context.Context, identity, item string) (*model.Purchase, error) {
	price, ok := s.price(item)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	account, err := s.ledger.chargeLocked(ctx, identity, price)
	if err != nil {
		return nil, err
	}
	quantity := s.inventories.Add(identity, item, 1)
	if err := persisted(store.KeyInventory, s.inventories.Flush(ctx)); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"identity": identity,
		"item":     item,
		"price":    price,
	}).Info("Item purchased")

	return &model.Purchase{
		Item:        item,
		Price:       price,
		Quantity:    quantity,
		CardBalance: account.CardBalance,
	}, nil
}

// Inventory returns the identity's items; never nil.
func (s *ShopService) Inventory(identity string) model.Inventory {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()
	return s.inventories.Get(identity)
}

// Give moves quantity units of item from one identity to another. Items
// need not be in the catalog.
func (s *ShopService) Give(ctx context.Context, from, to, item string, quantity int) (*model.ItemTransfer, error) {
	if quantity <= 0 {
		return nil, ErrInvalidAmount
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	left, ok := s.inventories.Remove(from, item, quantity)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %d %q", ErrNotEnoughItems, from, left, item)
	}
	s.inventories.Add(to, item, quantity)
	if from == to {
		left += quantity
	}
	if err := persisted(store.KeyInventory, s.inventories.Flush(ctx)); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"from":     from,
		"to":       to,
		"item":     item,
		"quantity": quantity,
	}).Info("Items given")
	return &model.ItemTransfer{From: from, To: to, Item: item, Quantity: quantity, Left: left}, nil
}

// Steal tries to take one unit of item from target. A failed attempt changes
// nothing and is not an error.
func (s *ShopService) Steal(ctx context.Context, thief, target, item string) (*model.Theft, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	if s.inventories.Get(target)[item] <= 0 {
		return nil, fmt.Errorf("%w: %s holds no %q", ErrNotEnoughItems, target, item)
	}

	theft := &model.Theft{Thief: thief, Target: target, Item: item}
	log := logger.Log.WithFields(logrus.Fields{
		"thief":  thief,
		"target": target,
		"item":   item,
	})
	if s.roll() >= stealChance {
		log.Info("Theft failed")
		return theft, nil
	}

	s.inventories.Remove(target, item, 1)
	s.inventories.Add(thief, item, 1)
	if err := persisted(store.KeyInventory, s.inventories.Flush(ctx)); err != nil {
		return nil, err
	}
	theft.Success = true
	log.Info("Theft succeeded")
	return theft, nil
}

func (s *ShopService) price(item string) (int64, bool) {
	for _, it := range s.catalog {
		if it.Name == item {
			return it.Price, true
		}
	}
	return 0, false
}
