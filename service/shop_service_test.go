// file: service/shop_service_test.go

package service

import (
	"context"
	"rpbank/model"
	"rpbank/store"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopService_Catalog(t *testing.T) {
	l := newLedger(t)

	items := l.shop.Catalog()
	require.Len(t, items, 4)
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"Linterna", "Cuchillo", "Martillo", "Palanca"}, names)
}

func TestShopService_Purchase(t *testing.T) {
	ctx := context.Background()

	t.Run("success accumulates inventory", func(t *testing.T) {
		l := newLedger(t)
		l.open(t, "U1")

		p, err := l.shop.Purchase(ctx, "U1", "Palanca")
		require.NoError(t, err)
		assert.Equal(t, int64(250), p.Price)
		assert.Equal(t, 1, p.Quantity)
		assert.Equal(t, int64(950), p.CardBalance)

		p, err = l.shop.Purchase(ctx, "U1", "Palanca")
		require.NoError(t, err)
		assert.Equal(t, 2, p.Quantity)

		assert.Equal(t, model.Inventory{"Palanca": 2}, l.shop.Inventory("U1"))
		raw, ok := l.store.Raw(store.KeyInventory)
		require.True(t, ok)
		assert.JSONEq(t, `{"U1":{"Palanca":2}}`, string(raw))
	})

	t.Run("unknown item", func(t *testing.T) {
		l := newLedger(t)
		l.open(t, "U1")
		_, err := l.shop.Purchase(ctx, "U1", "Lanzacohetes")
		assert.ErrorIs(t, err, ErrUnknownItem)
	})

	t.Run("insufficient funds leaves inventory untouched", func(t *testing.T) {
		l := newLedger(t)
		l.open(t, "U1")
		_, err := l.accounts.Charge(ctx, "U1", 1150, "setup")
		require.NoError(t, err)

		_, err = l.shop.Purchase(ctx, "U1", "Palanca")
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Empty(t, l.shop.Inventory("U1"))
	})

	t.Run("no account", func(t *testing.T) {
		l := newLedger(t)
		_, err := l.shop.Purchase(ctx, "ghost", "Linterna")
		assert.ErrorIs(t, err, ErrNoAccount)
	})
}

func TestShopService_Give(t *testing.T) {
	ctx := context.Background()

	t.Run("moves units and drops emptied items", func(t *testing.T) {
		l := newLedger(t)
		l.open(t, "U1")
		_, err := l.shop.Purchase(ctx, "U1", "Linterna")
		require.NoError(t, err)
		_, err = l.shop.Purchase(ctx, "U1", "Linterna")
		require.NoError(t, err)

		tr, err := l.shop.Give(ctx, "U1", "U2", "Linterna", 1)
		require.NoError(t, err)
		assert.Equal(t, 1, tr.Left)
		assert.Equal(t, model.Inventory{"Linterna": 1}, l.shop.Inventory("U1"))
		assert.Equal(t, model.Inventory{"Linterna": 1}, l.shop.Inventory("U2"))

		tr, err = l.shop.Give(ctx, "U1", "U2", "Linterna", 1)
		require.NoError(t, err)
		assert.Equal(t, 0, tr.Left)
		assert.Empty(t, l.shop.Inventory("U1"))
		assert.Equal(t, model.Inventory{"Linterna": 2}, l.shop.Inventory("U2"))

		raw, ok := l.store.Raw(store.KeyInventory)
		require.True(t, ok)
		assert.JSONEq(t, `{"U2":{"Linterna":2}}`, string(raw))
	})

	t.Run("not enough units", func(t *testing.T) {
		l := newLedger(t)
		l.open(t, "U1")
		_, err := l.shop.Purchase(ctx, "U1", "Martillo")
		require.NoError(t, err)

		_, err = l.shop.Give(ctx, "U1", "U2", "Martillo", 2)
		assert.ErrorIs(t, err, ErrNotEnoughItems)
		_, err = l.shop.Give(ctx, "U1", "U2", "Palanca", 1)
		assert.ErrorIs(t, err, ErrNotEnoughItems)
		_, err = l.shop.Give(ctx, "U1", "U2", "Martillo", 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		assert.Equal(t, model.Inventory{"Martillo": 1}, l.shop.Inventory("U1"))
		assert.Empty(t, l.shop.Inventory("U2"))
	})

	t.Run("to oneself changes nothing", func(t *testing.T) {
		l := newLedger(t)
		l.open(t, "U1")
		_, err := l.shop.Purchase(ctx, "U1", "Linterna")
		require.NoError(t, err)

		tr, err := l.shop.Give(ctx, "U1", "U1", "Linterna", 1)
		require.NoError(t, err)
		assert.Equal(t, 1, tr.Left)
		assert.Equal(t, model.Inventory{"Linterna": 1}, l.shop.Inventory("U1"))
	})
}

func TestShopService_Steal(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, roll float64) *ledger {
		l := newLedger(t)
		l.open(t, "victim")
		_, err := l.shop.Purchase(ctx, "victim", "Palanca")
		require.NoError(t, err)
		l.shop.roll = func() float64 { return roll }
		return l
	}

	t.Run("lucky roll takes one unit", func(t *testing.T) {
		l := setup(t, 0.49)

		theft, err := l.shop.Steal(ctx, "thief", "victim", "Palanca")
		require.NoError(t, err)
		assert.True(t, theft.Success)
		assert.Empty(t, l.shop.Inventory("victim"))
		assert.Equal(t, model.Inventory{"Palanca": 1}, l.shop.Inventory("thief"))
	})

	t.Run("unlucky roll changes nothing", func(t *testing.T) {
		l := setup(t, 0.5)

		theft, err := l.shop.Steal(ctx, "thief", "victim", "Palanca")
		require.NoError(t, err)
		assert.False(t, theft.Success)
		assert.Equal(t, model.Inventory{"Palanca": 1}, l.shop.Inventory("victim"))
		assert.Empty(t, l.shop.Inventory("thief"))
	})

	t.Run("target lacks the item", func(t *testing.T) {
		l := setup(t, 0)

		_, err := l.shop.Steal(ctx, "thief", "victim", "Linterna")
		assert.ErrorIs(t, err, ErrNotEnoughItems)
		_, err = l.shop.Steal(ctx, "thief", "nobody", "Palanca")
		assert.ErrorIs(t, err, ErrNotEnoughItems)
		assert.Empty(t, l.shop.Inventory("thief"))
	})
}
