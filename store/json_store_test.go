package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Card int64 `json:"tarjeta"`
	Cash int64 `json:"efectivo"`
}

func TestJSONStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	for _, topic := range Topics {
		info, err := os.Stat(filepath.Join(dir, topic))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	orig := map[string]record{"1": {Card: 1200}, "2": {Card: 900, Cash: 300}}
	require.NoError(t, s.Flush(ctx, KeyAccounts, orig))

	_, err = os.Stat(filepath.Join(dir, "economy", "cuentas.json"))
	require.NoError(t, err)

	loaded := map[string]record{}
	require.NoError(t, s.Load(ctx, KeyAccounts, &loaded))
	assert.Equal(t, orig, loaded)

	entries, err := os.ReadDir(filepath.Join(dir, "economy"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestJSONStore_MissingAndEmptyDocuments(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	loaded := map[string]record{}
	assert.NoError(t, s.Load(ctx, KeyLoans, &loaded))
	assert.Empty(t, loaded)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "economy", "prestamos.json"), []byte("  \n"), 0o644))
	assert.NoError(t, s.Load(ctx, KeyLoans, &loaded))
	assert.Empty(t, loaded)
}

func TestJSONStore_Overwrites(t *testing.T) {
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Flush(ctx, KeyInventory, map[string]map[string]int{"1": {"Linterna": 1}, "2": {"Palanca": 2}}))
	require.NoError(t, s.Flush(ctx, KeyInventory, map[string]map[string]int{"2": {"Palanca": 3}}))

	loaded := map[string]map[string]int{}
	require.NoError(t, s.Load(ctx, KeyInventory, &loaded))
	assert.Equal(t, map[string]map[string]int{"2": {"Palanca": 3}}, loaded)
}

func TestJSONStore_UnknownKey(t *testing.T) {
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	err = s.Flush(context.Background(), "multas", map[string]any{})
	assert.ErrorIs(t, err, ErrUnknownDocument)
	err = s.Load(context.Background(), "multas", &map[string]any{})
	assert.ErrorIs(t, err, ErrUnknownDocument)
}

func TestJSONStore_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "economy", "cuentas.json"), []byte("{\"1\": "), 0o644))

	loaded := map[string]record{}
	assert.Error(t, s.Load(context.Background(), KeyAccounts, &loaded))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	loaded := map[string]record{}
	require.NoError(t, s.Load(ctx, KeyAccounts, &loaded))
	assert.Empty(t, loaded)

	require.NoError(t, s.Flush(ctx, KeyAccounts, map[string]record{"7": {Card: 5}}))
	require.NoError(t, s.Load(ctx, KeyAccounts, &loaded))
	assert.Equal(t, int64(5), loaded["7"].Card)

	raw, ok := s.Raw(KeyAccounts)
	assert.True(t, ok)
	assert.JSONEq(t, `{"7":{"tarjeta":5,"efectivo":0}}`, string(raw))

	assert.ErrorIs(t, s.Flush(ctx, "nope", nil), ErrUnknownDocument)
}
