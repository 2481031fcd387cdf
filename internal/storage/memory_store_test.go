package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Set("key", record{Name: "quiz", Count: 3}))

	var got record
	require.NoError(t, store.Get("key", &got))
	assert.Equal(t, record{Name: "quiz", Count: 3}, got)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()

	var got string
	err := store.Get("nope", &got)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set("key", "value"))
	require.NoError(t, store.Delete("key"))

	var got string
	assert.ErrorIs(t, store.Get("key", &got), ErrKeyNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete("key"))
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set("key", []int{1, 2}))
	require.NoError(t, store.Set("key", []int{3}))

	var got []int
	require.NoError(t, store.Get("key", &got))
	assert.Equal(t, []int{3}, got)
}
