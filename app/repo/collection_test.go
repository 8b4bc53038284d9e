package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkboard/app/kv"
)

type record struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func byID(id string) func(record) bool {
	return func(r record) bool { return r.ID == id }
}

func TestCollectionLoadEmpty(t *testing.T) {
	c := NewCollection[record](kv.NewMemoryStore(), "test")

	items, err := c.Load()
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestCollectionUpsert(t *testing.T) {
	c := NewCollection[record](kv.NewMemoryStore(), "test")

	require.NoError(t, c.Upsert(record{ID: "a", Value: 1}, byID("a")))
	require.NoError(t, c.Upsert(record{ID: "b", Value: 2}, byID("b")))

	// replacing keeps position and count
	require.NoError(t, c.Upsert(record{ID: "a", Value: 10}, byID("a")))

	items, err := c.Load()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, record{ID: "a", Value: 10}, items[0])
	assert.Equal(t, record{ID: "b", Value: 2}, items[1])
}

func TestCollectionFindAndFilter(t *testing.T) {
	c := NewCollection[record](kv.NewMemoryStore(), "test")
	require.NoError(t, c.Replace([]record{{ID: "a", Value: 1}, {ID: "b", Value: 2}, {ID: "c", Value: 2}}))

	r, ok, err := c.Find(byID("b"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, r.Value)

	_, ok, err = c.Find(byID("zz"))
	require.NoError(t, err)
	assert.False(t, ok)

	twos, err := c.Filter(func(r record) bool { return r.Value == 2 })
	require.NoError(t, err)
	assert.Len(t, twos, 2)
}

func TestCollectionRemoveWhere(t *testing.T) {
	c := NewCollection[record](kv.NewMemoryStore(), "test")
	require.NoError(t, c.Replace([]record{{ID: "a"}, {ID: "b"}, {ID: "c"}}))

	n, err := c.RemoveWhere(func(r record) bool { return r.ID != "b" })
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	items, err := c.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	n, err = c.RemoveWhere(func(r record) bool { return false })
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCollectionStorageErrorWrapped(t *testing.T) {
	store := kv.NewMemoryStore()
	c := NewCollection[record](store, "test")
	require.NoError(t, store.Set("test", []byte("not json")))

	_, err := c.Load()
	assert.ErrorIs(t, err, ErrStorage)
}
