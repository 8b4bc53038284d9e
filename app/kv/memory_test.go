package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set("k", []byte("v1")))
	v, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	require.NoError(t, s.Set("k", []byte("v2")))
	v, err = s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)

	require.NoError(t, s.Delete("k"))
	_, err = s.Get("k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// deleting an absent key is not an error
	require.NoError(t, s.Delete("k"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	buf := []byte("abc")
	require.NoError(t, s.Set("k", buf))
	buf[0] = 'z'

	v, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
}
