package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMemoryStore_SetGet(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("key", []byte("value"), 0))

	value, err := s.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("key", []byte("value"), 10*time.Millisecond))

	_, err := s.Get("key")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = s.Get("key")
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := s.Exists("key")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("key", []byte("value"), 0))
	require.NoError(t, s.Delete("key"))

	_, err := s.Get("key")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, s.Delete("missing"))
}

func TestMemoryStore_Exists(t *testing.T) {
	s := newTestStore(t)

	exists, err := s.Exists("key")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Set("key", []byte("value"), 0))

	exists, err = s.Exists("key")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryStore_Incr(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Incr("counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := s.Incr("counter")
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)

	value, err := s.Get("counter")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), value)
}

func TestMemoryStore_IncrTypeMismatch(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("key", []byte("not a number"), 0))

	_, err := s.Incr("key")
	assert.Error(t, err)
}

func TestMemoryStore_Clear(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Set("b", []byte("2"), 0))

	require.NoError(t, s.Clear())

	_, err := s.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get("b")
	assert.ErrorIs(t, err, ErrNotFound)
}
