package store

import (
	"testing"

	"locman/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_DefaultsToMemory(t *testing.T) {
	s, err := NewStore(&config.MockConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.IsType(t, &MemoryStore{}, s)
}

func TestNewStore_InvalidRedisDSN(t *testing.T) {
	_, err := NewStore(&config.MockConfig{RedisDSNValue: "not-a-redis-dsn"})

	assert.Error(t, err)
}
