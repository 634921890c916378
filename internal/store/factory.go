package store

import (
	"locman/internal/types"

	"github.com/sirupsen/logrus"
)

// NewStore creates a Store based on the configuration: Redis when a DSN is
// configured, otherwise an in-memory store.
func NewStore(configManager types.ConfigManager) (Store, error) {
	redisDSN := configManager.GetRedisDSN()

	if redisDSN == "" {
		logrus.Info("REDIS_DSN not configured, using in-memory store.")
		return NewMemoryStore(), nil
	}

	logrus.Info("Redis DSN configured, attempting to connect...")
	redisStore, err := NewRedisStore(redisDSN)
	if err != nil {
		return nil, err
	}

	logrus.Info("Successfully connected to Redis, using Redis store.")
	return redisStore, nil
}
