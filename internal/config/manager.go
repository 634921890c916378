// Package config loads and validates the application configuration from the
// environment.
package config

import (
	"fmt"

	"locman/internal/types"
	"locman/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Manager implements types.ConfigManager over environment variables.
type Manager struct {
	server   types.ServerConfig
	cors     types.CORSConfig
	log      types.LogConfig
	database types.DatabaseConfig
	cache    types.CacheConfig
	redisDSN string
}

// NewManager loads .env (when present) and parses all configuration.
func NewManager() (types.ConfigManager, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables only")
	}

	manager := &Manager{
		server: types.ServerConfig{
			Host:                    utils.GetEnvOrDefault("HOST", "0.0.0.0"),
			Port:                    utils.ParseInteger(utils.GetEnvOrDefault("PORT", ""), 8000),
			ReadTimeout:             utils.ParseInteger(utils.GetEnvOrDefault("SERVER_READ_TIMEOUT", ""), 60),
			WriteTimeout:            utils.ParseInteger(utils.GetEnvOrDefault("SERVER_WRITE_TIMEOUT", ""), 60),
			IdleTimeout:             utils.ParseInteger(utils.GetEnvOrDefault("SERVER_IDLE_TIMEOUT", ""), 120),
			GracefulShutdownTimeout: utils.ParseInteger(utils.GetEnvOrDefault("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT", ""), 10),
		},
		cors: types.CORSConfig{
			Enabled:          utils.ParseBoolean(utils.GetEnvOrDefault("ENABLE_CORS", ""), true),
			AllowedOrigins:   utils.ParseArray(utils.GetEnvOrDefault("ALLOWED_ORIGINS", "*")),
			AllowedMethods:   utils.ParseArray(utils.GetEnvOrDefault("ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS")),
			AllowedHeaders:   utils.ParseArray(utils.GetEnvOrDefault("ALLOWED_HEADERS", "*")),
			AllowCredentials: utils.ParseBoolean(utils.GetEnvOrDefault("ALLOW_CREDENTIALS", ""), false),
		},
		log: types.LogConfig{
			Level:      utils.GetEnvOrDefault("LOG_LEVEL", "info"),
			Format:     utils.GetEnvOrDefault("LOG_FORMAT", "text"),
			EnableFile: utils.ParseBoolean(utils.GetEnvOrDefault("LOG_ENABLE_FILE", ""), false),
			FilePath:   utils.GetEnvOrDefault("LOG_FILE_PATH", "./data/logs/app.log"),
		},
		database: types.DatabaseConfig{
			DSN: utils.GetEnvOrDefault("DATABASE_DSN", ""),
		},
		cache: types.CacheConfig{
			LocalizationsTTLMinutes: utils.ParseInteger(utils.GetEnvOrDefault("LOCALIZATIONS_CACHE_TTL_MINUTES", ""), 5),
		},
		redisDSN: utils.GetEnvOrDefault("REDIS_DSN", ""),
	}

	if err := manager.Validate(); err != nil {
		return nil, err
	}

	return manager, nil
}

// GetEffectiveServerConfig returns the server configuration.
func (m *Manager) GetEffectiveServerConfig() types.ServerConfig {
	return m.server
}

// GetCORSConfig returns the CORS configuration.
func (m *Manager) GetCORSConfig() types.CORSConfig {
	return m.cors
}

// GetLogConfig returns the logging configuration.
func (m *Manager) GetLogConfig() types.LogConfig {
	return m.log
}

// GetDatabaseConfig returns the database configuration.
func (m *Manager) GetDatabaseConfig() types.DatabaseConfig {
	return m.database
}

// GetCacheConfig returns the cache configuration.
func (m *Manager) GetCacheConfig() types.CacheConfig {
	return m.cache
}

// GetRedisDSN returns the Redis DSN (empty means in-memory store).
func (m *Manager) GetRedisDSN() string {
	return m.redisDSN
}

// Validate checks the configuration for errors.
func (m *Manager) Validate() error {
	if m.server.Port < 1 || m.server.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", m.server.Port)
	}
	if m.database.DSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	if m.cache.LocalizationsTTLMinutes < 0 {
		return fmt.Errorf("LOCALIZATIONS_CACHE_TTL_MINUTES must not be negative")
	}
	return nil
}

// DisplayServerConfig logs the effective configuration at startup.
func (m *Manager) DisplayServerConfig() {
	logrus.Info("")
	logrus.Info("======= Server Configuration =======")
	logrus.Infof("  Listen address: %s:%d", m.server.Host, m.server.Port)
	logrus.Infof("  Log level: %s (%s)", m.log.Level, m.log.Format)
	logrus.Infof("  CORS enabled: %t", m.cors.Enabled)
	if m.redisDSN != "" {
		logrus.Info("  Cache store: redis")
	} else {
		logrus.Info("  Cache store: memory")
	}
	logrus.Infof("  Localizations cache TTL: %dm", m.cache.LocalizationsTTLMinutes)
	logrus.Info("====================================")
	logrus.Info("")
}
