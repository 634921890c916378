package config

import "locman/internal/types"

// MockConfig is a test double for types.ConfigManager.
type MockConfig struct {
	ServerConfigValue types.ServerConfig
	CORSConfigValue   types.CORSConfig
	LogConfigValue    types.LogConfig
	DatabaseDSN       string
	CacheConfigValue  types.CacheConfig
	RedisDSNValue     string
}

func (m *MockConfig) GetEffectiveServerConfig() types.ServerConfig {
	return m.ServerConfigValue
}

func (m *MockConfig) GetCORSConfig() types.CORSConfig {
	return m.CORSConfigValue
}

func (m *MockConfig) GetLogConfig() types.LogConfig {
	return m.LogConfigValue
}

func (m *MockConfig) GetDatabaseConfig() types.DatabaseConfig {
	return types.DatabaseConfig{DSN: m.DatabaseDSN}
}

func (m *MockConfig) GetCacheConfig() types.CacheConfig {
	return m.CacheConfigValue
}

func (m *MockConfig) GetRedisDSN() string {
	return m.RedisDSNValue
}

func (m *MockConfig) Validate() error {
	return nil
}

func (m *MockConfig) DisplayServerConfig() {}
