// Package types defines shared configuration interfaces and structures
package types

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetEffectiveServerConfig() ServerConfig
	GetCORSConfig() CORSConfig
	GetLogConfig() LogConfig
	GetDatabaseConfig() DatabaseConfig
	GetCacheConfig() CacheConfig
	GetRedisDSN() string
	Validate() error
	DisplayServerConfig()
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host                    string `json:"host"`
	Port                    int    `json:"port"`
	ReadTimeout             int    `json:"read_timeout"`
	WriteTimeout            int    `json:"write_timeout"`
	IdleTimeout             int    `json:"idle_timeout"`
	GracefulShutdownTimeout int    `json:"graceful_shutdown_timeout"`
}

// CORSConfig represents CORS configuration
type CORSConfig struct {
	Enabled          bool     `json:"enabled"`
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level      string `json:"level"`
	Format     string `json:"format"`
	EnableFile bool   `json:"enable_file"`
	FilePath   string `json:"file_path"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	DSN string `json:"dsn"`
}

// CacheConfig represents cache behavior configuration
type CacheConfig struct {
	// LocalizationsTTLMinutes controls how long resolved localization
	// bundles stay cached before a re-read from the database.
	LocalizationsTTLMinutes int `json:"localizations_ttl_minutes"`
}
