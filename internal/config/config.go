package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns       int    `mapstructure:"max_open_conns"       validate:"gte=0"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"       validate:"gte=0"`
	ConnMaxLifetimeMin int    `mapstructure:"conn_max_lifetime_min" validate:"gte=0"`
}

// AuthConfig contains all authentication and authorization settings.
// JWTSecret is a base64-encoded symmetric key used for HMAC-SHA256 signing.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,base64"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
