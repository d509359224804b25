package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Bootstrap BootstrapConfig `mapstructure:"bootstrap"`
	Accounts  AccountsConfig  `mapstructure:"accounts"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format" validate:"required,oneof=json text"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url" validate:"required,url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout" validate:"gt=0"`
}

// BootstrapConfig controls schema creation. The bootstrap command always
// recreates the schema; serve does so only when Enabled is set.
type BootstrapConfig struct {
	// Enabled recreates both tables every time the server starts, so existing
	// rows are lost on each restart. Off by default.
	Enabled bool `mapstructure:"enabled"`
	// Seed inserts the demo clients and accounts after the tables are created.
	Seed bool `mapstructure:"seed"`
}

// AccountsConfig holds account-query policy.
type AccountsConfig struct {
	// EmptyListAsNotFound makes an empty account listing fail with AccountNotFound
	// instead of returning an empty list.
	EmptyListAsNotFound bool `mapstructure:"empty_list_as_not_found"`
}
