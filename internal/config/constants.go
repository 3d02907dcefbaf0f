package config

import "time"

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "INFO"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultEnvironment      = "dev"
	DefaultVersion          = "dev"
	DefaultGridSize         = 10
	DefaultStartingGold     = 100
	DefaultStartingSeeds    = 5
	DefaultAutosaveInterval = 30 * time.Second
	DefaultSaveDriver       = "file"
	DefaultDBMaxConns       = 5
	DefaultDBMaxConnIdle    = 5 * time.Minute
	DefaultDBMaxConnLife    = 30 * time.Minute
)

// Error messages
const (
	ErrMsgInvalidPort   = "invalid PORT value"
	ErrMsgInvalidConfig = "invalid configuration"
)

// Values that ship in .env.example and must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
