package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int `validate:"min=1,max=65535"`
	APIKey      string
	LogLevel    string `validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	Environment string
	Version     string

	GridWidth     int    `validate:"min=1,max=100"`
	GridHeight    int    `validate:"min=1,max=100"`
	StartingGold  int    `validate:"min=0"`
	StartingSeeds int    `validate:"min=0"`
	CatalogPath   string // empty means the embedded catalog

	AutosaveInterval time.Duration `validate:"min=0"`

	SaveDriver string `validate:"oneof=memory file sqlite postgres s3 gdata"`
	SavePath   string
	SaveSlot   string

	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int `validate:"min=1"`
	DBMaxConnIdle time.Duration
	DBMaxConnLife time.Duration
	S3Bucket      string `validate:"required_if=SaveDriver s3"`
	S3Region      string
	S3Endpoint    string
	S3Key         string
	S3PathStyle   bool
	GdataAppName  string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),

		GridWidth:     getEnvAsInt("GRID_WIDTH", DefaultGridSize),
		GridHeight:    getEnvAsInt("GRID_HEIGHT", DefaultGridSize),
		StartingGold:  getEnvAsInt("STARTING_GOLD", DefaultStartingGold),
		StartingSeeds: getEnvAsInt("STARTING_SEEDS", DefaultStartingSeeds),
		CatalogPath:   getEnv("CATALOG_PATH", ""),

		AutosaveInterval: getEnvAsDuration("AUTOSAVE_INTERVAL", DefaultAutosaveInterval),

		SaveDriver: strings.ToLower(getEnv("SAVE_DRIVER", DefaultSaveDriver)),
		SavePath:   getEnv("SAVE_PATH", ""),
		SaveSlot:   getEnv("SAVE_SLOT", ""),

		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "plotfarm"),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdle: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdle),
		DBMaxConnLife: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLife),

		S3Bucket:     getEnv("S3_BUCKET", ""),
		S3Region:     getEnv("S3_REGION", ""),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
		S3Key:        getEnv("S3_KEY", ""),
		S3PathStyle:  getEnvAsBool("S3_PATH_STYLE", false),
		GdataAppName: getEnv("GDATA_APP_NAME", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
