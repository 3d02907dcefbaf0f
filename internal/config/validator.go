package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// driverEnvVars lists the variables each save driver cannot run without
var driverEnvVars = map[string][]string{
	"postgres": {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	"s3":       {"S3_BUCKET"},
}

// RequiredEnvVars returns the variables the given save driver needs
func RequiredEnvVars(driver string) []string {
	return driverEnvVars[strings.ToLower(driver)]
}

// ValidateEnv checks the schema version, when one is set, and the variables
// required by SAVE_DRIVER.
func ValidateEnv() error {
	if schemaVersion := os.Getenv("ENV_SCHEMA_VERSION"); schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars(getEnv("SAVE_DRIVER", DefaultSaveDriver)) {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	switch os.Getenv("API_KEY") {
	case "":
		warnings = append(warnings, "API_KEY is not set - the API accepts unauthenticated requests")
	case ExampleAPIKey:
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	return warnings, nil
}
