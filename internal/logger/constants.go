package logger

// Accepted LOG_LEVEL values, compared case-insensitively
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "plotfarm"
	DefaultVersion     = "dev"
)

// Environments that log source locations
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
)

// Attributes stamped on every record, plus the per-request ID
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
