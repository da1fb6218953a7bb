package config

const (
	// EnvPrefix is prepended to every environment variable, e.g. BOOKMARKS_FORMAT.
	EnvPrefix = "BOOKMARKS"

	DefaultFormat          = "tud"
	DefaultHTTPHost        = "127.0.0.1"
	DefaultHTTPPort        = 8189
	DefaultRefreshSchedule = "*/15 * * * *"
	DefaultShutdownTimeout = 2
)

// Configuration keys. Nested keys map to environment variables with "."
// replaced by "_": http.port is BOOKMARKS_HTTP_PORT.
const (
	KeyFormat          = "format"
	KeySchemeless      = "schemeless"
	KeyVerbose         = "verbose"
	KeyConfigFile      = "config"
	KeyPaths           = "paths"
	KeyHTTPHost        = "http.host"
	KeyHTTPPort        = "http.port"
	KeyRefreshSchedule = "refresh_schedule"
	KeyShutdownTimeout = "shutdown_timeout_in_seconds"
)
