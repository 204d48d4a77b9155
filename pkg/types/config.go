package types

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Schema search path used by the pgx pool when none is set on the URL.
	DatabaseSchema string `envconfig:"DATABASE_SCHEMA" default:"coridor"`

	// Export defaults
	ExportDir string `envconfig:"EXPORT_DIR" default:"."`
}
