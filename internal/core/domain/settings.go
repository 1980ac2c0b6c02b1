package domain

import "time"

const (
	// DefaultBatchSize is the number of images fetched concurrently per batch.
	DefaultBatchSize = 15
	// DefaultFetchTimeoutMS is the per-image fetch timeout in milliseconds.
	DefaultFetchTimeoutMS = 10000
	// MaxSuggestions is the number of products returned by a suggestion query.
	MaxSuggestions = 3
	// ConfigPathEnvVar overrides the settings file location.
	ConfigPathEnvVar = "PROPSTORE_CONFIG"
	// DefaultConfigFile is the settings file looked up in the working directory.
	DefaultConfigFile = "propstore.yaml"
)

// Catalog drivers.
const (
	CatalogDriverSQLite  = "sqlite"
	CatalogDriverFixture = "fixture"
)

// Settings is the process configuration.
type Settings struct {
	ServiceName string             `koanf:"service_name"`
	HTTP        HTTPSettings       `koanf:"http"`
	Log         LogSettings        `koanf:"log"`
	ImageCache  ImageCacheSettings `koanf:"image_cache"`
	Catalog     CatalogSettings    `koanf:"catalog"`
	Telemetry   TelemetrySettings  `koanf:"telemetry"`
}

// HTTPSettings configures the HTTP surface.
type HTTPSettings struct {
	Addr            string `koanf:"addr"`
	ReloadPerMinute int    `koanf:"reload_per_minute"`
	ShutdownSeconds int    `koanf:"shutdown_seconds"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ImageCacheSettings configures the image prefetch pipeline.
type ImageCacheSettings struct {
	BatchSize int `koanf:"batch_size"`
	TimeoutMS int `koanf:"timeout_ms"`
}

// FetchTimeout returns the per-image timeout as a duration.
func (s ImageCacheSettings) FetchTimeout() time.Duration {
	return time.Duration(s.TimeoutMS) * time.Millisecond
}

// CatalogSettings selects and configures the catalog data source.
type CatalogSettings struct {
	Driver      string `koanf:"driver"`
	DSN         string `koanf:"dsn"`
	FixturePath string `koanf:"fixture_path"`
	Migrate     bool   `koanf:"migrate"`
}

// TelemetrySettings configures tracing.
type TelemetrySettings struct {
	Stdout bool `koanf:"stdout"`
}

// DefaultSettings returns the settings used when nothing overrides them.
func DefaultSettings() Settings {
	return Settings{
		ServiceName: "magician-props-api-go",
		HTTP: HTTPSettings{
			Addr:            ":3001",
			ReloadPerMinute: 6,
			ShutdownSeconds: 10,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
		ImageCache: ImageCacheSettings{
			BatchSize: DefaultBatchSize,
			TimeoutMS: DefaultFetchTimeoutMS,
		},
		Catalog: CatalogSettings{
			Driver:      CatalogDriverSQLite,
			DSN:         "file:propstore.db?cache=shared",
			FixturePath: "catalog.yaml",
		},
	}
}
