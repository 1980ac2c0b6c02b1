// Package config loads process settings from defaults, an optional YAML file
// and the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultDotenvFile is read into the environment before settings are loaded.
const DefaultDotenvFile = ".env"

// envKeys maps environment variables to settings paths.
var envKeys = map[string]string{
	"SERVICE_NAME":            "service_name",
	"HTTP_ADDR":               "http.addr",
	"PORT":                    "http.addr",
	"CACHE_RELOAD_PER_MINUTE": "http.reload_per_minute",
	"HTTP_SHUTDOWN_SECONDS":   "http.shutdown_seconds",
	"LOG_LEVEL":               "log.level",
	"LOG_FORMAT":              "log.format",
	"IMAGE_CACHE_BATCH_SIZE":  "image_cache.batch_size",
	"IMAGE_CACHE_TIMEOUT":     "image_cache.timeout_ms",
	"CATALOG_DRIVER":          "catalog.driver",
	"CATALOG_DSN":             "catalog.dsn",
	"CATALOG_FIXTURE":         "catalog.fixture_path",
	"CATALOG_MIGRATE":         "catalog.migrate",
	"TRACE_STDOUT":            "telemetry.stdout",
}

// Loader implements ports.ConfigLoader with koanf layers:
// struct defaults, then the YAML file, then environment variables.
type Loader struct {
	// ConfigPath is the YAML file to read. When empty, PROPSTORE_CONFIG and
	// then propstore.yaml in the working directory are tried.
	ConfigPath string
	// DotenvPath is loaded into the process environment if it exists.
	// Variables already set are not overridden.
	DotenvPath string
}

// NewLoader creates a Loader using the default file locations.
func NewLoader() *Loader {
	return &Loader{DotenvPath: DefaultDotenvFile}
}

// Load returns the merged and validated settings.
func (l *Loader) Load() (*domain.Settings, error) {
	if err := l.loadDotenv(); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	defaults := domain.DefaultSettings()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigLoadFailed.Error())
	}

	if path := l.configPath(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "path", path)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envTransform), nil); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigLoadFailed.Error())
	}

	settings := &domain.Settings{}
	if err := k.Unmarshal("", settings); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigLoadFailed.Error())
	}

	if err := Validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (l *Loader) loadDotenv() error {
	if l.DotenvPath == "" {
		return nil
	}
	if err := godotenv.Load(l.DotenvPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "path", l.DotenvPath)
	}
	return nil
}

func (l *Loader) configPath() string {
	if l.ConfigPath != "" {
		return l.ConfigPath
	}
	if path := os.Getenv(domain.ConfigPathEnvVar); path != "" {
		return path
	}
	if _, err := os.Stat(domain.DefaultConfigFile); err == nil {
		return domain.DefaultConfigFile
	}
	return ""
}

// envTransform maps a known environment variable to its settings path.
// Unknown and empty variables are dropped. A bare PORT becomes a listen
// address and is ignored when HTTP_ADDR is set.
func envTransform(key, value string) (string, any) {
	path, ok := envKeys[key]
	if !ok || value == "" {
		return "", nil
	}
	if key == "PORT" {
		if addr, set := os.LookupEnv("HTTP_ADDR"); set && addr != "" {
			return "", nil
		}
		if !strings.Contains(value, ":") {
			value = ":" + value
		}
	}
	return path, value
}

// Validate rejects settings the engines cannot run with.
func Validate(s *domain.Settings) error {
	switch {
	case s.ImageCache.BatchSize <= 0:
		return zerr.With(domain.ErrConfigInvalid, "image_cache.batch_size", s.ImageCache.BatchSize)
	case s.ImageCache.TimeoutMS <= 0:
		return zerr.With(domain.ErrConfigInvalid, "image_cache.timeout_ms", s.ImageCache.TimeoutMS)
	case s.HTTP.Addr == "":
		return zerr.With(domain.ErrConfigInvalid, "http.addr", s.HTTP.Addr)
	case s.HTTP.ReloadPerMinute <= 0:
		return zerr.With(domain.ErrConfigInvalid, "http.reload_per_minute", s.HTTP.ReloadPerMinute)
	}

	switch s.Catalog.Driver {
	case domain.CatalogDriverSQLite, domain.CatalogDriverFixture:
		return nil
	default:
		return zerr.With(domain.ErrUnknownCatalogDriver, "catalog.driver", s.Catalog.Driver)
	}
}
