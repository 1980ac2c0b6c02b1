package domain

import "go.trai.ch/zerr"

var (
	// ErrCollaboratorUnavailable is returned when the catalog data source cannot be queried.
	ErrCollaboratorUnavailable = zerr.New("catalog data source unavailable")

	// ErrImageFetchFailed is returned when an image download fails at the transport level.
	ErrImageFetchFailed = zerr.New("failed to fetch image")

	// ErrImageStatus is returned when an image source answers with a non-2xx status.
	ErrImageStatus = zerr.New("unexpected image response status")

	// ErrImageNotCached is returned when a product has no cached image.
	ErrImageNotCached = zerr.New("image not cached")

	// ErrPipelineAborted is returned when the cache pipeline is stopped before the last batch.
	ErrPipelineAborted = zerr.New("image cache pipeline aborted")

	// ErrConfigLoadFailed is returned when the settings cannot be loaded.
	ErrConfigLoadFailed = zerr.New("failed to load settings")

	// ErrConfigInvalid is returned when loaded settings fail validation.
	ErrConfigInvalid = zerr.New("invalid settings")

	// ErrCatalogOpenFailed is returned when the catalog database cannot be opened.
	ErrCatalogOpenFailed = zerr.New("failed to open catalog database")

	// ErrCatalogMigrateFailed is returned when the catalog schema cannot be applied.
	ErrCatalogMigrateFailed = zerr.New("failed to apply catalog schema")

	// ErrCircuitOpen is returned when the catalog breaker rejects a query.
	ErrCircuitOpen = zerr.New("catalog circuit open")

	// ErrFixtureReadFailed is returned when the catalog fixture file cannot be read.
	ErrFixtureReadFailed = zerr.New("failed to read catalog fixture")

	// ErrFixtureParseFailed is returned when the catalog fixture file cannot be parsed.
	ErrFixtureParseFailed = zerr.New("failed to parse catalog fixture")

	// ErrUnknownCatalogDriver is returned when settings name an unsupported catalog driver.
	ErrUnknownCatalogDriver = zerr.New("unknown catalog driver, expected 'sqlite' or 'fixture'")

	// ErrInvalidCartItem is returned when a cart item cannot be parsed.
	ErrInvalidCartItem = zerr.New("invalid cart item, expected format: productID[:category]")

	// ErrReloadThrottled is returned when cache reloads are requested faster than allowed.
	ErrReloadThrottled = zerr.New("cache reload rate limit exceeded")

	// ErrSessionRequired is returned when a stored-cart query has no session id.
	ErrSessionRequired = zerr.New("sessionId query parameter is required")
)
