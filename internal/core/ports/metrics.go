package ports

import "time"

// Image load outcomes reported to Metrics.
const (
	OutcomeFetched = "fetched"
	OutcomeDeduped = "deduped"
	OutcomeFailed  = "failed"
)

// Suggestion outcomes reported to Metrics.
const (
	OutcomeEmpty    = "empty"
	OutcomeFallback = "fallback"
	OutcomeScored   = "scored"
	OutcomeError    = "error"
)

// Metrics receives measurements from the engines.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ImageLoaded records the outcome of one product's image load.
	ImageLoaded(outcome string, sizeBytes int)
	// PipelineFinished records one run of the image cache pipeline.
	PipelineFinished(d time.Duration, err error)
	// SuggestionServed records one suggestion query.
	SuggestionServed(outcome string, d time.Duration)
}
