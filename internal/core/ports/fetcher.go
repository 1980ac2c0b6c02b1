package ports

import "context"

// ImageFetcher downloads image content.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type ImageFetcher interface {
	// Fetch returns the response body of a GET to url.
	// Non-2xx responses are errors.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
