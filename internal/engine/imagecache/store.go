package imagecache

import (
	"sync"

	"go.trai.ch/propstore/internal/core/domain"
)

// Store holds cached images keyed by product id together with the
// URL to products index used for deduplication.
//
// Entries are never modified once inserted; the only removal path is Clear.
type Store struct {
	mu     sync.RWMutex
	images map[int64]*domain.CachedImage
	urls   map[string][]int64
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		images: make(map[int64]*domain.CachedImage),
		urls:   make(map[string][]int64),
	}
}

// Put inserts img and appends its product to the URL index.
// It returns false and leaves the store untouched if the product is already cached.
func (s *Store) Put(img *domain.CachedImage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.images[img.ProductID]; exists {
		return false
	}
	s.images[img.ProductID] = img
	s.urls[img.SourceURL] = append(s.urls[img.SourceURL], img.ProductID)
	return true
}

// Get returns the entry of a product.
func (s *Store) Get(productID int64) (*domain.CachedImage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	img, ok := s.images[productID]
	return img, ok
}

// Has reports whether a product is cached.
func (s *Store) Has(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.images[productID]
	return ok
}

// Donor returns the entry of the first product cached for url.
func (s *Store) Donor(url string) (*domain.CachedImage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.urls[url]
	if len(ids) == 0 {
		return nil, false
	}
	img, ok := s.images[ids[0]]
	return img, ok
}

// ProductsFor returns the products sharing url in insertion order.
func (s *Store) ProductsFor(url string) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.urls[url]
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}

// Totals scans the store and returns the entry count, the summed entry
// sizes and the number of distinct source URLs.
func (s *Store) Totals() (images int, sizeBytes int64, uniqueURLs int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, img := range s.images {
		sizeBytes += int64(img.SizeBytes)
	}
	return len(s.images), sizeBytes, len(s.urls)
}

// Clear drops every entry and the URL index.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.images = make(map[int64]*domain.CachedImage)
	s.urls = make(map[string][]int64)
}
