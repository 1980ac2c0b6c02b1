package domain

import (
	"math"
	"time"
)

// CacheState is the lifecycle state of the image cache.
type CacheState int32

const (
	// CacheUninitialized means no pipeline has completed since start or the last reload.
	CacheUninitialized CacheState = iota
	// CacheInitializing means a pipeline is running.
	CacheInitializing
	// CacheInitialized means the last pipeline ran through every batch.
	CacheInitialized
)

// String returns the lowercase name of the state.
func (s CacheState) String() string {
	switch s {
	case CacheUninitialized:
		return "uninitialized"
	case CacheInitializing:
		return "initializing"
	case CacheInitialized:
		return "initialized"
	default:
		return "unknown"
	}
}

const (
	// HealthHealthy is reported once the cache is initialized.
	HealthHealthy = "healthy"
	// HealthInitializing is reported while the cache is not yet initialized.
	HealthInitializing = "initializing"
)

// CachedImage is one entry of the image cache.
// Data is shared between every product that references the same SourceURL
// and must not be modified.
type CachedImage struct {
	ProductID int64
	SourceURL string
	Data      []byte
	SizeBytes int
	Digest    uint64
	LoadedAt  time.Time
}

// Metadata returns the entry without its content.
func (c *CachedImage) Metadata() ImageMetadata {
	return ImageMetadata{
		ProductID: c.ProductID,
		SourceURL: c.SourceURL,
		SizeBytes: c.SizeBytes,
		Digest:    c.Digest,
		LoadedAt:  c.LoadedAt,
	}
}

// ImageMetadata describes a cached image.
type ImageMetadata struct {
	ProductID int64     `json:"productId"`
	SourceURL string    `json:"url"`
	SizeBytes int       `json:"sizeBytes"`
	Digest    uint64    `json:"digest"`
	LoadedAt  time.Time `json:"loadedAt"`
	// SharedWith lists the other products served from the same source URL.
	SharedWith []int64 `json:"sharedWith,omitempty"`
}

// CacheStats summarizes the image cache.
type CacheStats struct {
	TotalImages    int     `json:"totalImages"`
	TotalSizeBytes int64   `json:"totalSizeBytes"`
	TotalSizeMB    float64 `json:"totalSizeMB"`
	UniqueURLs     int     `json:"uniqueUrls"`
	Initialized    bool    `json:"initialized"`
}

// CacheHealth is the readiness view of the image cache.
type CacheHealth struct {
	Status     string  `json:"status"`
	ImageCount int     `json:"imageCount"`
	SizeMB     float64 `json:"sizeMB"`
}

// SizeMB converts a byte count to mebibytes rounded to two decimals.
func SizeMB(bytes int64) float64 {
	return math.Round(float64(bytes)/(1024*1024)*100) / 100
}
