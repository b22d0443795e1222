package extractor

import "context"

// Extractor produces one bounded audio sample from a single candidate video URL.
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Coordinator fans extraction out across candidate URLs and returns the first
// sample to land.
type Coordinator interface {
	ExtractFirstAvailable(ctx context.Context, urls []string) (string, bool)
	Stats() CoordinatorStats
}

// CoordinatorStats is a snapshot of extraction activity for health reporting.
type CoordinatorStats struct {
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
}
