package watcher

import "context"

// Watcher monitors the samples drop-directory for audio files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// SampleHandler receives the persona name (from the file stem) and the path
// of a newly dropped audio sample.
type SampleHandler func(ctx context.Context, name, path string) error
