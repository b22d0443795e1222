package extractor

import "errors"

// Failure reasons for a single candidate. Every internal fault inside an
// extraction collapses to one of these so a candidate's failure can never
// abort its siblings.
var (
	ErrMetadataUnavailable = errors.New("metadata unavailable")
	ErrUnknownDuration     = errors.New("unknown duration")
	ErrNoAudioFormat       = errors.New("no suitable audio format")
	ErrProcessFailed       = errors.New("transcode process failed")
	ErrEmptyOutput         = errors.New("empty output")
)
