package store

import (
	"context"
	"time"
)

// Record holds everything the orchestration layer keeps per persona.
type Record struct {
	Name      string    `json:"name"`
	Prompt    string    `json:"prompt"`
	VoiceID   string    `json:"voice_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HasVoice reports whether a cloned voice was registered for this persona.
func (r *Record) HasVoice() bool {
	return r.VoiceID != ""
}

// Store owns the name -> persona record mapping. Created at process start,
// injected into everything that needs it; there are no package-level maps.
type Store interface {
	Save(ctx context.Context, rec *Record) error
	Get(ctx context.Context, name string) (*Record, bool, error)
	Count(ctx context.Context) (int, error)
}
