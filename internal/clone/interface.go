package clone

import (
	"context"
	"errors"

	"github.com/Eric-Mao06/Mailfish/internal/store"
)

var (
	ErrPersonaNotFound = errors.New("persona not found")
	ErrNoVoice         = errors.New("persona has no cloned voice")
)

// Service is the persona-creation and conversation workflow.
type Service interface {
	// CreateClone researches a person, derives their personality prompt,
	// attempts a voice clone from video of them speaking, and stores the
	// resulting persona. A failed audio pipeline degrades to a voiceless
	// persona rather than failing the workflow.
	CreateClone(ctx context.Context, name string) (*store.Record, error)
	// Chat answers one message in the persona's character.
	Chat(ctx context.Context, name, message string) (string, error)
	// Speak renders text in the persona's cloned voice.
	Speak(ctx context.Context, name, text string) ([]byte, error)
	// RegisterVoiceSample clones a voice directly from a local audio file,
	// bypassing the video pipeline.
	RegisterVoiceSample(ctx context.Context, name, audioPath string) error
	// Lookup fetches a stored persona record.
	Lookup(ctx context.Context, name string) (*store.Record, bool, error)
}
