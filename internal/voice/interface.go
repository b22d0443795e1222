package voice

import "context"

// Voice wraps the voice-cloning provider: registering a sample yields a voice
// identifier usable later for text-to-speech.
type Voice interface {
	Clone(ctx context.Context, audioPath, name, description string) (string, error)
	Synthesize(ctx context.Context, voiceID, text string) ([]byte, error)
}
