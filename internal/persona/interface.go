package persona

import "context"

// Persona turns research into a personality system prompt and answers chat
// turns in character.
type Persona interface {
	DerivePrompt(ctx context.Context, name, research string) (string, error)
	Chat(ctx context.Context, name, systemPrompt, message string) (string, error)
}
