package research

import "context"

// Researcher answers questions about a public figure through a web-search
// backed chat-completions API.
type Researcher interface {
	// Research returns a prose research report on the named person.
	Research(ctx context.Context, name string) (string, error)
	// FindVideos returns candidate YouTube URLs of the person speaking.
	FindVideos(ctx context.Context, name, bio string) ([]string, error)
}
