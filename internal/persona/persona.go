package persona

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const derivePromptTemplate = `Based on this research about %s, create a detailed system prompt that would help an AI model accurately simulate their personality, speech patterns, and knowledge:

Research: %s

Create a system prompt that captures their:
1. Personality traits and speaking style
2. Knowledge domains and expertise
3. Notable opinions and viewpoints
4. Characteristic behaviors and mannerisms`

const chatTemplate = `System: You are a simulation of %s. Here is your personality and background information:
%s

Remember to stay in character and respond as %s would.

User: %s`

// DerivePrompt distills a research report into a personality system prompt.
func (p *implPersona) DerivePrompt(ctx context.Context, name, research string) (string, error) {
	return p.callGemini(ctx, fmt.Sprintf(derivePromptTemplate, name, research))
}

// Chat answers one user message in character, framed by the stored
// personality prompt. Turns are stateless; the persona's identity lives
// entirely in the system framing.
func (p *implPersona) Chat(ctx context.Context, name, systemPrompt, message string) (string, error) {
	return p.callGemini(ctx, fmt.Sprintf(chatTemplate, name, systemPrompt, name, message))
}

// callGemini sends one prompt to Gemini and returns the concatenated text
// parts. Rotates API keys on 429 / quota errors.
func (p *implPersona) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(p.apiKeys)
	if attempts == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}
	var lastErr error

	for range attempts {
		key := p.nextKey(false)

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			p.nextKey(true)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				p.logger.Warn(ctx, "Gemini key rate limited, rotating")
				p.nextKey(true)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				text.WriteString(part.Text)
			}
			if text.Len() > 0 {
				return text.String(), nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// nextKey returns the current key, advancing first when rotate is set.
func (p *implPersona) nextKey(rotate bool) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if rotate {
		p.currentKey = (p.currentKey + 1) % len(p.apiKeys)
	}
	return p.apiKeys[p.currentKey]
}
