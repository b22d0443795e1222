package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
)

var youtubeURLPattern = regexp.MustCompile(`https?://(?:www\.)?youtube\.com/watch\?v=[\w-]+`)

// Research asks the search model for a profile of the person: background,
// achievements, personality traits, notable information.
func (r *implResearcher) Research(ctx context.Context, name string) (string, error) {
	prompt := fmt.Sprintf("Please provide a detailed research report on %s. "+
		"Include their background, achievements, personality traits, and any notable information.", name)

	return r.chatCompletion(ctx, r.researchModel, prompt)
}

// FindVideos asks the discovery model for videos of the person speaking and
// pulls YouTube watch URLs out of the answer text. The model's prose around
// the links is discarded; duplicates are collapsed preserving first-seen order.
func (r *implResearcher) FindVideos(ctx context.Context, name, bio string) ([]string, error) {
	prompt := fmt.Sprintf("Find YouTube videos of %s (%s) speaking. Requirements: "+
		"Videos must be primarily focused on %s speaking directly. "+
		"Do not include videos of other people speaking about %s. "+
		"Maximum video length: 15 minutes. "+
		"High audio quality with minimal background noise. "+
		"No overlapping voices or music. "+
		"Return only YouTube URLs and nothing else.", name, bio, name, name)

	answer, err := r.chatCompletion(ctx, r.discoveryModel, prompt)
	if err != nil {
		return nil, err
	}

	urls := youtubeURLPattern.FindAllString(answer, -1)
	if len(urls) == 0 {
		r.logger.Warn(ctx, "No video URLs found for %s", name)
		return nil, nil
	}

	seen := make(map[string]bool, len(urls))
	unique := urls[:0]
	for _, u := range urls {
		if !seen[u] {
			seen[u] = true
			unique = append(unique, u)
		}
	}
	return unique, nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (r *implResearcher) chatCompletion(ctx context.Context, model, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("perplexity request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("perplexity API error: %d - %s", resp.StatusCode, detail)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from perplexity")
	}

	return parsed.Choices[0].Message.Content, nil
}
