package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// Clone uploads an audio sample and registers a cloned voice, returning the
// provider's voice identifier.
func (v *implVoice) Clone(ctx context.Context, audioPath, name, description string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open sample %s: %w", audioPath, err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("files", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy sample: %w", err)
	}

	writer.WriteField("name", name)
	writer.WriteField("remove_background_noise", "true")
	if description != "" {
		writer.WriteField("description", description)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/voices/add", &body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("xi-api-key", v.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := v.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("voices/add request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("elevenlabs error: %d - %s", resp.StatusCode, detail)
	}

	var parsed struct {
		VoiceID string `json:"voice_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if parsed.VoiceID == "" {
		return "", fmt.Errorf("no voice_id in response")
	}

	v.logger.Info(ctx, "Voice clone registered for %q: %s", name, parsed.VoiceID)
	return parsed.VoiceID, nil
}

// Synthesize renders text in a cloned voice, returning MP3 bytes.
func (v *implVoice) Synthesize(ctx context.Context, voiceID, text string) ([]byte, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"text":     text,
		"model_id": v.model,
		"voice_settings": map[string]float64{
			"stability":        0.5,
			"similarity_boost": 0.75,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		v.baseURL+"/text-to-speech/"+voiceID, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("xi-api-key", v.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("text-to-speech request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("elevenlabs error: %d - %s", resp.StatusCode, detail)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	return audio, nil
}
