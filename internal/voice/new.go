package voice

import (
	"net/http"
	"time"

	"github.com/Eric-Mao06/Mailfish/internal/logger"
)

const defaultBaseURL = "https://api.elevenlabs.io/v1"

type implVoice struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

// New creates a Voice client against the ElevenLabs API.
func New(apiKey, model string, log logger.Logger) Voice {
	return &implVoice{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
		logger:  log,
	}
}
