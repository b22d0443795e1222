package persona

import (
	"sync"

	"github.com/Eric-Mao06/Mailfish/internal/logger"
)

type implPersona struct {
	apiKeys []string
	model   string
	logger  logger.Logger

	mu         sync.Mutex
	currentKey int
}

// New creates a Persona that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) Persona {
	return &implPersona{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}
