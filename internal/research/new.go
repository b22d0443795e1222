package research

import (
	"net/http"
	"time"

	"github.com/Eric-Mao06/Mailfish/internal/logger"
)

const defaultBaseURL = "https://api.perplexity.ai"

type implResearcher struct {
	apiKey         string
	researchModel  string
	discoveryModel string
	baseURL        string
	client         *http.Client
	logger         logger.Logger
}

// New creates a Researcher against the Perplexity API.
func New(apiKey, researchModel, discoveryModel string, log logger.Logger) Researcher {
	return &implResearcher{
		apiKey:         apiKey,
		researchModel:  researchModel,
		discoveryModel: discoveryModel,
		baseURL:        defaultBaseURL,
		client:         &http.Client{Timeout: 60 * time.Second},
		logger:         log,
	}
}
