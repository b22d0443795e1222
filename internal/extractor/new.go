package extractor

import (
	"github.com/Eric-Mao06/Mailfish/internal/config"
	"github.com/Eric-Mao06/Mailfish/internal/logger"
	"github.com/Eric-Mao06/Mailfish/pkg/executor"
)

type implExtractor struct {
	cfg         config.ExtractionConfig
	downloadDir string
	executor    executor.Executor
	logger      logger.Logger
}

// New creates an Extractor writing samples into downloadDir.
func New(cfg config.ExtractionConfig, downloadDir string, exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		cfg:         cfg,
		downloadDir: downloadDir,
		executor:    exec,
		logger:      log,
	}
}

type implCoordinator struct {
	extractor     Extractor
	maxConcurrent int
	logger        logger.Logger

	active    int64
	completed int64
	failed    int64
}

// NewCoordinator creates a Coordinator running at most maxConcurrent
// extractions at once.
func NewCoordinator(ext Extractor, maxConcurrent int, log logger.Logger) Coordinator {
	if maxConcurrent <= 0 {
		maxConcurrent = 3
	}
	return &implCoordinator{
		extractor:     ext,
		maxConcurrent: maxConcurrent,
		logger:        log,
	}
}
