package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/Eric-Mao06/Mailfish/internal/logger"
)

// New creates a Watcher on sampleDir with concurrency control.
func New(sampleDir string, handler SampleHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(sampleDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		sampleDir:     sampleDir,
		handler:       handler,
		logger:        log,
		watcher:       fsw,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
	}, nil
}
