package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Eric-Mao06/Mailfish/internal/logger"
)

type implWatcher struct {
	sampleDir     string
	handler       SampleHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start monitors the samples directory. Dropping an audio file named after a
// persona (e.g. "Jane Doe.mp3") registers that file as the persona's voice
// sample, bypassing the video pipeline.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Sample watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.sampleDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for in-flight sample registrations...")
			w.wg.Wait()
			w.logger.Info(ctx, "Sample watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !w.isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New voice sample detected: %s", event.Name)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(path string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					// Small delay so the file is fully written before
					// upload. Runs here so one settling file never stalls
					// the event loop for the others.
					time.Sleep(500 * time.Millisecond)

					name := personaName(path)
					if err := w.handler(ctx, name, path); err != nil {
						w.logger.Error(ctx, "Failed to register sample %s: %v", path, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	supportedFormats := []string{".mp3", ".wav", ".m4a", ".ogg", ".flac"}

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}

	return false
}

// personaName derives the persona name from the file stem.
func personaName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
