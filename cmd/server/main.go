package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Eric-Mao06/Mailfish/internal/clone"
	"github.com/Eric-Mao06/Mailfish/internal/config"
	"github.com/Eric-Mao06/Mailfish/internal/extractor"
	"github.com/Eric-Mao06/Mailfish/internal/logger"
	"github.com/Eric-Mao06/Mailfish/internal/persona"
	"github.com/Eric-Mao06/Mailfish/internal/research"
	"github.com/Eric-Mao06/Mailfish/internal/server"
	"github.com/Eric-Mao06/Mailfish/internal/store"
	"github.com/Eric-Mao06/Mailfish/internal/voice"
	"github.com/Eric-Mao06/Mailfish/internal/watcher"
	"github.com/Eric-Mao06/Mailfish/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "Persona voice-clone server starting")
	log.Info(ctx, "Extraction: %d concurrent, %ds samples, downloads in %s",
		cfg.Extraction.MaxConcurrent, cfg.Extraction.MaxSampleSeconds, cfg.Paths.Downloads)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Wire the extraction pipeline
	exec := executor.New()
	ext := extractor.New(cfg.Extraction, cfg.Paths.Downloads, exec, log)
	coordinator := extractor.NewCoordinator(ext, cfg.Extraction.MaxConcurrent, log)

	// External collaborators
	researcher := research.New(cfg.APIs.PerplexityKey, cfg.APIs.ResearchModel, cfg.APIs.DiscoveryModel, log)
	personaSvc := persona.New(cfg.APIs.GeminiKeys, cfg.APIs.GeminiModel, log)
	voiceSvc := voice.New(cfg.APIs.ElevenLabsKey, cfg.APIs.ElevenLabsModel, log)
	personaStore := store.New(ctx, cfg.Redis, log)

	cloneSvc := clone.New(researcher, personaSvc, voiceSvc, coordinator, personaStore, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Local samples drop-dir: register voice clones without the video pipeline
	w, err := watcher.New(cfg.Paths.Samples, func(ctx context.Context, name, path string) error {
		return cloneSvc.RegisterVoiceSample(ctx, name, path)
	}, log, cfg.Extraction.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create sample watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			log.Error(ctx, "Sample watcher error: %v", err)
		}
	}()

	srv := server.New(cfg.Server, cloneSvc, coordinator, personaStore, log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run(ctx)
	}()

	log.Info(ctx, "Ready: POST /create-clone, /chat, /speak on %s", cfg.Server.Addr)
	log.Info(ctx, "Sample drop-dir: %s", cfg.Paths.Samples)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		<-errChan
	case err := <-errChan:
		if err != nil {
			log.Error(ctx, "Server error: %v", err)
		}
	}

	log.Info(ctx, "Server stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Downloads,
		cfg.Paths.Samples,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
