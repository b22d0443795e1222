package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Eric-Mao06/Mailfish/internal/clone"
	"github.com/Eric-Mao06/Mailfish/internal/config"
	"github.com/Eric-Mao06/Mailfish/internal/extractor"
	"github.com/Eric-Mao06/Mailfish/internal/logger"
	"github.com/Eric-Mao06/Mailfish/internal/store"
)

type Server struct {
	cfg         config.ServerConfig
	service     clone.Service
	coordinator extractor.Coordinator
	store       store.Store
	logger      logger.Logger
	startedAt   time.Time
	httpServer  *http.Server
}

// New assembles the HTTP surface over the clone service.
func New(cfg config.ServerConfig, svc clone.Service, coord extractor.Coordinator, s store.Store, log logger.Logger) *Server {
	srv := &Server{
		cfg:         cfg,
		service:     svc,
		coordinator: coord,
		store:       s,
		logger:      log,
		startedAt:   time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/create-clone", srv.handleCreateClone)
	mux.HandleFunc("/chat", srv.handleChat)
	mux.HandleFunc("/speak", srv.handleSpeak)
	mux.HandleFunc("/voices/", srv.handleVoice)
	mux.HandleFunc("/health", srv.handleHealth)

	srv.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.requestID(srv.cors(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return srv
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	s.logger.Info(ctx, "HTTP server listening on %s", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}
