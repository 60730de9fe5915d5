package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resumetric/internal/ai"
	"resumetric/internal/config"
	"resumetric/internal/engine"
	"resumetric/internal/observability"
)

// Start starts the HTTP server with all configured components
func (s *Server) Start() error {
	om, err := s.initializeObservability()
	if err != nil {
		return err
	}
	defer s.shutdownObservability(om)

	if err := s.initializeEngine(); err != nil {
		return err
	}

	httpServer := s.setupHTTPServer(om)

	s.displayServerInfo()

	return s.startWithGracefulShutdown(httpServer)
}

// initializeObservability sets up observability components
func (s *Server) initializeObservability() (*observability.ObservabilityManager, error) {
	obsConfig := observability.GetObservabilityConfig(s.AppConfig, s.Version)

	om, err := observability.NewObservabilityManager(obsConfig, s.AppConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}

	return om, nil
}

// shutdownObservability handles observability cleanup
func (s *Server) shutdownObservability(om *observability.ObservabilityManager) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := om.Shutdown(ctx); err != nil {
		s.Logger.LogError(err, "Failed to shutdown observability")
	}
}

// initializeEngine builds the analysis engine and, when configured, starts
// the tunables file watcher that rebuilds it on changes.
func (s *Server) initializeEngine() error {
	s.swapEngine(s.buildEngine(s.currentTunables()))

	if !s.AppConfig.Analysis.WatchTunables || s.AppConfig.Analysis.TunablesFile == "" {
		return nil
	}

	watcher := config.NewTunablesWatcher(s.AppConfig.Analysis.TunablesFile, func(tf config.TunablesFile) {
		tun := applyTunablesOverrides(s.configTunables(), tf)
		s.swapEngine(s.buildEngine(tun))
		s.Logger.Info("Analysis tunables reloaded",
			"min_words", tun.MinWords,
			"max_words", tun.MaxWords,
			"top_suggestions", tun.TopSuggestions,
			"industry_threshold", tun.IndustryThreshold)
	}, s.Logger)

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start tunables watcher: %w", err)
	}
	s.tunablesWatcher = watcher
	return nil
}

// configTunables returns the tunables as configured, without file overrides.
func (s *Server) configTunables() engine.Tunables {
	return engine.Tunables{
		MinWords:          s.AppConfig.Analysis.MinWords,
		MaxWords:          s.AppConfig.Analysis.MaxWords,
		TopSuggestions:    s.AppConfig.Analysis.TopSuggestions,
		IndustryThreshold: s.AppConfig.Analysis.IndustryThreshold,
	}
}

// currentTunables resolves config tunables plus any tunables file overrides.
func (s *Server) currentTunables() engine.Tunables {
	tun := s.configTunables()
	if s.AppConfig.Analysis.TunablesFile == "" {
		return tun
	}
	tf, err := config.ReadTunablesFile(s.AppConfig.Analysis.TunablesFile)
	if err != nil {
		s.Logger.Warn("Ignoring unreadable tunables file",
			"file", s.AppConfig.Analysis.TunablesFile,
			"error", err)
		return tun
	}
	return applyTunablesOverrides(tun, tf)
}

// applyTunablesOverrides overlays the non-zero fields of a tunables file.
func applyTunablesOverrides(tun engine.Tunables, tf config.TunablesFile) engine.Tunables {
	if tf.MinWords > 0 {
		tun.MinWords = tf.MinWords
	}
	if tf.MaxWords > 0 {
		tun.MaxWords = tf.MaxWords
	}
	if tf.TopSuggestions > 0 {
		tun.TopSuggestions = tf.TopSuggestions
	}
	if tf.IndustryThreshold > 0 {
		tun.IndustryThreshold = tf.IndustryThreshold
	}
	return tun
}

// buildEngine assembles an engine with the given tunables, attaching the AI
// suggester when a key is configured.
func (s *Server) buildEngine(tun engine.Tunables) *engine.Engine {
	opts := []engine.Option{engine.WithTunables(tun)}
	if s.AppConfig.HasAIKey() {
		suggestConfig := s.AppConfig.GetSuggestConfig()
		if aiService, err := ai.NewService(&suggestConfig, config.OperationSuggest, s.Logger); err != nil {
			s.Logger.Warn("AI suggestions unavailable, serving deterministic analysis only", "error", err)
		} else {
			opts = append(opts, engine.WithSuggester(aiService))
		}
	}
	return engine.New(s.Logger, opts...)
}

// setupHTTPServer creates and configures the HTTP server
func (s *Server) setupHTTPServer(om *observability.ObservabilityManager) *http.Server {
	mux := s.setupRoutes(om)
	handler := om.HTTPMiddleware()(mux)
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
		IdleTimeout:  s.IdleTimeout,
	}
}

// startWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func (s *Server) startWithGracefulShutdown(server *http.Server) error {
	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		s.Logger.Info("Starting HTTP server", "address", server.Addr)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Wait for either a signal or server error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server failed to start: %w", err)
	case sig := <-quit:
		s.Logger.Info("Received shutdown signal, starting graceful shutdown",
			"signal", sig.String())

		return s.performGracefulShutdown(server)
	}
}

// performGracefulShutdown handles the graceful shutdown process
func (s *Server) performGracefulShutdown(server *http.Server) error {
	// Create a context with timeout for graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop the tunables watcher if running
	if s.tunablesWatcher != nil {
		if err := s.tunablesWatcher.Stop(); err != nil {
			s.Logger.LogError(err, "Failed to stop tunables watcher")
		}
	}

	// Clean up rate limiter if enabled
	s.cleanupRateLimiter()

	// Attempt graceful shutdown of HTTP server
	s.Logger.Info("Shutting down HTTP server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.Logger.LogError(err, "Failed to shutdown server gracefully, forcing close")
		return server.Close()
	}

	s.Logger.Info("Server shutdown completed successfully")
	return nil
}

// cleanupRateLimiter cleans up the rate limiter resources
func (s *Server) cleanupRateLimiter() {
	if s.RateLimiter != nil {
		s.RateLimiter.Close()
		s.Logger.Info("Rate limiter cleaned up")
	}
}
