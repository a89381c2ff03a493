// Package server wires the Notion store, the completion client, and
// both teacher workflows behind the HTTP endpoint registry.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/promptdesk/promptdesk/internal/api"
	"github.com/promptdesk/promptdesk/internal/assistant"
	"github.com/promptdesk/promptdesk/internal/authoring"
	"github.com/promptdesk/promptdesk/internal/config"
	"github.com/promptdesk/promptdesk/internal/manage"
	"github.com/promptdesk/promptdesk/internal/notion"
	"github.com/promptdesk/promptdesk/internal/server/endpoints"
	"github.com/promptdesk/promptdesk/internal/store"
	"github.com/promptdesk/promptdesk/internal/svcctx"
)

// Server is the main promptdesk HTTP server.
type Server struct {
	httpServer   *http.Server
	notionClient *notion.Client
	recordStore  *store.Store
	configMgr    *config.Manager
	logger       *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: from config, 127.0.0.1)
	Host string
	// Port is the port to listen on (default: from config, 8585)
	Port string
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
	// NotionBaseURL overrides the Notion API base URL (tests)
	NotionBaseURL string
	// OpenAIBaseURL overrides the OpenAI API base URL (tests)
	OpenAIBaseURL string
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.ConfigManager == nil {
		return nil, errors.New("config manager is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	appCfg := cfg.ConfigManager.Get()
	if err := appCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Host == "" {
		cfg.Host = appCfg.Server.Host
	}
	if cfg.Port == "" {
		cfg.Port = appCfg.Server.Port
	}

	var notionOpts []notion.Option
	if cfg.NotionBaseURL != "" {
		notionOpts = append(notionOpts, notion.WithBaseURL(cfg.NotionBaseURL))
	}
	notionClient := notion.NewClient(appCfg.ResolvedNotionKey(), notionOpts...)
	recordStore := store.NewStore(notionClient, appCfg.DatabaseMap())

	completions, err := assistant.NewAssistant(assistant.Config{
		APIKeys:    appCfg.ResolvedOpenAIKeys(),
		Model:      appCfg.OpenAI.Model,
		MaxRetries: appCfg.OpenAI.MaxRetries,
		Timeout:    time.Duration(appCfg.OpenAI.TimeoutSeconds) * time.Second,
		BaseURL:    cfg.OpenAIBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	s := &Server{
		notionClient: notionClient,
		recordStore:  recordStore,
		configMgr:    cfg.ConfigManager,
		logger:       cfg.Logger,
	}

	s.services = &svcctx.Services{
		Notion:    notionClient,
		Store:     recordStore,
		Assistant: completions,
		Authoring: authoring.NewWorkflow(recordStore, completions, cfg.Logger),
		Manage:    manage.NewWorkflow(manage.NewSessions(), recordStore, cfg.Logger),
		Config:    cfg.ConfigManager,
		Logger:    cfg.Logger,
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{}) {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start starts the server. It blocks until the context is cancelled or
// an error occurs. The Notion reachability check retries briefly so a
// restart during a short network blip still comes up.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	s.logger.Info("checking remote store")
	err := retry.Do(
		func() error { return s.notionClient.HealthCheck(ctx) },
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(2*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			s.logger.Warn("remote store not reachable, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		s.setNotRunning()
		return fmt.Errorf("remote store health check failed: %w", err)
	}
	s.logger.Info("remote store is ready")

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Store returns the record store.
func (s *Server) Store() *store.Store {
	return s.recordStore
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if s.services != nil {
			ctx = svcctx.WithServices(ctx, s.services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireInit is middleware that ensures the server is fully initialized.
// Returns 503 Service Unavailable if the services aren't wired yet.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.services == nil || s.services.Store == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"server not fully initialized"}`))
			return
		}
		next(w, r)
	}
}
