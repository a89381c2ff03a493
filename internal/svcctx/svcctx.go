// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/promptdesk/promptdesk/internal/assistant"
	"github.com/promptdesk/promptdesk/internal/authoring"
	"github.com/promptdesk/promptdesk/internal/config"
	"github.com/promptdesk/promptdesk/internal/manage"
	"github.com/promptdesk/promptdesk/internal/notion"
	"github.com/promptdesk/promptdesk/internal/store"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Notion    *notion.Client
	Store     *store.Store
	Assistant *assistant.Assistant
	Authoring *authoring.Workflow
	Manage    *manage.Workflow
	Config    *config.Manager
	Logger    *slog.Logger
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// NotionFrom extracts the Notion client from context.
func NotionFrom(ctx context.Context) *notion.Client {
	if s := ServicesFrom(ctx); s != nil {
		return s.Notion
	}
	return nil
}

// AuthoringFrom extracts the authoring workflow from context.
func AuthoringFrom(ctx context.Context) *authoring.Workflow {
	if s := ServicesFrom(ctx); s != nil {
		return s.Authoring
	}
	return nil
}

// ManageFrom extracts the management workflow from context.
func ManageFrom(ctx context.Context) *manage.Workflow {
	if s := ServicesFrom(ctx); s != nil {
		return s.Manage
	}
	return nil
}

// ConfigFrom extracts the config manager from context.
func ConfigFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.Config
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}
