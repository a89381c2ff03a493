// Package assistant wraps the OpenAI chat completion API for the two
// single-turn generations the authoring flow needs: drafting a prompt
// from a topic and rewriting a finished prompt for students.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/promptdesk/promptdesk/internal/category"
)

const defaultModel = openai.ChatModelGPT4oMini

// ErrEmptyTopic is returned when a draft is requested without a topic.
var ErrEmptyTopic = errors.New("topic is required for an ai draft")

// ErrNoAPIKeys is returned by NewAssistant when no key is configured.
var ErrNoAPIKeys = errors.New("at least one openai api key is required")

// Config holds configuration for the assistant.
type Config struct {
	APIKeys    []string
	Model      string
	MaxRetries int
	Timeout    time.Duration
	BaseURL    string       // Optional (tests)
	HTTPClient *http.Client // Optional (tests)
}

// Assistant issues chat completions, spreading requests over the
// configured API keys so a busy deployment does not pin one key's
// rate limit.
type Assistant struct {
	clients []openai.Client
	model   string
}

// NewAssistant builds one SDK client per API key.
func NewAssistant(cfg Config) (*Assistant, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, ErrNoAPIKeys
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 2
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	clients := make([]openai.Client, 0, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		opts := []option.RequestOption{
			option.WithAPIKey(key),
			option.WithHTTPClient(httpClient),
			option.WithMaxRetries(cfg.MaxRetries),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(cfg.BaseURL))
		}
		clients = append(clients, openai.NewClient(opts...))
	}

	return &Assistant{clients: clients, model: cfg.Model}, nil
}

// Draft generates a prompt draft for the category from a teacher's
// topic sentence.
func (a *Assistant) Draft(ctx context.Context, cat category.Category, topic string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", ErrEmptyTopic
	}
	inst := category.Get(cat).Draft
	return a.complete(ctx, inst.System, fmt.Sprintf(inst.User, topic))
}

// SummarizeForStudent rewrites a finished prompt as the short
// description students see. Categories without a student view return
// an empty summary.
func (a *Assistant) SummarizeForStudent(ctx context.Context, cat category.Category, prompt string) (string, error) {
	desc := category.Get(cat)
	if !desc.HasStudentView {
		return "", nil
	}
	return a.complete(ctx, desc.StudentView.System, fmt.Sprintf(desc.StudentView.User, prompt))
}

func (a *Assistant) complete(ctx context.Context, system, user string) (string, error) {
	client := a.clients[rand.Intn(len(a.clients))]
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
