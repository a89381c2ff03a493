// Package authoring implements the teacher-facing save flow: seeding a
// draft, guarding activity codes, and persisting the finished prompt
// together with its student-facing summary.
package authoring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/promptdesk/promptdesk/internal/assistant"
	"github.com/promptdesk/promptdesk/internal/category"
	"github.com/promptdesk/promptdesk/internal/store"
)

// Method selects how the teacher arrives at a draft prompt.
type Method string

const (
	MethodSample Method = "sample" // pick from the category's sample table
	MethodDirect Method = "direct" // type the prompt, seeded with an example
	MethodAI     Method = "ai"     // generate a draft from a topic
)

// AdjectivesMode selects the adjective list saved with image prompts.
type AdjectivesMode string

const (
	AdjectivesDefault AdjectivesMode = "default"
	AdjectivesCustom  AdjectivesMode = "custom"
)

// Validation errors, rejected before any remote call.
var (
	ErrUnknownMethod  = errors.New("unknown authoring method")
	ErrUnknownSample  = errors.New("no sample prompt with that title")
	ErrEmptyPrompt    = errors.New("prompt must not be empty")
	ErrEmptyCode      = errors.New("activity code must not be empty")
	ErrBadPassword    = errors.New("password must not be purely numeric")
	ErrAdjectivesMode = errors.New("unknown adjectives mode")
)

// ErrDuplicateCode is returned when a live record already uses the
// activity code.
var ErrDuplicateCode = errors.New("activity code is already in use")

// IsValidation reports whether an error should be treated as bad input
// rather than a failed dependency.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrUnknownMethod, ErrUnknownSample, ErrEmptyPrompt,
		ErrEmptyCode, ErrBadPassword, ErrAdjectivesMode,
		assistant.ErrEmptyTopic,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Submission is a completed authoring form. For the image category the
// prompt holds the image subject and CustomAdjectives carries the
// comma-separated custom list when the mode is custom.
type Submission struct {
	Category         category.Category `json:"category"`
	Prompt           string            `json:"prompt"`
	ActivityCode     string            `json:"activityCode"`
	Email            string            `json:"email"`
	Password         string            `json:"password"`
	AdjectivesMode   AdjectivesMode    `json:"adjectivesMode,omitempty"`
	CustomAdjectives string            `json:"customAdjectives,omitempty"`
}

// SaveResult reports what was persisted. Warning is set when a
// best-effort step failed without blocking the save.
type SaveResult struct {
	Record  store.Record `json:"record"`
	Warning string       `json:"warning,omitempty"`
}

// Workflow drives authoring against the store and the completion client.
type Workflow struct {
	store     *store.Store
	assistant *assistant.Assistant
	logger    *slog.Logger
}

// NewWorkflow wires the authoring workflow.
func NewWorkflow(s *store.Store, a *assistant.Assistant, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{store: s, assistant: a, logger: logger}
}

// SeedDraft returns the starting prompt text for a method. The sample
// method resolves a title against the category's fixed table, direct
// entry seeds the category's example, and the ai method starts empty
// because the draft comes from Draft.
func (w *Workflow) SeedDraft(cat category.Category, method Method, sampleTitle string) (string, error) {
	desc := category.Get(cat)
	switch method {
	case MethodSample:
		sample, ok := desc.SampleByTitle(sampleTitle)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownSample, sampleTitle)
		}
		return sample.Prompt, nil
	case MethodDirect:
		return desc.ExamplePrompt, nil
	case MethodAI:
		return "", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}

// Draft generates an AI-assisted draft from a topic.
func (w *Workflow) Draft(ctx context.Context, cat category.Category, topic string) (string, error) {
	return w.assistant.Draft(ctx, cat, topic)
}

// CheckCode reports whether an activity code is still free. It exists
// as an interactive guard; Save re-checks before inserting.
func (w *Workflow) CheckCode(ctx context.Context, cat category.Category, code string) (bool, error) {
	taken, err := w.store.Exists(ctx, cat, strings.TrimSpace(code))
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// Save validates a submission and persists it. The student view is
// generated for categories that carry one; a generation failure is
// reported as a warning on the result, not as a save failure. The
// duplicate-code check is best effort: a confirmed duplicate rejects
// the save, an unreachable store does not.
func (w *Workflow) Save(ctx context.Context, sub Submission) (SaveResult, error) {
	rec := store.Record{
		Category:     sub.Category,
		Prompt:       strings.TrimSpace(sub.Prompt),
		ActivityCode: strings.TrimSpace(sub.ActivityCode),
		Email:        strings.TrimSpace(sub.Email),
		Password:     strings.TrimSpace(sub.Password),
	}

	if rec.Prompt == "" {
		return SaveResult{}, ErrEmptyPrompt
	}
	if rec.ActivityCode == "" {
		return SaveResult{}, ErrEmptyCode
	}
	if !store.ValidPassword(rec.Password) {
		return SaveResult{}, ErrBadPassword
	}

	desc := category.Get(sub.Category)
	if desc.HasAdjectives {
		adjectives, err := resolveAdjectives(desc, sub)
		if err != nil {
			return SaveResult{}, err
		}
		rec.Adjectives = adjectives
	}

	var warning string
	taken, err := w.store.Exists(ctx, sub.Category, rec.ActivityCode)
	switch {
	case err != nil:
		w.logger.Warn("duplicate check failed, saving anyway",
			"category", sub.Category, "activity_code", rec.ActivityCode, "error", err)
		warning = "duplicate check unavailable"
	case taken:
		return SaveResult{}, fmt.Errorf("%w: %s", ErrDuplicateCode, rec.ActivityCode)
	}

	if desc.HasStudentView {
		view, err := w.assistant.SummarizeForStudent(ctx, sub.Category, rec.Prompt)
		if err != nil {
			w.logger.Warn("student view generation failed",
				"category", sub.Category, "activity_code", rec.ActivityCode, "error", err)
			warning = "student view generation failed"
		}
		rec.StudentView = view
	}

	saved, err := w.store.Insert(ctx, rec)
	if err != nil {
		return SaveResult{}, err
	}
	w.logger.Info("prompt saved",
		"category", saved.Category, "activity_code", saved.ActivityCode)
	return SaveResult{Record: saved, Warning: warning}, nil
}

func resolveAdjectives(desc category.Descriptor, sub Submission) ([]string, error) {
	switch sub.AdjectivesMode {
	case AdjectivesDefault, "":
		return desc.DefaultAdjectives, nil
	case AdjectivesCustom:
		return splitAdjectives(sub.CustomAdjectives), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrAdjectivesMode, sub.AdjectivesMode)
}

func splitAdjectives(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return []string{}
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
