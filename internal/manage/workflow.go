package manage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/promptdesk/promptdesk/internal/category"
	"github.com/promptdesk/promptdesk/internal/store"
)

// EditFields carries the editable parts of a record. The activity
// code, category, and password always stay those of the record under
// edit.
type EditFields struct {
	Prompt      string `json:"prompt"`
	Email       string `json:"email"`
	StudentView string `json:"studentView"`
	// Adjectives is a comma-separated list, image category only.
	Adjectives string `json:"adjectives"`
}

// Workflow drives management sessions against the store.
type Workflow struct {
	sessions *Sessions
	store    *store.Store
	logger   *slog.Logger
}

// NewWorkflow wires the management workflow.
func NewWorkflow(sessions *Sessions, s *store.Store, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{sessions: sessions, store: s, logger: logger}
}

// Create starts a new session.
func (w *Workflow) Create() Snapshot {
	return w.sessions.Create()
}

// Get returns the state of a session.
func (w *Workflow) Get(id string) (Snapshot, error) {
	s, err := w.sessions.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return s.Snapshot(), nil
}

// SelectCategory picks the category to manage and advances to the
// password step.
func (w *Workflow) SelectCategory(id string, cat category.Category) (Snapshot, error) {
	s, err := w.sessions.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepSelectCategory {
		return s.snapshotLocked(), fmt.Errorf("%w: %s", ErrWrongStep, s.step)
	}
	if _, err := category.Parse(string(cat)); err != nil {
		return s.snapshotLocked(), err
	}
	s.category = cat
	s.step = StepEnterPassword
	return s.snapshotLocked(), nil
}

// Search looks up the records saved under a password. An empty result
// keeps the session at the password step so the teacher can retry; a
// hit carries the results and the password into the review step.
func (w *Workflow) Search(ctx context.Context, id, password string) (Snapshot, error) {
	s, err := w.sessions.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepEnterPassword {
		return s.snapshotLocked(), fmt.Errorf("%w: %s", ErrWrongStep, s.step)
	}
	password = strings.TrimSpace(password)
	if password == "" {
		return s.snapshotLocked(), ErrEmptyPassword
	}

	results, err := w.store.FindByPassword(ctx, s.category, password)
	if err != nil {
		return s.snapshotLocked(), err
	}
	if len(results) == 0 {
		return s.snapshotLocked(), nil
	}
	s.password = password
	s.results = results
	s.step = StepReviewResults
	return s.snapshotLocked(), nil
}

// Delete archives every live record for one of the found activity
// codes, then returns the session to the category step.
func (w *Workflow) Delete(ctx context.Context, id, code string) (Snapshot, error) {
	s, err := w.sessions.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepReviewResults {
		return s.snapshotLocked(), fmt.Errorf("%w: %s", ErrWrongStep, s.step)
	}
	if _, ok := s.resultLocked(code); !ok {
		return s.snapshotLocked(), fmt.Errorf("%w: %q", ErrUnknownCode, code)
	}

	archived, err := w.store.Archive(ctx, s.category, code)
	if err != nil {
		return s.snapshotLocked(), err
	}
	w.logger.Info("prompt deleted",
		"category", s.category, "activity_code", code, "archived", archived)
	s.resetLocked()
	return s.snapshotLocked(), nil
}

// BeginEdit selects a found record for editing. A code outside the
// search results resets the session to the category step.
func (w *Workflow) BeginEdit(id, code string) (Snapshot, error) {
	s, err := w.sessions.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepReviewResults {
		return s.snapshotLocked(), fmt.Errorf("%w: %s", ErrWrongStep, s.step)
	}
	if _, ok := s.resultLocked(code); !ok {
		s.resetLocked()
		return s.snapshotLocked(), fmt.Errorf("%w: %q", ErrUnknownCode, code)
	}
	s.selected = code
	s.step = StepEditRecord
	return s.snapshotLocked(), nil
}

// SubmitEdit rewrites the selected record with the edited fields,
// keeping its activity code and password. Success advances to done; a
// failed write leaves the session at the edit step.
func (w *Workflow) SubmitEdit(ctx context.Context, id string, fields EditFields) (Snapshot, error) {
	s, err := w.sessions.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepEditRecord {
		return s.snapshotLocked(), fmt.Errorf("%w: %s", ErrWrongStep, s.step)
	}
	original, ok := s.resultLocked(s.selected)
	if !ok {
		s.resetLocked()
		return s.snapshotLocked(), fmt.Errorf("%w: %q", ErrUnknownCode, s.selected)
	}

	prompt := strings.TrimSpace(fields.Prompt)
	if prompt == "" {
		return s.snapshotLocked(), ErrEmptyPrompt
	}

	rec := store.Record{
		Category:     s.category,
		ActivityCode: original.ActivityCode,
		Prompt:       prompt,
		Email:        strings.TrimSpace(fields.Email),
		Password:     s.password,
	}
	desc := category.Get(s.category)
	if desc.HasStudentView {
		rec.StudentView = strings.TrimSpace(fields.StudentView)
	}
	if desc.HasAdjectives {
		rec.Adjectives = splitAdjectives(fields.Adjectives)
	}

	if _, err := w.store.Replace(ctx, rec); err != nil {
		return s.snapshotLocked(), err
	}
	w.logger.Info("prompt updated",
		"category", s.category, "activity_code", rec.ActivityCode)
	s.step = StepDone
	return s.snapshotLocked(), nil
}

// Restart returns the session to the category step and clears the
// carried search state.
func (w *Workflow) Restart(id string) (Snapshot, error) {
	s, err := w.sessions.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	return s.snapshotLocked(), nil
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
