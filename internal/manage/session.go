// Package manage implements the password-gated management workflow as
// an explicit state machine. Each interaction runs in its own session
// that walks category selection, password search, record review, and
// an optional edit step.
package manage

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/promptdesk/promptdesk/internal/category"
	"github.com/promptdesk/promptdesk/internal/store"
)

// Step is a position in the management workflow.
type Step string

const (
	StepSelectCategory Step = "select_category"
	StepEnterPassword  Step = "enter_password"
	StepReviewResults  Step = "review_results"
	StepEditRecord     Step = "edit_record"
	StepDone           Step = "done"
)

var (
	ErrSessionNotFound = errors.New("management session not found")
	ErrWrongStep       = errors.New("action not valid at this step")
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrUnknownCode     = errors.New("activity code is not in the search results")
	ErrEmptyPrompt     = errors.New("prompt must not be empty")
)

// Session carries the state of one management interaction. The search
// password and results persist across steps so later actions operate
// only on records the password unlocked.
type Session struct {
	mu sync.Mutex

	id        string
	createdAt time.Time

	step     Step
	category category.Category
	password string
	results  []store.Record
	selected string // activity code under edit
}

// Snapshot is a copy of session state safe to serialize.
type Snapshot struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"createdAt"`
	Step      Step              `json:"step"`
	Category  category.Category `json:"category,omitempty"`
	Results   []store.Record    `json:"results,omitempty"`
	Selected  string            `json:"selected,omitempty"`
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:        s.id,
		CreatedAt: s.createdAt,
		Step:      s.step,
		Category:  s.category,
		Results:   append([]store.Record(nil), s.results...),
		Selected:  s.selected,
	}
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) resetLocked() {
	s.step = StepSelectCategory
	s.category = ""
	s.password = ""
	s.results = nil
	s.selected = ""
}

func (s *Session) resultLocked(code string) (store.Record, bool) {
	for _, rec := range s.results {
		if rec.ActivityCode == code {
			return rec, true
		}
	}
	return store.Record{}, false
}

// Sessions holds live management sessions keyed by id.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessions creates an empty session registry.
func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[string]*Session)}
}

// Create starts a new session at the category selection step.
func (m *Sessions) Create() Snapshot {
	s := &Session{
		id:        uuid.New().String(),
		createdAt: time.Now().UTC(),
		step:      StepSelectCategory,
	}
	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	return s.Snapshot()
}

// Get returns a live session by id.
func (m *Sessions) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove deletes a session. Removing an unknown id is a no-op.
func (m *Sessions) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
