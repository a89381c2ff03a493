// Package store persists prompt records in per-category Notion databases
// and maps between the wire property format and the Record type.
package store

import (
	"encoding/json"
	"fmt"
	"unicode"

	"github.com/promptdesk/promptdesk/internal/category"
	"github.com/promptdesk/promptdesk/internal/notion"
)

// Property names used in every prompt database.
const (
	propActivityCode = "activity_code"
	propPrompt       = "prompt"
	propStudentView  = "student_view"
	propEmail        = "email"
	propPassword     = "password"
	propDate         = "date"
	propPage         = "page"
	propAdjectives   = "adjectives"
)

// Record is a single saved prompt. One record corresponds to one live
// page in the category's database.
type Record struct {
	PageID       string            `json:"pageId,omitempty"`
	Category     category.Category `json:"category"`
	ActivityCode string            `json:"activityCode"`
	Prompt       string            `json:"prompt"`
	StudentView  string            `json:"studentView,omitempty"`
	Email        string            `json:"email,omitempty"`
	Password     string            `json:"password"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	Adjectives   []string          `json:"adjectives,omitempty"`
}

// ValidPassword reports whether a teacher password is acceptable.
// Purely numeric passwords are rejected because lookups on them collide
// too easily; anything else, including empty, passes.
func ValidPassword(password string) bool {
	if password == "" {
		return true
	}
	for _, r := range password {
		if !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ToProperties encodes the record as Notion page properties. The
// student view and adjectives properties only exist in the databases of
// categories that carry them, so both are gated on the descriptor; the
// adjectives list is stored as a JSON array in a single text property.
func (r Record) ToProperties() (map[string]notion.Property, error) {
	props := map[string]notion.Property{
		propActivityCode: notion.TextProperty(r.ActivityCode),
		propPrompt:       notion.TextProperty(r.Prompt),
		propEmail:        notion.TextProperty(r.Email),
		propPassword:     notion.TextProperty(r.Password),
		propPage:         notion.TextProperty(string(r.Category)),
	}
	if r.CreatedAt != "" {
		props[propDate] = notion.TextProperty(r.CreatedAt)
	}
	desc := category.Get(r.Category)
	if desc.HasStudentView {
		props[propStudentView] = notion.TextProperty(r.StudentView)
	}
	if desc.HasAdjectives {
		adjectives := r.Adjectives
		if adjectives == nil {
			adjectives = []string{}
		}
		encoded, err := json.Marshal(adjectives)
		if err != nil {
			return nil, fmt.Errorf("failed to encode adjectives: %w", err)
		}
		props[propAdjectives] = notion.TextProperty(string(encoded))
	}
	return props, nil
}

// RecordFromPage decodes a queried page into a Record. A malformed
// adjectives property is ignored rather than failing the whole page.
func RecordFromPage(cat category.Category, page notion.Page) Record {
	rec := Record{
		PageID:       page.ID,
		Category:     cat,
		ActivityCode: page.Text(propActivityCode),
		Prompt:       page.Text(propPrompt),
		StudentView:  page.Text(propStudentView),
		Email:        page.Text(propEmail),
		Password:     page.Text(propPassword),
		CreatedAt:    page.Text(propDate),
	}
	if page.HasProperty(propAdjectives) {
		var adjectives []string
		if err := json.Unmarshal([]byte(page.Text(propAdjectives)), &adjectives); err == nil {
			rec.Adjectives = adjectives
		}
	}
	return rec
}
