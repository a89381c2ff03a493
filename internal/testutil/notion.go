// Package testutil provides in-memory fakes for the remote services
// the application depends on.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/promptdesk/promptdesk/internal/notion"
)

// FakePage is a page held by the fake Notion server.
type FakePage struct {
	ID         string
	DatabaseID string
	Archived   bool
	Properties map[string]notion.Property
}

// FakeNotion is an in-memory stand-in for the Notion API. It supports
// database queries with rich_text equality filters, page creation, and
// page patches, which is the surface the application uses.
type FakeNotion struct {
	mu     sync.Mutex
	pages  map[string]*FakePage
	nextID int

	// FailQueries makes every database query return a 500.
	FailQueries bool

	Server *httptest.Server
}

// NewFakeNotion starts a fake Notion server that is closed when the
// test finishes.
func NewFakeNotion(t *testing.T) *FakeNotion {
	t.Helper()
	f := &FakeNotion{pages: make(map[string]*FakePage)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Server.Close)
	return f
}

// Client returns a notion client pointed at the fake server.
func (f *FakeNotion) Client() *notion.Client {
	return notion.NewClient("fake-key", notion.WithBaseURL(f.Server.URL))
}

// Seed inserts a page directly and returns its ID.
func (f *FakeNotion) Seed(databaseID string, properties map[string]notion.Property) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insert(databaseID, properties)
}

// Page returns a copy of the stored page, or false if it does not exist.
func (f *FakeNotion) Page(id string) (FakePage, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	page, ok := f.pages[id]
	if !ok {
		return FakePage{}, false
	}
	return *page, true
}

// LivePages returns the unarchived pages in a database.
func (f *FakeNotion) LivePages(databaseID string) []FakePage {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []FakePage
	for _, page := range f.pages {
		if page.DatabaseID == databaseID && !page.Archived {
			out = append(out, *page)
		}
	}
	return out
}

func (f *FakeNotion) insert(databaseID string, properties map[string]notion.Property) string {
	f.nextID++
	id := fmt.Sprintf("page-%d", f.nextID)
	f.pages[id] = &FakePage{ID: id, DatabaseID: databaseID, Properties: properties}
	return id
}

func (f *FakeNotion) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/v1/users/me":
		fmt.Fprint(w, `{"object": "user"}`)
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/v1/databases/"):
		f.handleQuery(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/v1/pages":
		f.handleCreate(w, r)
	case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/v1/pages/"):
		f.handlePatch(w, r)
	default:
		http.Error(w, `{"code": "object_not_found", "message": "not found"}`, http.StatusNotFound)
	}
}

func (f *FakeNotion) handleQuery(w http.ResponseWriter, r *http.Request) {
	if f.FailQueries {
		http.Error(w, `{"code": "internal_server_error", "message": "boom"}`, http.StatusInternalServerError)
		return
	}
	databaseID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v1/databases/"), "/query")

	var req struct {
		Filter *notion.Filter `json:"filter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"code": "validation_error", "message": "bad body"}`, http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	results := []notion.Page{}
	for _, page := range f.pages {
		if page.DatabaseID != databaseID || page.Archived {
			continue
		}
		if matchesFilter(page, req.Filter) {
			results = append(results, notion.Page{
				ID:         page.ID,
				Archived:   page.Archived,
				Properties: page.Properties,
			})
		}
	}
	json.NewEncoder(w).Encode(map[string]any{"results": results})
}

func (f *FakeNotion) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Parent struct {
			DatabaseID string `json:"database_id"`
		} `json:"parent"`
		Properties map[string]notion.Property `json:"properties"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"code": "validation_error", "message": "bad body"}`, http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	id := f.insert(req.Parent.DatabaseID, req.Properties)
	f.mu.Unlock()
	json.NewEncoder(w).Encode(notion.Page{ID: id})
}

func (f *FakeNotion) handlePatch(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/v1/pages/")

	var req struct {
		Archived   *bool                      `json:"archived"`
		Properties map[string]notion.Property `json:"properties"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"code": "validation_error", "message": "bad body"}`, http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	page, ok := f.pages[id]
	if !ok {
		http.Error(w, `{"code": "object_not_found", "message": "no such page"}`, http.StatusNotFound)
		return
	}
	if req.Archived != nil {
		page.Archived = *req.Archived
	}
	for name, prop := range req.Properties {
		page.Properties[name] = prop
	}
	json.NewEncoder(w).Encode(notion.Page{ID: page.ID, Archived: page.Archived})
}

func matchesFilter(page *FakePage, filter *notion.Filter) bool {
	if filter == nil {
		return true
	}
	if len(filter.And) > 0 {
		for i := range filter.And {
			if !matchesFilter(page, &filter.And[i]) {
				return false
			}
		}
		return true
	}
	if filter.RichText == nil {
		return true
	}
	var text string
	if prop, ok := page.Properties[filter.Property]; ok {
		for _, rt := range prop.RichText {
			text += rt.Text.Content
		}
	}
	return text == filter.RichText.Equals
}
