package notion

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_HealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{"healthy", http.StatusOK, false},
		{"unauthorized", http.StatusUnauthorized, true},
		{"server_error", http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/users/me" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
				if auth := r.Header.Get("Authorization"); auth != "Bearer secret-key" {
					t.Errorf("unexpected authorization header: %s", auth)
				}
				if v := r.Header.Get("Notion-Version"); v != APIVersion {
					t.Errorf("unexpected Notion-Version header: %s", v)
				}
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewClient("secret-key", WithBaseURL(server.URL))
			err := client.HealthCheck(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("HealthCheck() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_HealthCheck_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient("secret-key", WithBaseURL(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.HealthCheck(ctx); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestClient_QueryDatabase(t *testing.T) {
	var receivedBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/databases/db-vision/query" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		receivedBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"id": "page-1", "properties": {"activity_code": {"rich_text": [{"text": {"content": "ABC1"}}]}}}
		]}`))
	}))
	defer server.Close()

	client := NewClient("secret-key", WithBaseURL(server.URL))
	filter := And(TextEquals("page", "vision"), TextEquals("activity_code", "ABC1"))
	pages, err := client.QueryDatabase(context.Background(), "db-vision", filter)
	if err != nil {
		t.Fatalf("QueryDatabase() error = %v", err)
	}

	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if got := pages[0].Text("activity_code"); got != "ABC1" {
		t.Errorf("activity_code = %q, want %q", got, "ABC1")
	}

	var body struct {
		Filter struct {
			And []struct {
				Property string `json:"property"`
			} `json:"and"`
		} `json:"filter"`
	}
	if err := json.Unmarshal(receivedBody, &body); err != nil {
		t.Fatalf("failed to parse request body: %v", err)
	}
	if len(body.Filter.And) != 2 {
		t.Errorf("expected 2 and-conditions, got %d", len(body.Filter.And))
	}
}

func TestClient_QueryDatabase_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code": "validation_error", "message": "body failed validation"}`))
	}))
	defer server.Close()

	client := NewClient("secret-key", WithBaseURL(server.URL))
	_, err := client.QueryDatabase(context.Background(), "db-x", nil)
	if err == nil {
		t.Fatal("expected error from 400 response")
	}
}

func TestClient_CreatePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/pages" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)

		var req struct {
			Parent struct {
				DatabaseID string `json:"database_id"`
			} `json:"parent"`
			Properties map[string]Property `json:"properties"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("failed to parse request body: %v", err)
		}
		if req.Parent.DatabaseID != "db-text" {
			t.Errorf("database_id = %q, want %q", req.Parent.DatabaseID, "db-text")
		}
		if _, ok := req.Properties["prompt"]; !ok {
			t.Error("expected prompt property in request")
		}

		w.Write([]byte(`{"id": "page-new"}`))
	}))
	defer server.Close()

	client := NewClient("secret-key", WithBaseURL(server.URL))
	page, err := client.CreatePage(context.Background(), "db-text", map[string]Property{
		"prompt": TextProperty("hello"),
	})
	if err != nil {
		t.Fatalf("CreatePage() error = %v", err)
	}
	if page.ID != "page-new" {
		t.Errorf("page ID = %q, want %q", page.ID, "page-new")
	}
}

func TestClient_ArchivePage(t *testing.T) {
	var archived bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v1/pages/page-1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		archived, _ = body["archived"].(bool)
		w.Write([]byte(`{"id": "page-1", "archived": true}`))
	}))
	defer server.Close()

	client := NewClient("secret-key", WithBaseURL(server.URL))
	if err := client.ArchivePage(context.Background(), "page-1"); err != nil {
		t.Fatalf("ArchivePage() error = %v", err)
	}
	if !archived {
		t.Error("expected archived=true in request body")
	}
}

func TestPage_Text(t *testing.T) {
	page := Page{
		Properties: map[string]Property{
			"prompt": {RichText: []RichText{
				{Text: TextContent{Content: "first "}},
				{Text: TextContent{Content: "second"}},
			}},
			"empty": {},
		},
	}

	tests := []struct {
		name string
		prop string
		want string
	}{
		{"multi_span", "prompt", "first second"},
		{"empty_property", "empty", ""},
		{"missing_property", "absent", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := page.Text(tt.prop); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.prop, got, tt.want)
			}
		})
	}
}

func TestAnd(t *testing.T) {
	if And() != nil {
		t.Error("And() with no filters should be nil")
	}

	single := And(TextEquals("page", "text"))
	if single == nil || single.Property != "page" || len(single.And) != 0 {
		t.Errorf("And() with one filter should unwrap, got %+v", single)
	}

	double := And(TextEquals("page", "text"), TextEquals("password", "pw"))
	if double == nil || len(double.And) != 2 {
		t.Errorf("And() with two filters should produce a conjunction, got %+v", double)
	}
}
