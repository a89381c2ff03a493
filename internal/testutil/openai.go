package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakeCompletionRequest captures the parts of a chat completion
// request that tests assert on.
type FakeCompletionRequest struct {
	Model    string
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
}

// FakeOpenAI is a stand-in for the chat completions endpoint.
type FakeOpenAI struct {
	mu       sync.Mutex
	requests []FakeCompletionRequest

	// Response is returned as the assistant message content.
	Response string
	// StatusCode overrides the 200 response when nonzero.
	StatusCode int

	Server *httptest.Server
}

// NewFakeOpenAI starts a fake completion server that is closed when
// the test finishes.
func NewFakeOpenAI(t *testing.T) *FakeOpenAI {
	t.Helper()
	f := &FakeOpenAI{Response: "generated text"}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Server.Close)
	return f
}

// Requests returns the captured completion requests in order.
func (f *FakeOpenAI) Requests() []FakeCompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FakeCompletionRequest(nil), f.requests...)
}

func (f *FakeOpenAI) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/chat/completions" {
		http.Error(w, `{"error": {"message": "not found"}}`, http.StatusNotFound)
		return
	}

	var req FakeCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": {"message": "bad body"}}`, http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	status := f.StatusCode
	response := f.Response
	f.mu.Unlock()

	if status != 0 && status != http.StatusOK {
		http.Error(w, `{"error": {"message": "upstream failure"}}`, status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{
		"id": "chatcmpl-fake",
		"object": "chat.completion",
		"model": %q,
		"choices": [{"index": 0, "message": {"role": "assistant", "content": %q}, "finish_reason": "stop"}]
	}`, req.Model, response)
}
