package assistant

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/promptdesk/promptdesk/internal/category"
	"github.com/promptdesk/promptdesk/internal/testutil"
)

func newTestAssistant(t *testing.T) (*Assistant, *testutil.FakeOpenAI) {
	t.Helper()
	fake := testutil.NewFakeOpenAI(t)
	a, err := NewAssistant(Config{
		APIKeys: []string{"key-1", "key-2"},
		BaseURL: fake.Server.URL,
	})
	if err != nil {
		t.Fatalf("NewAssistant() error = %v", err)
	}
	return a, fake
}

func TestNewAssistant_RequiresKeys(t *testing.T) {
	if _, err := NewAssistant(Config{}); !errors.Is(err, ErrNoAPIKeys) {
		t.Errorf("expected ErrNoAPIKeys, got %v", err)
	}
}

func TestAssistant_Draft(t *testing.T) {
	a, fake := newTestAssistant(t)
	fake.Response = "  사진을 보고 느낀 점을 세 문장으로 쓰세요.  "

	draft, err := a.Draft(context.Background(), category.Vision, "가을 풍경 사진 감상")
	if err != nil {
		t.Fatalf("Draft() error = %v", err)
	}
	if draft != "사진을 보고 느낀 점을 세 문장으로 쓰세요." {
		t.Errorf("draft = %q, want trimmed response", draft)
	}

	requests := fake.Requests()
	if len(requests) != 1 {
		t.Fatalf("expected 1 completion request, got %d", len(requests))
	}
	req := requests[0]
	if req.Model != defaultModel {
		t.Errorf("model = %q, want %q", req.Model, defaultModel)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(req.Messages))
	}
	if req.Messages[0].Role != "system" {
		t.Errorf("first message role = %q, want system", req.Messages[0].Role)
	}
	if !strings.Contains(req.Messages[1].Content, "가을 풍경 사진 감상") {
		t.Errorf("user message does not carry the topic: %q", req.Messages[1].Content)
	}
}

func TestAssistant_Draft_EmptyTopic(t *testing.T) {
	a, fake := newTestAssistant(t)

	for _, topic := range []string{"", "   "} {
		if _, err := a.Draft(context.Background(), category.Text, topic); !errors.Is(err, ErrEmptyTopic) {
			t.Errorf("Draft(%q) error = %v, want ErrEmptyTopic", topic, err)
		}
	}
	if len(fake.Requests()) != 0 {
		t.Error("empty topics must not reach the API")
	}
}

func TestAssistant_SummarizeForStudent(t *testing.T) {
	a, fake := newTestAssistant(t)
	fake.Response = "어려운 백과사전 글을 쉬운 말로 바꿔 보는 활동이에요."

	summary, err := a.SummarizeForStudent(context.Background(), category.Text, "백과사전 글을 쉽게 풀어 쓰세요.")
	if err != nil {
		t.Fatalf("SummarizeForStudent() error = %v", err)
	}
	if summary != fake.Response {
		t.Errorf("summary = %q, want %q", summary, fake.Response)
	}
	requests := fake.Requests()
	if len(requests) != 1 {
		t.Fatalf("expected 1 completion request, got %d", len(requests))
	}
	if !strings.Contains(requests[0].Messages[1].Content, "백과사전") {
		t.Errorf("user message does not carry the prompt: %q", requests[0].Messages[1].Content)
	}
}

func TestAssistant_SummarizeForStudent_ImageSkipsAPI(t *testing.T) {
	a, fake := newTestAssistant(t)

	summary, err := a.SummarizeForStudent(context.Background(), category.Image, "그림 프롬프트")
	if err != nil {
		t.Fatalf("SummarizeForStudent() error = %v", err)
	}
	if summary != "" {
		t.Errorf("summary = %q, want empty for image category", summary)
	}
	if len(fake.Requests()) != 0 {
		t.Error("image category must not call the API")
	}
}

func TestAssistant_UpstreamFailure(t *testing.T) {
	fake := testutil.NewFakeOpenAI(t)
	fake.StatusCode = http.StatusInternalServerError
	a, err := NewAssistant(Config{
		APIKeys:    []string{"key-1"},
		BaseURL:    fake.Server.URL,
		MaxRetries: 1,
	})
	if err != nil {
		t.Fatalf("NewAssistant() error = %v", err)
	}

	if _, err := a.SummarizeForStudent(context.Background(), category.Vision, "프롬프트"); err == nil {
		t.Error("expected error from failing upstream")
	}
}
