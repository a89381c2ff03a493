package authoring

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"github.com/promptdesk/promptdesk/internal/assistant"
	"github.com/promptdesk/promptdesk/internal/category"
	"github.com/promptdesk/promptdesk/internal/store"
	"github.com/promptdesk/promptdesk/internal/testutil"
)

type fixture struct {
	workflow *Workflow
	store    *store.Store
	notion   *testutil.FakeNotion
	openai   *testutil.FakeOpenAI
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fakeNotion := testutil.NewFakeNotion(t)
	fakeOpenAI := testutil.NewFakeOpenAI(t)

	st := store.NewStore(fakeNotion.Client(), map[category.Category]string{
		category.Vision:  "db-vision",
		category.Text:    "db-text",
		category.Image:   "db-image",
		category.Chatbot: "db-chatbot",
	})
	a, err := assistant.NewAssistant(assistant.Config{
		APIKeys: []string{"key-1"},
		BaseURL: fakeOpenAI.Server.URL,
	})
	if err != nil {
		t.Fatalf("NewAssistant() error = %v", err)
	}
	logger := slog.New(slog.DiscardHandler)
	return &fixture{
		workflow: NewWorkflow(st, a, logger),
		store:    st,
		notion:   fakeNotion,
		openai:   fakeOpenAI,
	}
}

func TestWorkflow_SeedDraft(t *testing.T) {
	f := newFixture(t)

	t.Run("sample", func(t *testing.T) {
		desc := category.Get(category.Vision)
		title := desc.Samples[0].Title
		draft, err := f.workflow.SeedDraft(category.Vision, MethodSample, title)
		if err != nil {
			t.Fatalf("SeedDraft() error = %v", err)
		}
		if draft != desc.Samples[0].Prompt {
			t.Errorf("draft = %q, want the sample prompt", draft)
		}
	})

	t.Run("unknown_sample", func(t *testing.T) {
		_, err := f.workflow.SeedDraft(category.Vision, MethodSample, "없는 제목")
		if !errors.Is(err, ErrUnknownSample) {
			t.Errorf("expected ErrUnknownSample, got %v", err)
		}
	})

	t.Run("direct", func(t *testing.T) {
		draft, err := f.workflow.SeedDraft(category.Text, MethodDirect, "")
		if err != nil {
			t.Fatalf("SeedDraft() error = %v", err)
		}
		if draft != category.Get(category.Text).ExamplePrompt {
			t.Errorf("draft = %q, want the example prompt", draft)
		}
	})

	t.Run("ai_starts_empty", func(t *testing.T) {
		draft, err := f.workflow.SeedDraft(category.Chatbot, MethodAI, "")
		if err != nil {
			t.Fatalf("SeedDraft() error = %v", err)
		}
		if draft != "" {
			t.Errorf("draft = %q, want empty", draft)
		}
	})

	t.Run("unknown_method", func(t *testing.T) {
		_, err := f.workflow.SeedDraft(category.Text, Method("telepathy"), "")
		if !errors.Is(err, ErrUnknownMethod) {
			t.Errorf("expected ErrUnknownMethod, got %v", err)
		}
	})
}

func TestWorkflow_Save_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := Submission{
		Category:     category.Text,
		Prompt:       "프롬프트 본문",
		ActivityCode: "ABC1",
		Password:     "teach01",
	}

	tests := []struct {
		name    string
		mutate  func(*Submission)
		wantErr error
	}{
		{"empty_prompt", func(s *Submission) { s.Prompt = "   " }, ErrEmptyPrompt},
		{"empty_code", func(s *Submission) { s.ActivityCode = "" }, ErrEmptyCode},
		{"numeric_password", func(s *Submission) { s.Password = "12345" }, ErrBadPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := base
			tt.mutate(&sub)
			_, err := f.workflow.Save(ctx, sub)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Save() error = %v, want %v", err, tt.wantErr)
			}
			if !IsValidation(err) {
				t.Errorf("expected %v to be a validation error", err)
			}
		})
	}

	// Non-numeric and empty passwords are both acceptable.
	for _, password := range []string{"abc123", ""} {
		sub := base
		sub.ActivityCode = "OK-" + password
		sub.Password = password
		if _, err := f.workflow.Save(ctx, sub); err != nil {
			t.Errorf("Save() with password %q error = %v", password, err)
		}
	}
}

func TestWorkflow_Save_TextEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.openai.Response = "어려운 백과사전 글을 쉬운 말로 바꿔 쓰는 활동이에요."

	draft, err := f.workflow.SeedDraft(category.Text, MethodSample, "사회시간 - 백과사전 글 쉽게 설명하기")
	if err != nil {
		t.Fatalf("SeedDraft() error = %v", err)
	}

	result, err := f.workflow.Save(ctx, Submission{
		Category:     category.Text,
		Prompt:       draft,
		ActivityCode: "ABC1",
		Email:        "teacher@school.kr",
		Password:     "teach01",
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if result.Warning != "" {
		t.Errorf("unexpected warning: %q", result.Warning)
	}
	if result.Record.StudentView == "" {
		t.Error("expected a non-empty student view")
	}

	found, err := f.store.FindByPassword(ctx, category.Text, "teach01")
	if err != nil {
		t.Fatalf("FindByPassword() error = %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 saved record, got %d", len(found))
	}
	if found[0].ActivityCode != "ABC1" {
		t.Errorf("activity code = %q, want ABC1", found[0].ActivityCode)
	}
	if found[0].Prompt != draft {
		t.Errorf("prompt = %q, want the seeded draft", found[0].Prompt)
	}
	if found[0].StudentView != f.openai.Response {
		t.Errorf("student view = %q, want %q", found[0].StudentView, f.openai.Response)
	}
}

func TestWorkflow_Save_DuplicateCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sub := Submission{
		Category:     category.Vision,
		Prompt:       "프롬프트",
		ActivityCode: "DUP1",
		Password:     "teach01",
	}
	if _, err := f.workflow.Save(ctx, sub); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}

	_, err := f.workflow.Save(ctx, sub)
	if !errors.Is(err, ErrDuplicateCode) {
		t.Errorf("second Save() error = %v, want ErrDuplicateCode", err)
	}
	if IsValidation(err) {
		t.Error("duplicate code is a conflict, not a validation error")
	}
}

func TestWorkflow_Save_StudentViewFailureIsWarning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.openai.StatusCode = 500

	result, err := f.workflow.Save(ctx, Submission{
		Category:     category.Chatbot,
		Prompt:       "역사 인물 챗봇",
		ActivityCode: "HIST1",
		Password:     "teach01",
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if result.Warning == "" {
		t.Error("expected a warning when the student view fails")
	}
	if result.Record.StudentView != "" {
		t.Errorf("student view = %q, want empty", result.Record.StudentView)
	}

	found, err := f.store.FindByActivityCode(ctx, category.Chatbot, "HIST1")
	if err != nil {
		t.Fatalf("FindByActivityCode() error = %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected the record saved despite the warning, got %d", len(found))
	}
}

func TestWorkflow_Save_ImageAdjectives(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		sub  Submission
		want []string
	}{
		{
			name: "default_mode",
			sub: Submission{
				Category:       category.Image,
				Prompt:         "곰",
				ActivityCode:   "IMG1",
				Password:       "teach01",
				AdjectivesMode: AdjectivesDefault,
			},
			want: category.Get(category.Image).DefaultAdjectives,
		},
		{
			name: "custom_mode",
			sub: Submission{
				Category:         category.Image,
				Prompt:           "나무",
				ActivityCode:     "IMG2",
				Password:         "teach01",
				AdjectivesMode:   AdjectivesCustom,
				CustomAdjectives: " 신나는 , 차분한 ,푸른 ",
			},
			want: []string{"신나는", "차분한", "푸른"},
		},
		{
			name: "custom_mode_empty_input",
			sub: Submission{
				Category:       category.Image,
				Prompt:         "산",
				ActivityCode:   "IMG3",
				Password:       "teach01",
				AdjectivesMode: AdjectivesCustom,
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.workflow.Save(ctx, tt.sub)
			if err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if result.Record.StudentView != "" {
				t.Error("image records must not carry a student view")
			}

			found, err := f.store.FindByActivityCode(ctx, category.Image, tt.sub.ActivityCode)
			if err != nil {
				t.Fatalf("FindByActivityCode() error = %v", err)
			}
			if len(found) != 1 {
				t.Fatalf("expected 1 record, got %d", len(found))
			}
			if !reflect.DeepEqual(found[0].Adjectives, tt.want) {
				t.Errorf("adjectives = %v, want %v", found[0].Adjectives, tt.want)
			}
		})
	}

	if len(f.openai.Requests()) != 0 {
		t.Error("image saves must not call the completion API")
	}

	t.Run("unknown_mode", func(t *testing.T) {
		_, err := f.workflow.Save(ctx, Submission{
			Category:       category.Image,
			Prompt:         "바다",
			ActivityCode:   "IMG4",
			Password:       "teach01",
			AdjectivesMode: AdjectivesMode("random"),
		})
		if !errors.Is(err, ErrAdjectivesMode) {
			t.Errorf("expected ErrAdjectivesMode, got %v", err)
		}
	})
}

func TestWorkflow_CheckCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	free, err := f.workflow.CheckCode(ctx, category.Text, "NEW1")
	if err != nil {
		t.Fatalf("CheckCode() error = %v", err)
	}
	if !free {
		t.Error("expected unused code to be free")
	}

	if _, err := f.workflow.Save(ctx, Submission{
		Category:     category.Text,
		Prompt:       "p",
		ActivityCode: "NEW1",
		Password:     "pw",
	}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	free, err = f.workflow.CheckCode(ctx, category.Text, "NEW1")
	if err != nil {
		t.Fatalf("CheckCode() error = %v", err)
	}
	if free {
		t.Error("expected used code to be taken")
	}
}

func TestWorkflow_Save_DuplicateCheckUnavailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.notion.FailQueries = true
	result, err := f.workflow.Save(ctx, Submission{
		Category:     category.Vision,
		Prompt:       "p",
		ActivityCode: "V1",
		Password:     "pw",
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if result.Warning == "" {
		t.Error("expected a warning when the duplicate check is unavailable")
	}
}
