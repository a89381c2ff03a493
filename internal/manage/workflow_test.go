package manage

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/promptdesk/promptdesk/internal/category"
	"github.com/promptdesk/promptdesk/internal/store"
	"github.com/promptdesk/promptdesk/internal/testutil"
)

type fixture struct {
	workflow *Workflow
	store    *store.Store
	notion   *testutil.FakeNotion
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fake := testutil.NewFakeNotion(t)
	st := store.NewStore(fake.Client(), map[category.Category]string{
		category.Vision:  "db-vision",
		category.Text:    "db-text",
		category.Image:   "db-image",
		category.Chatbot: "db-chatbot",
	})
	logger := slog.New(slog.DiscardHandler)
	return &fixture{
		workflow: NewWorkflow(NewSessions(), st, logger),
		store:    st,
		notion:   fake,
	}
}

func (f *fixture) seed(t *testing.T, rec store.Record) store.Record {
	t.Helper()
	saved, err := f.store.Insert(context.Background(), rec)
	if err != nil {
		t.Fatalf("seed Insert() error = %v", err)
	}
	return saved
}

func TestWorkflow_FullEditWalk(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seed(t, store.Record{
		Category:     category.Text,
		ActivityCode: "ABC1",
		Prompt:       "원래 프롬프트",
		StudentView:  "원래 안내",
		Password:     "teach01",
	})

	snap := f.workflow.Create()
	if snap.Step != StepSelectCategory {
		t.Fatalf("new session step = %s, want %s", snap.Step, StepSelectCategory)
	}

	snap, err := f.workflow.SelectCategory(snap.ID, category.Text)
	if err != nil {
		t.Fatalf("SelectCategory() error = %v", err)
	}
	if snap.Step != StepEnterPassword {
		t.Fatalf("step = %s, want %s", snap.Step, StepEnterPassword)
	}

	snap, err = f.workflow.Search(ctx, snap.ID, "teach01")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if snap.Step != StepReviewResults {
		t.Fatalf("step = %s, want %s", snap.Step, StepReviewResults)
	}
	if len(snap.Results) != 1 || snap.Results[0].ActivityCode != "ABC1" {
		t.Fatalf("unexpected results: %+v", snap.Results)
	}

	snap, err = f.workflow.BeginEdit(snap.ID, "ABC1")
	if err != nil {
		t.Fatalf("BeginEdit() error = %v", err)
	}
	if snap.Step != StepEditRecord || snap.Selected != "ABC1" {
		t.Fatalf("step = %s selected = %s, want edit of ABC1", snap.Step, snap.Selected)
	}

	snap, err = f.workflow.SubmitEdit(ctx, snap.ID, EditFields{
		Prompt:      "수정된 프롬프트",
		Email:       "new@school.kr",
		StudentView: "수정된 안내",
	})
	if err != nil {
		t.Fatalf("SubmitEdit() error = %v", err)
	}
	if snap.Step != StepDone {
		t.Fatalf("step = %s, want %s", snap.Step, StepDone)
	}

	records, err := f.store.FindByActivityCode(ctx, category.Text, "ABC1")
	if err != nil {
		t.Fatalf("FindByActivityCode() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 live record, got %d", len(records))
	}
	if records[0].Prompt != "수정된 프롬프트" {
		t.Errorf("prompt = %q, want the edit", records[0].Prompt)
	}
	if records[0].Password != "teach01" {
		t.Errorf("password = %q, want retained teach01", records[0].Password)
	}
	if records[0].StudentView != "수정된 안내" {
		t.Errorf("student view = %q, want the edit", records[0].StudentView)
	}

	snap, err = f.workflow.Restart(snap.ID)
	if err != nil {
		t.Fatalf("Restart() error = %v", err)
	}
	if snap.Step != StepSelectCategory || len(snap.Results) != 0 || snap.Category != "" {
		t.Errorf("restart did not clear the session: %+v", snap)
	}
}

func TestWorkflow_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seed(t, store.Record{Category: category.Text, ActivityCode: "ABC1", Prompt: "p", Password: "teach01"})
	f.seed(t, store.Record{Category: category.Text, ActivityCode: "DEF2", Prompt: "q", Password: "teach01"})

	snap := f.workflow.Create()
	if _, err := f.workflow.SelectCategory(snap.ID, category.Text); err != nil {
		t.Fatalf("SelectCategory() error = %v", err)
	}
	if _, err := f.workflow.Search(ctx, snap.ID, "teach01"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	snap, err := f.workflow.Delete(ctx, snap.ID, "ABC1")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if snap.Step != StepSelectCategory {
		t.Errorf("step after delete = %s, want %s", snap.Step, StepSelectCategory)
	}

	remaining, err := f.store.FindByPassword(ctx, category.Text, "teach01")
	if err != nil {
		t.Fatalf("FindByPassword() error = %v", err)
	}
	if len(remaining) != 1 || remaining[0].ActivityCode != "DEF2" {
		t.Errorf("expected only DEF2 to remain, got %+v", remaining)
	}
}

func TestWorkflow_Search(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seed(t, store.Record{Category: category.Vision, ActivityCode: "V1", Prompt: "p", Password: "pw1"})

	snap := f.workflow.Create()
	if _, err := f.workflow.SelectCategory(snap.ID, category.Vision); err != nil {
		t.Fatalf("SelectCategory() error = %v", err)
	}

	t.Run("empty_password", func(t *testing.T) {
		got, err := f.workflow.Search(ctx, snap.ID, "  ")
		if !errors.Is(err, ErrEmptyPassword) {
			t.Errorf("error = %v, want ErrEmptyPassword", err)
		}
		if got.Step != StepEnterPassword {
			t.Errorf("step = %s, want unchanged", got.Step)
		}
	})

	t.Run("no_results", func(t *testing.T) {
		got, err := f.workflow.Search(ctx, snap.ID, "wrong")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if got.Step != StepEnterPassword {
			t.Errorf("step = %s, want to stay for retry", got.Step)
		}
		if len(got.Results) != 0 {
			t.Errorf("results = %+v, want none", got.Results)
		}
	})

	t.Run("store_failure_keeps_state", func(t *testing.T) {
		f.notion.FailQueries = true
		defer func() { f.notion.FailQueries = false }()

		got, err := f.workflow.Search(ctx, snap.ID, "pw1")
		if err == nil {
			t.Fatal("expected error from failing store")
		}
		if got.Step != StepEnterPassword {
			t.Errorf("step = %s, want unchanged after failure", got.Step)
		}
	})

	t.Run("hit", func(t *testing.T) {
		got, err := f.workflow.Search(ctx, snap.ID, "pw1")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if got.Step != StepReviewResults || len(got.Results) != 1 {
			t.Errorf("step = %s results = %d, want review with 1 hit", got.Step, len(got.Results))
		}
	})
}

func TestWorkflow_StepGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	snap := f.workflow.Create()

	if _, err := f.workflow.Search(ctx, snap.ID, "pw"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("Search before category: error = %v, want ErrWrongStep", err)
	}
	if _, err := f.workflow.Delete(ctx, snap.ID, "X"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("Delete before search: error = %v, want ErrWrongStep", err)
	}
	if _, err := f.workflow.BeginEdit(snap.ID, "X"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("BeginEdit before search: error = %v, want ErrWrongStep", err)
	}
	if _, err := f.workflow.SubmitEdit(ctx, snap.ID, EditFields{Prompt: "p"}); !errors.Is(err, ErrWrongStep) {
		t.Errorf("SubmitEdit before edit: error = %v, want ErrWrongStep", err)
	}
	if _, err := f.workflow.SelectCategory(snap.ID, "bogus"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestWorkflow_BeginEdit_UnknownCodeResets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seed(t, store.Record{Category: category.Chatbot, ActivityCode: "C1", Prompt: "p", Password: "pw"})

	snap := f.workflow.Create()
	if _, err := f.workflow.SelectCategory(snap.ID, category.Chatbot); err != nil {
		t.Fatalf("SelectCategory() error = %v", err)
	}
	if _, err := f.workflow.Search(ctx, snap.ID, "pw"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	got, err := f.workflow.BeginEdit(snap.ID, "NOPE")
	if !errors.Is(err, ErrUnknownCode) {
		t.Errorf("error = %v, want ErrUnknownCode", err)
	}
	if got.Step != StepSelectCategory {
		t.Errorf("step = %s, want reset to %s", got.Step, StepSelectCategory)
	}
}

func TestWorkflow_SubmitEdit_FailureStaysOnEditStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seed(t, store.Record{Category: category.Image, ActivityCode: "IMG1", Prompt: "곰", Password: "pw", Adjectives: []string{"신나는"}})

	snap := f.workflow.Create()
	if _, err := f.workflow.SelectCategory(snap.ID, category.Image); err != nil {
		t.Fatalf("SelectCategory() error = %v", err)
	}
	if _, err := f.workflow.Search(ctx, snap.ID, "pw"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if _, err := f.workflow.BeginEdit(snap.ID, "IMG1"); err != nil {
		t.Fatalf("BeginEdit() error = %v", err)
	}

	t.Run("empty_prompt", func(t *testing.T) {
		got, err := f.workflow.SubmitEdit(ctx, snap.ID, EditFields{Prompt: " "})
		if !errors.Is(err, ErrEmptyPrompt) {
			t.Errorf("error = %v, want ErrEmptyPrompt", err)
		}
		if got.Step != StepEditRecord {
			t.Errorf("step = %s, want to stay at edit", got.Step)
		}
	})

	t.Run("store_failure", func(t *testing.T) {
		f.notion.FailQueries = true
		defer func() { f.notion.FailQueries = false }()

		got, err := f.workflow.SubmitEdit(ctx, snap.ID, EditFields{Prompt: "호랑이"})
		if err == nil {
			t.Fatal("expected error from failing store")
		}
		if got.Step != StepEditRecord {
			t.Errorf("step = %s, want to stay at edit", got.Step)
		}
	})

	t.Run("adjectives_rewritten", func(t *testing.T) {
		got, err := f.workflow.SubmitEdit(ctx, snap.ID, EditFields{
			Prompt:     "호랑이",
			Adjectives: "용감한, 빠른",
		})
		if err != nil {
			t.Fatalf("SubmitEdit() error = %v", err)
		}
		if got.Step != StepDone {
			t.Errorf("step = %s, want %s", got.Step, StepDone)
		}

		records, err := f.store.FindByActivityCode(ctx, category.Image, "IMG1")
		if err != nil {
			t.Fatalf("FindByActivityCode() error = %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 live record, got %d", len(records))
		}
		if len(records[0].Adjectives) != 2 || records[0].Adjectives[0] != "용감한" {
			t.Errorf("adjectives = %v, want [용감한 빠른]", records[0].Adjectives)
		}
	})
}

func TestSessions_GetAndRemove(t *testing.T) {
	sessions := NewSessions()

	snap := sessions.Create()
	if _, err := sessions.Get(snap.ID); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	sessions.Remove(snap.ID)
	if _, err := sessions.Get(snap.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}

	// Removing twice is harmless.
	sessions.Remove(snap.ID)
}
