package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/promptdesk/promptdesk/internal/api"
	"github.com/promptdesk/promptdesk/internal/authoring"
	"github.com/promptdesk/promptdesk/internal/category"
	"github.com/promptdesk/promptdesk/internal/svcctx"
)

// DraftRequest is the request body for an AI-assisted draft.
type DraftRequest struct {
	Category string `json:"category"`
	Topic    string `json:"topic"`
}

// DraftResponse carries the generated draft prompt.
type DraftResponse struct {
	Category string `json:"category"`
	Draft    string `json:"draft"`
}

// DraftPromptEndpoint handles POST /api/prompts/draft.
type DraftPromptEndpoint struct{}

func (e *DraftPromptEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/prompts/draft", e.handler
}

func (e *DraftPromptEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Draft a prompt from a topic
//	@Description	Generates a category-appropriate prompt draft from a topic sentence
//	@Tags			prompts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DraftRequest	true	"Draft request"
//	@Success		200		{object}	DraftResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/prompts/draft [post]
func (e *DraftPromptEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cat, err := category.Parse(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	workflow := svcctx.AuthoringFrom(r.Context())
	draft, err := workflow.Draft(r.Context(), cat, req.Topic)
	if err != nil {
		if authoring.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
			logger.Error("draft generation failed", "category", cat, "error", err)
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, DraftResponse{Category: string(cat), Draft: draft})
}

func (e *DraftPromptEndpoint) Command(getServerURL func() string) *cobra.Command {
	var cat, topic string
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Generate an AI-assisted prompt draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cat == "" || topic == "" {
				return fmt.Errorf("--category and --topic are required")
			}
			client := api.NewClient(getServerURL())
			var resp DraftResponse
			if err := client.Post(cmd.Context(), "/api/prompts/draft", DraftRequest{Category: cat, Topic: topic}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&cat, "category", "", "Category key (required)")
	cmd.Flags().StringVar(&topic, "topic", "", "Topic or keywords for the draft (required)")
	return cmd
}

// ExistsResponse reports whether an activity code is taken.
type ExistsResponse struct {
	Category     string `json:"category"`
	ActivityCode string `json:"activityCode"`
	Exists       bool   `json:"exists"`
}

// CheckCodeEndpoint handles GET /api/prompts/exists.
type CheckCodeEndpoint struct{}

func (e *CheckCodeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/prompts/exists", e.handler
}

func (e *CheckCodeEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Check an activity code
//	@Description	Reports whether a live record already uses the activity code
//	@Tags			prompts
//	@Produce		json
//	@Param			category		query		string	true	"Category key"
//	@Param			activity_code	query		string	true	"Activity code"
//	@Success		200				{object}	ExistsResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		502				{object}	ErrorResponse
//	@Router			/api/prompts/exists [get]
func (e *CheckCodeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	cat, err := category.Parse(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	code := r.URL.Query().Get("activity_code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "activity_code is required")
		return
	}

	workflow := svcctx.AuthoringFrom(r.Context())
	free, err := workflow.CheckCode(r.Context(), cat, code)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ExistsResponse{
		Category:     string(cat),
		ActivityCode: code,
		Exists:       !free,
	})
}

func (e *CheckCodeEndpoint) Command(getServerURL func() string) *cobra.Command {
	var cat, code string
	cmd := &cobra.Command{
		Use:   "exists",
		Short: "Check whether an activity code is taken",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cat == "" || code == "" {
				return fmt.Errorf("--category and --code are required")
			}
			client := api.NewClient(getServerURL())
			query := url.Values{"category": {cat}, "activity_code": {code}}
			var resp ExistsResponse
			if err := client.Get(cmd.Context(), "/api/prompts/exists?"+query.Encode(), &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&cat, "category", "", "Category key (required)")
	cmd.Flags().StringVar(&code, "code", "", "Activity code (required)")
	return cmd
}

// SavePromptEndpoint handles POST /api/prompts.
type SavePromptEndpoint struct{}

func (e *SavePromptEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/prompts", e.handler
}

func (e *SavePromptEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Save a finished prompt
//	@Description	Validates the submission, generates the student view, and persists the record
//	@Tags			prompts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authoring.Submission	true	"Prompt submission"
//	@Success		201		{object}	authoring.SaveResult
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/prompts [post]
func (e *SavePromptEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var sub authoring.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := category.Parse(string(sub.Category)); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	workflow := svcctx.AuthoringFrom(r.Context())
	result, err := workflow.Save(r.Context(), sub)
	if err != nil {
		switch {
		case errors.Is(err, authoring.ErrDuplicateCode):
			writeError(w, http.StatusConflict, err.Error())
		case authoring.IsValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
				logger.Error("prompt save failed", "category", sub.Category, "error", err)
			}
			writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (e *SavePromptEndpoint) Command(getServerURL func() string) *cobra.Command {
	var sub authoring.Submission
	var cat, mode string
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a finished prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cat == "" || sub.Prompt == "" || sub.ActivityCode == "" {
				return fmt.Errorf("--category, --prompt, and --code are required")
			}
			sub.Category = category.Category(cat)
			sub.AdjectivesMode = authoring.AdjectivesMode(mode)
			client := api.NewClient(getServerURL())
			var resp authoring.SaveResult
			if err := client.Post(cmd.Context(), "/api/prompts", sub, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&cat, "category", "", "Category key (required)")
	cmd.Flags().StringVar(&sub.Prompt, "prompt", "", "Final prompt text, or the image subject (required)")
	cmd.Flags().StringVar(&sub.ActivityCode, "code", "", "Activity code students will enter (required)")
	cmd.Flags().StringVar(&sub.Email, "email", "", "Teacher email")
	cmd.Flags().StringVar(&sub.Password, "password", "", "Management password")
	cmd.Flags().StringVar(&mode, "adjectives-mode", "", "Image adjectives mode: default or custom")
	cmd.Flags().StringVar(&sub.CustomAdjectives, "adjectives", "", "Comma-separated custom adjectives")
	return cmd
}
