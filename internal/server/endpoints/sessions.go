package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/promptdesk/promptdesk/internal/api"
	"github.com/promptdesk/promptdesk/internal/category"
	"github.com/promptdesk/promptdesk/internal/manage"
	"github.com/promptdesk/promptdesk/internal/svcctx"
)

// writeManageError maps management workflow errors to HTTP statuses.
func writeManageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, manage.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, manage.ErrWrongStep):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, manage.ErrEmptyPassword),
		errors.Is(err, manage.ErrEmptyPrompt),
		errors.Is(err, manage.ErrUnknownCode):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusBadGateway, err.Error())
	}
}

// CreateSessionEndpoint handles POST /api/sessions.
type CreateSessionEndpoint struct{}

func (e *CreateSessionEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/sessions", e.handler
}

func (e *CreateSessionEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Start a management session
//	@Description	Creates a session at the category selection step
//	@Tags			sessions
//	@Produce		json
//	@Success		201	{object}	manage.Snapshot
//	@Router			/api/sessions [post]
func (e *CreateSessionEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	workflow := svcctx.ManageFrom(r.Context())
	writeJSON(w, http.StatusCreated, workflow.Create())
}

func (e *CreateSessionEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "session-create",
		Short: "Start a management session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp manage.Snapshot
			if err := client.Post(cmd.Context(), "/api/sessions", nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// GetSessionEndpoint handles GET /api/sessions/{id}.
type GetSessionEndpoint struct{}

func (e *GetSessionEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/sessions/{id}", e.handler
}

func (e *GetSessionEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get a management session
//	@Description	Returns the session's current step and carried search results
//	@Tags			sessions
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	manage.Snapshot
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/sessions/{id} [get]
func (e *GetSessionEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	workflow := svcctx.ManageFrom(r.Context())
	snap, err := workflow.Get(r.PathValue("id"))
	if err != nil {
		writeManageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (e *GetSessionEndpoint) Command(getServerURL func() string) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "session-get",
		Short: "Show a management session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return fmt.Errorf("--id is required")
			}
			client := api.NewClient(getServerURL())
			var resp manage.Snapshot
			if err := client.Get(cmd.Context(), "/api/sessions/"+id, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Session ID (required)")
	return cmd
}

// SelectCategoryRequest picks the category to manage.
type SelectCategoryRequest struct {
	Category string `json:"category"`
}

// SelectCategoryEndpoint handles POST /api/sessions/{id}/category.
type SelectCategoryEndpoint struct{}

func (e *SelectCategoryEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/sessions/{id}/category", e.handler
}

func (e *SelectCategoryEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Select the category to manage
//	@Description	Advances the session to the password step
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Session ID"
//	@Param			request	body		SelectCategoryRequest	true	"Category selection"
//	@Success		200		{object}	manage.Snapshot
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/api/sessions/{id}/category [post]
func (e *SelectCategoryEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req SelectCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	workflow := svcctx.ManageFrom(r.Context())
	snap, err := workflow.SelectCategory(r.PathValue("id"), category.Category(req.Category))
	if err != nil {
		if errors.Is(err, manage.ErrSessionNotFound) || errors.Is(err, manage.ErrWrongStep) {
			writeManageError(w, err)
		} else {
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (e *SelectCategoryEndpoint) Command(getServerURL func() string) *cobra.Command {
	var id, cat string
	cmd := &cobra.Command{
		Use:   "session-category",
		Short: "Select the category to manage",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" || cat == "" {
				return fmt.Errorf("--id and --category are required")
			}
			client := api.NewClient(getServerURL())
			var resp manage.Snapshot
			if err := client.Post(cmd.Context(), "/api/sessions/"+id+"/category", SelectCategoryRequest{Category: cat}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Session ID (required)")
	cmd.Flags().StringVar(&cat, "category", "", "Category key (required)")
	return cmd
}

// SearchRequest carries the teacher's management password.
type SearchRequest struct {
	Password string `json:"password"`
}

// SearchEndpoint handles POST /api/sessions/{id}/search.
type SearchEndpoint struct{}

func (e *SearchEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/sessions/{id}/search", e.handler
}

func (e *SearchEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Search records by password
//	@Description	Finds the records saved under a password; an empty result keeps the password step
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Session ID"
//	@Param			request	body		SearchRequest	true	"Search request"
//	@Success		200		{object}	manage.Snapshot
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/sessions/{id}/search [post]
func (e *SearchEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	workflow := svcctx.ManageFrom(r.Context())
	snap, err := workflow.Search(r.Context(), r.PathValue("id"), req.Password)
	if err != nil {
		writeManageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (e *SearchEndpoint) Command(getServerURL func() string) *cobra.Command {
	var id, password string
	cmd := &cobra.Command{
		Use:   "session-search",
		Short: "Search saved prompts by password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" || password == "" {
				return fmt.Errorf("--id and --password are required")
			}
			client := api.NewClient(getServerURL())
			var resp manage.Snapshot
			if err := client.Post(cmd.Context(), "/api/sessions/"+id+"/search", SearchRequest{Password: password}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Session ID (required)")
	cmd.Flags().StringVar(&password, "password", "", "Management password (required)")
	return cmd
}

// CodeRequest names a found record by its activity code.
type CodeRequest struct {
	ActivityCode string `json:"activityCode"`
}

// DeleteRecordEndpoint handles DELETE /api/sessions/{id}/records/{code}.
type DeleteRecordEndpoint struct{}

func (e *DeleteRecordEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/sessions/{id}/records/{code}", e.handler
}

func (e *DeleteRecordEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Delete a found record
//	@Description	Archives every live record for the activity code and restarts the session
//	@Tags			sessions
//	@Produce		json
//	@Param			id		path		string	true	"Session ID"
//	@Param			code	path		string	true	"Activity code"
//	@Success		200		{object}	manage.Snapshot
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/sessions/{id}/records/{code} [delete]
func (e *DeleteRecordEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	workflow := svcctx.ManageFrom(r.Context())
	snap, err := workflow.Delete(r.Context(), r.PathValue("id"), r.PathValue("code"))
	if err != nil {
		writeManageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (e *DeleteRecordEndpoint) Command(getServerURL func() string) *cobra.Command {
	var id, code string
	cmd := &cobra.Command{
		Use:   "session-delete",
		Short: "Delete a found prompt record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" || code == "" {
				return fmt.Errorf("--id and --code are required")
			}
			client := api.NewClient(getServerURL())
			var resp manage.Snapshot
			if err := client.Delete(cmd.Context(), "/api/sessions/"+id+"/records/"+code, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Session ID (required)")
	cmd.Flags().StringVar(&code, "code", "", "Activity code (required)")
	return cmd
}

// BeginEditEndpoint handles POST /api/sessions/{id}/edit.
type BeginEditEndpoint struct{}

func (e *BeginEditEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/sessions/{id}/edit", e.handler
}

func (e *BeginEditEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Begin editing a found record
//	@Description	Selects a record from the search results for editing
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Session ID"
//	@Param			request	body		CodeRequest	true	"Record selection"
//	@Success		200		{object}	manage.Snapshot
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/api/sessions/{id}/edit [post]
func (e *BeginEditEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req CodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	workflow := svcctx.ManageFrom(r.Context())
	snap, err := workflow.BeginEdit(r.PathValue("id"), req.ActivityCode)
	if err != nil {
		writeManageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (e *BeginEditEndpoint) Command(getServerURL func() string) *cobra.Command {
	var id, code string
	cmd := &cobra.Command{
		Use:   "session-edit",
		Short: "Begin editing a found prompt record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" || code == "" {
				return fmt.Errorf("--id and --code are required")
			}
			client := api.NewClient(getServerURL())
			var resp manage.Snapshot
			if err := client.Post(cmd.Context(), "/api/sessions/"+id+"/edit", CodeRequest{ActivityCode: code}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Session ID (required)")
	cmd.Flags().StringVar(&code, "code", "", "Activity code (required)")
	return cmd
}

// SubmitEditEndpoint handles PATCH /api/sessions/{id}/record.
type SubmitEditEndpoint struct{}

func (e *SubmitEditEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PATCH", "/api/sessions/{id}/record", e.handler
}

func (e *SubmitEditEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Submit edited record fields
//	@Description	Rewrites the selected record in place, keeping its activity code and password
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Session ID"
//	@Param			request	body		manage.EditFields	true	"Edited fields"
//	@Success		200		{object}	manage.Snapshot
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/sessions/{id}/record [patch]
func (e *SubmitEditEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var fields manage.EditFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	workflow := svcctx.ManageFrom(r.Context())
	snap, err := workflow.SubmitEdit(r.Context(), r.PathValue("id"), fields)
	if err != nil {
		writeManageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (e *SubmitEditEndpoint) Command(getServerURL func() string) *cobra.Command {
	var id string
	var fields manage.EditFields
	cmd := &cobra.Command{
		Use:   "session-submit",
		Short: "Submit edited record fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" || fields.Prompt == "" {
				return fmt.Errorf("--id and --prompt are required")
			}
			client := api.NewClient(getServerURL())
			var resp manage.Snapshot
			if err := client.Patch(cmd.Context(), "/api/sessions/"+id+"/record", fields, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Session ID (required)")
	cmd.Flags().StringVar(&fields.Prompt, "prompt", "", "New prompt text (required)")
	cmd.Flags().StringVar(&fields.Email, "email", "", "New teacher email")
	cmd.Flags().StringVar(&fields.StudentView, "student-view", "", "New student view text")
	cmd.Flags().StringVar(&fields.Adjectives, "adjectives", "", "Comma-separated adjectives (image)")
	return cmd
}

// RestartSessionEndpoint handles POST /api/sessions/{id}/restart.
type RestartSessionEndpoint struct{}

func (e *RestartSessionEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/sessions/{id}/restart", e.handler
}

func (e *RestartSessionEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Restart a management session
//	@Description	Returns the session to the category step and clears carried state
//	@Tags			sessions
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	manage.Snapshot
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/sessions/{id}/restart [post]
func (e *RestartSessionEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	workflow := svcctx.ManageFrom(r.Context())
	snap, err := workflow.Restart(r.PathValue("id"))
	if err != nil {
		writeManageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (e *RestartSessionEndpoint) Command(getServerURL func() string) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "session-restart",
		Short: "Restart a management session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return fmt.Errorf("--id is required")
			}
			client := api.NewClient(getServerURL())
			var resp manage.Snapshot
			if err := client.Post(cmd.Context(), "/api/sessions/"+id+"/restart", nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Session ID (required)")
	return cmd
}
