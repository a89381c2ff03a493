package endpoints

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/promptdesk/promptdesk/internal/api"
	"github.com/promptdesk/promptdesk/internal/category"
)

// CategoryInfo describes one authoring category for clients.
type CategoryInfo struct {
	Key               string   `json:"key"`
	Title             string   `json:"title"`
	HasStudentView    bool     `json:"hasStudentView"`
	HasAdjectives     bool     `json:"hasAdjectives"`
	ExamplePrompt     string   `json:"examplePrompt"`
	DefaultAdjectives []string `json:"defaultAdjectives,omitempty"`
	SampleCount       int      `json:"sampleCount"`
}

// ListCategoriesResponse is the response for listing categories.
type ListCategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
}

// ListCategoriesEndpoint handles GET /api/categories.
type ListCategoriesEndpoint struct{}

func (e *ListCategoriesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/categories", e.handler
}

func (e *ListCategoriesEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		List authoring categories
//	@Description	Returns the four prompt categories with their authoring capabilities
//	@Tags			categories
//	@Produce		json
//	@Success		200	{object}	ListCategoriesResponse
//	@Router			/api/categories [get]
func (e *ListCategoriesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := ListCategoriesResponse{}
	for _, cat := range category.All() {
		desc := category.Get(cat)
		resp.Categories = append(resp.Categories, CategoryInfo{
			Key:               string(desc.Key),
			Title:             desc.Title,
			HasStudentView:    desc.HasStudentView,
			HasAdjectives:     desc.HasAdjectives,
			ExamplePrompt:     desc.ExamplePrompt,
			DefaultAdjectives: desc.DefaultAdjectives,
			SampleCount:       len(desc.Samples),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *ListCategoriesEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List authoring categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ListCategoriesResponse
			if err := client.Get(cmd.Context(), "/api/categories", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// ListSamplesResponse is the response for a category's sample table.
type ListSamplesResponse struct {
	Category string            `json:"category"`
	Samples  []category.Sample `json:"samples"`
}

// ListSamplesEndpoint handles GET /api/categories/{category}/samples.
type ListSamplesEndpoint struct{}

func (e *ListSamplesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/categories/{category}/samples", e.handler
}

func (e *ListSamplesEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		List sample prompts
//	@Description	Returns the fixed sample prompt table for a category
//	@Tags			categories
//	@Produce		json
//	@Param			category	path		string	true	"Category key"
//	@Success		200			{object}	ListSamplesResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/api/categories/{category}/samples [get]
func (e *ListSamplesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	cat, err := category.Parse(r.PathValue("category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	desc := category.Get(cat)
	samples := desc.Samples
	if samples == nil {
		samples = []category.Sample{}
	}
	writeJSON(w, http.StatusOK, ListSamplesResponse{
		Category: string(cat),
		Samples:  samples,
	})
}

func (e *ListSamplesEndpoint) Command(getServerURL func() string) *cobra.Command {
	var cat string
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List a category's sample prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cat == "" {
				return fmt.Errorf("--category is required")
			}
			client := api.NewClient(getServerURL())
			var resp ListSamplesResponse
			if err := client.Get(cmd.Context(), "/api/categories/"+cat+"/samples", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&cat, "category", "", "Category key (required)")
	return cmd
}
