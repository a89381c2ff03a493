package endpoints

import (
	"github.com/promptdesk/promptdesk/internal/api"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	SwaggerSpecPath string
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&ReadyEndpoint{},
		&StatusEndpoint{},

		// Category endpoints
		&ListCategoriesEndpoint{},
		&ListSamplesEndpoint{},

		// Prompt endpoints
		&DraftPromptEndpoint{},
		&CheckCodeEndpoint{},
		&SavePromptEndpoint{},

		// Management session endpoints
		&CreateSessionEndpoint{},
		&GetSessionEndpoint{},
		&SelectCategoryEndpoint{},
		&SearchEndpoint{},
		&DeleteRecordEndpoint{},
		&BeginEditEndpoint{},
		&SubmitEditEndpoint{},
		&RestartSessionEndpoint{},

		// Swagger/OpenAPI endpoints
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},
		&SwaggerUIEndpoint{},
	}
}
