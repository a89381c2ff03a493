// Package docs provides generated OpenAPI documentation.
//
// Promptdesk API
//
//	@title			Promptdesk API
//	@version		1.0
//	@description	Prompt authoring and management API for classroom AI activities.
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://github.com/promptdesk/promptdesk
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8585
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/promptdesk/serve.go -o ./swagger --parseDependency --parseInternal
