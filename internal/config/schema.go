package config

import (
	"fmt"

	"github.com/promptdesk/promptdesk/internal/category"
)

// Config holds promptdesk configuration.
// Stored at: ~/.promptdesk/config.yaml
type Config struct {
	Server ServerCfg `mapstructure:"server" yaml:"server"`
	Notion NotionCfg `mapstructure:"notion" yaml:"notion"`
	OpenAI OpenAICfg `mapstructure:"openai" yaml:"openai"`
}

// ServerCfg configures the HTTP listener.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// NotionCfg configures the remote prompt store.
type NotionCfg struct {
	APIKey string `mapstructure:"api_key" yaml:"api_key"` // API key (supports ${ENV_VAR} syntax)
	// Databases maps each category to its Notion database ID.
	Databases DatabasesCfg `mapstructure:"databases" yaml:"databases"`
}

// DatabasesCfg holds the per-category database IDs.
type DatabasesCfg struct {
	Vision  string `mapstructure:"vision" yaml:"vision"`
	Text    string `mapstructure:"text" yaml:"text"`
	Image   string `mapstructure:"image" yaml:"image"`
	Chatbot string `mapstructure:"chatbot" yaml:"chatbot"`
}

// OpenAICfg configures the completion client.
type OpenAICfg struct {
	APIKeys        []string `mapstructure:"api_keys" yaml:"api_keys"` // API keys (support ${ENV_VAR} syntax)
	Model          string   `mapstructure:"model" yaml:"model"`
	MaxRetries     int      `mapstructure:"max_retries" yaml:"max_retries"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8585",
		},
		Notion: NotionCfg{
			APIKey: "${NOTION_API_KEY}",
		},
		OpenAI: OpenAICfg{
			APIKeys:        []string{"${OPENAI_API_KEY}"},
			Model:          "gpt-4o-mini",
			MaxRetries:     2,
			TimeoutSeconds: 60,
		},
	}
}

// DatabaseMap returns the category to database-ID binding.
func (c *Config) DatabaseMap() map[category.Category]string {
	return map[category.Category]string{
		category.Vision:  c.Notion.Databases.Vision,
		category.Text:    c.Notion.Databases.Text,
		category.Image:   c.Notion.Databases.Image,
		category.Chatbot: c.Notion.Databases.Chatbot,
	}
}

// ResolvedNotionKey returns the Notion API key with ${ENV_VAR}
// references expanded.
func (c *Config) ResolvedNotionKey() string {
	return ResolveEnvVars(c.Notion.APIKey)
}

// ResolvedOpenAIKeys returns the OpenAI API keys with ${ENV_VAR}
// references expanded, dropping entries that resolve empty.
func (c *Config) ResolvedOpenAIKeys() []string {
	keys := make([]string, 0, len(c.OpenAI.APIKeys))
	for _, key := range c.OpenAI.APIKeys {
		if resolved := ResolveEnvVars(key); resolved != "" {
			keys = append(keys, resolved)
		}
	}
	return keys
}

// Validate checks that everything serve needs is present. It is called
// at startup so a broken deployment fails before taking traffic.
func (c *Config) Validate() error {
	if c.ResolvedNotionKey() == "" {
		return fmt.Errorf("notion.api_key is required")
	}
	databases := c.DatabaseMap()
	for _, cat := range category.All() {
		if databases[cat] == "" {
			return fmt.Errorf("notion.databases.%s is required", cat)
		}
	}
	if len(c.ResolvedOpenAIKeys()) == 0 {
		return fmt.Errorf("at least one openai.api_keys entry is required")
	}
	return nil
}
