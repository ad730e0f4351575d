package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// External data providers; a missing key disables the source
	NewsAPIKey       string `env:"NEWS_API_KEY"`
	EventbriteAPIKey string `env:"EVENTBRITE_API_KEY"`

	// User profile
	Profession string `env:"PROFESSION"`
	Location   string `env:"LOCATION"`

	// Telegram front end
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	BriefingCronSpec string `env:"BRIEFING_CRON" envDefault:"0 8 * * *"`

	// Storage
	LogFilePath string `env:"LOG_FILE_PATH" envDefault:"logs/log.jsonl"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

// ValidateLLM checks that the credentials for the selected provider are
// present. The model credential is the only fatal precondition for a
// session; every other key is optional.
func (c *Config) ValidateLLM() error {
	switch c.LLMProvider {
	case ProviderYandex:
		if c.YandexOAuthToken == "" || c.YandexFolderID == "" {
			return fmt.Errorf("required model credential missing: YANDEX_OAUTH_TOKEN and YANDEX_FOLDER_ID")
		}
	default:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("required model credential missing: OPENAI_API_KEY")
		}
	}
	return nil
}
