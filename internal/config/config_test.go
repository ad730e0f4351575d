package config

import "testing"

func TestValidateLLM(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"openai with key", Config{LLMProvider: ProviderOpenAI, OpenAIAPIKey: "sk-x"}, false},
		{"openai without key", Config{LLMProvider: ProviderOpenAI}, true},
		{"default provider without key", Config{}, true},
		{"yandex complete", Config{LLMProvider: ProviderYandex, YandexOAuthToken: "t", YandexFolderID: "f"}, false},
		{"yandex missing folder", Config{LLMProvider: ProviderYandex, YandexOAuthToken: "t"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.ValidateLLM()
			if (err != nil) != c.wantErr {
				t.Fatalf("ValidateLLM() error = %v, wantErr = %v", err, c.wantErr)
			}
		})
	}
}
