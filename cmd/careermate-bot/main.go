package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"careermate/internal/aggregate"
	"careermate/internal/chat"
	"careermate/internal/config"
	"careermate/internal/fetch"
	"careermate/internal/llm"
	"careermate/internal/scheduler"
	"careermate/internal/storage"
	"careermate/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	if err := cfg.ValidateLLM(); err != nil {
		log.Fatalf("cannot start session: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Fatalf("TELEGRAM_BOT_TOKEN is required for the telegram front end")
	}

	llmClient, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	var rec storage.Recorder
	if cfg.LogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.LogFilePath)
		if err != nil {
			log.Printf("failed to init file recorder: %v", err)
		} else {
			rec = fr
		}
	}

	newSession := func(name string, surface chat.Surface) *chat.Session {
		fetcher := fetch.New(cfg.NewsAPIKey, cfg.EventbriteAPIKey, surface.Warn)
		return chat.New(name, llmClient, aggregate.New(fetcher), surface, rec, cfg.Profession, cfg.Location)
	}

	bot, err := telegram.New(cfg.TelegramBotToken, newSession)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	sched := scheduler.New(cfg.BriefingCronSpec)
	sched.SetBriefingFunction(bot.PushBriefings)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	bot.Start(context.Background())
}
