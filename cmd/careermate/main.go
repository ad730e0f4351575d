package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"careermate/internal/aggregate"
	"careermate/internal/chat"
	"careermate/internal/config"
	"careermate/internal/fetch"
	"careermate/internal/history"
	"careermate/internal/llm"
	"careermate/internal/storage"
)

// consoleSurface renders the conversation on the terminal. Streamed
// fragments go straight to stdout; warnings go to stderr so they do not
// interleave with the reply.
type consoleSurface struct {
	out    io.Writer
	errOut io.Writer
}

func (s *consoleSurface) Render(turn history.Turn) {
	fmt.Fprintf(s.out, "%s: %s\n", turn.Role, turn.Content)
}

func (s *consoleSurface) StreamFragment(text string) {
	fmt.Fprint(s.out, text)
}

func (s *consoleSurface) Warn(message string) {
	fmt.Fprintf(s.errOut, "warning: %s\n", message)
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	if err := cfg.ValidateLLM(); err != nil {
		log.Fatalf("cannot start session: %v", err)
	}

	llmClient, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	surface := &consoleSurface{out: os.Stdout, errOut: os.Stderr}
	fetcher := fetch.New(cfg.NewsAPIKey, cfg.EventbriteAPIKey, surface.Warn)

	var rec storage.Recorder
	if cfg.LogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.LogFilePath)
		if err != nil {
			log.Printf("failed to init file recorder: %v", err)
		} else {
			rec = fr
		}
	}

	sess := chat.New("terminal", llmClient, aggregate.New(fetcher), surface, rec, cfg.Profession, cfg.Location)

	fmt.Println("CareerMate ready. Ask anything, or type /brief for a daily briefing. Ctrl-D exits.")
	runLoop(context.Background(), sess, os.Stdin, os.Stdout)
}

func runLoop(ctx context.Context, sess *chat.Session, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "you> ")
	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) != "" {
			fmt.Fprint(out, "careermate> ")
			if err := sess.HandleTurn(ctx, text); err != nil {
				log.Printf("failed to handle turn: %v", err)
			}
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, "you> ")
	}
	if err := scanner.Err(); err != nil {
		log.Printf("input closed: %v", err)
	}
	fmt.Fprintln(out)
}
