package chat

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"careermate/internal/aggregate"
	"careermate/internal/command"
	"careermate/internal/history"
	"careermate/internal/llm"
	"careermate/internal/prompt"
	"careermate/internal/storage"
)

// ErrTurnInFlight is returned when a turn is submitted while a previous
// one is still being processed. Turns are handled one at a time;
// callers should retry after the current turn completes.
var ErrTurnInFlight = errors.New("a turn is already in flight")

// Surface is the user-visible side of a session: it renders finished
// turns, appends streamed fragments during generation and shows
// non-fatal warnings.
type Surface interface {
	Render(turn history.Turn)
	StreamFragment(text string)
	Warn(message string)
}

// Session owns one conversation: its transcript, the model client and
// the external-data aggregator. It is constructed once per conversation
// and holds no process-wide state.
type Session struct {
	name       string
	profession string
	location   string

	llmClient  llm.Client
	aggregator *aggregate.Aggregator
	transcript *history.Transcript
	surface    Surface
	recorder   storage.Recorder

	mu  sync.Mutex
	now func() time.Time
}

// New creates a session whose transcript starts with the base system
// instruction for the given profile.
func New(name string, llmClient llm.Client, aggregator *aggregate.Aggregator, surface Surface, recorder storage.Recorder, profession, location string) *Session {
	now := time.Now
	return &Session{
		name:       name,
		profession: profession,
		location:   location,
		llmClient:  llmClient,
		aggregator: aggregator,
		transcript: history.NewTranscript(prompt.BaseInstruction(profession, location, now())),
		surface:    surface,
		recorder:   recorder,
		now:        now,
	}
}

// Transcript exposes the session history for read-only use.
func (s *Session) Transcript() *history.Transcript { return s.transcript }

// Replay renders every visible turn, e.g. when a surface (re)attaches.
func (s *Session) Replay() {
	for _, turn := range s.transcript.Visible() {
		s.surface.Render(turn)
	}
}

// HandleTurn processes one user turn end to end: append the input,
// route it, fetch and inject briefing data when requested, stream the
// model response and append it as exactly one assistant turn.
// Blank input is ignored without any state change. A concurrent call
// while a turn is in flight fails with ErrTurnInFlight.
func (s *Session) HandleTurn(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if !s.mu.TryLock() {
		return ErrTurnInFlight
	}
	defer s.mu.Unlock()

	s.transcript.AppendUser(text)

	if command.Route(text) == command.Brief {
		// The augmentation must be fully assembled, degrade paths
		// included, before generation starts.
		res := s.aggregator.Aggregate(ctx, s.profession, s.location)
		s.transcript.AppendSystem(prompt.BriefingAugmentation(res.News, res.Events))
	}

	reply := s.generate(ctx)
	s.transcript.AppendAssistant(reply)
	s.record(text, reply)
	return nil
}

// generate streams the model response over the full transcript and
// returns the concatenated text. Stream failures are soft: whatever
// text arrived before the failure is kept as the final content.
func (s *Session) generate(ctx context.Context) string {
	messages := toMessages(s.transcript.All())

	stream, err := s.llmClient.Stream(ctx, messages)
	if err != nil {
		s.surface.Warn("the assistant could not respond: " + err.Error())
		return ""
	}
	defer func() { _ = stream.Close() }()

	var b strings.Builder
	for {
		fragment, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.surface.Warn("response interrupted: " + err.Error())
			break
		}
		b.WriteString(fragment)
		s.surface.StreamFragment(fragment)
	}
	return b.String()
}

func (s *Session) record(userMessage, assistantResponse string) {
	if s.recorder == nil {
		return
	}
	ev := storage.Event{
		Timestamp:         s.now(),
		Session:           s.name,
		UserMessage:       userMessage,
		AssistantResponse: assistantResponse,
	}
	if err := s.recorder.AppendInteraction(ev); err != nil {
		log.Printf("failed to record interaction: %v", err)
	}
}

func toMessages(turns []history.Turn) []llm.Message {
	out := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		out = append(out, llm.Message{Role: t.Role, Content: t.Content})
	}
	return out
}
