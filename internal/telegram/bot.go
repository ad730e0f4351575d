package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"careermate/internal/chat"
	"careermate/internal/history"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type botAPISender struct{ api *tgbotapi.BotAPI }

func (s botAPISender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	return s.api.Send(c)
}

// SessionFactory creates a chat session bound to the given surface.
// The bot builds one session per Telegram chat on first contact.
type SessionFactory func(name string, surface chat.Surface) *chat.Session

type Bot struct {
	api        *tgbotapi.BotAPI
	s          sender
	newSession SessionFactory

	mu       sync.Mutex
	sessions map[int64]*chatEntry
}

type chatEntry struct {
	session *chat.Session
	surface *chatSurface
}

func New(botToken string, newSession SessionFactory) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:        api,
		s:          botAPISender{api: api},
		newSession: newSession,
		sessions:   make(map[int64]*chatEntry),
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		b.handleIncomingMessage(ctx, update.Message)
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	log.Printf("Incoming message from chat %d: %q", msg.Chat.ID, msg.Text)

	entry := b.entry(msg.Chat.ID)
	err := entry.session.HandleTurn(ctx, msg.Text)
	if errors.Is(err, chat.ErrTurnInFlight) {
		b.sendMessage(msg.Chat.ID, "Still working on the previous message, please wait.")
		return
	}
	if err != nil {
		log.Printf("failed to handle turn for chat %d: %v", msg.Chat.ID, err)
		b.sendMessage(msg.Chat.ID, "Sorry, something went wrong.")
		return
	}
	entry.surface.flush()
}

// PushBriefings injects a /brief turn into every active chat. Invoked
// by the scheduler for the daily push.
func (b *Bot) PushBriefings(ctx context.Context) error {
	b.mu.Lock()
	entries := make([]*chatEntry, 0, len(b.sessions))
	for _, e := range b.sessions {
		entries = append(entries, e)
	}
	b.mu.Unlock()

	for _, e := range entries {
		if err := e.session.HandleTurn(ctx, "/brief"); err != nil {
			log.Printf("scheduled briefing skipped: %v", err)
			continue
		}
		e.surface.flush()
	}
	return nil
}

func (b *Bot) entry(chatID int64) *chatEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	if e, ok := b.sessions[chatID]; ok {
		return e
	}
	surface := &chatSurface{bot: b, chatID: chatID}
	e := &chatEntry{
		session: b.newSession(fmt.Sprintf("telegram:%d", chatID), surface),
		surface: surface,
	}
	b.sessions[chatID] = e
	return e
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

// chatSurface adapts one Telegram chat to chat.Surface. Telegram has no
// incremental display, so streamed fragments are buffered per turn and
// flushed as a single message once the turn completes. The mutex
// serializes fragment writes against the flush: the session's in-flight
// lock is released before the caller flushes, so a scheduled briefing
// can start streaming into the buffer while the previous turn is still
// being flushed.
type chatSurface struct {
	bot    *Bot
	chatID int64

	mu  sync.Mutex
	buf strings.Builder
}

func (s *chatSurface) Render(turn history.Turn) {
	s.bot.sendMessage(s.chatID, fmt.Sprintf("%s: %s", turn.Role, turn.Content))
}

func (s *chatSurface) StreamFragment(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.WriteString(text)
}

func (s *chatSurface) Warn(message string) {
	s.bot.sendMessage(s.chatID, "⚠️ "+message)
}

func (s *chatSurface) flush() {
	s.mu.Lock()
	text := s.buf.String()
	s.buf.Reset()
	s.mu.Unlock()
	if text == "" {
		return
	}
	s.bot.sendMessage(s.chatID, text)
}
