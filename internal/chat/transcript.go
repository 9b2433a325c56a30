package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"aurelia-backend/internal/shared/metrics"
	"aurelia-backend/internal/shared/telemetry"
)

// ErrBlankMessage is returned for messages with no visible text.
var ErrBlankMessage = errors.New("message is blank")

const (
	SenderUser    = "user"
	SenderAurelia = "aurelia"
)

// Message is one transcript line.
type Message struct {
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

// Service keeps one transcript per visitor in memory.
type Service struct {
	mu          sync.RWMutex
	transcripts map[string][]Message
	now         func() time.Time
}

func NewService() *Service {
	return &Service{
		transcripts: make(map[string][]Message),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Transcript returns the visitor's messages, starting with the greeting.
func (s *Service) Transcript(ctx context.Context, visitorID string) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.ensure(visitorID)...), nil
}

// Send appends the visitor's message and Aurelia's reply, returning both.
func (s *Service) Send(ctx context.Context, visitorID, text string) (Message, Message, error) {
	if err := ctx.Err(); err != nil {
		return Message{}, Message{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Message{}, Message{}, ErrBlankMessage
	}
	reply, matched := Reply(text)
	now := s.now()
	userMsg := Message{Sender: SenderUser, Text: text, SentAt: now}
	botMsg := Message{Sender: SenderAurelia, Text: reply, SentAt: now}

	s.mu.Lock()
	s.transcripts[visitorID] = append(s.ensure(visitorID), userMsg, botMsg)
	s.mu.Unlock()

	metrics.IncChatMessage()
	if !matched {
		metrics.IncChatFallback()
	}
	telemetry.Info("chat.replied", map[string]any{"visitor_id": visitorID, "topic_match": matched})
	return userMsg, botMsg, nil
}

// Reset drops the visitor's transcript; the next read starts from the greeting.
func (s *Service) Reset(ctx context.Context, visitorID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transcripts, visitorID)
	return nil
}

// ensure must be called with mu held for writing.
func (s *Service) ensure(visitorID string) []Message {
	msgs, ok := s.transcripts[visitorID]
	if !ok {
		msgs = []Message{{Sender: SenderAurelia, Text: Greeting, SentAt: s.now()}}
		s.transcripts[visitorID] = msgs
	}
	return msgs
}
