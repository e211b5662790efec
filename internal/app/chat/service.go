package chat

import (
	"context"

	"github.com/agroclima/agroclima-api/internal/domain"
	"github.com/agroclima/agroclima-api/internal/observability"
)

// Sampling parameters for conversational replies.
const (
	chatTemperature = 0.7
	chatMaxTokens   = 400
)

// Service manages the per-session conversation history and runs one chat
// turn against the model gateway.
type Service struct {
	gateway domain.ModelGateway
	store   domain.HistoryStore
}

func NewService(gateway domain.ModelGateway, store domain.HistoryStore) *Service {
	return &Service{
		gateway: gateway,
		store:   store,
	}
}

// History returns the session's turn sequence, seeding a brand-new (or
// expired) conversation with the system prompt. Never returns an empty
// sequence.
func (s *Service) History(id domain.SessionID) []domain.Turn {
	if turns, ok := s.store.Get(id); ok && len(turns) > 0 {
		return turns
	}

	turns := []domain.Turn{{Role: domain.RoleSystem, Content: domain.SystemPrompt}}
	s.store.Put(id, turns)
	return turns
}

// Append adds one turn to the session's history and writes the updated
// sequence back. The store only observes explicit writes, so the
// write-back is part of the contract, not an optimization.
func (s *Service) Append(id domain.SessionID, role domain.Role, content string) {
	turns := s.History(id)
	turns = append(turns, domain.Turn{Role: role, Content: content})
	s.store.Put(id, turns)
}

// Reset drops the session's history entirely. Idempotent; the next
// History call reseeds it.
func (s *Service) Reset(id domain.SessionID) {
	s.store.Delete(id)
}

// Send runs one chat turn: append the user message, send the full history
// to the gateway, append the reply. When the gateway fails, the user turn
// is deliberately left in place without a paired reply; the frontend
// resubmits and the conversation continues from there.
func (s *Service) Send(ctx context.Context, id domain.SessionID, message string) (string, error) {
	log := observability.LoggerFromContext(ctx).With("session_id", id)

	s.Append(id, domain.RoleUser, message)

	reply, err := s.gateway.Complete(ctx, s.History(id), domain.GenerateOptions{
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		log.Error("completion failed", "error", err)
		return "", err
	}

	s.Append(id, domain.RoleAssistant, reply)
	log.Info("chat turn completed")

	return reply, nil
}
