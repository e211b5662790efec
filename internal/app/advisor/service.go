package advisor

import (
	"context"
	"strings"

	"github.com/agroclima/agroclima-api/internal/domain"
	"github.com/agroclima/agroclima-api/internal/observability"
)

// Sampling parameters for one-shot recommendations.
const (
	recommendTemperature = 0.7
	recommendMaxTokens   = 200
)

// Service produces one-shot agricultural recommendations. Unlike chat,
// nothing here touches the conversation history.
type Service struct {
	gateway domain.ModelGateway
}

func NewService(gateway domain.ModelGateway) *Service {
	return &Service{gateway: gateway}
}

// Recommend builds the one-shot prompt and asks the gateway for a short
// recommendation, returned with surrounding whitespace trimmed.
func (s *Service) Recommend(ctx context.Context, req domain.RecommendationRequest) (string, error) {
	turns := []domain.Turn{
		{Role: domain.RoleSystem, Content: domain.SystemPrompt},
		{Role: domain.RoleUser, Content: BuildPrompt(req)},
	}

	reply, err := s.gateway.Complete(ctx, turns, domain.GenerateOptions{
		Temperature: recommendTemperature,
		MaxTokens:   recommendMaxTokens,
	})
	if err != nil {
		observability.LoggerFromContext(ctx).Error("recommendation failed", "error", err)
		return "", err
	}

	return strings.TrimSpace(reply), nil
}
