package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/agroclima/agroclima-api/internal/domain"
)

// GeminiGateway implements domain.ModelGateway on Vertex AI (Gemini).
type GeminiGateway struct {
	client *genai.Client
	model  string
}

func NewGeminiGateway(ctx context.Context, projectID, location, model string) (*GeminiGateway, error) {
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("gcp project and location are required for the gemini gateway")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &GeminiGateway{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiGateway) Complete(ctx context.Context, turns []domain.Turn, opts domain.GenerateOptions) (string, error) {
	// Gemini carries the system prompt outside the message list.
	var system string
	var contents []*genai.Content
	for _, t := range turns {
		switch t.Role {
		case domain.RoleSystem:
			system = t.Content
		case domain.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(t.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(t.Content, genai.RoleUser))
		}
	}

	temp := opts.Temperature
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32(opts.MaxTokens),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return text, nil
}
