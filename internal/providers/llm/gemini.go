package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/majordomo/internal/config"
	"google.golang.org/genai"
)

// Gemini wraps the genai client behind core.LLM. The client handle is
// immutable after construction and safe for concurrent use.
type Gemini struct {
	client *genai.Client
	cfg    *config.GeminiConfig
}

func NewGemini(ctx context.Context, cfg *config.GeminiConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{
		client: client,
		cfg:    cfg,
	}, nil
}

func (g *Gemini) Reply(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, g.cfg.ReplyModel, prompt)
}

func (g *Gemini) Reflect(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, g.cfg.ReflectionModel, prompt)
}

func (g *Gemini) generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content (%s): %w", model, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from %s", model)
	}
	return text, nil
}

func (g *Gemini) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := g.client.Models.EmbedContent(ctx, g.cfg.EmbeddingModel, genai.Text(text), &genai.EmbedContentConfig{})
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}

	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("no embedding returned for text")
	}
	return resp.Embeddings[0].Values, nil
}
