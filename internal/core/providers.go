package core

import "context"

// LLM is the generative-language service. Reply and Reflect hit the same
// generation endpoint with distinct model ids.
type LLM interface {
	Reply(ctx context.Context, prompt string) (string, error)
	Reflect(ctx context.Context, prompt string) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Enricher contributes optional external context to the prompt. An empty
// string means "nothing to add"; enrichment never fails the pipeline.
type Enricher interface {
	Enrich(ctx context.Context, text string) string
}
