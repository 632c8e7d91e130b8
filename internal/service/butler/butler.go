package butler

import (
	"context"
	"fmt"

	"github.com/sandevgo/majordomo/internal/core"
)

// Butler runs the per-message pipeline: profile fetch, memory recall,
// optional enrichment, reply generation, and the detached evolution task.
type Butler struct {
	profiles core.ProfileRepository
	memories core.MemoryRepository
	logs     core.ChatLogRepository
	llm      core.LLM
	enricher core.Enricher
}

func New(
	profiles core.ProfileRepository,
	memories core.MemoryRepository,
	logs core.ChatLogRepository,
	llm core.LLM,
	enricher core.Enricher,
) *Butler {
	return &Butler{
		profiles: profiles,
		memories: memories,
		logs:     logs,
		llm:      llm,
		enricher: enricher,
	}
}

// Answer handles one inbound message. The reply is delivered through send
// before the evolution task is spawned, so a failed delivery never leaves
// phantom rows behind. Any returned error means the user got nothing and
// the transport should apologize.
func (b *Butler) Answer(ctx context.Context, userID int64, text string, send func(reply string) error) error {
	profile := b.getOrCreateProfile(ctx, userID)
	memories := b.relevantMemories(ctx, userID, text)

	var enrichment string
	if b.enricher != nil {
		enrichment = b.enricher.Enrich(ctx, text)
	}

	prompt := buildReplyPrompt(profile.Summary, memories, enrichment, text)

	reply, err := b.llm.Reply(ctx, prompt)
	if err != nil {
		return fmt.Errorf("reply generation: %w", err)
	}

	if err := send(reply); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}

	b.evolve(ctx, userID, text, reply, profile.Summary)
	return nil
}
