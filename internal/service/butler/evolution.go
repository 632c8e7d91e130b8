package butler

import (
	"context"
	"fmt"

	"github.com/sandevgo/majordomo/internal/core"
	"github.com/sandevgo/majordomo/pkg/log"
)

// evolve spawns the post-reply evolution task. The task is detached: it
// survives request cancellation, has no join, and its failure must never
// reach the user or the already-sent reply.
func (b *Butler) evolve(ctx context.Context, userID int64, text, reply, oldSummary string) {
	go b.runEvolution(context.WithoutCancel(ctx), userID, text, reply, oldSummary)
}

// runEvolution persists the exchange and rewrites the personality summary.
// Each step is independently best-effort; an earlier failure does not stop
// the later steps.
func (b *Butler) runEvolution(ctx context.Context, userID int64, text, reply, oldSummary string) {
	logger := log.FromCtx(ctx)

	if err := b.logs.Add(ctx, core.ChatLogEntry{
		UserID:      userID,
		UserMessage: text,
		BotReply:    reply,
	}); err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("failed to persist chat log")
	}

	if err := b.memorize(ctx, userID, text); err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("failed to persist long-term memory")
	}

	// The reflection model is the first thing to hit quota limits, so its
	// failure is only a warning and the summary simply stays stale.
	summary, err := b.llm.Reflect(ctx, buildReflectionPrompt(text, oldSummary))
	if err != nil {
		logger.Warn().Err(err).Int64("user_id", userID).Msg("personality evolution paused (quota?)")
		return
	}

	if err := b.profiles.UpdateSummary(ctx, userID, summary); err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("failed to update personality summary")
	}
}

// memorize re-embeds the message rather than reusing the recall vector;
// the redundant call keeps the worker free of shared state with the
// synchronous path.
func (b *Butler) memorize(ctx context.Context, userID int64, text string) error {
	vector, err := b.llm.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("embed: %w", err)
	}

	return b.memories.Add(ctx, core.MemoryEntry{
		UserID:    userID,
		Content:   text,
		Embedding: vector,
	})
}
