package butler

import (
	"context"
	"strings"

	"github.com/sandevgo/majordomo/internal/core"
	"github.com/sandevgo/majordomo/pkg/log"
)

const (
	matchThreshold = 0.4
	matchCount     = 3
)

// relevantMemories embeds the message and asks the store for similar past
// messages from the same user. Recall is best-effort context: any failure
// degrades to an empty string.
func (b *Butler) relevantMemories(ctx context.Context, userID int64, text string) string {
	logger := log.FromCtx(ctx)

	vector, err := b.llm.Embed(ctx, text)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to embed message for recall")
		return ""
	}

	matches, err := b.memories.Search(ctx, userID, vector, matchThreshold, matchCount)
	if err != nil {
		logger.Warn().Err(err).Msg("memory search failed")
		return ""
	}

	if len(matches) == 0 {
		return core.NoRecall
	}

	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, m.Content)
	}
	return strings.Join(lines, "\n")
}
