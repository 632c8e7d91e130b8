package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sandevgo/majordomo/internal/core"
	supa "github.com/supabase-community/supabase-go"
)

const (
	memoryTable = "long_term_memories"
	matchRPC    = "match_memories"
)

type memoryRow struct {
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	Embedding []float32 `json:"embedding"`
}

type MemoryRepo struct {
	client *supa.Client
}

func NewMemoryRepo(client *supa.Client) *MemoryRepo {
	return &MemoryRepo{client: client}
}

func (r *MemoryRepo) Add(ctx context.Context, entry core.MemoryEntry) error {
	row := memoryRow{
		UserID:    entry.UserID,
		Content:   entry.Content,
		Embedding: entry.Embedding,
	}

	_, _, err := r.client.From(memoryTable).
		Insert(row, false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("insert memory: %w", err)
	}
	return nil
}

func (r *MemoryRepo) Search(ctx context.Context, userID int64, vector []float32, threshold float64, limit int) ([]core.MemoryMatch, error) {
	params := map[string]any{
		"query_embedding": vector,
		"match_threshold": threshold,
		"match_count":     limit,
		"p_user_id":       userID,
	}

	// The SDK surfaces RPC transport errors as an empty payload; a
	// successful call with no matches is "[]".
	raw := r.client.Rpc(matchRPC, "", params)
	if raw == "" {
		return nil, fmt.Errorf("%s rpc returned no data", matchRPC)
	}

	var rows []struct {
		Content    string  `json:"content"`
		Similarity float64 `json:"similarity"`
	}
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", matchRPC, err)
	}

	matches := make([]core.MemoryMatch, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, core.MemoryMatch{Content: row.Content, Similarity: row.Similarity})
	}
	return matches, nil
}
