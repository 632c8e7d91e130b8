package supabase

import (
	"context"
	"fmt"

	"github.com/sandevgo/majordomo/internal/core"
	supa "github.com/supabase-community/supabase-go"
)

const chatLogTable = "chat_logs"

type chatLogRow struct {
	UserID      int64  `json:"user_id"`
	UserMessage string `json:"user_message"`
	BotReply    string `json:"bot_reply"`
}

type ChatLogRepo struct {
	client *supa.Client
}

func NewChatLogRepo(client *supa.Client) *ChatLogRepo {
	return &ChatLogRepo{client: client}
}

func (r *ChatLogRepo) Add(ctx context.Context, entry core.ChatLogEntry) error {
	row := chatLogRow{
		UserID:      entry.UserID,
		UserMessage: entry.UserMessage,
		BotReply:    entry.BotReply,
	}

	_, _, err := r.client.From(chatLogTable).
		Insert(row, false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("insert chat log: %w", err)
	}
	return nil
}
