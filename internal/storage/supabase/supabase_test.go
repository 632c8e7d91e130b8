package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sandevgo/majordomo/internal/config"
	"github.com/sandevgo/majordomo/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	supa "github.com/supabase-community/supabase-go"
)

// capturedRequest records what the PostgREST fake received.
type capturedRequest struct {
	method string
	path   string
	query  string
	body   []byte
}

// newFakeBackend serves one canned response and captures the request.
func newFakeBackend(t *testing.T, status int, response string) (*supa.Client, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.RawQuery
		captured.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, response)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(&config.SupabaseConfig{URL: server.URL, Key: "service-role-key"})
	require.NoError(t, err)
	return client, captured
}

func TestProfileRepo_Get(t *testing.T) {
	client, captured := newFakeBackend(t, http.StatusOK,
		`[{"user_id":42,"personality_summary":"主人喜歡喝茶"}]`)

	repo := NewProfileRepo(client)
	profile, err := repo.Get(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.UserID)
	assert.Equal(t, "主人喜歡喝茶", profile.Summary)
	assert.Equal(t, http.MethodGet, captured.method)
	assert.Contains(t, captured.path, profileTable)
	assert.Contains(t, captured.query, "user_id=eq.42")
}

func TestProfileRepo_GetNotFound(t *testing.T) {
	client, _ := newFakeBackend(t, http.StatusOK, `[]`)

	repo := NewProfileRepo(client)
	_, err := repo.Get(context.Background(), 42)

	assert.ErrorIs(t, err, core.ErrProfileNotFound)
}

func TestProfileRepo_Create(t *testing.T) {
	client, captured := newFakeBackend(t, http.StatusCreated,
		`[{"user_id":42,"personality_summary":"觀察中"}]`)

	repo := NewProfileRepo(client)
	profile, err := repo.Create(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, core.DefaultSummary, profile.Summary)
	assert.Equal(t, http.MethodPost, captured.method)

	var row profileRow
	require.NoError(t, json.Unmarshal(captured.body, &row))
	assert.Equal(t, int64(42), row.UserID)
	assert.Equal(t, core.DefaultSummary, row.PersonalitySummary)
}

func TestProfileRepo_UpdateSummary(t *testing.T) {
	client, captured := newFakeBackend(t, http.StatusOK, `[]`)

	repo := NewProfileRepo(client)
	err := repo.UpdateSummary(context.Background(), 42, "全新的認知")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, captured.method)
	assert.Contains(t, captured.query, "user_id=eq.42")
	assert.Contains(t, string(captured.body), "全新的認知")
}

func TestChatLogRepo_Add(t *testing.T) {
	client, captured := newFakeBackend(t, http.StatusCreated, `[]`)

	repo := NewChatLogRepo(client)
	err := repo.Add(context.Background(), core.ChatLogEntry{
		UserID:      42,
		UserMessage: "你好",
		BotReply:    "好的，主人。",
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Contains(t, captured.path, chatLogTable)

	var row chatLogRow
	require.NoError(t, json.Unmarshal(captured.body, &row))
	assert.Equal(t, "你好", row.UserMessage)
	assert.Equal(t, "好的，主人。", row.BotReply)
}

func TestMemoryRepo_Add(t *testing.T) {
	client, captured := newFakeBackend(t, http.StatusCreated, `[]`)

	repo := NewMemoryRepo(client)
	err := repo.Add(context.Background(), core.MemoryEntry{
		UserID:    42,
		Content:   "你好",
		Embedding: []float32{0.25, -0.5},
	})

	require.NoError(t, err)
	assert.Contains(t, captured.path, memoryTable)

	var row memoryRow
	require.NoError(t, json.Unmarshal(captured.body, &row))
	assert.Equal(t, []float32{0.25, -0.5}, row.Embedding)
}

func TestMemoryRepo_Search(t *testing.T) {
	client, captured := newFakeBackend(t, http.StatusOK,
		`[{"content":"主人喜歡喝茶","similarity":0.87},{"content":"主人養了一隻貓","similarity":0.55}]`)

	repo := NewMemoryRepo(client)
	matches, err := repo.Search(context.Background(), 42, []float32{0.1, 0.2}, 0.4, 3)

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "主人喜歡喝茶", matches[0].Content)
	assert.InDelta(t, 0.87, matches[0].Similarity, 1e-9)

	assert.Contains(t, captured.path, "rpc/"+matchRPC)
	var params map[string]any
	require.NoError(t, json.Unmarshal(captured.body, &params))
	assert.EqualValues(t, 0.4, params["match_threshold"])
	assert.EqualValues(t, 3, params["match_count"])
	assert.EqualValues(t, 42, params["p_user_id"])
	assert.NotEmpty(t, params["query_embedding"])
}

func TestMemoryRepo_SearchEmptyResult(t *testing.T) {
	client, _ := newFakeBackend(t, http.StatusOK, `[]`)

	repo := NewMemoryRepo(client)
	matches, err := repo.Search(context.Background(), 42, []float32{0.1}, 0.4, 3)

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMemoryRepo_SearchBackendError(t *testing.T) {
	client, _ := newFakeBackend(t, http.StatusInternalServerError,
		`{"message":"function match_memories does not exist"}`)

	repo := NewMemoryRepo(client)
	_, err := repo.Search(context.Background(), 42, []float32{0.1}, 0.4, 3)

	assert.Error(t, err)
}
