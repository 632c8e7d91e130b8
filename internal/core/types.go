package core

const (
	BotName   = "Majordomo"
	UserAgent = "Majordomo-Bot/0.1"
	Version   = "0.1.0"
)

const (
	// DefaultSummary is the personality summary a butler starts with
	// before any reflection has run.
	DefaultSummary = "觀察中"

	// NoRecall is injected into the prompt when the similarity search
	// finds nothing above the threshold.
	NoRecall = "尚無相關回憶。"

	// ApologyReply is the only text a user sees when the reply pipeline
	// fails.
	ApologyReply = "抱歉，我現在有點短路，請稍後再試。"
)

// Profile is the per-user butler state. Summary is rewritten wholesale by
// the evolution worker; concurrent rewrites are last-write-wins.
type Profile struct {
	UserID  int64
	Summary string
}

// MemoryEntry is an append-only embedded record of a past user message.
type MemoryEntry struct {
	UserID    int64
	Content   string
	Embedding []float32
}

// ChatLogEntry is an append-only record of one exchange.
type ChatLogEntry struct {
	UserID      int64
	UserMessage string
	BotReply    string
}

// MemoryMatch is one similarity-search hit, ordered by the backing RPC.
type MemoryMatch struct {
	Content    string
	Similarity float64
}
