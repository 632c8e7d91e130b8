package supabase

import (
	"fmt"

	"github.com/sandevgo/majordomo/internal/config"
	supa "github.com/supabase-community/supabase-go"
)

// NewClient builds the shared PostgREST handle used by all repositories.
// It is immutable after construction and safe for concurrent use.
func NewClient(cfg *config.SupabaseConfig) (*supa.Client, error) {
	client, err := supa.NewClient(cfg.URL, cfg.Key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return client, nil
}
