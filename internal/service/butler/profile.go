package butler

import (
	"context"
	"errors"

	"github.com/sandevgo/majordomo/internal/core"
	"github.com/sandevgo/majordomo/pkg/log"
)

// getOrCreateProfile never fails: when the profile store is unreachable it
// hands back a transient default so the conversation stays alive.
func (b *Butler) getOrCreateProfile(ctx context.Context, userID int64) *core.Profile {
	profile, err := b.profiles.Get(ctx, userID)
	if err == nil {
		return profile
	}

	if errors.Is(err, core.ErrProfileNotFound) {
		created, createErr := b.profiles.Create(ctx, userID)
		if createErr == nil {
			return created
		}
		err = createErr
	}

	log.FromCtx(ctx).Error().Err(err).Int64("user_id", userID).Msg("profile store unavailable, using transient default")
	return &core.Profile{UserID: userID, Summary: core.DefaultSummary}
}
