package supabase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sandevgo/majordomo/internal/core"
	supa "github.com/supabase-community/supabase-go"
)

const profileTable = "user_profile"

type profileRow struct {
	UserID             int64  `json:"user_id"`
	PersonalitySummary string `json:"personality_summary"`
}

type ProfileRepo struct {
	client *supa.Client
}

func NewProfileRepo(client *supa.Client) *ProfileRepo {
	return &ProfileRepo{client: client}
}

func (r *ProfileRepo) Get(ctx context.Context, userID int64) (*core.Profile, error) {
	var rows []profileRow
	_, err := r.client.From(profileTable).
		Select("*", "", false).
		Eq("user_id", strconv.FormatInt(userID, 10)).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("select profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, core.ErrProfileNotFound
	}
	return &core.Profile{UserID: rows[0].UserID, Summary: rows[0].PersonalitySummary}, nil
}

func (r *ProfileRepo) Create(ctx context.Context, userID int64) (*core.Profile, error) {
	row := profileRow{UserID: userID, PersonalitySummary: core.DefaultSummary}

	var rows []profileRow
	_, err := r.client.From(profileTable).
		Insert(row, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	if len(rows) == 0 {
		return &core.Profile{UserID: userID, Summary: core.DefaultSummary}, nil
	}
	return &core.Profile{UserID: rows[0].UserID, Summary: rows[0].PersonalitySummary}, nil
}

func (r *ProfileRepo) UpdateSummary(ctx context.Context, userID int64, summary string) error {
	patch := map[string]string{"personality_summary": summary}

	_, _, err := r.client.From(profileTable).
		Update(patch, "minimal", "").
		Eq("user_id", strconv.FormatInt(userID, 10)).
		Execute()
	if err != nil {
		return fmt.Errorf("update profile summary: %w", err)
	}
	return nil
}
