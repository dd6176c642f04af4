// Package devicetoken stores push registration tokens. Identity is
// (user_id, token); a user may register several devices. The delivery worker
// reports invalid tokens back here so they stop receiving dispatch attempts.
package devicetoken

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/alzcare/notifier/internal/model"
)

type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Upsert registers a device token, reactivating it if it was pruned before.
func (r *Repository) Upsert(ctx context.Context, t model.DeviceToken) error {
	query := `
		INSERT INTO device_tokens (user_id, token, platform, timezone, active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (user_id, token)
		DO UPDATE SET platform = EXCLUDED.platform, timezone = EXCLUDED.timezone, active = TRUE;
    `

	if _, err := r.db.ExecContext(ctx, query, t.UserID, t.Token, t.Platform, t.Timezone); err != nil {
		return fmt.Errorf("failed to upsert device token: %w", err)
	}

	return nil
}

// ListActiveByUser returns the active tokens for a user. An empty result is
// not an error; it simply means there is nothing to deliver to.
func (r *Repository) ListActiveByUser(ctx context.Context, userID string) ([]model.DeviceToken, error) {
	query := `
		SELECT user_id, token, platform, timezone, active, created_at
		FROM device_tokens
		WHERE user_id = $1 AND active = TRUE;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []model.DeviceToken
	for rows.Next() {
		var t model.DeviceToken
		if err := rows.Scan(&t.UserID, &t.Token, &t.Platform, &t.Timezone, &t.Active, &t.CreatedAt); err != nil {
			return nil, err
		}

		tokens = append(tokens, t)
	}

	return tokens, nil
}

// Deactivate prunes tokens the push provider reported as no longer
// registered. Unknown tokens are ignored.
func (r *Repository) Deactivate(ctx context.Context, userID string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	query := `
		UPDATE device_tokens
		SET active = FALSE
		WHERE user_id = $1 AND token = ANY($2);
    `

	if _, err := r.db.ExecContext(ctx, query, userID, pq.Array(tokens)); err != nil {
		return fmt.Errorf("failed to deactivate device tokens: %w", err)
	}

	return nil
}
