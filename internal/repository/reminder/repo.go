package reminder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/alzcare/notifier/internal/model"
)

var (
	// ErrReminderNotFound is returned when no reminder exists for the given id.
	ErrReminderNotFound = errors.New("reminder not found")
)

// Repository provides access to the reminders table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reminder repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateReminder inserts a new reminder and returns its ID.
func (r *Repository) CreateReminder(ctx context.Context, rem model.Reminder) (uuid.UUID, error) {
	query := `
		INSERT INTO reminders (
		    id, user_id, title, body, deep_link, send_at, sent
		) VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query, rem.ID, rem.UserID, rem.Title, rem.Body, rem.DeepLink, rem.SendAt,
	).Scan(&rem.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return rem.ID, nil
}

// GetReminder retrieves a reminder by its ID.
func (r *Repository) GetReminder(ctx context.Context, id uuid.UUID) (model.Reminder, error) {
	query := `
		SELECT id, user_id, title, body, deep_link, send_at, sent, created_at, updated_at
		FROM reminders
		WHERE id = $1;
    `

	var rem model.Reminder
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(
		&rem.ID, &rem.UserID, &rem.Title, &rem.Body, &rem.DeepLink,
		&rem.SendAt, &rem.Sent, &rem.CreatedAt, &rem.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reminder{}, ErrReminderNotFound
		}

		return model.Reminder{}, fmt.Errorf("failed to get reminder: %w", err)
	}

	return rem, nil
}

// UpdateReminder persists the mutable fields of a reminder. Reminders that
// are already sent are terminal and never match.
func (r *Repository) UpdateReminder(ctx context.Context, rem model.Reminder) error {
	query := `
		UPDATE reminders
		SET title = $1, body = $2, deep_link = $3, send_at = $4, updated_at = NOW()
		WHERE id = $5 AND sent = FALSE;
    `

	res, err := r.db.ExecContext(ctx, query, rem.Title, rem.Body, rem.DeepLink, rem.SendAt, rem.ID)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// MarkSent flips the sent flag. Called by the delivery worker only, after a
// successful dispatch.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE reminders
		SET sent = TRUE, updated_at = NOW()
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// DeleteReminder removes a reminder. Deleting a missing reminder is not an
// error; delete is idempotent from the caller's perspective.
func (r *Repository) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM reminders
		WHERE id = $1;
    `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}

// ListByUser retrieves all reminders for a user. UUIDv7 ids are time-ordered,
// so ordering by id gives a stable creation order.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]model.Reminder, error) {
	query := `
		SELECT id, user_id, title, body, deep_link, send_at, sent, created_at, updated_at
		FROM reminders
		WHERE user_id = $1
		ORDER BY id;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		var rem model.Reminder
		if err := rows.Scan(
			&rem.ID, &rem.UserID, &rem.Title, &rem.Body, &rem.DeepLink,
			&rem.SendAt, &rem.Sent, &rem.CreatedAt, &rem.UpdatedAt,
		); err != nil {
			return nil, err
		}

		reminders = append(reminders, rem)
	}

	return reminders, nil
}
