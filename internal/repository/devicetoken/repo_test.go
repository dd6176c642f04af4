package devicetoken

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/alzcare/notifier/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestUpsert(t *testing.T) {
	repo, mock := setupMockDB(t)

	tok := model.DeviceToken{
		UserID:   "u1",
		Token:    "fcm-token-1",
		Platform: "android",
		Timezone: "Asia/Seoul",
	}

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO device_tokens (user_id, token, platform, timezone, active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (user_id, token)
		DO UPDATE SET platform = EXCLUDED.platform, timezone = EXCLUDED.timezone, active = TRUE;
    `)).
		WithArgs(tok.UserID, tok.Token, tok.Platform, tok.Timezone).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Upsert(context.Background(), tok)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveByUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"user_id", "token", "platform", "timezone", "active", "created_at"}).
		AddRow("u1", "fcm-token-1", "android", "Asia/Seoul", true, now).
		AddRow("u1", "fcm-token-2", "ios", "Asia/Seoul", true, now)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT user_id, token, platform, timezone, active, created_at
		FROM device_tokens
		WHERE user_id = $1 AND active = TRUE;
    `)).
		WithArgs("u1").
		WillReturnRows(rows)

	tokens, err := repo.ListActiveByUser(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Len(t, tokens, 2)
	assert.Equal(t, "fcm-token-1", tokens[0].Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivate(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE device_tokens
		SET active = FALSE
		WHERE user_id = $1 AND token = ANY($2);
    `)).
		WithArgs("u1", pq.Array([]string{"bad-token"})).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Deactivate(context.Background(), "u1", []string{"bad-token"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivate_NoTokens(t *testing.T) {
	repo, mock := setupMockDB(t)

	// No round-trip at all for an empty prune list.
	assert.NoError(t, repo.Deactivate(context.Background(), "u1", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
