// Package delivery processes due notification jobs: it re-validates the
// reminder, fans the notification out to the user's devices and settles the
// job with the queue. Handlers are idempotent; a job may be redelivered
// after a crash and the sent re-check is the guard against double delivery.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/alzcare/notifier/internal/jobqueue"
	"github.com/alzcare/notifier/internal/model"
	"github.com/alzcare/notifier/internal/rabbitmq/queue"
	reminderrepo "github.com/alzcare/notifier/internal/repository/reminder"
	"github.com/alzcare/notifier/pkg/fcm"
	"github.com/alzcare/notifier/pkg/kst"
)

// SkewTolerance bounds how early a job may fire before it is pushed back
// into the queue instead of delivered. Covers clock skew between the
// dispatcher and the record store; the queue's due time is the primary
// scheduling path, this re-check is a safety net.
const SkewTolerance = 2 * time.Second

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/delivery/mock.go -package=mocks

type jobStore interface {
	Lookup(ctx context.Context, key string) (jobqueue.Job, error)
	Complete(ctx context.Context, key string) error
	Retry(ctx context.Context, key string, cause error) (bool, error)
	Reschedule(ctx context.Context, key string, dueAt time.Time) error
}

type reminderStore interface {
	GetReminder(ctx context.Context, id uuid.UUID) (model.Reminder, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
}

type tokenStore interface {
	ListActiveByUser(ctx context.Context, userID string) ([]model.DeviceToken, error)
	Deactivate(ctx context.Context, userID string, tokens []string) error
}

type pushSender interface {
	Send(ctx context.Context, p fcm.Payload) (fcm.Result, error)
}

type alerter interface {
	Send(to, subject, body string) error
}

type Handler struct {
	jobs      jobStore
	reminders reminderStore
	tokens    tokenStore
	push      pushSender
	alert     alerter
	alertTo   string
	strategy  retry.Strategy
}

func NewHandler(
	jobs jobStore,
	reminders reminderStore,
	tokens tokenStore,
	push pushSender,
	alert alerter,
	alertTo string,
	strategy retry.Strategy,
) *Handler {
	return &Handler{
		jobs:      jobs,
		reminders: reminders,
		tokens:    tokens,
		push:      push,
		alert:     alert,
		alertTo:   alertTo,
		strategy:  strategy,
	}
}

// HandleMessage processes one due job. Discards are successes: a cancelled
// job, a deleted reminder, an already-sent reminder and a user with no
// active devices all complete without dispatching anything.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.JobMessage) {
	job, err := h.jobs.Lookup(ctx, msg.Key)
	if errors.Is(err, jobqueue.ErrJobNotFound) {
		zlog.Logger.Info().Str("key", msg.Key).Msg("job cancelled before delivery, skipping")
		return
	}
	if err != nil {
		zlog.Logger.Error().Err(err).Str("key", msg.Key).Msg("failed to look up job")
		return
	}

	if job.Status == jobqueue.StatusFailed {
		zlog.Logger.Warn().Str("key", msg.Key).Msg("job already parked as failed, skipping")
		return
	}

	rem, err := h.reminders.GetReminder(ctx, msg.ReminderID)
	if errors.Is(err, reminderrepo.ErrReminderNotFound) {
		// Deleted after the job was claimed; nothing to deliver.
		h.complete(ctx, msg.Key)
		return
	}
	if err != nil {
		h.fail(ctx, msg.Key, fmt.Errorf("fetch reminder: %w", err))
		return
	}

	if rem.Sent {
		zlog.Logger.Info().Str("key", msg.Key).Msg("reminder already sent, skipping")
		h.complete(ctx, msg.Key)
		return
	}

	// Woke up early (clock skew or a premature claim): push the job forward
	// instead of delivering ahead of the user's send time.
	if time.Until(rem.SendAt) > SkewTolerance {
		zlog.Logger.Warn().
			Str("key", msg.Key).
			Time("send_at", rem.SendAt).
			Msg("job fired early, rescheduling")

		if err := h.jobs.Reschedule(ctx, msg.Key, rem.SendAt); err != nil {
			zlog.Logger.Error().Err(err).Str("key", msg.Key).Msg("failed to reschedule job")
		}
		return
	}

	tokens, err := h.tokens.ListActiveByUser(ctx, rem.UserID)
	if err != nil {
		h.fail(ctx, msg.Key, fmt.Errorf("fetch device tokens: %w", err))
		return
	}

	if len(tokens) == 0 {
		zlog.Logger.Info().Str("key", msg.Key).Str("user_id", rem.UserID).Msg("no active devices, skipping")
		h.complete(ctx, msg.Key)
		return
	}

	payload := fcm.Payload{
		Title:    rem.Title,
		Body:     rem.Body,
		DeepLink: rem.DeepLink,
		Tokens:   make([]string, 0, len(tokens)),
	}
	for _, t := range tokens {
		payload.Tokens = append(payload.Tokens, t.Token)
	}

	res, err := h.push.Send(ctx, payload)
	if err != nil {
		h.fail(ctx, msg.Key, fmt.Errorf("dispatch push: %w", err))
		return
	}

	zlog.Logger.Info().
		Str("key", msg.Key).
		Int("success", res.SuccessCount).
		Int("failure", res.FailureCount).
		Msg("notification dispatched")

	// Dispatch happened; mark sent now. If the write keeps failing we log
	// loudly and complete anyway rather than retry the job, since a retry
	// would dispatch the push a second time.
	err = retry.Do(func() error {
		return h.reminders.MarkSent(ctx, rem.ID)
	}, h.strategy)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("key", msg.Key).Msg("failed to mark reminder sent after dispatch")
	}

	if len(res.Invalid) > 0 {
		if err := h.tokens.Deactivate(ctx, rem.UserID, res.Invalid); err != nil {
			zlog.Logger.Error().Err(err).Str("user_id", rem.UserID).Msg("failed to prune invalid tokens")
		}
	}

	h.complete(ctx, msg.Key)
}

func (h *Handler) complete(ctx context.Context, key string) {
	if err := h.jobs.Complete(ctx, key); err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to complete job")
	}
}

func (h *Handler) fail(ctx context.Context, key string, cause error) {
	zlog.Logger.Error().Err(cause).Str("key", key).Msg("delivery failed")

	parked, err := h.jobs.Retry(ctx, key, cause)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to record delivery failure")
		return
	}

	if !parked {
		return
	}

	zlog.Logger.Error().Str("key", key).Msg("job exhausted retries, parked as failed")

	if h.alert == nil || h.alertTo == "" {
		return
	}

	subject := "notifier: delivery job parked as failed"
	body := fmt.Sprintf("Job %s exhausted its delivery attempts at %s KST.\nLast error: %v\n", key, kst.Now(), cause)
	if err := h.alert.Send(h.alertTo, subject, body); err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to send operator alert")
	}
}
