// Package reminder turns create/update/delete reminder intents into record
// and job-queue operations, enforcing the timing and one-job-per-reminder
// invariants.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/alzcare/notifier/internal/jobqueue"
	"github.com/alzcare/notifier/internal/model"
	"github.com/alzcare/notifier/pkg/kst"
)

var (
	// ErrEmptyTitle is returned when a reminder title is missing or blank.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrLeadTimeTooShort is returned when a new reminder's send time is
	// less than MinLead in the future.
	ErrLeadTimeTooShort = errors.New("send time must be at least 30 seconds in the future")

	// ErrPastSendAt is returned when an updated send time is not in the future.
	ErrPastSendAt = errors.New("send time must be in the future")

	// ErrAlreadySent is returned when mutating a reminder that was delivered.
	ErrAlreadySent = errors.New("reminder already sent")
)

// MinLead is the minimum scheduling lead time for newly created reminders.
const MinLead = 30 * time.Second

// JobKey derives the idempotency key for a reminder's queue job. The key is
// deterministic, so a reminder can never have more than one live job.
func JobKey(id uuid.UUID) string {
	return "notif:" + id.String()
}

//go:generate mockgen -source=service.go -destination=../../mocks/service/reminder/mock.go -package=mocks

type reminderRepository interface {
	CreateReminder(context.Context, model.Reminder) (uuid.UUID, error)
	GetReminder(context.Context, uuid.UUID) (model.Reminder, error)
	UpdateReminder(context.Context, model.Reminder) error
	DeleteReminder(context.Context, uuid.UUID) error
	ListByUser(context.Context, string) ([]model.Reminder, error)
}

type jobQueue interface {
	Enqueue(ctx context.Context, job jobqueue.Job) error
	Cancel(ctx context.Context, key string) error
}

// Patch carries the optional fields of an update intent. SendAt is the wire
// format KST civil string, parsed and validated here.
type Patch struct {
	Title    *string
	Body     *string
	DeepLink *string
	SendAt   *string
}

type Service struct {
	repo        reminderRepository
	queue       jobQueue
	maxAttempts int
}

func NewService(repo reminderRepository, queue jobQueue, maxAttempts int) *Service {
	return &Service{repo: repo, queue: queue, maxAttempts: maxAttempts}
}

// Create validates the intent, persists a pending reminder and schedules its
// delivery job. Returns the new reminder's id.
func (s *Service) Create(ctx context.Context, userID, title, body, deepLink, sendAt string) (uuid.UUID, error) {
	if title == "" {
		return uuid.Nil, ErrEmptyTitle
	}

	target, err := kst.ToInstant(sendAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse send time: %w", err)
	}

	if time.Until(target) < MinLead {
		return uuid.Nil, ErrLeadTimeTooShort
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate id: %w", err)
	}

	rem := model.Reminder{
		ID:       id,
		UserID:   userID,
		Title:    title,
		Body:     body,
		DeepLink: deepLink,
		SendAt:   target,
	}

	if _, err := s.repo.CreateReminder(ctx, rem); err != nil {
		return uuid.Nil, fmt.Errorf("create reminder: %w", err)
	}

	err = s.queue.Enqueue(ctx, jobqueue.Job{
		Key:         JobKey(id),
		ReminderID:  id,
		DueAt:       target,
		MaxAttempts: s.maxAttempts,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("enqueue job: %w", err)
	}

	return id, nil
}

// Update applies the provided fields to a pending reminder. The queue job is
// always recreated under the same key, even when the send time is unchanged;
// cancel-then-enqueue keeps exactly one live job per reminder without any
// patch-in-place logic.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch Patch) (model.Reminder, error) {
	rem, err := s.repo.GetReminder(ctx, id)
	if err != nil {
		return model.Reminder{}, err
	}

	if rem.Sent {
		return model.Reminder{}, ErrAlreadySent
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return model.Reminder{}, ErrEmptyTitle
		}
		rem.Title = *patch.Title
	}
	if patch.Body != nil {
		rem.Body = *patch.Body
	}
	if patch.DeepLink != nil {
		rem.DeepLink = *patch.DeepLink
	}
	prevSendAt := rem.SendAt
	if patch.SendAt != nil {
		target, parseErr := kst.ToInstant(*patch.SendAt)
		if parseErr != nil {
			return model.Reminder{}, fmt.Errorf("parse send time: %w", parseErr)
		}
		if !target.After(time.Now()) {
			return model.Reminder{}, ErrPastSendAt
		}
		rem.SendAt = target
	}

	key := JobKey(id)
	if err := s.queue.Cancel(ctx, key); err != nil {
		return model.Reminder{}, fmt.Errorf("cancel job: %w", err)
	}

	if err := s.repo.UpdateReminder(ctx, rem); err != nil {
		// The old job is already cancelled; restore it so the pending
		// reminder keeps a live job.
		s.restoreJob(ctx, key, id, prevSendAt)
		return model.Reminder{}, err
	}

	err = s.queue.Enqueue(ctx, jobqueue.Job{
		Key:         key,
		ReminderID:  id,
		DueAt:       rem.SendAt,
		MaxAttempts: s.maxAttempts,
	})
	if err != nil {
		s.restoreJob(ctx, key, id, rem.SendAt)
		return model.Reminder{}, fmt.Errorf("enqueue job: %w", err)
	}

	return rem, nil
}

// restoreJob re-enqueues a reminder's job after a failed cancel-then-enqueue
// update, so the reminder is never left pending without a live job. A
// duplicate means a job survived after all; anything else is logged for an
// operator, since the original failure is already on its way to the caller.
func (s *Service) restoreJob(ctx context.Context, key string, id uuid.UUID, dueAt time.Time) {
	err := s.queue.Enqueue(ctx, jobqueue.Job{
		Key:         key,
		ReminderID:  id,
		DueAt:       dueAt,
		MaxAttempts: s.maxAttempts,
	})
	if err != nil && !errors.Is(err, jobqueue.ErrDuplicateJob) {
		zlog.Logger.Error().
			Err(err).
			Str("key", key).
			Msg("failed to restore job after aborted update, reminder has no live job")
	}
}

// Delete cancels the reminder's queue job and removes its record. Idempotent:
// deleting a missing reminder is not an error. A job already claimed by a
// worker is not interrupted; the worker's own re-check of the record is the
// guard against stale delivery.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.queue.Cancel(ctx, JobKey(id)); err != nil {
		return fmt.Errorf("cancel job: %w", err)
	}

	if err := s.repo.DeleteReminder(ctx, id); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}

	return nil
}

// List returns the user's reminders in stable id order.
func (s *Service) List(ctx context.Context, userID string) ([]model.Reminder, error) {
	reminders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	return reminders, nil
}
