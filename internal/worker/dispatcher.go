package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/alzcare/notifier/internal/jobqueue"
	"github.com/alzcare/notifier/internal/rabbitmq/queue"
)

// claimBatch caps how many due jobs a single poll moves to the ready queue.
const claimBatch = 100

type jobClaimer interface {
	Claim(ctx context.Context, now time.Time, limit int64) ([]jobqueue.Job, error)
	Reschedule(ctx context.Context, key string, dueAt time.Time) error
}

type jobPublisher interface {
	Publish(msg queue.JobMessage, strategy retry.Strategy) error
}

// Dispatcher polls the scheduled set and hands due jobs to the ready queue.
type Dispatcher struct {
	jobs     jobClaimer
	queue    jobPublisher
	interval time.Duration
}

func NewDispatcher(jobs jobClaimer, q jobPublisher, interval time.Duration) *Dispatcher {
	return &Dispatcher{
		jobs:     jobs,
		queue:    q,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled, dispatching on every tick.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("dispatcher stopped")
			return
		case <-ticker.C:
			d.dispatchDue(ctx, strategy)
		}
	}
}

func (d *Dispatcher) dispatchDue(ctx context.Context, strategy retry.Strategy) {
	jobs, err := d.jobs.Claim(ctx, time.Now(), claimBatch)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to claim due jobs")
		return
	}

	for _, job := range jobs {
		msg := queue.JobMessage{
			Key:        job.Key,
			ReminderID: job.ReminderID,
			DueAt:      job.DueAt,
			Attempt:    job.Attempts,
		}

		if err := d.queue.Publish(msg, strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("key", job.Key).Msg("failed to publish job, rescheduling")

			// Put the job back so the next poll picks it up again.
			if err := d.jobs.Reschedule(ctx, job.Key, job.DueAt); err != nil {
				zlog.Logger.Error().Err(err).Str("key", job.Key).Msg("failed to reschedule job after publish failure")
			}
			continue
		}

		zlog.Logger.Info().Str("key", job.Key).Time("due_at", job.DueAt).Msg("job dispatched")
	}
}
