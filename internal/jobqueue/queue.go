// Package jobqueue implements a durable, delay-aware work queue on Redis,
// deduplicated by idempotency key. One live job exists per key at any time;
// callers cancel before re-enqueueing under the same key.
//
// Layout in Redis: the job record lives at "job:<key>" as JSON, due keys sit
// in the "jobs:scheduled" zset scored by due time, and exhausted jobs are
// parked in the "jobs:failed" set for operator inspection. Successful jobs
// are purged immediately.
package jobqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
)

var (
	// ErrJobNotFound is returned by Lookup for an unknown key.
	ErrJobNotFound = errors.New("job not found")

	// ErrDuplicateJob is returned by Enqueue when a live job already exists
	// under the key. The queue never silently overwrites; cancel first.
	ErrDuplicateJob = errors.New("job already exists for key")
)

// Status values of a job record.
const (
	StatusScheduled = "scheduled"
	StatusFailed    = "failed"
)

const (
	recordPrefix = "job:"
	scheduledSet = "jobs:scheduled"
	failedSet    = "jobs:failed"
)

// Job is a unit of delayed work keyed by idempotency key.
type Job struct {
	Key         string    `json:"key"`
	ReminderID  uuid.UUID `json:"reminder_id"`
	DueAt       time.Time `json:"due_at"`
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"max_attempts"`
	Status      string    `json:"status"`
	LastError   string    `json:"last_error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Queue is safe for concurrent producers and consumers. Claim hands each due
// job to at most one caller; redelivery after a crash mid-handler is possible,
// so handlers must be idempotent.
type Queue struct {
	client      *redis.Client
	strategy    retry.Strategy
	backoffBase time.Duration
}

// New creates a queue over an established Redis client. strategy governs
// retries of the Redis round-trips themselves; backoffBase is the initial
// redelivery delay after a handler failure, doubling per attempt.
func New(client *redis.Client, strategy retry.Strategy, backoffBase time.Duration) *Queue {
	return &Queue{client: client, strategy: strategy, backoffBase: backoffBase}
}

// Enqueue persists job and schedules it for delivery no earlier than DueAt.
// Fails with ErrDuplicateJob if a live job exists under the same key.
func (q *Queue) Enqueue(ctx context.Context, job Job) error {
	now := time.Now()
	job.Status = StatusScheduled
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	var stored bool
	err = retry.Do(func() error {
		ok, setErr := q.client.SetNX(ctx, recordPrefix+job.Key, data, 0).Result()
		if setErr != nil {
			return setErr
		}
		stored = ok
		return nil
	}, q.strategy)
	if err != nil {
		return fmt.Errorf("store job record: %w", err)
	}
	if !stored {
		// Losing SetNX is an answer, not a transient fault; don't retry it.
		return ErrDuplicateJob
	}

	err = retry.Do(func() error {
		return q.client.ZAdd(ctx, scheduledSet, &redis.Z{
			Score:  float64(job.DueAt.Unix()),
			Member: job.Key,
		}).Err()
	}, q.strategy)
	if err != nil {
		return fmt.Errorf("schedule job: %w", err)
	}

	return nil
}

// Cancel removes the job under key. Idempotent: cancelling an unknown key is
// not an error. Once Cancel returns, no future delivery attempt for the key
// will start; a handler already holding a claimed job is not interrupted and
// guards itself by re-checking the reminder record.
func (q *Queue) Cancel(ctx context.Context, key string) error {
	err := retry.Do(func() error {
		pipe := q.client.TxPipeline()
		pipe.ZRem(ctx, scheduledSet, key)
		pipe.SRem(ctx, failedSet, key)
		pipe.Del(ctx, recordPrefix+key)
		_, execErr := pipe.Exec(ctx)
		return execErr
	}, q.strategy)
	if err != nil {
		return fmt.Errorf("cancel job: %w", err)
	}

	return nil
}

// Lookup returns job metadata by key, or ErrJobNotFound.
func (q *Queue) Lookup(ctx context.Context, key string) (Job, error) {
	var data []byte

	err := retry.Do(func() error {
		b, getErr := q.client.Get(ctx, recordPrefix+key).Bytes()
		if getErr != nil && !errors.Is(getErr, redis.Nil) {
			return getErr
		}
		data = b
		return nil
	}, q.strategy)
	if err != nil {
		return Job{}, fmt.Errorf("lookup job: %w", err)
	}

	if data == nil {
		return Job{}, ErrJobNotFound
	}

	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return Job{}, fmt.Errorf("unmarshal job: %w", err)
	}

	return job, nil
}

// Claim pops up to limit jobs that are due at now. A key is returned only if
// this caller won its ZRem, so each due job reaches exactly one claimer; the
// record itself stays until Complete, Retry or Cancel.
func (q *Queue) Claim(ctx context.Context, now time.Time, limit int64) ([]Job, error) {
	var keys []string

	err := retry.Do(func() error {
		res, rangeErr := q.client.ZRangeByScore(ctx, scheduledSet, &redis.ZRangeBy{
			Min:   "0",
			Max:   fmt.Sprintf("%d", now.Unix()),
			Count: limit,
		}).Result()
		if rangeErr != nil {
			return rangeErr
		}
		keys = res
		return nil
	}, q.strategy)
	if err != nil {
		return nil, fmt.Errorf("range due jobs: %w", err)
	}

	var claimed []Job
	for _, key := range keys {
		removed, remErr := q.client.ZRem(ctx, scheduledSet, key).Result()
		if remErr != nil {
			return claimed, fmt.Errorf("claim job %s: %w", key, remErr)
		}
		if removed == 0 {
			continue // another claimer got there first
		}

		job, lookErr := q.Lookup(ctx, key)
		if errors.Is(lookErr, ErrJobNotFound) {
			continue // cancelled between range and claim
		}
		if lookErr != nil {
			return claimed, lookErr
		}
		if job.Status == StatusFailed {
			continue // parked, waits for an operator
		}

		claimed = append(claimed, job)
	}

	return claimed, nil
}

// Complete purges a successfully processed job. Idempotent.
func (q *Queue) Complete(ctx context.Context, key string) error {
	err := retry.Do(func() error {
		pipe := q.client.TxPipeline()
		pipe.ZRem(ctx, scheduledSet, key)
		pipe.Del(ctx, recordPrefix+key)
		_, execErr := pipe.Exec(ctx)
		return execErr
	}, q.strategy)
	if err != nil {
		return fmt.Errorf("complete job: %w", err)
	}

	return nil
}

// Reschedule puts a claimed job back into the scheduled set with a new due
// time, without counting an attempt. Used when a job wakes up early.
func (q *Queue) Reschedule(ctx context.Context, key string, dueAt time.Time) error {
	job, err := q.Lookup(ctx, key)
	if err != nil {
		return err
	}

	job.DueAt = dueAt
	job.UpdatedAt = time.Now()
	if err := q.writeRecord(ctx, job); err != nil {
		return err
	}

	err = retry.Do(func() error {
		return q.client.ZAdd(ctx, scheduledSet, &redis.Z{
			Score:  float64(dueAt.Unix()),
			Member: key,
		}).Err()
	}, q.strategy)
	if err != nil {
		return fmt.Errorf("reschedule job: %w", err)
	}

	return nil
}

// Retry records a handler failure. While attempts remain the job is re-added
// to the scheduled set with exponential backoff (base delay doubled per
// attempt). On exhaustion the job is marked failed and parked for inspection,
// never silently dropped. Returns true when the job was parked.
func (q *Queue) Retry(ctx context.Context, key string, cause error) (bool, error) {
	job, err := q.Lookup(ctx, key)
	if err != nil {
		return false, err
	}

	job.Attempts++
	job.UpdatedAt = time.Now()
	if cause != nil {
		job.LastError = cause.Error()
	}

	if job.Attempts >= job.MaxAttempts {
		job.Status = StatusFailed
		if err := q.writeRecord(ctx, job); err != nil {
			return false, err
		}

		err = retry.Do(func() error {
			pipe := q.client.TxPipeline()
			pipe.ZRem(ctx, scheduledSet, key)
			pipe.SAdd(ctx, failedSet, key)
			_, execErr := pipe.Exec(ctx)
			return execErr
		}, q.strategy)
		if err != nil {
			return false, fmt.Errorf("park failed job: %w", err)
		}

		return true, nil
	}

	delay := q.backoffBase << (job.Attempts - 1)
	job.DueAt = time.Now().Add(delay)
	if err := q.writeRecord(ctx, job); err != nil {
		return false, err
	}

	err = retry.Do(func() error {
		return q.client.ZAdd(ctx, scheduledSet, &redis.Z{
			Score:  float64(job.DueAt.Unix()),
			Member: key,
		}).Err()
	}, q.strategy)
	if err != nil {
		return false, fmt.Errorf("requeue job: %w", err)
	}

	return false, nil
}

// Failed returns the jobs parked after exhausting their attempts.
func (q *Queue) Failed(ctx context.Context) ([]Job, error) {
	keys, err := q.client.SMembers(ctx, failedSet).Result()
	if err != nil {
		return nil, fmt.Errorf("list failed jobs: %w", err)
	}

	var jobs []Job
	for _, key := range keys {
		job, lookErr := q.Lookup(ctx, key)
		if errors.Is(lookErr, ErrJobNotFound) {
			continue
		}
		if lookErr != nil {
			return nil, lookErr
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func (q *Queue) writeRecord(ctx context.Context, job Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	err = retry.Do(func() error {
		return q.client.Set(ctx, recordPrefix+job.Key, data, 0).Err()
	}, q.strategy)
	if err != nil {
		return fmt.Errorf("store job record: %w", err)
	}

	return nil
}
