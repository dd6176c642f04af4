package jobqueue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

func setupQueue(t *testing.T) *Queue {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond, Backoff: 2}
	return New(client, strategy, 5*time.Second)
}

func testJob(key string, dueAt time.Time) Job {
	return Job{
		Key:         key,
		ReminderID:  uuid.New(),
		DueAt:       dueAt,
		MaxAttempts: 3,
	}
}

func TestEnqueueLookup(t *testing.T) {
	q := setupQueue(t)
	ctx := context.Background()

	dueAt := time.Now().Add(time.Minute)
	job := testJob("notif:abc", dueAt)
	require.NoError(t, q.Enqueue(ctx, job))

	got, err := q.Lookup(ctx, "notif:abc")
	require.NoError(t, err)
	assert.Equal(t, job.ReminderID, got.ReminderID)
	assert.Equal(t, StatusScheduled, got.Status)
	assert.Equal(t, dueAt.Unix(), got.DueAt.Unix())
}

func TestEnqueue_DuplicateKey(t *testing.T) {
	q := setupQueue(t)
	ctx := context.Background()

	job := testJob("notif:dup", time.Now().Add(time.Minute))
	require.NoError(t, q.Enqueue(ctx, job))

	err := q.Enqueue(ctx, job)
	assert.ErrorIs(t, err, ErrDuplicateJob)
}

func TestEnqueue_DuplicateDoesNotRetry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	// Two extra attempts at 200ms each; a retried duplicate would take >400ms.
	strategy := retry.Strategy{Attempts: 3, Delay: 200 * time.Millisecond, Backoff: 1}
	q := New(client, strategy, 5*time.Second)
	ctx := context.Background()

	job := testJob("notif:dup-fast", time.Now().Add(time.Minute))
	require.NoError(t, q.Enqueue(ctx, job))

	start := time.Now()
	err := q.Enqueue(ctx, job)
	assert.ErrorIs(t, err, ErrDuplicateJob)
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestCancel_Idempotent(t *testing.T) {
	q := setupQueue(t)
	ctx := context.Background()

	job := testJob("notif:gone", time.Now().Add(time.Minute))
	require.NoError(t, q.Enqueue(ctx, job))

	require.NoError(t, q.Cancel(ctx, "notif:gone"))
	_, err := q.Lookup(ctx, "notif:gone")
	assert.ErrorIs(t, err, ErrJobNotFound)

	// Cancelling again, and cancelling a never-seen key, are not errors.
	assert.NoError(t, q.Cancel(ctx, "notif:gone"))
	assert.NoError(t, q.Cancel(ctx, "notif:never-existed"))
}

func TestOneLiveJobPerKey(t *testing.T) {
	q := setupQueue(t)
	ctx := context.Background()

	key := "notif:one"
	first := testJob(key, time.Now().Add(time.Hour))
	require.NoError(t, q.Enqueue(ctx, first))

	// Reschedule the reminder a few times: cancel then enqueue, same key.
	var latest time.Time
	for i := 2; i <= 4; i++ {
		latest = time.Now().Add(time.Duration(i) * time.Hour)
		require.NoError(t, q.Cancel(ctx, key))
		require.NoError(t, q.Enqueue(ctx, testJob(key, latest)))
	}

	// Exactly one live job, due at the latest send time.
	got, err := q.Lookup(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, latest.Unix(), got.DueAt.Unix())

	claimed, err := q.Claim(ctx, latest.Add(time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, key, claimed[0].Key)

	// Nothing left to claim afterwards.
	claimed, err = q.Claim(ctx, latest.Add(time.Minute), 10)
	require.NoError(t, err)
	assert.Empty(t, claimed)
}

func TestClaim_OnlyDueJobs(t *testing.T) {
	q := setupQueue(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, q.Enqueue(ctx, testJob("notif:due", now.Add(-time.Second))))
	require.NoError(t, q.Enqueue(ctx, testJob("notif:later", now.Add(time.Hour))))

	claimed, err := q.Claim(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, "notif:due", claimed[0].Key)

	// The future job is untouched.
	_, err = q.Lookup(ctx, "notif:later")
	assert.NoError(t, err)
}

func TestComplete_PurgesJob(t *testing.T) {
	q := setupQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, testJob("notif:done", time.Now())))
	require.NoError(t, q.Complete(ctx, "notif:done"))

	_, err := q.Lookup(ctx, "notif:done")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestRetry_BackoffThenPark(t *testing.T) {
	q := setupQueue(t)
	ctx := context.Background()

	job := testJob("notif:flaky", time.Now())
	job.MaxAttempts = 3
	require.NoError(t, q.Enqueue(ctx, job))

	// First failure: backoff ~5s.
	parked, err := q.Retry(ctx, job.Key, assert.AnError)
	require.NoError(t, err)
	assert.False(t, parked)

	got, err := q.Lookup(ctx, job.Key)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Attempts)
	assert.InDelta(t, time.Now().Add(5*time.Second).Unix(), got.DueAt.Unix(), 2)

	// Second failure: delay doubles to ~10s.
	parked, err = q.Retry(ctx, job.Key, assert.AnError)
	require.NoError(t, err)
	assert.False(t, parked)

	got, err = q.Lookup(ctx, job.Key)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(10*time.Second).Unix(), got.DueAt.Unix(), 2)

	// Third failure exhausts attempts: parked, retained, not scheduled.
	parked, err = q.Retry(ctx, job.Key, assert.AnError)
	require.NoError(t, err)
	assert.True(t, parked)

	got, err = q.Lookup(ctx, job.Key)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, assert.AnError.Error(), got.LastError)

	failed, err := q.Failed(ctx)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, job.Key, failed[0].Key)

	claimed, err := q.Claim(ctx, time.Now().Add(time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, claimed)
}

func TestReschedule(t *testing.T) {
	q := setupQueue(t)
	ctx := context.Background()

	job := testJob("notif:early", time.Now())
	require.NoError(t, q.Enqueue(ctx, job))

	claimed, err := q.Claim(ctx, time.Now(), 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	// Woke up early: push it forward without burning an attempt.
	later := time.Now().Add(30 * time.Second)
	require.NoError(t, q.Reschedule(ctx, job.Key, later))

	got, err := q.Lookup(ctx, job.Key)
	require.NoError(t, err)
	assert.Equal(t, later.Unix(), got.DueAt.Unix())
	assert.Equal(t, 0, got.Attempts)

	claimed, err = q.Claim(ctx, later.Add(time.Second), 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
}
