package outbox

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"showroom-scheduler/internal/pkg/clock"
	"showroom-scheduler/internal/pkg/config"
	"showroom-scheduler/internal/usecase/shared"
)

const maxRetryDelay = 5 * time.Minute

// Relay moves committed notification jobs to the publisher. Delivery is
// at-least-once: a job is marked sent only after Publish returns nil.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	logger    *slog.Logger

	interval    time.Duration
	batch       int32
	maxAttempts int32

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, logger *slog.Logger, cfg config.EventsConfig) *Relay {
	interval := cfg.RelayInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	batch := cfg.RelayBatch
	if batch <= 0 {
		batch = 50
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	return &Relay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		logger:      logger,
		interval:    interval,
		batch:       batch,
		maxAttempts: maxAttempts,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start runs the relay loop in a goroutine until Stop is called.
func (r *Relay) Start() {
	go r.loop()
}

func (r *Relay) Stop(ctx context.Context) error {
	r.once.Do(func() { close(r.stop) })
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Relay) loop() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.interval*5)
			if _, err := r.RunOnce(ctx); err != nil {
				r.logger.Error("outbox relay iteration failed", slog.String("error", err.Error()))
			}
			cancel()
		}
	}
}

// RunOnce claims one batch of due jobs and tries to publish each. It returns the number published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	var jobs []shared.NotificationJob
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Notifications().ClaimDue(ctx, r.clock.Now(), r.batch)
		if err != nil {
			return err
		}
		jobs = claimed
		return nil
	})
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		pubErr := r.publisher.Publish(ctx, toMessage(job))
		if err := r.record(ctx, job, pubErr); err != nil {
			return sent, err
		}
		if pubErr == nil {
			sent++
		}
	}
	return sent, nil
}

func (r *Relay) record(ctx context.Context, job shared.NotificationJob, pubErr error) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if pubErr == nil {
			return tx.Notifications().MarkSent(ctx, job.ID)
		}

		dead := job.Attempts >= r.maxAttempts
		next := r.clock.Now().Add(r.retryDelay(job.Attempts))
		r.logger.Warn("failed to publish appointment event",
			slog.String("job_id", job.ID.String()),
			slog.String("kind", job.Kind),
			slog.Int("attempts", int(job.Attempts)),
			slog.Bool("dead", dead),
			slog.String("error", pubErr.Error()))
		return tx.Notifications().MarkFailed(ctx, job.ID, pubErr.Error(), next, dead)
	})
}

// retryDelay doubles per attempt starting at the relay interval.
func (r *Relay) retryDelay(attempts int32) time.Duration {
	delay := r.interval
	for i := int32(1); i < attempts && delay < maxRetryDelay; i++ {
		delay *= 2
	}
	return min(delay, maxRetryDelay)
}

func toMessage(job shared.NotificationJob) Message {
	return Message{
		Topic: job.Topic,
		Key:   job.Key,
		Value: job.Payload,
		Headers: map[string]string{
			HeaderEventType: job.Kind,
			HeaderEventID:   job.ID.String(),
			HeaderAttempt:   strconv.Itoa(int(job.Attempts)),
		},
		Timestamp: job.CreatedAt,
	}
}
