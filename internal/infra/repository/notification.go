package repository

import (
	"context"
	"time"

	"showroom-scheduler/internal/infra"
	sqlc "showroom-scheduler/internal/infra/sqlc/generated"
	"showroom-scheduler/internal/pkg/pgconv"
	"showroom-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// ClaimLease is how long a claimed job stays invisible to other relays before it can be picked up again.
const ClaimLease = time.Minute

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJob, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, job shared.NotificationJob) error {
	status := job.Status
	if status == "" {
		status = shared.JobStatusQueued
	}
	createdAt := job.CreatedAt
	if createdAt.IsZero() {
		createdAt = job.RunAt
	}

	params := sqlc.CreateNotificationJobParams{
		ID:         job.ID,
		Kind:       job.Kind,
		Topic:      job.Topic,
		MessageKey: job.Key,
		Payload:    job.Payload,
		Status:     status,
		RunAt:      pgconv.TimeToPgtype(job.RunAt),
		CreatedAt:  pgconv.TimeToPgtype(createdAt),
	}

	if err := r.queries.CreateNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue leases up to limit due jobs and bumps their attempt counter.
func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, sqlc.ClaimDueNotificationJobsParams{
		LeaseUntil: pgconv.TimeToPgtype(now.Add(ClaimLease)),
		Now:        pgconv.TimeToPgtype(now),
		RowLimit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = toNotificationJob(row)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextRunAt time.Time, dead bool) error {
	status := shared.JobStatusFailed
	if dead {
		status = shared.JobStatusDead
	}

	err := r.queries.MarkNotificationJobFailed(ctx, r.db, sqlc.MarkNotificationJobFailedParams{
		ID:        id,
		Status:    status,
		LastError: pgconv.StringToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(nextRunAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}

func toNotificationJob(row sqlc.NotificationJob) shared.NotificationJob {
	return shared.NotificationJob{
		ID:        row.ID,
		Kind:      row.Kind,
		Topic:     row.Topic,
		Key:       row.MessageKey,
		Payload:   row.Payload,
		Status:    row.Status,
		Attempts:  row.Attempts,
		LastError: pgconv.StringPtrFromPgtype(row.LastError),
		RunAt:     pgconv.TimeFromPgtype(row.RunAt),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
