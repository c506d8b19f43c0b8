package shared

import (
	"context"
	"time"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/domain/resource"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction so several reads see one snapshot
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
}

type Tx interface {
	// LockResource blocks until this transaction is the only writer on res.
	// The lock is released on commit or rollback.
	LockResource(ctx context.Context, res resource.Resource) error
	Appointments() AppointmentRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

// CommandReads are the reads the write side needs. Inside a Tx they run on the
// transaction's connection, so they see the same snapshot the write will.
type CommandReads interface {
	appointment.IntervalSource
	AppointmentForUpdate(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	CustomerExists(ctx context.Context, id uuid.UUID) (bool, error)
	CarExists(ctx context.Context, id uuid.UUID) (bool, error)
	AgentExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *appointment.Appointment) error
	Update(ctx context.Context, appt *appointment.Appointment) error
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, job NotificationJob) error
	ClaimDue(ctx context.Context, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextRunAt time.Time, dead bool) error
}
