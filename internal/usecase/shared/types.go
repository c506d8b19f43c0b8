package shared

import (
	"time"

	"showroom-scheduler/internal/domain/user"

	"github.com/google/uuid"
)

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
	JobStatusDead   = "dead"
)

// NotificationJob is one outbox row: a domain event waiting for delivery.
type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Key       string
	Payload   []byte
	Status    string
	Attempts  int32
	LastError *string
	RunAt     time.Time
	CreatedAt time.Time
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

// CanActOn reports whether the actor may change or read an appointment owned by customerID.
func (a Actor) CanActOn(customerID uuid.UUID) bool {
	return a.IsStaff() || a.UserID == customerID
}
