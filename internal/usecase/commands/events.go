package commands

import (
	"context"
	"encoding/json"
	"time"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/pkg/errs"
	"showroom-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// EventTopic is the broker topic stored with every appointment event job.
const EventTopic = "appointments.events"

// EventPayload is the wire shape of an appointment event in the outbox.
type EventPayload struct {
	EventID       uuid.UUID  `json:"event_id"`
	EventType     string     `json:"event_type"`
	AppointmentID uuid.UUID  `json:"appointment_id"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	AgentID       *uuid.UUID `json:"agent_id,omitempty"`
	Status        string     `json:"status"`
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	PreviousStart *time.Time `json:"previous_start,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

func newEventPayload(e appointment.Event) EventPayload {
	return EventPayload{
		EventID:       e.ID,
		EventType:     string(e.Type),
		AppointmentID: e.AppointmentID,
		CustomerID:    e.CustomerID,
		AgentID:       e.AgentID,
		Status:        e.Status.String(),
		Start:         e.Start,
		End:           e.End,
		PreviousStart: e.PreviousStart,
		Reason:        e.Reason,
		OccurredAt:    e.OccurredAt,
	}
}

// enqueueEvent writes the event to the outbox inside tx. Delivery happens after commit.
func enqueueEvent(ctx context.Context, tx shared.Tx, e appointment.Event) error {
	payload, err := json.Marshal(newEventPayload(e))
	if err != nil {
		return errs.Wrap(err, "failed to encode appointment event")
	}

	return tx.Notifications().Enqueue(ctx, shared.NotificationJob{
		ID:      e.ID,
		Kind:    string(e.Type),
		Topic:   EventTopic,
		Key:     e.AppointmentID.String(),
		Payload: payload,
		Status:  shared.JobStatusQueued,
		RunAt:   e.OccurredAt,
	})
}
