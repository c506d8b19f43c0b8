package appointment

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventCreated     EventType = "appointment.created"
	EventRescheduled EventType = "appointment.rescheduled"
	EventCancelled   EventType = "appointment.cancelled"
	EventConfirmed   EventType = "appointment.confirmed"
	EventCompleted   EventType = "appointment.completed"
	EventNoShow      EventType = "appointment.no_show"
)

// Event is raised after a lifecycle change and handed to the notification collaborator.
type Event struct {
	ID            uuid.UUID
	Type          EventType
	AppointmentID uuid.UUID
	CustomerID    uuid.UUID
	AgentID       *uuid.UUID
	Status        Status
	Start         time.Time
	End           time.Time
	PreviousStart *time.Time
	Reason        string
	OccurredAt    time.Time
}

func NewEvent(eventType EventType, a *Appointment, occurredAt time.Time) Event {
	return Event{
		ID:            uuid.New(),
		Type:          eventType,
		AppointmentID: a.ID(),
		CustomerID:    a.CustomerID(),
		AgentID:       a.AgentID(),
		Status:        a.Status(),
		Start:         a.Start(),
		End:           a.End(),
		OccurredAt:    occurredAt,
	}
}

func (e Event) WithPreviousStart(t time.Time) Event {
	e.PreviousStart = &t
	return e
}

func (e Event) WithReason(reason string) Event {
	e.Reason = reason
	return e
}
