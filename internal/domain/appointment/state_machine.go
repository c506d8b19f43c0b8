package appointment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"showroom-scheduler/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errors.New("invalid appointment transition")

type InvalidTransitionError struct {
	Current Status
	Action  Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s an appointment in status %s", e.Action, e.Current)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// allowedFrom lists, per action, the statuses the action may start from.
// Time-based guards are applied on top of this table.
var allowedFrom = map[Action][]Status{
	ActionConfirm:    {StatusRequested},
	ActionComplete:   {StatusConfirmed},
	ActionMarkNoShow: {StatusConfirmed},
	ActionCancel:     {StatusRequested, StatusConfirmed},
	ActionReschedule: {StatusRequested, StatusConfirmed},
}

// StateMachine owns the lifecycle rules of a single appointment. Every method
// checks all guards before touching the appointment, so a refused transition
// leaves it unchanged.
type StateMachine struct {
	clock clock.Clock
}

func NewStateMachine(clk clock.Clock) *StateMachine {
	return &StateMachine{clock: clk}
}

func (m *StateMachine) CanBeCancelled(a *Appointment) bool {
	return m.check(a, ActionCancel) == nil
}

func (m *StateMachine) CanBeRescheduled(a *Appointment) bool {
	return m.check(a, ActionReschedule) == nil
}

// AllowedActions returns the actions that would currently succeed, in a stable order.
func (m *StateMachine) AllowedActions(a *Appointment) []Action {
	actions := make([]Action, 0, len(allowedFrom))
	for _, action := range []Action{ActionConfirm, ActionComplete, ActionMarkNoShow, ActionCancel, ActionReschedule} {
		if m.check(a, action) == nil {
			actions = append(actions, action)
		}
	}
	return actions
}

func (m *StateMachine) Confirm(a *Appointment, agentID *uuid.UUID) error {
	if err := m.check(a, ActionConfirm); err != nil {
		return err
	}
	now := m.clock.Now()
	a.status = StatusConfirmed
	a.confirmedAt = &now
	if agentID != nil {
		id := *agentID
		a.agentID = &id
	}
	a.updatedAt = now
	return nil
}

func (m *StateMachine) Complete(a *Appointment, notes string) error {
	if err := m.check(a, ActionComplete); err != nil {
		return err
	}
	text, err := NewText("completion_notes", notes, MaxTextLength)
	if err != nil {
		return err
	}
	now := m.clock.Now()
	a.status = StatusCompleted
	a.completedAt = &now
	a.completionNotes = text
	a.updatedAt = now
	return nil
}

func (m *StateMachine) MarkNoShow(a *Appointment) error {
	if err := m.check(a, ActionMarkNoShow); err != nil {
		return err
	}
	now := m.clock.Now()
	a.status = StatusNoShow
	a.updatedAt = now
	return nil
}

func (m *StateMachine) Cancel(a *Appointment, reason string) error {
	if err := m.check(a, ActionCancel); err != nil {
		return err
	}
	text, err := NewText("reason", reason, MaxTextLength)
	if err != nil {
		return err
	}
	now := m.clock.Now()
	a.status = StatusCancelled
	a.cancelledAt = &now
	a.cancellationReason = text
	a.updatedAt = now
	return nil
}

// Reschedule moves the appointment to newStart keeping its duration. The new
// slot needs confirmation again, so status returns to requested and the
// assigned agent is released. The caller is responsible for the conflict check.
func (m *StateMachine) Reschedule(a *Appointment, newStart time.Time, reason string) error {
	if err := m.check(a, ActionReschedule); err != nil {
		return err
	}
	now := m.clock.Now()
	slot, err := NewTimeSlot(newStart, a.slot.DurationMinutes())
	if err != nil {
		return err
	}
	if !slot.Start().After(now) {
		return &ValidationError{Field: "new_start", Err: ErrStartNotInFuture}
	}
	reasonText, err := NewText("reason", reason, MaxTextLength)
	if err != nil {
		return err
	}

	a.adminNotes = appendNote(a.adminNotes, rescheduleNote(a.slot, slot, reasonText))
	a.slot = slot
	a.status = StatusRequested
	a.agentID = nil
	a.confirmedAt = nil
	a.cancelledAt = nil
	a.completedAt = nil
	a.updatedAt = now
	return nil
}

func (m *StateMachine) check(a *Appointment, action Action) error {
	if !statusAllows(a.status, action) {
		return &InvalidTransitionError{Current: a.status, Action: action}
	}

	now := m.clock.Now()
	switch action {
	case ActionCancel, ActionReschedule:
		if !a.Start().After(now) {
			return &InvalidTransitionError{Current: a.status, Action: action}
		}
	case ActionComplete:
		if a.End().After(now) {
			return &InvalidTransitionError{Current: a.status, Action: action}
		}
	case ActionMarkNoShow:
		if a.Start().After(now) {
			return &InvalidTransitionError{Current: a.status, Action: action}
		}
	}
	return nil
}

func statusAllows(status Status, action Action) bool {
	for _, s := range allowedFrom[action] {
		if s == status {
			return true
		}
	}
	return false
}

func rescheduleNote(from, to TimeSlot, reason Text) string {
	note := fmt.Sprintf("rescheduled from %s to %s", from, to.Start().Format(time.RFC3339))
	if !reason.IsEmpty() {
		note += ": " + reason.String()
	}
	return note
}

func appendNote(notes Text, line string) Text {
	if notes.IsEmpty() {
		return Text{value: line}
	}
	return Text{value: strings.TrimRight(notes.value, "\n") + "\n" + line}
}
