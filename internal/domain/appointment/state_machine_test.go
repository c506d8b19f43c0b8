//go:build unit

package appointment_test

import (
	"strings"
	"testing"
	"time"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/pkg/clock"
	"showroom-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMachine(now time.Time) *appointment.StateMachine {
	return appointment.NewStateMachine(clock.NewMockClock(now))
}

func build(t *testing.T, status appointment.Status) *appointment.Appointment {
	t.Helper()
	a, err := builder.NewAppointmentBuilder().WithStatus(status).BuildDomain()
	require.NoError(t, err)
	return a
}

func TestStateMachine_TransitionTable(t *testing.T) {
	beforeStart := builder.Now
	afterEnd := builder.At(12, 0)
	duringSlot := builder.At(10, 30)

	type action func(m *appointment.StateMachine, a *appointment.Appointment) error
	confirm := func(m *appointment.StateMachine, a *appointment.Appointment) error { return m.Confirm(a, nil) }
	complete := func(m *appointment.StateMachine, a *appointment.Appointment) error { return m.Complete(a, "") }
	noShow := func(m *appointment.StateMachine, a *appointment.Appointment) error { return m.MarkNoShow(a) }
	cancel := func(m *appointment.StateMachine, a *appointment.Appointment) error { return m.Cancel(a, "") }
	reschedule := func(m *appointment.StateMachine, a *appointment.Appointment) error {
		return m.Reschedule(a, builder.At(14, 0), "")
	}

	tests := []struct {
		name   string
		status appointment.Status
		now    time.Time
		act    action
		want   appointment.Status
		ok     bool
	}{
		{name: "confirm requested", status: appointment.StatusRequested, now: beforeStart, act: confirm, want: appointment.StatusConfirmed, ok: true},
		{name: "confirm confirmed", status: appointment.StatusConfirmed, now: beforeStart, act: confirm},
		{name: "confirm cancelled", status: appointment.StatusCancelled, now: beforeStart, act: confirm},

		{name: "complete confirmed after end", status: appointment.StatusConfirmed, now: afterEnd, act: complete, want: appointment.StatusCompleted, ok: true},
		{name: "complete confirmed before end", status: appointment.StatusConfirmed, now: duringSlot, act: complete},
		{name: "complete requested", status: appointment.StatusRequested, now: afterEnd, act: complete},

		{name: "no-show confirmed after start", status: appointment.StatusConfirmed, now: duringSlot, act: noShow, want: appointment.StatusNoShow, ok: true},
		{name: "no-show confirmed before start", status: appointment.StatusConfirmed, now: beforeStart, act: noShow},
		{name: "no-show requested", status: appointment.StatusRequested, now: duringSlot, act: noShow},

		{name: "cancel requested", status: appointment.StatusRequested, now: beforeStart, act: cancel, want: appointment.StatusCancelled, ok: true},
		{name: "cancel confirmed", status: appointment.StatusConfirmed, now: beforeStart, act: cancel, want: appointment.StatusCancelled, ok: true},
		{name: "cancel after start", status: appointment.StatusConfirmed, now: duringSlot, act: cancel},
		{name: "cancel completed", status: appointment.StatusCompleted, now: beforeStart, act: cancel},
		{name: "cancel cancelled", status: appointment.StatusCancelled, now: beforeStart, act: cancel},

		{name: "reschedule requested", status: appointment.StatusRequested, now: beforeStart, act: reschedule, want: appointment.StatusRequested, ok: true},
		{name: "reschedule confirmed", status: appointment.StatusConfirmed, now: beforeStart, act: reschedule, want: appointment.StatusRequested, ok: true},
		{name: "reschedule after start", status: appointment.StatusRequested, now: duringSlot, act: reschedule},
		{name: "reschedule cancelled", status: appointment.StatusCancelled, now: beforeStart, act: reschedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := build(t, tt.status)
			before := a.ToRecord()

			err := tt.act(newMachine(tt.now), a)

			if !tt.ok {
				require.Error(t, err)
				assert.ErrorIs(t, err, appointment.ErrInvalidTransition)
				assert.Equal(t, before, a.ToRecord(), "refused transition must not modify the appointment")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Status())
			assert.Equal(t, tt.now, a.UpdatedAt())
		})
	}
}

func TestStateMachine_Confirm(t *testing.T) {
	a := build(t, appointment.StatusRequested)
	agent := uuid.New()

	require.NoError(t, newMachine(builder.Now).Confirm(a, &agent))

	require.NotNil(t, a.ConfirmedAt())
	assert.Equal(t, builder.Now, *a.ConfirmedAt())
	require.NotNil(t, a.AgentID())
	assert.Equal(t, agent, *a.AgentID())
}

func TestStateMachine_Cancel(t *testing.T) {
	a := build(t, appointment.StatusConfirmed)

	require.NoError(t, newMachine(builder.Now).Cancel(a, "  changed my mind "))

	assert.Equal(t, "changed my mind", a.CancellationReason())
	require.NotNil(t, a.CancelledAt())
	assert.False(t, a.IsActive())
}

func TestStateMachine_Complete(t *testing.T) {
	a := build(t, appointment.StatusConfirmed)

	require.NoError(t, newMachine(builder.At(12, 0)).Complete(a, "customer will call back"))

	assert.Equal(t, "customer will call back", a.CompletionNotes())
	require.NotNil(t, a.CompletedAt())
}

func TestStateMachine_Reschedule(t *testing.T) {
	t.Run("resets confirmation and keeps duration", func(t *testing.T) {
		a := build(t, appointment.StatusConfirmed)
		agent := uuid.New()
		r := a.ToRecord()
		r.AgentID = &agent
		a = appointment.ReconstructAppointment(r)

		err := newMachine(builder.Now).Reschedule(a, builder.At(14, 0), "traffic")
		require.NoError(t, err)

		assert.Equal(t, appointment.StatusRequested, a.Status())
		assert.Equal(t, builder.At(14, 0), a.Start())
		assert.Equal(t, builder.At(15, 0), a.End())
		assert.Nil(t, a.ConfirmedAt())
		assert.Nil(t, a.AgentID())
		assert.Contains(t, a.AdminNotes(), "rescheduled from")
		assert.Contains(t, a.AdminNotes(), "traffic")
	})

	t.Run("new start must be in the future", func(t *testing.T) {
		a := build(t, appointment.StatusRequested)
		before := a.ToRecord()

		err := newMachine(builder.Now).Reschedule(a, builder.Now.Add(-time.Minute), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, appointment.ErrStartNotInFuture)
		assert.Equal(t, before, a.ToRecord())
	})

	t.Run("notes accumulate", func(t *testing.T) {
		a := build(t, appointment.StatusRequested)
		m := newMachine(builder.Now)

		require.NoError(t, m.Reschedule(a, builder.At(13, 0), ""))
		require.NoError(t, m.Reschedule(a, builder.At(15, 0), ""))

		assert.Equal(t, 2, len(strings.Split(a.AdminNotes(), "\n")))
	})
}

func TestStateMachine_AllowedActions(t *testing.T) {
	m := newMachine(builder.Now)

	assert.Equal(t,
		[]appointment.Action{appointment.ActionConfirm, appointment.ActionCancel, appointment.ActionReschedule},
		m.AllowedActions(build(t, appointment.StatusRequested)))
	assert.Empty(t, m.AllowedActions(build(t, appointment.StatusCancelled)))
	assert.True(t, m.CanBeCancelled(build(t, appointment.StatusConfirmed)))
	assert.False(t, m.CanBeRescheduled(build(t, appointment.StatusCompleted)))
}
