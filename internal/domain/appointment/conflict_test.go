//go:build unit

package appointment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIntervals struct {
	booked []appointment.BookedInterval
	err    error
	from   time.Time
	to     time.Time
}

func (s *stubIntervals) ActiveIntervals(_ context.Context, from, to time.Time) ([]appointment.BookedInterval, error) {
	s.from, s.to = from, to
	return s.booked, s.err
}

func TestConflictChecker_HasConflict(t *testing.T) {
	existing := appointment.BookedInterval{ID: uuid.New(), Start: builder.At(10, 0), End: builder.At(11, 0)}

	tests := []struct {
		name      string
		start     time.Time
		duration  int
		excludeID *uuid.UUID
		want      bool
	}{
		{name: "same slot", start: builder.At(10, 0), duration: 60, want: true},
		{name: "overlaps tail", start: builder.At(10, 30), duration: 60, want: true},
		{name: "back to back after", start: builder.At(11, 0), duration: 60, want: false},
		{name: "back to back before", start: builder.At(9, 0), duration: 60, want: false},
		{name: "own interval excluded", start: builder.At(10, 30), duration: 60, excludeID: &existing.ID, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &stubIntervals{booked: []appointment.BookedInterval{existing}}

			got, err := appointment.NewConflictChecker(source).HasConflict(context.Background(), tt.start, tt.duration, tt.excludeID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.start, source.from)
			assert.Equal(t, tt.start.Add(time.Duration(tt.duration)*time.Minute), source.to)
		})
	}

	t.Run("source error is returned", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := appointment.NewConflictChecker(&stubIntervals{err: boom}).
			HasConflict(context.Background(), builder.At(10, 0), 60, nil)
		assert.ErrorIs(t, err, boom)
	})
}

func TestFindConflict(t *testing.T) {
	a := appointment.BookedInterval{ID: uuid.New(), Start: builder.At(9, 0), End: builder.At(10, 0)}
	b := appointment.BookedInterval{ID: uuid.New(), Start: builder.At(13, 0), End: builder.At(14, 0)}

	got := appointment.FindConflict(builder.At(13, 30), builder.At(14, 30), []appointment.BookedInterval{a, b}, nil)
	require.NotNil(t, got)
	assert.Equal(t, b.ID, got.ID)

	assert.Nil(t, appointment.FindConflict(builder.At(10, 0), builder.At(13, 0), []appointment.BookedInterval{a, b}, nil))
}

func TestNewEvent(t *testing.T) {
	a := builder.NewAppointmentBuilder().MustBuildDomain()
	at := builder.Now.Add(time.Minute)

	e := appointment.NewEvent(appointment.EventRescheduled, a, at).
		WithPreviousStart(builder.At(9, 0)).
		WithReason("late")

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, a.ID(), e.AppointmentID)
	assert.Equal(t, a.CustomerID(), e.CustomerID)
	assert.Equal(t, a.Start(), e.Start)
	assert.Equal(t, a.End(), e.End)
	assert.Equal(t, at, e.OccurredAt)
	require.NotNil(t, e.PreviousStart)
	assert.Equal(t, builder.At(9, 0), *e.PreviousStart)
	assert.Equal(t, "late", e.Reason)
}
