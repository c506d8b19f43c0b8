//go:build unit

package availability_test

import (
	"testing"
	"time"

	"showroom-scheduler/internal/domain/availability"
	"showroom-scheduler/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Friday 2024-03-01 08:00 UTC
var friday = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailableDates(t *testing.T) {
	tests := []struct {
		name     string
		horizon  int
		required int
		want     []time.Time
	}{
		{name: "skips the weekend", horizon: 60, required: 3, want: []time.Time{day(3, 4), day(3, 5), day(3, 6)}},
		{name: "horizon only covers the weekend", horizon: 2, required: 5, want: []time.Time{}},
		{name: "horizon cuts the list short", horizon: 3, required: 30, want: []time.Time{day(3, 4)}},
		{name: "zero required", horizon: 60, required: 0, want: []time.Time{}},
		{name: "zero horizon", horizon: 0, required: 5, want: []time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := availability.AvailableDates(friday, time.UTC, tt.horizon, tt.required)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("never includes today", func(t *testing.T) {
		monday := time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC)
		got := availability.AvailableDates(monday, time.UTC, 60, 1)
		assert.Equal(t, []time.Time{day(3, 5)}, got)
	})

	t.Run("today is taken in the calendar location", func(t *testing.T) {
		// 23:30 UTC Friday is already Saturday in UTC+2.
		loc := time.FixedZone("UTC+2", 2*60*60)
		lateFriday := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

		got := availability.AvailableDates(lateFriday, loc, 60, 1)

		require.Len(t, got, 1)
		assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, loc), got[0])
	})
}

func TestTimeSlots(t *testing.T) {
	hours := availability.DefaultBusinessHours()
	monday := day(3, 4)

	t.Run("sixty minute slots on a standard day", func(t *testing.T) {
		got, err := availability.TimeSlots(monday, 60, hours)
		require.NoError(t, err)

		require.Len(t, got, 17)
		assert.Equal(t, monday.Add(9*time.Hour), got[0])
		assert.Equal(t, monday.Add(9*time.Hour+30*time.Minute), got[1])
		assert.Equal(t, monday.Add(17*time.Hour), got[len(got)-1])
	})

	t.Run("last slot ends exactly at closing", func(t *testing.T) {
		got, err := availability.TimeSlots(monday, 180, hours)
		require.NoError(t, err)
		assert.Equal(t, monday.Add(15*time.Hour), got[len(got)-1])
	})

	t.Run("duration longer than the day", func(t *testing.T) {
		got, err := availability.TimeSlots(monday, 10*60, hours)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		_, err := availability.TimeSlots(monday, 0, hours)
		assert.ErrorIs(t, err, availability.ErrInvalidArgument)

		inverted := availability.BusinessHours{Start: hours.End, End: hours.Start, GranularityMinutes: 30}
		_, err = availability.TimeSlots(monday, 60, inverted)
		assert.ErrorIs(t, err, availability.ErrInvalidArgument)

		_, err = availability.TimeSlots(monday, 60, availability.BusinessHours{Start: hours.Start, End: hours.End})
		assert.ErrorIs(t, err, availability.ErrInvalidArgument)
	})
}

func TestSlotGenerator(t *testing.T) {
	cal := availability.DefaultCalendar()
	cal.RequiredDays = 2
	gen := availability.NewSlotGenerator(clock.NewMockClock(friday), cal)

	assert.Equal(t, []time.Time{day(3, 4), day(3, 5)}, gen.DefaultAvailableDates())

	// A non-midnight input is moved to the start of its day.
	got, err := gen.TimeSlots(day(3, 4).Add(15*time.Hour), 30)
	require.NoError(t, err)
	assert.Len(t, got, 18)
	assert.Equal(t, day(3, 4).Add(9*time.Hour), got[0])
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{in: "09:00", minutes: 540},
		{in: "24:00", minutes: 1440},
		{in: "17:45", minutes: 1065},
		{in: "9:00", wantErr: true},
		{in: "24:30", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := availability.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, availability.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, got.Minutes())
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := availability.ParseDate("2024-03-04", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, day(3, 4), got)

	_, err = availability.ParseDate("2024-13-01", time.UTC)
	assert.ErrorIs(t, err, availability.ErrInvalidDate)
}
