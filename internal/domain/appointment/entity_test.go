//go:build unit

package appointment_test

import (
	"strings"
	"testing"
	"time"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AppointmentBuilder)
	errIs  error
	field  string
}

func TestNewAppointment(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, appointment.StatusRequested, actual.Status())
		assert.Equal(t, builder.At(10, 0), actual.Start())
		assert.Equal(t, builder.At(11, 0), actual.End())
		assert.Equal(t, 60, actual.DurationMinutes())
		assert.Equal(t, builder.Now, actual.CreatedAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Nil(t, actual.AgentID())
		assert.Nil(t, actual.ConfirmedAt())
		assert.True(t, actual.IsActive())
	})

	t.Run("duration bounds", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "below minimum", mutate: func(b *builder.AppointmentBuilder) { b.WithDuration(29) }, errIs: appointment.ErrDurationOutOfRange, field: "duration_minutes"},
			{name: "minimum", mutate: func(b *builder.AppointmentBuilder) { b.WithDuration(30) }},
			{name: "maximum", mutate: func(b *builder.AppointmentBuilder) { b.WithDuration(180) }},
			{name: "above maximum", mutate: func(b *builder.AppointmentBuilder) { b.WithDuration(181) }, errIs: appointment.ErrDurationOutOfRange, field: "duration_minutes"},
		})
	})

	t.Run("start must be in the future", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "missing start", mutate: func(b *builder.AppointmentBuilder) { b.WithStart(time.Time{}) }, errIs: appointment.ErrMissingStart, field: "start"},
			{name: "start equals now", mutate: func(b *builder.AppointmentBuilder) { b.WithStart(builder.Now) }, errIs: appointment.ErrStartNotInFuture, field: "start"},
			{name: "start in the past", mutate: func(b *builder.AppointmentBuilder) { b.WithStart(builder.Now.Add(-time.Hour)) }, errIs: appointment.ErrStartNotInFuture, field: "start"},
			{name: "one second ahead", mutate: func(b *builder.AppointmentBuilder) { b.WithStart(builder.Now.Add(time.Second)) }},
		})
	})

	t.Run("location and address", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "showroom without address", mutate: func(b *builder.AppointmentBuilder) { b.WithLocation(appointment.LocationShowroom, "") }},
			{name: "customer address without address", mutate: func(b *builder.AppointmentBuilder) { b.WithLocation(appointment.LocationCustomerAddress, "   ") }, errIs: appointment.ErrAddressRequired, field: "address"},
			{name: "customer address with address", mutate: func(b *builder.AppointmentBuilder) { b.WithLocation(appointment.LocationCustomerAddress, "1 Main St") }},
			{name: "other without address", mutate: func(b *builder.AppointmentBuilder) { b.WithLocation(appointment.LocationOther, "") }, errIs: appointment.ErrAddressRequired, field: "address"},
			{name: "unknown location", mutate: func(b *builder.AppointmentBuilder) { b.WithLocation("garage", "x") }, errIs: appointment.ErrInvalidLocation, field: "location"},
			{name: "address too long", mutate: func(b *builder.AppointmentBuilder) {
				b.WithLocation(appointment.LocationOther, strings.Repeat("a", appointment.MaxAddressLength+1))
			}, errIs: appointment.ErrTextTooLong, field: "address"},
		})
	})

	t.Run("other fields", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "unknown type", mutate: func(b *builder.AppointmentBuilder) { b.WithType("oil_change") }, errIs: appointment.ErrInvalidType, field: "type"},
			{name: "missing customer", mutate: func(b *builder.AppointmentBuilder) { b.WithCustomer(uuid.Nil) }, errIs: appointment.ErrMissingCustomer, field: "customer_id"},
			{name: "message at limit", mutate: func(b *builder.AppointmentBuilder) { b.CustomerMessage = strings.Repeat("é", appointment.MaxTextLength) }},
			{name: "message too long", mutate: func(b *builder.AppointmentBuilder) { b.CustomerMessage = strings.Repeat("a", appointment.MaxTextLength+1) }, errIs: appointment.ErrTextTooLong, field: "customer_message"},
		})
	})

	t.Run("text fields are trimmed", func(t *testing.T) {
		actual, err := builder.NewAppointmentBuilder().
			WithLocation(appointment.LocationCustomerAddress, "  1 Main St \n").
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "1 Main St", actual.Address())
	})
}

func TestReconstructAppointment(t *testing.T) {
	original := builder.NewAppointmentBuilder().WithCar(uuid.New()).MustBuildDomain()

	rebuilt := appointment.ReconstructAppointment(original.ToRecord())

	assert.Equal(t, original.ToRecord(), rebuilt.ToRecord())
	assert.Equal(t, original.End(), rebuilt.End())
}

func TestTimeSlotOverlap(t *testing.T) {
	ten := builder.At(10, 0)

	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     bool
	}{
		{name: "identical", start: ten, duration: 60, want: true},
		{name: "touching after", start: builder.At(11, 0), duration: 30, want: false},
		{name: "touching before", start: builder.At(9, 30), duration: 30, want: false},
		{name: "inside", start: builder.At(10, 15), duration: 30, want: true},
		{name: "straddles start", start: builder.At(9, 30), duration: 60, want: true},
		{name: "straddles end", start: builder.At(10, 30), duration: 60, want: true},
		{name: "disjoint", start: builder.At(14, 0), duration: 60, want: false},
	}

	base, err := appointment.NewTimeSlot(ten, 60)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other, err := appointment.NewTimeSlot(tt.start, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, base.Overlaps(other))
			assert.Equal(t, tt.want, other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewAppointmentBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()

			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				var ve *appointment.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tc.field, ve.Field)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
