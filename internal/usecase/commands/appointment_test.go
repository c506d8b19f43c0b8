//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/domain/resource"
	"showroom-scheduler/internal/domain/user"
	"showroom-scheduler/internal/infra"
	"showroom-scheduler/internal/pkg/clock"
	"showroom-scheduler/internal/pkg/errs"
	"showroom-scheduler/internal/usecase/commands"
	"showroom-scheduler/internal/usecase/shared"
	"showroom-scheduler/tests/common/builder"
	"showroom-scheduler/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AppointmentCommandsTestSuite struct {
	suite.Suite
	store    *memstore.Store
	clock    *clock.MockClock
	cmds     commands.AppointmentCommands
	customer shared.Actor
	staff    shared.Actor
	ctx      context.Context
}

func (s *AppointmentCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(builder.Now)
	s.cmds = commands.NewAppointmentCommands(s.store, s.clock)

	s.customer = shared.Actor{UserID: uuid.New(), Role: user.RoleCustomer}
	s.staff = shared.Actor{UserID: uuid.New(), Role: user.RoleStaff}
	s.store.AddCustomer(s.customer.UserID)
	s.store.AddCustomer(s.staff.UserID)
}

func TestAppointmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(AppointmentCommandsTestSuite))
}

func (s *AppointmentCommandsTestSuite) createReq(start time.Time, duration int) commands.CreateAppointmentRequest {
	return commands.CreateAppointmentRequest{
		Type:            appointment.TypeTestDrive.String(),
		Start:           start,
		DurationMinutes: duration,
		Location:        appointment.LocationShowroom.String(),
	}
}

// seed stores an appointment owned by the suite customer, bypassing the booking rules.
func (s *AppointmentCommandsTestSuite) seed(start time.Time, duration int, status appointment.Status) *appointment.Appointment {
	a := builder.NewAppointmentBuilder().
		WithCustomer(s.customer.UserID).
		WithStart(start).
		WithDuration(duration).
		WithStatus(status).
		MustBuildDomain()
	s.store.Put(a)
	return a
}

func (s *AppointmentCommandsTestSuite) lastEvent() commands.EventPayload {
	jobs := s.store.Jobs()
	s.Require().NotEmpty(jobs)
	var payload commands.EventPayload
	s.Require().NoError(json.Unmarshal(jobs[len(jobs)-1].Payload, &payload))
	return payload
}

// ================================================================================
// Create
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestCreate() {
	s.Run("success: books a free slot and enqueues the created event", func() {
		s.SetupTest()

		created, err := s.cmds.Create(s.ctx, s.createReq(builder.At(10, 0), 60), s.customer)

		s.Require().NoError(err)
		s.Equal(appointment.StatusRequested, created.Status())
		s.Equal(s.customer.UserID, created.CustomerID())
		s.Equal(builder.At(11, 0), created.End())

		stored, ok := s.store.Get(created.ID())
		s.Require().True(ok)
		s.Equal(created.ToRecord(), stored.ToRecord())

		s.Equal(1, s.store.LockCalls[resource.Showroom.LockKey()])

		jobs := s.store.Jobs()
		s.Require().Len(jobs, 1)
		s.Equal(string(appointment.EventCreated), jobs[0].Kind)
		s.Equal(commands.EventTopic, jobs[0].Topic)
		s.Equal(created.ID().String(), jobs[0].Key)
		s.Equal(created.ID(), s.lastEvent().AppointmentID)
	})

	s.Run("error: overlapping active booking is rejected as slot taken", func() {
		s.SetupTest()
		s.seed(builder.At(10, 0), 60, appointment.StatusConfirmed)

		_, err := s.cmds.Create(s.ctx, s.createReq(builder.At(10, 30), 60), s.customer)

		s.True(errs.Is(err, errs.ErrSlotTaken), "got %v", err)
		s.Equal(1, s.store.Count())
		s.Empty(s.store.Jobs())
	})

	s.Run("success: back-to-back bookings do not conflict", func() {
		s.SetupTest()
		s.seed(builder.At(10, 0), 60, appointment.StatusRequested)

		_, err := s.cmds.Create(s.ctx, s.createReq(builder.At(11, 0), 60), s.customer)
		s.NoError(err)
		_, err = s.cmds.Create(s.ctx, s.createReq(builder.At(9, 0), 60), s.customer)
		s.NoError(err)
		s.Equal(3, s.store.Count())
	})

	s.Run("success: cancelled and completed bookings free the slot", func() {
		s.SetupTest()
		s.seed(builder.At(10, 0), 60, appointment.StatusCancelled)

		_, err := s.cmds.Create(s.ctx, s.createReq(builder.At(10, 0), 60), s.customer)
		s.NoError(err)
	})

	s.Run("error: validation failures", func() {
		cases := []struct {
			name   string
			mutate func(r *commands.CreateAppointmentRequest)
		}{
			{name: "duration too short", mutate: func(r *commands.CreateAppointmentRequest) { r.DurationMinutes = 29 }},
			{name: "duration too long", mutate: func(r *commands.CreateAppointmentRequest) { r.DurationMinutes = 181 }},
			{name: "start in the past", mutate: func(r *commands.CreateAppointmentRequest) { r.Start = builder.Now.Add(-time.Hour) }},
			{name: "unknown type", mutate: func(r *commands.CreateAppointmentRequest) { r.Type = "oil_change" }},
			{name: "unknown location", mutate: func(r *commands.CreateAppointmentRequest) { r.Location = "garage" }},
			{name: "address missing for home visit", mutate: func(r *commands.CreateAppointmentRequest) {
				r.Location = appointment.LocationCustomerAddress.String()
			}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				req := s.createReq(builder.At(10, 0), 60)
				tc.mutate(&req)

				_, err := s.cmds.Create(s.ctx, req, s.customer)

				s.True(errs.Is(err, errs.ErrValidation), "got %v", err)
				s.Equal(0, s.store.Count())
			})
		}
	})

	s.Run("error: unknown customer", func() {
		s.SetupTest()
		stranger := shared.Actor{UserID: uuid.New(), Role: user.RoleCustomer}

		_, err := s.cmds.Create(s.ctx, s.createReq(builder.At(10, 0), 60), stranger)

		s.True(errs.Is(err, errs.ErrCustomerNotFound), "got %v", err)
	})

	s.Run("error: unknown car", func() {
		s.SetupTest()
		req := s.createReq(builder.At(10, 0), 60)
		carID := uuid.New()
		req.CarID = &carID

		_, err := s.cmds.Create(s.ctx, req, s.customer)

		s.True(errs.Is(err, errs.ErrCarNotFound), "got %v", err)
	})

	s.Run("success: known car", func() {
		s.SetupTest()
		carID := uuid.New()
		s.store.AddCar(carID)
		req := s.createReq(builder.At(10, 0), 60)
		req.CarID = &carID

		created, err := s.cmds.Create(s.ctx, req, s.customer)

		s.Require().NoError(err)
		s.Equal(&carID, created.CarID())
	})

	s.Run("customer_id is honored for staff only", func() {
		s.SetupTest()
		other := uuid.New()
		s.store.AddCustomer(other)

		req := s.createReq(builder.At(10, 0), 60)
		req.CustomerID = &other
		byStaff, err := s.cmds.Create(s.ctx, req, s.staff)
		s.Require().NoError(err)
		s.Equal(other, byStaff.CustomerID())

		req = s.createReq(builder.At(12, 0), 60)
		req.CustomerID = &other
		byCustomer, err := s.cmds.Create(s.ctx, req, s.customer)
		s.Require().NoError(err)
		s.Equal(s.customer.UserID, byCustomer.CustomerID())
	})
}

func (s *AppointmentCommandsTestSuite) TestCreate_Concurrent() {
	const attempts = 10

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		taken     int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.cmds.Create(s.ctx, s.createReq(builder.At(10, 0), 60), s.customer)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.Is(err, errs.ErrSlotTaken):
				taken++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(attempts-1, taken)
	s.Equal(1, s.store.Count())
	s.Equal(attempts, s.store.LockCalls[resource.Showroom.LockKey()])
}

// ================================================================================
// Reschedule
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestReschedule() {
	s.Run("success: confirmed appointment returns to requested", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusConfirmed)

		moved, err := s.cmds.Reschedule(s.ctx, existing.ID(), commands.RescheduleAppointmentRequest{
			NewStart: builder.At(14, 0),
			Reason:   "stuck in traffic",
		}, s.customer)

		s.Require().NoError(err)
		s.Equal(appointment.StatusRequested, moved.Status())
		s.Equal(builder.At(14, 0), moved.Start())
		s.Equal(60, moved.DurationMinutes())
		s.Nil(moved.ConfirmedAt())

		event := s.lastEvent()
		s.Equal(string(appointment.EventRescheduled), event.EventType)
		s.Require().NotNil(event.PreviousStart)
		s.True(builder.At(10, 0).Equal(*event.PreviousStart))
		s.Equal("stuck in traffic", event.Reason)
	})

	s.Run("success: may overlap its own previous interval", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusRequested)

		_, err := s.cmds.Reschedule(s.ctx, existing.ID(), commands.RescheduleAppointmentRequest{NewStart: builder.At(10, 30)}, s.customer)

		s.NoError(err)
	})

	s.Run("error: target overlaps another booking", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusRequested)
		s.seed(builder.At(14, 0), 60, appointment.StatusConfirmed)

		_, err := s.cmds.Reschedule(s.ctx, existing.ID(), commands.RescheduleAppointmentRequest{NewStart: builder.At(14, 30)}, s.customer)

		s.True(errs.Is(err, errs.ErrSlotTaken), "got %v", err)
		stored, _ := s.store.Get(existing.ID())
		s.Equal(builder.At(10, 0), stored.Start())
	})

	s.Run("error: other customer's appointment", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusRequested)
		other := shared.Actor{UserID: uuid.New(), Role: user.RoleCustomer}

		_, err := s.cmds.Reschedule(s.ctx, existing.ID(), commands.RescheduleAppointmentRequest{NewStart: builder.At(14, 0)}, other)

		s.True(errs.Is(err, errs.ErrAccessDenied), "got %v", err)
	})

	s.Run("error: cancelled appointment", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusCancelled)

		_, err := s.cmds.Reschedule(s.ctx, existing.ID(), commands.RescheduleAppointmentRequest{NewStart: builder.At(14, 0)}, s.customer)

		s.True(errs.Is(err, errs.ErrInvalidTransition), "got %v", err)
	})

	s.Run("error: new start in the past", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusRequested)

		_, err := s.cmds.Reschedule(s.ctx, existing.ID(), commands.RescheduleAppointmentRequest{NewStart: builder.Now.Add(-time.Hour)}, s.customer)

		s.True(errs.Is(err, errs.ErrValidation), "got %v", err)
	})
}

// ================================================================================
// Status transitions
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestCancel() {
	s.Run("success: owner cancels and the slot becomes bookable", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusConfirmed)

		cancelled, err := s.cmds.Cancel(s.ctx, existing.ID(), commands.CancelAppointmentRequest{Reason: "sold my car"}, s.customer)
		s.Require().NoError(err)
		s.Equal(appointment.StatusCancelled, cancelled.Status())
		s.Equal("sold my car", cancelled.CancellationReason())
		s.Equal(string(appointment.EventCancelled), s.lastEvent().EventType)

		_, err = s.cmds.Create(s.ctx, s.createReq(builder.At(10, 0), 60), s.customer)
		s.NoError(err)
	})

	s.Run("error: cancelling twice", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusRequested)

		_, err := s.cmds.Cancel(s.ctx, existing.ID(), commands.CancelAppointmentRequest{}, s.customer)
		s.Require().NoError(err)
		_, err = s.cmds.Cancel(s.ctx, existing.ID(), commands.CancelAppointmentRequest{}, s.customer)
		s.True(errs.Is(err, errs.ErrInvalidTransition), "got %v", err)
	})

	s.Run("error: after the appointment started", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusConfirmed)
		s.clock.Set(builder.At(10, 5))

		_, err := s.cmds.Cancel(s.ctx, existing.ID(), commands.CancelAppointmentRequest{}, s.customer)

		s.True(errs.Is(err, errs.ErrInvalidTransition), "got %v", err)
	})

	s.Run("success: staff may cancel any appointment", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusRequested)

		_, err := s.cmds.Cancel(s.ctx, existing.ID(), commands.CancelAppointmentRequest{}, s.staff)
		s.NoError(err)
	})

	s.Run("error: unknown appointment", func() {
		s.SetupTest()

		_, err := s.cmds.Cancel(s.ctx, uuid.New(), commands.CancelAppointmentRequest{}, s.customer)

		s.True(errs.Is(err, errs.ErrAppointmentNotFound), "got %v", err)
	})
}

func (s *AppointmentCommandsTestSuite) TestConfirm() {
	s.Run("success: staff confirms with an agent", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusRequested)
		agent := uuid.New()
		s.store.AddAgent(agent)

		confirmed, err := s.cmds.Confirm(s.ctx, existing.ID(), commands.ConfirmAppointmentRequest{AgentID: &agent}, s.staff)

		s.Require().NoError(err)
		s.Equal(appointment.StatusConfirmed, confirmed.Status())
		s.Equal(&agent, confirmed.AgentID())
		s.Equal(string(appointment.EventConfirmed), s.lastEvent().EventType)
	})

	s.Run("error: unknown agent", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusRequested)
		jobsBefore := len(s.store.Jobs())
		agent := uuid.New()

		_, err := s.cmds.Confirm(s.ctx, existing.ID(), commands.ConfirmAppointmentRequest{AgentID: &agent}, s.staff)

		s.True(errs.Is(err, errs.ErrAgentNotFound), "got %v", err)
		stored, _ := s.store.Get(existing.ID())
		s.Equal(appointment.StatusRequested, stored.Status())
		s.Len(s.store.Jobs(), jobsBefore)
	})

	s.Run("error: a customer is not an agent", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusRequested)
		agent := s.customer.UserID

		_, err := s.cmds.Confirm(s.ctx, existing.ID(), commands.ConfirmAppointmentRequest{AgentID: &agent}, s.staff)

		s.True(errs.Is(err, errs.ErrAgentNotFound), "got %v", err)
	})

	s.Run("success: no agent assigned", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusRequested)

		confirmed, err := s.cmds.Confirm(s.ctx, existing.ID(), commands.ConfirmAppointmentRequest{}, s.staff)

		s.Require().NoError(err)
		s.Nil(confirmed.AgentID())
	})

	s.Run("error: customers cannot confirm", func() {
		s.SetupTest()
		existing := s.seed(builder.At(10, 0), 60, appointment.StatusRequested)

		_, err := s.cmds.Confirm(s.ctx, existing.ID(), commands.ConfirmAppointmentRequest{}, s.customer)

		s.True(errs.Is(err, errs.ErrAccessDenied), "got %v", err)
		stored, _ := s.store.Get(existing.ID())
		s.Equal(appointment.StatusRequested, stored.Status())
	})
}

func (s *AppointmentCommandsTestSuite) TestComplete() {
	s.SetupTest()
	existing := s.seed(builder.At(10, 0), 60, appointment.StatusConfirmed)

	_, err := s.cmds.Complete(s.ctx, existing.ID(), commands.CompleteAppointmentRequest{}, s.staff)
	s.True(errs.Is(err, errs.ErrInvalidTransition), "before the end: got %v", err)

	s.clock.Set(builder.At(11, 0))
	completed, err := s.cmds.Complete(s.ctx, existing.ID(), commands.CompleteAppointmentRequest{Notes: "ordered"}, s.staff)
	s.Require().NoError(err)
	s.Equal(appointment.StatusCompleted, completed.Status())
	s.Equal("ordered", completed.CompletionNotes())
	s.Equal(string(appointment.EventCompleted), s.lastEvent().EventType)
}

func (s *AppointmentCommandsTestSuite) TestMarkNoShow() {
	s.SetupTest()
	existing := s.seed(builder.At(10, 0), 60, appointment.StatusConfirmed)

	_, err := s.cmds.MarkNoShow(s.ctx, existing.ID(), s.staff)
	s.True(errs.Is(err, errs.ErrInvalidTransition), "before the start: got %v", err)

	s.clock.Set(builder.At(10, 15))
	marked, err := s.cmds.MarkNoShow(s.ctx, existing.ID(), s.staff)
	s.Require().NoError(err)
	s.Equal(appointment.StatusNoShow, marked.Status())
	s.Equal(string(appointment.EventNoShow), s.lastEvent().EventType)

	_, err = s.cmds.MarkNoShow(s.ctx, existing.ID(), s.customer)
	s.True(errs.Is(err, errs.ErrAccessDenied), "got %v", err)
}

// failingUoW fails every unit of work with err, the way the Postgres store reports it.
type failingUoW struct {
	err error
}

func (u failingUoW) Within(context.Context, func(ctx context.Context, tx shared.Tx) error) error {
	return u.err
}

func (u failingUoW) WithinReadOnly(context.Context, func(ctx context.Context, reads shared.CommandReads) error) error {
	return u.err
}

func TestStoreErrorsAreClassified(t *testing.T) {
	ctx := context.Background()
	staff := shared.Actor{UserID: uuid.New(), Role: user.RoleStaff}
	agent := uuid.New()

	testCases := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "retries exhausted on a booking race",
			err:  infra.WrapRepoErr("transaction failed after max retries", &pgconn.PgError{Code: "40001"}, infra.KindConflict),
			want: errs.ErrSlotTaken,
		},
		{
			name: "exclusion constraint",
			err:  infra.WrapRepoErr("failed to insert appointment", &pgconn.PgError{Code: "23P01"}),
			want: errs.ErrSlotTaken,
		},
		{
			name: "foreign key violation",
			err:  infra.WrapRepoErr("failed to update appointment", &pgconn.PgError{Code: "23503"}),
			want: errs.ErrReferenceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmds := commands.NewAppointmentCommands(failingUoW{err: tc.err}, clock.NewMockClock(builder.Now))

			_, err := cmds.Create(ctx, commands.CreateAppointmentRequest{
				Type:            appointment.TypeTestDrive.String(),
				Start:           builder.At(10, 0),
				DurationMinutes: 60,
				Location:        appointment.LocationShowroom.String(),
			}, staff)
			assert.True(t, errs.Is(err, tc.want), "create: got %v", err)

			_, err = cmds.Confirm(ctx, uuid.New(), commands.ConfirmAppointmentRequest{AgentID: &agent}, staff)
			assert.True(t, errs.Is(err, tc.want), "confirm: got %v", err)
		})
	}

	t.Run("other database failures pass through unmarked", func(t *testing.T) {
		cmds := commands.NewAppointmentCommands(failingUoW{err: infra.WrapRepoErr("failed", errors.New("conn reset"))}, clock.NewMockClock(builder.Now))

		_, err := cmds.Cancel(ctx, uuid.New(), commands.CancelAppointmentRequest{}, staff)

		assert.Error(t, err)
		assert.False(t, errs.Is(err, errs.ErrSlotTaken))
		assert.False(t, errs.Is(err, errs.ErrReferenceNotFound))
	})
}
