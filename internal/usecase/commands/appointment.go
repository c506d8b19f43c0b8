package commands

import (
	"context"
	"errors"
	"time"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/domain/resource"
	"showroom-scheduler/internal/infra"
	"showroom-scheduler/internal/pkg/clock"
	"showroom-scheduler/internal/pkg/errs"
	"showroom-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// AppointmentCommands is the booking service: the only entry point that changes appointments.
type AppointmentCommands interface {
	Create(ctx context.Context, req CreateAppointmentRequest, actor shared.Actor) (*appointment.Appointment, error)
	Reschedule(ctx context.Context, id uuid.UUID, req RescheduleAppointmentRequest, actor shared.Actor) (*appointment.Appointment, error)
	Cancel(ctx context.Context, id uuid.UUID, req CancelAppointmentRequest, actor shared.Actor) (*appointment.Appointment, error)
	Confirm(ctx context.Context, id uuid.UUID, req ConfirmAppointmentRequest, actor shared.Actor) (*appointment.Appointment, error)
	Complete(ctx context.Context, id uuid.UUID, req CompleteAppointmentRequest, actor shared.Actor) (*appointment.Appointment, error)
	MarkNoShow(ctx context.Context, id uuid.UUID, actor shared.Actor) (*appointment.Appointment, error)
}

type CreateAppointmentRequest struct {
	// CustomerID lets staff book on behalf of a customer. Ignored for customers.
	CustomerID          *uuid.UUID
	CarID               *uuid.UUID
	Type                string
	Start               time.Time
	DurationMinutes     int
	Location            string
	Address             string
	CustomerMessage     string
	SpecialRequirements string
}

type RescheduleAppointmentRequest struct {
	NewStart time.Time
	Reason   string
}

type CancelAppointmentRequest struct {
	Reason string
}

type ConfirmAppointmentRequest struct {
	AgentID *uuid.UUID
}

type CompleteAppointmentRequest struct {
	Notes string
}

type appointmentCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	services *appointment.Services
	machine  *appointment.StateMachine
	resource resource.Resource
}

func NewAppointmentCommands(uow shared.UnitOfWork, clk clock.Clock) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:      uow,
		clock:    clk,
		services: &appointment.Services{Clock: clk},
		machine:  appointment.NewStateMachine(clk),
		resource: resource.Showroom,
	}
}

func (uc *appointmentCommandsImpl) Create(ctx context.Context, req CreateAppointmentRequest, actor shared.Actor) (*appointment.Appointment, error) {
	apptType, err := appointment.NewType(req.Type)
	if err != nil {
		return nil, classify(err)
	}
	location, err := appointment.NewLocation(req.Location)
	if err != nil {
		return nil, classify(err)
	}

	customerID := actor.UserID
	if req.CustomerID != nil && actor.IsStaff() {
		customerID = *req.CustomerID
	}

	var created *appointment.Appointment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Built inside the transaction so a retried attempt re-reads now().
		appt, derr := appointment.NewAppointment(uc.services, appointment.NewAppointmentParams{
			CustomerID:          customerID,
			CarID:               req.CarID,
			Type:                apptType,
			Start:               req.Start,
			DurationMinutes:     req.DurationMinutes,
			Location:            location,
			Address:             req.Address,
			CustomerMessage:     req.CustomerMessage,
			SpecialRequirements: req.SpecialRequirements,
		})
		if derr != nil {
			return derr
		}

		if derr = uc.checkReferences(ctx, tx.Reads(), customerID, req.CarID); derr != nil {
			return derr
		}

		if derr = uc.lockAndCheck(ctx, tx, appt, nil); derr != nil {
			return derr
		}

		if derr = tx.Appointments().Create(ctx, appt); derr != nil {
			return derr
		}

		if derr = enqueueEvent(ctx, tx, appointment.NewEvent(appointment.EventCreated, appt, uc.clock.Now())); derr != nil {
			return derr
		}

		created = appt
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return created, nil
}

func (uc *appointmentCommandsImpl) Reschedule(ctx context.Context, id uuid.UUID, req RescheduleAppointmentRequest, actor shared.Actor) (*appointment.Appointment, error) {
	var updated *appointment.Appointment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Resource lock before the row lock, same order as Create.
		if derr := tx.LockResource(ctx, uc.resource); derr != nil {
			return derr
		}

		appt, derr := uc.loadOwned(ctx, tx, id, actor)
		if derr != nil {
			return derr
		}

		previousStart := appt.Start()
		if derr = uc.machine.Reschedule(appt, req.NewStart, req.Reason); derr != nil {
			return derr
		}

		if derr = uc.checkConflict(ctx, tx.Reads(), appt, &id); derr != nil {
			return derr
		}

		if derr = tx.Appointments().Update(ctx, appt); derr != nil {
			return derr
		}

		event := appointment.NewEvent(appointment.EventRescheduled, appt, uc.clock.Now()).
			WithPreviousStart(previousStart).
			WithReason(req.Reason)
		if derr = enqueueEvent(ctx, tx, event); derr != nil {
			return derr
		}

		updated = appt
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return updated, nil
}

func (uc *appointmentCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, req CancelAppointmentRequest, actor shared.Actor) (*appointment.Appointment, error) {
	return uc.transition(ctx, id, actor, false, func(_ context.Context, _ shared.CommandReads, appt *appointment.Appointment) (appointment.Event, error) {
		if err := uc.machine.Cancel(appt, req.Reason); err != nil {
			return appointment.Event{}, err
		}
		return appointment.NewEvent(appointment.EventCancelled, appt, uc.clock.Now()).WithReason(req.Reason), nil
	})
}

func (uc *appointmentCommandsImpl) Confirm(ctx context.Context, id uuid.UUID, req ConfirmAppointmentRequest, actor shared.Actor) (*appointment.Appointment, error) {
	return uc.transition(ctx, id, actor, true, func(ctx context.Context, reads shared.CommandReads, appt *appointment.Appointment) (appointment.Event, error) {
		if err := uc.checkAgent(ctx, reads, req.AgentID); err != nil {
			return appointment.Event{}, err
		}
		if err := uc.machine.Confirm(appt, req.AgentID); err != nil {
			return appointment.Event{}, err
		}
		return appointment.NewEvent(appointment.EventConfirmed, appt, uc.clock.Now()), nil
	})
}

func (uc *appointmentCommandsImpl) Complete(ctx context.Context, id uuid.UUID, req CompleteAppointmentRequest, actor shared.Actor) (*appointment.Appointment, error) {
	return uc.transition(ctx, id, actor, true, func(_ context.Context, _ shared.CommandReads, appt *appointment.Appointment) (appointment.Event, error) {
		if err := uc.machine.Complete(appt, req.Notes); err != nil {
			return appointment.Event{}, err
		}
		return appointment.NewEvent(appointment.EventCompleted, appt, uc.clock.Now()), nil
	})
}

func (uc *appointmentCommandsImpl) MarkNoShow(ctx context.Context, id uuid.UUID, actor shared.Actor) (*appointment.Appointment, error) {
	return uc.transition(ctx, id, actor, true, func(_ context.Context, _ shared.CommandReads, appt *appointment.Appointment) (appointment.Event, error) {
		if err := uc.machine.MarkNoShow(appt); err != nil {
			return appointment.Event{}, err
		}
		return appointment.NewEvent(appointment.EventNoShow, appt, uc.clock.Now()), nil
	})
}

// transition runs a status change that does not move the interval, so only the row lock is needed.
func (uc *appointmentCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	actor shared.Actor,
	staffOnly bool,
	apply func(ctx context.Context, reads shared.CommandReads, appt *appointment.Appointment) (appointment.Event, error),
) (*appointment.Appointment, error) {
	if staffOnly && !actor.IsStaff() {
		return nil, errs.ErrAccessDenied
	}

	var updated *appointment.Appointment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, derr := uc.loadOwned(ctx, tx, id, actor)
		if derr != nil {
			return derr
		}

		event, derr := apply(ctx, tx.Reads(), appt)
		if derr != nil {
			return derr
		}

		if derr = tx.Appointments().Update(ctx, appt); derr != nil {
			return derr
		}
		if derr = enqueueEvent(ctx, tx, event); derr != nil {
			return derr
		}

		updated = appt
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return updated, nil
}

func (uc *appointmentCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, id uuid.UUID, actor shared.Actor) (*appointment.Appointment, error) {
	appt, err := tx.Reads().AppointmentForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAppointmentNotFound)
		}
		return nil, err
	}
	if !actor.CanActOn(appt.CustomerID()) {
		return nil, errs.ErrAccessDenied
	}
	return appt, nil
}

func (uc *appointmentCommandsImpl) lockAndCheck(ctx context.Context, tx shared.Tx, appt *appointment.Appointment, excludeID *uuid.UUID) error {
	if err := tx.LockResource(ctx, uc.resource); err != nil {
		return err
	}
	return uc.checkConflict(ctx, tx.Reads(), appt, excludeID)
}

func (uc *appointmentCommandsImpl) checkConflict(ctx context.Context, reads shared.CommandReads, appt *appointment.Appointment, excludeID *uuid.UUID) error {
	conflict, err := appointment.NewConflictChecker(reads).HasConflict(ctx, appt.Start(), appt.DurationMinutes(), excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return errs.ErrSlotTaken
	}
	return nil
}

func (uc *appointmentCommandsImpl) checkReferences(ctx context.Context, reads shared.CommandReads, customerID uuid.UUID, carID *uuid.UUID) error {
	ok, err := reads.CustomerExists(ctx, customerID)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrCustomerNotFound
	}

	if carID == nil {
		return nil
	}
	ok, err = reads.CarExists(ctx, *carID)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrCarNotFound
	}
	return nil
}

// checkAgent accepts only active staff or admin users as the assigned agent.
func (uc *appointmentCommandsImpl) checkAgent(ctx context.Context, reads shared.CommandReads, agentID *uuid.UUID) error {
	if agentID == nil {
		return nil
	}
	ok, err := reads.AgentExists(ctx, *agentID)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrAgentNotFound
	}
	return nil
}

// classify marks lower-layer errors with the outcome category the handler maps to a status.
func classify(err error) error {
	var ve *appointment.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ve):
		return errs.Mark(err, errs.ErrValidation)
	case errors.Is(err, appointment.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrSlotTaken)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrReferenceNotFound)
	default:
		return err
	}
}
