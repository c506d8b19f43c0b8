package appointment

import (
	"errors"
	"time"

	"showroom-scheduler/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrDurationOutOfRange = errors.New("duration must be between 30 and 180 minutes")
	ErrMissingStart       = errors.New("start is required")
	ErrStartNotInFuture   = errors.New("start must be in the future")
	ErrInvalidType        = errors.New("invalid appointment type")
	ErrInvalidLocation    = errors.New("invalid appointment location")
	ErrInvalidStatus      = errors.New("invalid appointment status")
	ErrAddressRequired    = errors.New("address is required unless location is showroom")
	ErrTextTooLong        = errors.New("text is too long")
	ErrMissingCustomer    = errors.New("customer is required")
)

// ValidationError ties a rule violation to the input field that caused it.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type Services struct {
	Clock clock.Clock
}

type NewAppointmentParams struct {
	CustomerID          uuid.UUID
	CarID               *uuid.UUID
	Type                Type
	Start               time.Time
	DurationMinutes     int
	Location            Location
	Address             string
	CustomerMessage     string
	SpecialRequirements string
}

type Appointment struct {
	id                  uuid.UUID
	customerID          uuid.UUID
	agentID             *uuid.UUID
	carID               *uuid.UUID
	apptType            Type
	status              Status
	slot                TimeSlot
	location            Location
	address             Text
	customerMessage     Text
	specialRequirements Text
	adminNotes          Text
	completionNotes     Text
	cancellationReason  Text
	createdAt           time.Time
	updatedAt           time.Time
	confirmedAt         *time.Time
	completedAt         *time.Time
	cancelledAt         *time.Time
}

// NewAppointment validates a booking request and returns it in status requested.
// Conflicts with other bookings are not checked here.
func NewAppointment(services *Services, p NewAppointmentParams) (*Appointment, error) {
	if p.CustomerID == uuid.Nil {
		return nil, &ValidationError{Field: "customer_id", Err: ErrMissingCustomer}
	}
	if !p.Type.IsValid() {
		return nil, &ValidationError{Field: "type", Err: ErrInvalidType}
	}
	if !p.Location.IsValid() {
		return nil, &ValidationError{Field: "location", Err: ErrInvalidLocation}
	}

	slot, err := NewTimeSlot(p.Start, p.DurationMinutes)
	if err != nil {
		return nil, err
	}
	now := services.Clock.Now()
	if !slot.Start().After(now) {
		return nil, &ValidationError{Field: "start", Err: ErrStartNotInFuture}
	}

	address, err := NewText("address", p.Address, MaxAddressLength)
	if err != nil {
		return nil, err
	}
	if p.Location.RequiresAddress() && address.IsEmpty() {
		return nil, &ValidationError{Field: "address", Err: ErrAddressRequired}
	}
	message, err := NewText("customer_message", p.CustomerMessage, MaxTextLength)
	if err != nil {
		return nil, err
	}
	requirements, err := NewText("special_requirements", p.SpecialRequirements, MaxTextLength)
	if err != nil {
		return nil, err
	}

	return &Appointment{
		id:                  uuid.New(),
		customerID:          p.CustomerID,
		carID:               p.CarID,
		apptType:            p.Type,
		status:              StatusRequested,
		slot:                slot,
		location:            p.Location,
		address:             address,
		customerMessage:     message,
		specialRequirements: requirements,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// Record carries every persisted field. It is only used to rebuild an Appointment from storage.
type Record struct {
	ID                  uuid.UUID
	CustomerID          uuid.UUID
	AgentID             *uuid.UUID
	CarID               *uuid.UUID
	Type                Type
	Status              Status
	Start               time.Time
	DurationMinutes     int
	Location            Location
	Address             string
	CustomerMessage     string
	SpecialRequirements string
	AdminNotes          string
	CompletionNotes     string
	CancellationReason  string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	ConfirmedAt         *time.Time
	CompletedAt         *time.Time
	CancelledAt         *time.Time
}

func ReconstructAppointment(r Record) *Appointment {
	return &Appointment{
		id:                  r.ID,
		customerID:          r.CustomerID,
		agentID:             r.AgentID,
		carID:               r.CarID,
		apptType:            r.Type,
		status:              r.Status,
		slot:                TimeSlot{start: r.Start, durationMinutes: r.DurationMinutes},
		location:            r.Location,
		address:             Text{value: r.Address},
		customerMessage:     Text{value: r.CustomerMessage},
		specialRequirements: Text{value: r.SpecialRequirements},
		adminNotes:          Text{value: r.AdminNotes},
		completionNotes:     Text{value: r.CompletionNotes},
		cancellationReason:  Text{value: r.CancellationReason},
		createdAt:           r.CreatedAt,
		updatedAt:           r.UpdatedAt,
		confirmedAt:         r.ConfirmedAt,
		completedAt:         r.CompletedAt,
		cancelledAt:         r.CancelledAt,
	}
}

func (a *Appointment) ToRecord() Record {
	return Record{
		ID:                  a.id,
		CustomerID:          a.customerID,
		AgentID:             a.agentID,
		CarID:               a.carID,
		Type:                a.apptType,
		Status:              a.status,
		Start:               a.slot.Start(),
		DurationMinutes:     a.slot.DurationMinutes(),
		Location:            a.location,
		Address:             a.address.String(),
		CustomerMessage:     a.customerMessage.String(),
		SpecialRequirements: a.specialRequirements.String(),
		AdminNotes:          a.adminNotes.String(),
		CompletionNotes:     a.completionNotes.String(),
		CancellationReason:  a.cancellationReason.String(),
		CreatedAt:           a.createdAt,
		UpdatedAt:           a.updatedAt,
		ConfirmedAt:         a.confirmedAt,
		CompletedAt:         a.completedAt,
		CancelledAt:         a.cancelledAt,
	}
}

func (a *Appointment) IsActive() bool {
	return a.status.IsActive()
}

func (a *Appointment) ID() uuid.UUID               { return a.id }
func (a *Appointment) CustomerID() uuid.UUID       { return a.customerID }
func (a *Appointment) AgentID() *uuid.UUID         { return a.agentID }
func (a *Appointment) CarID() *uuid.UUID           { return a.carID }
func (a *Appointment) Type() Type                  { return a.apptType }
func (a *Appointment) Status() Status              { return a.status }
func (a *Appointment) Slot() TimeSlot              { return a.slot }
func (a *Appointment) Start() time.Time            { return a.slot.Start() }
func (a *Appointment) End() time.Time              { return a.slot.End() }
func (a *Appointment) DurationMinutes() int        { return a.slot.DurationMinutes() }
func (a *Appointment) Location() Location          { return a.location }
func (a *Appointment) Address() string             { return a.address.String() }
func (a *Appointment) CustomerMessage() string     { return a.customerMessage.String() }
func (a *Appointment) SpecialRequirements() string { return a.specialRequirements.String() }
func (a *Appointment) AdminNotes() string          { return a.adminNotes.String() }
func (a *Appointment) CompletionNotes() string     { return a.completionNotes.String() }
func (a *Appointment) CancellationReason() string  { return a.cancellationReason.String() }
func (a *Appointment) CreatedAt() time.Time        { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time        { return a.updatedAt }
func (a *Appointment) ConfirmedAt() *time.Time     { return a.confirmedAt }
func (a *Appointment) CompletedAt() *time.Time     { return a.completedAt }
func (a *Appointment) CancelledAt() *time.Time     { return a.cancelledAt }
