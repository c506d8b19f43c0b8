package request

import (
	"time"

	"showroom-scheduler/internal/pkg/ptr"
	"showroom-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	// Staff only: book on behalf of this customer.
	CustomerID          *uuid.UUID `json:"customer_id,omitempty"`
	CarID               *uuid.UUID `json:"car_id,omitempty"`
	Type                string     `json:"type" binding:"required,appt_type"`
	Start               time.Time  `json:"start" binding:"required"`
	DurationMinutes     int        `json:"duration_minutes" binding:"required,min=30,max=180"`
	Location            string     `json:"location" binding:"omitempty,appt_location"`
	Address             *string    `json:"address,omitempty" binding:"omitempty,max=500"`
	CustomerMessage     *string    `json:"customer_message,omitempty" binding:"omitempty,max=2000"`
	SpecialRequirements *string    `json:"special_requirements,omitempty" binding:"omitempty,max=2000"`
}

func (r CreateAppointmentRequest) ToCommand() commands.CreateAppointmentRequest {
	location := r.Location
	if location == "" {
		location = "showroom"
	}
	return commands.CreateAppointmentRequest{
		CustomerID:          r.CustomerID,
		CarID:               r.CarID,
		Type:                r.Type,
		Start:               r.Start,
		DurationMinutes:     r.DurationMinutes,
		Location:            location,
		Address:             ptr.Deref(r.Address, ""),
		CustomerMessage:     ptr.Deref(r.CustomerMessage, ""),
		SpecialRequirements: ptr.Deref(r.SpecialRequirements, ""),
	}
}

type RescheduleAppointmentRequest struct {
	NewStart time.Time `json:"new_start" binding:"required"`
	Reason   *string   `json:"reason,omitempty" binding:"omitempty,max=2000"`
}

func (r RescheduleAppointmentRequest) ToCommand() commands.RescheduleAppointmentRequest {
	return commands.RescheduleAppointmentRequest{
		NewStart: r.NewStart,
		Reason:   ptr.Deref(r.Reason, ""),
	}
}

type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty" binding:"omitempty,max=2000"`
}

func (r CancelAppointmentRequest) ToCommand() commands.CancelAppointmentRequest {
	return commands.CancelAppointmentRequest{Reason: ptr.Deref(r.Reason, "")}
}

type ConfirmAppointmentRequest struct {
	AgentID *uuid.UUID `json:"agent_id,omitempty"`
}

func (r ConfirmAppointmentRequest) ToCommand() commands.ConfirmAppointmentRequest {
	return commands.ConfirmAppointmentRequest{AgentID: r.AgentID}
}

type CompleteAppointmentRequest struct {
	Notes *string `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

func (r CompleteAppointmentRequest) ToCommand() commands.CompleteAppointmentRequest {
	return commands.CompleteAppointmentRequest{Notes: ptr.Deref(r.Notes, "")}
}

type ListAppointmentsQuery struct {
	// Staff only: list another customer's appointments.
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,appt_status"`
	Cursor     string `form:"cursor"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type AvailableDatesQuery struct {
	Type string `form:"type" binding:"omitempty,appt_type"`
}

type AvailableSlotsQuery struct {
	Date     string `form:"date" binding:"required,datetime=2006-01-02"`
	Duration int    `form:"duration" binding:"required,min=30,max=180"`
}
