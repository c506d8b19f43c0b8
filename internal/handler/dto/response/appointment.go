package response

import (
	"time"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/domain/availability"
	"showroom-scheduler/internal/pkg/ptr"
	"showroom-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID                  uuid.UUID  `json:"id"`
	CustomerID          uuid.UUID  `json:"customerId"`
	CustomerName        string     `json:"customerName,omitempty"`
	AgentID             *uuid.UUID `json:"agentId,omitempty"`
	CarID               *uuid.UUID `json:"carId,omitempty"`
	CarLabel            *string    `json:"carLabel,omitempty"`
	Type                string     `json:"type"`
	Status              string     `json:"status"`
	Start               time.Time  `json:"start"`
	End                 time.Time  `json:"end"`
	DurationMinutes     int32      `json:"durationMinutes"`
	Location            string     `json:"location"`
	Address             *string    `json:"address,omitempty"`
	CustomerMessage     *string    `json:"customerMessage,omitempty"`
	SpecialRequirements *string    `json:"specialRequirements,omitempty"`
	AdminNotes          *string    `json:"adminNotes,omitempty"`
	CompletionNotes     *string    `json:"completionNotes,omitempty"`
	CancellationReason  *string    `json:"cancellationReason,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
	ConfirmedAt         *time.Time `json:"confirmedAt,omitempty"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
	CancelledAt         *time.Time `json:"cancelledAt,omitempty"`
}

type AppointmentListResponse struct {
	Items      []*AppointmentResponse `json:"items"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

type AvailableDatesResponse struct {
	Dates []string `json:"dates"`
}

type AvailableSlotsResponse struct {
	Date            string      `json:"date"`
	DurationMinutes int         `json:"durationMinutes"`
	Slots           []time.Time `json:"slots"`
}

func FromAppointment(a *appointment.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                  a.ID(),
		CustomerID:          a.CustomerID(),
		AgentID:             a.AgentID(),
		CarID:               a.CarID(),
		Type:                a.Type().String(),
		Status:              a.Status().String(),
		Start:               a.Start(),
		End:                 a.End(),
		DurationMinutes:     int32(a.DurationMinutes()), // #nosec G115 -- bounded by the domain
		Location:            a.Location().String(),
		Address:             ptr.NonEmpty(a.Address()),
		CustomerMessage:     ptr.NonEmpty(a.CustomerMessage()),
		SpecialRequirements: ptr.NonEmpty(a.SpecialRequirements()),
		AdminNotes:          ptr.NonEmpty(a.AdminNotes()),
		CompletionNotes:     ptr.NonEmpty(a.CompletionNotes()),
		CancellationReason:  ptr.NonEmpty(a.CancellationReason()),
		CreatedAt:           a.CreatedAt(),
		UpdatedAt:           a.UpdatedAt(),
		ConfirmedAt:         a.ConfirmedAt(),
		CompletedAt:         a.CompletedAt(),
		CancelledAt:         a.CancelledAt(),
	}
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	var resp AppointmentResponse
	// Field names and types match one to one.
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromAppointmentViews(views []*queries.AppointmentView, next *queries.Cursor) *AppointmentListResponse {
	items := make([]*AppointmentResponse, len(views))
	for i, v := range views {
		items[i] = FromAppointmentView(v)
	}
	resp := &AppointmentListResponse{Items: items}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

func FromDates(dates []time.Time) *AvailableDatesResponse {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(availability.DateLayout)
	}
	return &AvailableDatesResponse{Dates: out}
}

func FromSlots(date time.Time, durationMinutes int, slots []time.Time) *AvailableSlotsResponse {
	if slots == nil {
		slots = []time.Time{}
	}
	return &AvailableSlotsResponse{
		Date:            date.Format(availability.DateLayout),
		DurationMinutes: durationMinutes,
		Slots:           slots,
	}
}
