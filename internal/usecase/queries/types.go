package queries

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentView represents read-optimized appointment data
type AppointmentView struct {
	ID                  uuid.UUID  `json:"id"`
	CustomerID          uuid.UUID  `json:"customer_id"`
	CustomerName        string     `json:"customer_name"`
	AgentID             *uuid.UUID `json:"agent_id,omitempty"`
	CarID               *uuid.UUID `json:"car_id,omitempty"`
	CarLabel            *string    `json:"car_label,omitempty"`
	Type                string     `json:"type"`
	Status              string     `json:"status"`
	Start               time.Time  `json:"start"`
	End                 time.Time  `json:"end"`
	DurationMinutes     int32      `json:"duration_minutes"`
	Location            string     `json:"location"`
	Address             *string    `json:"address,omitempty"`
	CustomerMessage     *string    `json:"customer_message,omitempty"`
	SpecialRequirements *string    `json:"special_requirements,omitempty"`
	AdminNotes          *string    `json:"admin_notes,omitempty"`
	CompletionNotes     *string    `json:"completion_notes,omitempty"`
	CancellationReason  *string    `json:"cancellation_reason,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	ConfirmedAt         *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	CancelledAt         *time.Time `json:"cancelled_at,omitempty"`
}

type AppointmentFilters struct {
	Status *string
}
