//go:build unit || e2e

package builder

import (
	"time"

	"showroom-scheduler/internal/domain/appointment"
	reqdto "showroom-scheduler/internal/handler/dto/request"
	sqlc "showroom-scheduler/internal/infra/sqlc/generated"
	"showroom-scheduler/internal/pkg/clock"
	"showroom-scheduler/internal/pkg/pgconv"
	"showroom-scheduler/internal/pkg/ptr"
	"showroom-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Now is the fixed "current time" of the unit tests: Friday 2024-03-01 08:00 UTC.
var Now = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

// Monday is the first business day after Now.
var Monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

// At returns hour:minute on Monday.
func At(hour, minute int) time.Time {
	return Monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

type AppointmentBuilder struct {
	CustomerID          uuid.UUID
	CarID               *uuid.UUID
	Type                appointment.Type
	Start               time.Time
	DurationMinutes     int
	Location            appointment.Location
	Address             string
	CustomerMessage     string
	SpecialRequirements string
	Status              appointment.Status
	Now                 time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		CustomerID:      uuid.New(),
		Type:            appointment.TypeTestDrive,
		Start:           At(10, 0),
		DurationMinutes: 60,
		Location:        appointment.LocationShowroom,
		CustomerMessage: "Interested in the hybrid trim",
		Status:          appointment.StatusRequested,
		Now:             Now,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithCustomer(id uuid.UUID) *AppointmentBuilder {
	b.CustomerID = id
	return b
}

func (b *AppointmentBuilder) WithCar(id uuid.UUID) *AppointmentBuilder {
	b.CarID = &id
	return b
}

func (b *AppointmentBuilder) WithStart(start time.Time) *AppointmentBuilder {
	b.Start = start
	return b
}

func (b *AppointmentBuilder) WithDuration(minutes int) *AppointmentBuilder {
	b.DurationMinutes = minutes
	return b
}

func (b *AppointmentBuilder) WithType(t appointment.Type) *AppointmentBuilder {
	b.Type = t
	return b
}

func (b *AppointmentBuilder) WithLocation(l appointment.Location, address string) *AppointmentBuilder {
	b.Location = l
	b.Address = address
	return b
}

func (b *AppointmentBuilder) WithStatus(s appointment.Status) *AppointmentBuilder {
	b.Status = s
	return b
}

// BuildDomain creates the appointment through NewAppointment, then forces Status if it is not requested.
func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	a, err := appointment.NewAppointment(&appointment.Services{Clock: clock.NewMockClock(b.Now)}, appointment.NewAppointmentParams{
		CustomerID:          b.CustomerID,
		CarID:               b.CarID,
		Type:                b.Type,
		Start:               b.Start,
		DurationMinutes:     b.DurationMinutes,
		Location:            b.Location,
		Address:             b.Address,
		CustomerMessage:     b.CustomerMessage,
		SpecialRequirements: b.SpecialRequirements,
	})
	if err != nil {
		return nil, err
	}
	if b.Status == appointment.StatusRequested {
		return a, nil
	}

	r := a.ToRecord()
	r.Status = b.Status
	switch b.Status {
	case appointment.StatusConfirmed:
		r.ConfirmedAt = &b.Now
	case appointment.StatusCompleted:
		r.ConfirmedAt = &b.Now
		r.CompletedAt = &b.Now
	case appointment.StatusCancelled:
		r.CancelledAt = &b.Now
	}
	return appointment.ReconstructAppointment(r), nil
}

// MustBuildDomain panics on invalid input. For fixtures that are valid by construction.
func (b *AppointmentBuilder) MustBuildDomain() *appointment.Appointment {
	a, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return a
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		CarID:               b.CarID,
		Type:                b.Type.String(),
		Start:               b.Start,
		DurationMinutes:     b.DurationMinutes,
		Location:            b.Location.String(),
		Address:             ptr.NonEmpty(b.Address),
		CustomerMessage:     ptr.NonEmpty(b.CustomerMessage),
		SpecialRequirements: ptr.NonEmpty(b.SpecialRequirements),
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:              uuid.New(),
		CustomerID:      b.CustomerID,
		CustomerName:    "Test Customer",
		CarID:           b.CarID,
		Type:            b.Type.String(),
		Status:          b.Status.String(),
		Start:           b.Start,
		End:             b.Start.Add(time.Duration(b.DurationMinutes) * time.Minute),
		DurationMinutes: pgconv.IntToInt32(b.DurationMinutes),
		Location:        b.Location.String(),
		Address:         ptr.NonEmpty(b.Address),
		CustomerMessage: ptr.NonEmpty(b.CustomerMessage),
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

func (b *AppointmentBuilder) BuildInfra() sqlc.Appointment {
	return sqlc.Appointment{
		ID:              uuid.New(),
		CustomerID:      b.CustomerID,
		CarID:           pgconv.UUIDPtrToPgtype(b.CarID),
		AppointmentType: b.Type.String(),
		Status:          b.Status.String(),
		StartAt:         pgconv.TimeToPgtype(b.Start),
		EndAt:           pgconv.TimeToPgtype(b.Start.Add(time.Duration(b.DurationMinutes) * time.Minute)),
		DurationMinutes: pgconv.IntToInt32(b.DurationMinutes),
		Location:        b.Location.String(),
		Address:         pgconv.StringToPgtype(b.Address),
		CustomerMessage: pgconv.StringToPgtype(b.CustomerMessage),
		CreatedAt:       pgconv.TimeToPgtype(b.Now),
		UpdatedAt:       pgconv.TimeToPgtype(b.Now),
	}
}

func (b *AppointmentBuilder) BuildViewRow() sqlc.GetAppointmentViewByIDRow {
	row := b.BuildInfra()
	return sqlc.GetAppointmentViewByIDRow{
		ID:              row.ID,
		CustomerID:      row.CustomerID,
		CustomerName:    "Test Customer",
		CarID:           row.CarID,
		CarLabel:        pgtype.Text{},
		AppointmentType: row.AppointmentType,
		Status:          row.Status,
		StartAt:         row.StartAt,
		EndAt:           row.EndAt,
		DurationMinutes: row.DurationMinutes,
		Location:        row.Location,
		Address:         row.Address,
		CustomerMessage: row.CustomerMessage,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
