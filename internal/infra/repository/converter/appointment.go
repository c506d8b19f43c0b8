package converter

import (
	"showroom-scheduler/internal/domain/appointment"
	sqlc "showroom-scheduler/internal/infra/sqlc/generated"
	"showroom-scheduler/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	r := a.ToRecord()
	return sqlc.CreateAppointmentParams{
		ID:                  r.ID,
		CustomerID:          r.CustomerID,
		AgentID:             pgconv.UUIDPtrToPgtype(r.AgentID),
		CarID:               pgconv.UUIDPtrToPgtype(r.CarID),
		AppointmentType:     r.Type.String(),
		Status:              r.Status.String(),
		StartAt:             pgconv.TimeToPgtype(a.Start()),
		EndAt:               pgconv.TimeToPgtype(a.End()),
		DurationMinutes:     pgconv.IntToInt32(r.DurationMinutes),
		Location:            r.Location.String(),
		Address:             pgconv.StringToPgtype(r.Address),
		CustomerMessage:     pgconv.StringToPgtype(r.CustomerMessage),
		SpecialRequirements: pgconv.StringToPgtype(r.SpecialRequirements),
		AdminNotes:          pgconv.StringToPgtype(r.AdminNotes),
		CompletionNotes:     pgconv.StringToPgtype(r.CompletionNotes),
		CancellationReason:  pgconv.StringToPgtype(r.CancellationReason),
		CreatedAt:           pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt:           pgconv.TimeToPgtype(r.UpdatedAt),
		ConfirmedAt:         pgconv.TimePtrToPgtype(r.ConfirmedAt),
		CompletedAt:         pgconv.TimePtrToPgtype(r.CompletedAt),
		CancelledAt:         pgconv.TimePtrToPgtype(r.CancelledAt),
	}
}

func AppointmentToUpdateParams(a *appointment.Appointment) sqlc.UpdateAppointmentParams {
	r := a.ToRecord()
	return sqlc.UpdateAppointmentParams{
		ID:                 r.ID,
		AgentID:            pgconv.UUIDPtrToPgtype(r.AgentID),
		Status:             r.Status.String(),
		StartAt:            pgconv.TimeToPgtype(a.Start()),
		EndAt:              pgconv.TimeToPgtype(a.End()),
		DurationMinutes:    pgconv.IntToInt32(r.DurationMinutes),
		AdminNotes:         pgconv.StringToPgtype(r.AdminNotes),
		CompletionNotes:    pgconv.StringToPgtype(r.CompletionNotes),
		CancellationReason: pgconv.StringToPgtype(r.CancellationReason),
		UpdatedAt:          pgconv.TimeToPgtype(r.UpdatedAt),
		ConfirmedAt:        pgconv.TimePtrToPgtype(r.ConfirmedAt),
		CompletedAt:        pgconv.TimePtrToPgtype(r.CompletedAt),
		CancelledAt:        pgconv.TimePtrToPgtype(r.CancelledAt),
	}
}

// AppointmentFromRow trusts the row: CHECK constraints already hold the domain invariants.
func AppointmentFromRow(row sqlc.Appointment) *appointment.Appointment {
	return appointment.ReconstructAppointment(appointment.Record{
		ID:                  row.ID,
		CustomerID:          row.CustomerID,
		AgentID:             pgconv.UUIDPtrFromPgtype(row.AgentID),
		CarID:               pgconv.UUIDPtrFromPgtype(row.CarID),
		Type:                appointment.Type(row.AppointmentType),
		Status:              appointment.Status(row.Status),
		Start:               pgconv.TimeFromPgtype(row.StartAt),
		DurationMinutes:     int(row.DurationMinutes),
		Location:            appointment.Location(row.Location),
		Address:             pgconv.StringFromPgtype(row.Address),
		CustomerMessage:     pgconv.StringFromPgtype(row.CustomerMessage),
		SpecialRequirements: pgconv.StringFromPgtype(row.SpecialRequirements),
		AdminNotes:          pgconv.StringFromPgtype(row.AdminNotes),
		CompletionNotes:     pgconv.StringFromPgtype(row.CompletionNotes),
		CancellationReason:  pgconv.StringFromPgtype(row.CancellationReason),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
		ConfirmedAt:         pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		CompletedAt:         pgconv.TimePtrFromPgtype(row.CompletedAt),
		CancelledAt:         pgconv.TimePtrFromPgtype(row.CancelledAt),
	})
}
