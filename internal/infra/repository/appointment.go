package repository

import (
	"context"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/infra"
	"showroom-scheduler/internal/infra/repository/converter"
	sqlc "showroom-scheduler/internal/infra/sqlc/generated"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) error
	UpdateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentParams) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) error {
	params := converter.AppointmentToCreateParams(appt)

	if err := r.queries.CreateAppointment(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}

	return nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appt *appointment.Appointment) error {
	params := converter.AppointmentToUpdateParams(appt)

	affected, err := r.queries.UpdateAppointment(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}

	return nil
}
