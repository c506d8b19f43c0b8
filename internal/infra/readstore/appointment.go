package readstore

import (
	"context"
	"time"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/infra"
	"showroom-scheduler/internal/infra/repository/converter"
	sqlc "showroom-scheduler/internal/infra/sqlc/generated"
	"showroom-scheduler/internal/pkg/pgconv"
	"showroom-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentViewQueries interface {
	GetAppointmentViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetAppointmentViewByIDRow, error)
	ListAppointmentsByCustomerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsByCustomerFirstPageParams) ([]sqlc.ListAppointmentsByCustomerFirstPageRow, error)
	ListAppointmentsByCustomerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsByCustomerKeysetParams) ([]sqlc.ListAppointmentsByCustomerKeysetRow, error)
	ListActiveIntervals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveIntervalsParams) ([]sqlc.ListActiveIntervalsRow, error)
	GetAppointmentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointment, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	return toAppointmentView(appointmentViewRow(row)), nil
}

func (r *AppointmentReadStore) FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, status *string, limit int32) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsByCustomerFirstPage(ctx, r.db, sqlc.ListAppointmentsByCustomerFirstPageParams{
		CustomerID: customerID,
		Status:     pgconv.StringPtrToPgtype(status),
		RowLimit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments first page", err)
	}

	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = toAppointmentView(appointmentViewRow(row))
	}
	return result, nil
}

func (r *AppointmentReadStore) FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsByCustomerKeyset(ctx, r.db, sqlc.ListAppointmentsByCustomerKeysetParams{
		CustomerID:    customerID,
		Status:        pgconv.StringPtrToPgtype(status),
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments with keyset", err)
	}

	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = toAppointmentView(appointmentViewRow(row))
	}
	return result, nil
}

// ActiveIntervals returns requested/confirmed bookings intersecting [from, to).
func (r *AppointmentReadStore) ActiveIntervals(ctx context.Context, from, to time.Time) ([]appointment.BookedInterval, error) {
	rows, err := r.queries.ListActiveIntervals(ctx, r.db, sqlc.ListActiveIntervalsParams{
		RangeEnd:   pgconv.TimeToPgtype(to),
		RangeStart: pgconv.TimeToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active intervals", err)
	}

	intervals := make([]appointment.BookedInterval, len(rows))
	for i, row := range rows {
		intervals[i] = appointment.BookedInterval{
			ID:    row.ID,
			Start: pgconv.TimeFromPgtype(row.StartAt),
			End:   pgconv.TimeFromPgtype(row.EndAt),
		}
	}
	return intervals, nil
}

// FindForUpdate loads the aggregate and holds its row lock until the transaction ends.
func (r *AppointmentReadStore) FindForUpdate(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock appointment", err)
	}
	return converter.AppointmentFromRow(row), nil
}

// appointmentViewRow is the shared shape of the three view queries.
type appointmentViewRow sqlc.GetAppointmentViewByIDRow

func toAppointmentView(row appointmentViewRow) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:                  row.ID,
		CustomerID:          row.CustomerID,
		CustomerName:        row.CustomerName,
		AgentID:             pgconv.UUIDPtrFromPgtype(row.AgentID),
		CarID:               pgconv.UUIDPtrFromPgtype(row.CarID),
		CarLabel:            pgconv.StringPtrFromPgtype(row.CarLabel),
		Type:                row.AppointmentType,
		Status:              row.Status,
		Start:               pgconv.TimeFromPgtype(row.StartAt),
		End:                 pgconv.TimeFromPgtype(row.EndAt),
		DurationMinutes:     row.DurationMinutes,
		Location:            row.Location,
		Address:             pgconv.StringPtrFromPgtype(row.Address),
		CustomerMessage:     pgconv.StringPtrFromPgtype(row.CustomerMessage),
		SpecialRequirements: pgconv.StringPtrFromPgtype(row.SpecialRequirements),
		AdminNotes:          pgconv.StringPtrFromPgtype(row.AdminNotes),
		CompletionNotes:     pgconv.StringPtrFromPgtype(row.CompletionNotes),
		CancellationReason:  pgconv.StringPtrFromPgtype(row.CancellationReason),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
		ConfirmedAt:         pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		CompletedAt:         pgconv.TimePtrFromPgtype(row.CompletedAt),
		CancelledAt:         pgconv.TimePtrFromPgtype(row.CancelledAt),
	}
}
