package queries

import (
	"context"
	"time"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/infra"
	"showroom-scheduler/internal/pkg/errs"
	"showroom-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, status *string, limit int32) ([]*AppointmentView, error)
	FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*AppointmentView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, actor shared.Actor, filters AppointmentFilters, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAppointmentNotFound)
		}
		return nil, err
	}
	if !actor.CanActOn(view.CustomerID) {
		return nil, errs.ErrAccessDenied
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, actor shared.Actor, filters AppointmentFilters, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error) {
	if !actor.CanActOn(customerID) {
		return nil, nil, errs.ErrAccessDenied
	}
	if filters.Status != nil {
		if _, err := appointment.NewStatus(*filters.Status); err != nil {
			return nil, nil, errs.Mark(err, errs.ErrValidation)
		}
	}

	limit = ValidateLimit(limit)
	// Fetch one extra row to know whether a next page exists
	fetch := int32(limit + 1) // #nosec G115 -- limit is capped by ValidateLimit

	var (
		items []*AppointmentView
		err   error
	)
	if cursor == nil || cursor.After == "" {
		items, err = q.store.FindByCustomerFirstPage(ctx, customerID, filters.Status, fetch)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(cursor.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, errs.ErrValidation)
		}
		items, err = q.store.FindByCustomerKeyset(ctx, customerID, filters.Status, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}
