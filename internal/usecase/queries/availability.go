package queries

import (
	"context"
	"errors"
	"time"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/domain/availability"
	"showroom-scheduler/internal/pkg/clock"
	"showroom-scheduler/internal/pkg/errs"
	"showroom-scheduler/internal/usecase/shared"
)

type AvailabilityQueries interface {
	// AvailableDates returns upcoming business days. With a type, days that have
	// no free slot for the type's default duration are left out.
	AvailableDates(ctx context.Context, apptType *string) ([]time.Time, error)
	// AvailableSlots returns the free start times on date for the given duration.
	AvailableSlots(ctx context.Context, date time.Time, durationMinutes int) ([]time.Time, error)
}

type availabilityQueriesImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	generator *availability.SlotGenerator
}

func NewAvailabilityQueries(uow shared.UnitOfWork, clk clock.Clock, generator *availability.SlotGenerator) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:       uow,
		clock:     clk,
		generator: generator,
	}
}

func (q *availabilityQueriesImpl) AvailableDates(ctx context.Context, apptType *string) ([]time.Time, error) {
	dates := q.generator.DefaultAvailableDates()
	if apptType == nil || *apptType == "" || len(dates) == 0 {
		return dates, nil
	}

	t, err := appointment.NewType(*apptType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	duration := t.DefaultDurationMinutes()

	from := dates[0]
	to := dates[len(dates)-1].AddDate(0, 0, 1)

	result := make([]time.Time, 0, len(dates))
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		booked, rerr := reads.ActiveIntervals(ctx, from, to)
		if rerr != nil {
			return rerr
		}
		for _, date := range dates {
			free, ferr := q.freeSlots(date, duration, booked)
			if ferr != nil {
				return ferr
			}
			if len(free) > 0 {
				result = append(result, date)
			}
		}
		return nil
	})
	if err != nil {
		return nil, classifyArgument(err)
	}
	return result, nil
}

func (q *availabilityQueriesImpl) AvailableSlots(ctx context.Context, date time.Time, durationMinutes int) ([]time.Time, error) {
	if durationMinutes < appointment.MinDurationMinutes || durationMinutes > appointment.MaxDurationMinutes {
		return nil, errs.Mark(
			&appointment.ValidationError{Field: "duration_minutes", Err: appointment.ErrDurationOutOfRange},
			errs.ErrValidation,
		)
	}

	day := availability.StartOfDay(date, q.generator.Location())
	if !availability.IsBusinessDay(day) {
		return []time.Time{}, nil
	}

	var result []time.Time
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		booked, rerr := reads.ActiveIntervals(ctx, day, day.AddDate(0, 0, 1))
		if rerr != nil {
			return rerr
		}
		free, ferr := q.freeSlots(day, durationMinutes, booked)
		if ferr != nil {
			return ferr
		}
		result = free
		return nil
	})
	if err != nil {
		return nil, classifyArgument(err)
	}
	return result, nil
}

// freeSlots keeps the generated starts that lie in the future and overlap no booked interval.
func (q *availabilityQueriesImpl) freeSlots(date time.Time, durationMinutes int, booked []appointment.BookedInterval) ([]time.Time, error) {
	starts, err := q.generator.TimeSlots(date, durationMinutes)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	duration := time.Duration(durationMinutes) * time.Minute
	free := make([]time.Time, 0, len(starts))
	for _, start := range starts {
		if !start.After(now) {
			continue
		}
		if appointment.FindConflict(start, start.Add(duration), booked, nil) != nil {
			continue
		}
		free = append(free, start)
	}
	return free, nil
}

func classifyArgument(err error) error {
	if errors.Is(err, availability.ErrInvalidArgument) {
		return errs.Mark(err, errs.ErrValidation)
	}
	return err
}
