package availability

import (
	"fmt"
	"time"

	"showroom-scheduler/internal/pkg/clock"
)

// AvailableDates walks forward from the day after now, skipping weekends, until
// required business days are collected or horizonDays calendar days have been
// scanned. Dates are midnights in loc.
func AvailableDates(now time.Time, loc *time.Location, horizonDays, required int) []time.Time {
	if horizonDays <= 0 || required <= 0 {
		return []time.Time{}
	}

	today := StartOfDay(now, loc)
	y, m, d := today.Date()

	dates := make([]time.Time, 0, required)
	for offset := 1; offset <= horizonDays && len(dates) < required; offset++ {
		day := time.Date(y, m, d+offset, 0, 0, 0, 0, loc)
		if !IsBusinessDay(day) {
			continue
		}
		dates = append(dates, day)
	}
	return dates
}

// TimeSlots enumerates start times on date from hours.Start in steps of the
// granularity while the slot still ends by hours.End. It knows nothing about
// existing bookings.
func TimeSlots(date time.Time, durationMinutes int, hours BusinessHours) ([]time.Time, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidArgument, durationMinutes)
	}
	if !hours.Start.Before(hours.End) {
		return nil, fmt.Errorf("%w: business start %s is not before end %s", ErrInvalidArgument, hours.Start, hours.End)
	}
	if hours.GranularityMinutes <= 0 {
		return nil, fmt.Errorf("%w: granularity must be positive, got %d", ErrInvalidArgument, hours.GranularityMinutes)
	}

	slots := make([]time.Time, 0, (hours.End.Minutes()-hours.Start.Minutes())/hours.GranularityMinutes)
	for t := hours.Start.Minutes(); t+durationMinutes <= hours.End.Minutes(); t += hours.GranularityMinutes {
		slots = append(slots, TimeOfDay{minutes: t}.On(date))
	}
	return slots, nil
}

type SlotGenerator struct {
	clock    clock.Clock
	calendar Calendar
}

func NewSlotGenerator(clk clock.Clock, cal Calendar) *SlotGenerator {
	if cal.Location == nil {
		cal.Location = time.UTC
	}
	return &SlotGenerator{clock: clk, calendar: cal}
}

func (g *SlotGenerator) Calendar() Calendar {
	return g.calendar
}

func (g *SlotGenerator) Location() *time.Location {
	return g.calendar.Location
}

func (g *SlotGenerator) AvailableDates(horizonDays, required int) []time.Time {
	return AvailableDates(g.clock.Now(), g.calendar.Location, horizonDays, required)
}

// DefaultAvailableDates uses the configured horizon and required day count.
func (g *SlotGenerator) DefaultAvailableDates() []time.Time {
	return g.AvailableDates(g.calendar.HorizonDays, g.calendar.RequiredDays)
}

// TimeSlots uses the configured business hours. date is moved into the calendar location first.
func (g *SlotGenerator) TimeSlots(date time.Time, durationMinutes int) ([]time.Time, error) {
	return TimeSlots(StartOfDay(date, g.calendar.Location), durationMinutes, g.calendar.Hours)
}
