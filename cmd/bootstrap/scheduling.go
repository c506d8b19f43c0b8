package bootstrap

import (
	"fmt"
	"time"

	"showroom-scheduler/internal/domain/availability"
	"showroom-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var SchedulingModule = fx.Module("scheduling",
	fx.Provide(
		NewCalendar,
	),
)

// NewCalendar builds the business calendar from SCHEDULE_* settings.
func NewCalendar(cfg config.Config) (availability.Calendar, error) {
	sc := cfg.Scheduling

	loc, err := time.LoadLocation(sc.TimeZone)
	if err != nil {
		return availability.Calendar{}, fmt.Errorf("invalid SCHEDULE_TIMEZONE: %w", err)
	}
	start, err := availability.ParseTimeOfDay(sc.BusinessStart)
	if err != nil {
		return availability.Calendar{}, fmt.Errorf("invalid SCHEDULE_BUSINESS_START: %w", err)
	}
	end, err := availability.ParseTimeOfDay(sc.BusinessEnd)
	if err != nil {
		return availability.Calendar{}, fmt.Errorf("invalid SCHEDULE_BUSINESS_END: %w", err)
	}
	if !start.Before(end) {
		return availability.Calendar{}, fmt.Errorf("business hours %s-%s are empty", start, end)
	}
	if sc.GranularityMinutes <= 0 {
		return availability.Calendar{}, fmt.Errorf("SCHEDULE_GRANULARITY_MINUTES must be positive, got %d", sc.GranularityMinutes)
	}

	return availability.Calendar{
		Location: loc,
		Hours: availability.BusinessHours{
			Start:              start,
			End:                end,
			GranularityMinutes: sc.GranularityMinutes,
		},
		HorizonDays:  sc.HorizonDays,
		RequiredDays: sc.RequiredDays,
	}, nil
}
