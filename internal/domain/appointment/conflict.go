package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookedInterval is the part of an active appointment that conflict checks look at.
type BookedInterval struct {
	ID    uuid.UUID
	Start time.Time
	End   time.Time
}

// IntervalSource returns the active appointments whose interval may intersect [from, to).
// Returning extra intervals is allowed, they are filtered again here.
type IntervalSource interface {
	ActiveIntervals(ctx context.Context, from, to time.Time) ([]BookedInterval, error)
}

type ConflictChecker struct {
	source IntervalSource
}

func NewConflictChecker(source IntervalSource) *ConflictChecker {
	return &ConflictChecker{source: source}
}

func (c *ConflictChecker) HasConflict(ctx context.Context, start time.Time, durationMinutes int, excludeID *uuid.UUID) (bool, error) {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	booked, err := c.source.ActiveIntervals(ctx, start, end)
	if err != nil {
		return false, err
	}
	return FindConflict(start, end, booked, excludeID) != nil, nil
}

// FindConflict returns the first booked interval overlapping [start, end), skipping excludeID.
func FindConflict(start, end time.Time, booked []BookedInterval, excludeID *uuid.UUID) *BookedInterval {
	for i := range booked {
		b := booked[i]
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if Overlaps(start, end, b.Start, b.End) {
			return &b
		}
	}
	return nil
}
