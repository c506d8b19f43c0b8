package appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinDurationMinutes = 30
	MaxDurationMinutes = 180

	MaxAddressLength = 500
	MaxTextLength    = 2000
)

// TimeSlot is the half-open interval [start, start+duration).
type TimeSlot struct {
	start           time.Time
	durationMinutes int
}

func NewTimeSlot(start time.Time, durationMinutes int) (TimeSlot, error) {
	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return TimeSlot{}, &ValidationError{Field: "duration_minutes", Err: ErrDurationOutOfRange}
	}
	if start.IsZero() {
		return TimeSlot{}, &ValidationError{Field: "start", Err: ErrMissingStart}
	}
	return TimeSlot{start: start, durationMinutes: durationMinutes}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.start.Add(ts.Duration())
}

func (ts TimeSlot) DurationMinutes() int {
	return ts.durationMinutes
}

func (ts TimeSlot) Duration() time.Duration {
	return time.Duration(ts.durationMinutes) * time.Minute
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return Overlaps(ts.Start(), ts.End(), other.Start(), other.End())
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("%s (%dm)", ts.start.Format(time.RFC3339), ts.durationMinutes)
}

// Overlaps reports whether [s1,e1) and [s2,e2) share an instant. Touching ends do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// Text is a trimmed, length-bounded free text field. The zero value is empty.
type Text struct {
	value string
}

func NewText(field, s string, maxLen int) (Text, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxLen {
		return Text{}, &ValidationError{Field: field, Err: ErrTextTooLong}
	}
	return Text{value: s}, nil
}

func (t Text) String() string {
	return t.value
}

func (t Text) IsEmpty() bool {
	return t.value == ""
}
