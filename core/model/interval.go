package model

import (
	"fmt"
	"time"
)

// MinutesPerDay is the number of minutes in a schedulable day.
const MinutesPerDay = 24 * 60

// Recurrence describes on which calendar dates a blocked interval applies.
// It is a closed set of variants: EveryDay, SpecificDate and WeekdaySet.
type Recurrence interface {
	// AppliesOn reports whether the rule matches the given date.
	AppliesOn(date time.Time) bool
}

// EveryDay matches every calendar date.
type EveryDay struct{}

func (EveryDay) AppliesOn(time.Time) bool { return true }

// SpecificDate matches a single calendar date.
type SpecificDate struct {
	Date time.Time
}

func (s SpecificDate) AppliesOn(date time.Time) bool {
	return s.Date.Year() == date.Year() && s.Date.Month() == date.Month() && s.Date.Day() == date.Day()
}

// WeekdaySet matches a fixed set of weekdays, indexed Monday=0 through
// Sunday=6.
type WeekdaySet struct {
	Days map[int]bool
}

func (w WeekdaySet) AppliesOn(date time.Time) bool {
	return w.Days[MondayIndex(date)]
}

// MondayIndex converts a date's weekday to the Monday=0..Sunday=6 indexing
// used by recurrence rules.
func MondayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// BlockedInterval is a minute-of-day range that is unavailable for work on
// every date its recurrence rule matches. Intervals never cross midnight.
type BlockedInterval struct {
	StartMinute int
	EndMinute   int
	Recurrence  Recurrence
}

// Validate checks the interval geometry and recurrence rule.
func (b BlockedInterval) Validate() error {
	if b.StartMinute < 0 || b.EndMinute > MinutesPerDay {
		return fmt.Errorf("blocked interval out of day bounds: [%d,%d)", b.StartMinute, b.EndMinute)
	}
	if b.EndMinute <= b.StartMinute {
		return fmt.Errorf("blocked interval end %d not after start %d", b.EndMinute, b.StartMinute)
	}
	if b.Recurrence == nil {
		return fmt.Errorf("blocked interval requires a recurrence rule")
	}
	if w, ok := b.Recurrence.(WeekdaySet); ok {
		if len(w.Days) == 0 {
			return fmt.Errorf("weekday recurrence requires at least one weekday")
		}
		for d := range w.Days {
			if d < 0 || d > 6 {
				return fmt.Errorf("weekday index %d out of range 0-6", d)
			}
		}
	}
	return nil
}

// FreeInterval is a disjoint minute-of-day range [Start,End) left open for
// work on a specific date. Derived by the availability resolver, never
// persisted.
type FreeInterval struct {
	Start int
	End   int
}

// DurationHours returns the interval length in hours.
func (f FreeInterval) DurationHours() float64 {
	return float64(f.End-f.Start) / 60
}

// MinuteClock formats a minute-of-day offset as HH:MM.
func MinuteClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
