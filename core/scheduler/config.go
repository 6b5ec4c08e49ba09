package scheduler

import (
	"fmt"
	"time"
)

// Default planning parameters applied by Config.SetDefaults.
const (
	DefaultBufferMinutes     = 15
	DefaultMaxNewTasksPerDay = 2
	DefaultLookaheadDays     = 30
	// HorizonSlackDays is added to the latest deadline when no explicit
	// horizon is configured.
	HorizonSlackDays = 10
)

// Config defines the planning parameters of one scheduling run.
type Config struct {
	// Start is the calendar date of day 1, at midnight.
	Start time.Time
	// BufferMinutes is the mandatory idle gap reserved after each session.
	BufferMinutes int
	// MaxNewTasksPerDay caps how many not-yet-started tasks may begin on a
	// single day.
	MaxNewTasksPerDay int
	// HorizonDays bounds the day loop. Zero means the latest deadline plus
	// HorizonSlackDays.
	HorizonDays int
}

// SetDefaults fills unset fields with the standard planning parameters.
// BufferMinutes is left alone: zero is a valid buffer, so its default is
// applied where the wire payload is parsed and an omitted field can be told
// apart from an explicit zero.
func (c *Config) SetDefaults() {
	if c.MaxNewTasksPerDay == 0 {
		c.MaxNewTasksPerDay = DefaultMaxNewTasksPerDay
	}
	if c.Start.IsZero() {
		now := time.Now()
		c.Start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}

// Validate checks that the parameters are usable.
func (c Config) Validate() error {
	if c.BufferMinutes < 0 {
		return fmt.Errorf("buffer_minutes must not be negative")
	}
	if c.MaxNewTasksPerDay < 1 {
		return fmt.Errorf("max_tasks_per_day must be at least 1")
	}
	if c.HorizonDays < 0 {
		return fmt.Errorf("horizon_days must not be negative")
	}
	return nil
}

// ParseStartDate resolves a wire start date: the sentinel "now" (or an empty
// string) means today at midnight, anything else must be YYYY-MM-DD.
func ParseStartDate(value string, now time.Time) (time.Time, error) {
	if value == "" || value == "now" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start_date %q: use \"now\" or YYYY-MM-DD", value)
	}
	return d, nil
}
