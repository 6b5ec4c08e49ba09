package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ScheduledSession is one contiguous allocation of a task on a specific day.
// Immutable once created.
type ScheduledSession struct {
	TaskID        int      `json:"task_id"`
	TaskName      string   `json:"task_name"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	DurationHours float64  `json:"duration_hours"`
	Priority      Priority `json:"priority"`
	Progress      string   `json:"progress"`
}

// DaySchedule collects the sessions and warnings of a single planned day.
// Days without any content are omitted from the plan entirely.
type DaySchedule struct {
	DayNumber int
	Date      time.Time
	Sessions  []ScheduledSession
	Warnings  []string
}

// AddSession appends a session in allocation order.
func (d *DaySchedule) AddSession(s ScheduledSession) {
	d.Sessions = append(d.Sessions, s)
}

// AddWarning appends a warning message.
func (d *DaySchedule) AddWarning(w string) {
	d.Warnings = append(d.Warnings, w)
}

// HasContent reports whether the day carries at least one session or warning.
func (d DaySchedule) HasContent() bool {
	return len(d.Sessions) > 0 || len(d.Warnings) > 0
}

// dayScheduleJSON is the wire shape of a day: the date is written twice, as
// an ISO date and as a long human readable form.
type dayScheduleJSON struct {
	DayNumber      int                `json:"day_number"`
	Date           string             `json:"date"`
	DateFormatted  string             `json:"date_formatted"`
	ScheduledTasks []ScheduledSession `json:"scheduled_tasks"`
	Warnings       []string           `json:"warnings"`
}

// MarshalJSON implements json.Marshaler.
func (d DaySchedule) MarshalJSON() ([]byte, error) {
	out := dayScheduleJSON{
		DayNumber:      d.DayNumber,
		Date:           d.Date.Format(DateLayout),
		DateFormatted:  d.Date.Format("Monday, January 02, 2006"),
		ScheduledTasks: d.Sessions,
		Warnings:       d.Warnings,
	}
	if out.ScheduledTasks == nil {
		out.ScheduledTasks = []ScheduledSession{}
	}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DaySchedule) UnmarshalJSON(data []byte) error {
	var in dayScheduleJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	date, err := time.Parse(DateLayout, in.Date)
	if err != nil {
		return fmt.Errorf("day schedule: invalid date %q: %w", in.Date, err)
	}
	d.DayNumber = in.DayNumber
	d.Date = date
	d.Sessions = in.ScheduledTasks
	d.Warnings = in.Warnings
	return nil
}
