package model

import (
	"fmt"
	"math"
)

// Priority defines the importance of a task. Lower values are more important.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// String returns the human readable priority name.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// Validate checks that the priority is one of the known levels.
func (p Priority) Validate() error {
	if p < PriorityHigh || p > PriorityLow {
		return fmt.Errorf("invalid priority %d", int(p))
	}
	return nil
}

// Task represents a multi-session piece of work to be placed on the calendar.
// TotalHours is the overall effort, HoursPerSession the length of one sitting
// and DeadlineDay the 1-based day offset from the start of the plan by which
// the task must be finished.
type Task struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	TotalHours      float64  `json:"total_hours"`
	HoursPerSession float64  `json:"hours_per_session"`
	Priority        Priority `json:"priority"`
	DeadlineDay     int      `json:"deadline_day"`
	HoursCompleted  float64  `json:"hours_completed"`
	InProgress      bool     `json:"in_progress"`
}

// Validate checks that the task fields are well formed.
func (t Task) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("task %d: name is required", t.ID)
	}
	if t.TotalHours <= 0 {
		return fmt.Errorf("task %q: total_hours must be positive", t.Name)
	}
	if t.HoursPerSession <= 0 {
		return fmt.Errorf("task %q: hours_per_session must be positive", t.Name)
	}
	if t.DeadlineDay < 1 {
		return fmt.Errorf("task %q: deadline_day must be at least 1", t.Name)
	}
	if t.HoursCompleted < 0 || t.HoursCompleted > t.TotalHours {
		return fmt.Errorf("task %q: hours_completed out of range", t.Name)
	}
	return t.Priority.Validate()
}

// HoursRemaining returns the effort still needed to finish the task.
func (t Task) HoursRemaining() float64 {
	return math.Max(0, t.TotalHours-t.HoursCompleted)
}

// SessionsRemaining returns how many sittings the remaining effort needs.
func (t Task) SessionsRemaining() int {
	return int(math.Ceil(t.HoursRemaining() / t.HoursPerSession))
}

// IsComplete reports whether the task has reached its total effort.
func (t Task) IsComplete() bool {
	return t.HoursCompleted >= t.TotalHours
}

// CanMeetDeadline reports whether the task, started on currentDay, can still
// fit all remaining sessions before its deadline.
func (t Task) CanMeetDeadline(currentDay int) bool {
	return t.DeadlineDay-currentDay >= t.SessionsRemaining()
}

// UrgencyScore combines deadline pressure and remaining work. Lower values
// are more urgent; the score goes negative once a deadline is effectively
// missed.
func (t Task) UrgencyScore(currentDay int) int {
	return t.DeadlineDay - t.SessionsRemaining() - currentDay
}

// Clone returns an independent copy of the task.
func (t Task) Clone() *Task {
	cp := t
	return &cp
}
