package schedule

import (
	"fmt"
	"time"

	"github.com/prakharVirus1289/calender-scheduler/core/model"
	"github.com/prakharVirus1289/calender-scheduler/core/scheduler"
	"github.com/prakharVirus1289/calender-scheduler/infra/store"
)

// ScheduleRequest is the payload of POST /api/schedule. Buffer and task cap
// are pointers so an explicit zero can be told apart from an omitted field.
type ScheduleRequest struct {
	ClosedSlots    []model.ClosedSlot `json:"closed_slots"`
	Tasks          []model.Task       `json:"tasks"`
	BufferMinutes  *int               `json:"buffer_minutes"`
	MaxTasksPerDay *int               `json:"max_tasks_per_day"`
	StartDate      string             `json:"start_date"`
	HorizonDays    int                `json:"horizon_days"`
}

// ValidateRequest is the payload of POST /api/validate.
type ValidateRequest struct {
	ClosedSlots   []model.ClosedSlot `json:"closed_slots"`
	Tasks         []model.Task       `json:"tasks"`
	StartDate     string             `json:"start_date"`
	LookaheadDays int                `json:"lookahead_days"`
}

// SaveRequest is the payload of POST /api/save.
type SaveRequest struct {
	Tasks       []model.Task       `json:"tasks"`
	ClosedSlots []model.ClosedSlot `json:"closed_slots"`
	Config      *store.RunConfig   `json:"config"`
}

// BuildRun validates a schedule request and converts it to engine inputs.
func (r ScheduleRequest) BuildRun(now time.Time) ([]model.Task, []model.BlockedInterval, scheduler.Config, store.RunConfig, error) {
	var cfg scheduler.Config

	if len(r.Tasks) == 0 {
		return nil, nil, cfg, store.RunConfig{}, fmt.Errorf("at least one task is required")
	}
	for _, t := range r.Tasks {
		if err := t.Validate(); err != nil {
			return nil, nil, cfg, store.RunConfig{}, err
		}
	}
	blocked, err := model.ClosedSlotsToIntervals(r.ClosedSlots)
	if err != nil {
		return nil, nil, cfg, store.RunConfig{}, err
	}

	start, err := scheduler.ParseStartDate(r.StartDate, now)
	if err != nil {
		return nil, nil, cfg, store.RunConfig{}, err
	}

	buffer := scheduler.DefaultBufferMinutes
	if r.BufferMinutes != nil {
		buffer = *r.BufferMinutes
	}
	maxTasks := scheduler.DefaultMaxNewTasksPerDay
	if r.MaxTasksPerDay != nil {
		maxTasks = *r.MaxTasksPerDay
	}

	cfg = scheduler.Config{
		Start:             start,
		BufferMinutes:     buffer,
		MaxNewTasksPerDay: maxTasks,
		HorizonDays:       r.HorizonDays,
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, cfg, store.RunConfig{}, err
	}

	startDate := r.StartDate
	if startDate == "" {
		startDate = "now"
	}
	runCfg := store.RunConfig{
		BufferMinutes:  buffer,
		MaxTasksPerDay: maxTasks,
		StartDate:      startDate,
	}
	return r.Tasks, blocked, cfg, runCfg, nil
}
