package store

import (
	"context"
	"time"

	"github.com/prakharVirus1289/calender-scheduler/core/model"
)

// RunConfig is the persisted copy of the planning parameters a document was
// produced with.
type RunConfig struct {
	BufferMinutes  int    `json:"buffer_minutes"`
	MaxTasksPerDay int    `json:"max_tasks_per_day"`
	StartDate      string `json:"start_date"`
}

// TasksDocument holds the user's task list and blocked time as submitted,
// saved independently of any generated plan.
type TasksDocument struct {
	Tasks       []model.Task       `json:"tasks"`
	ClosedSlots []model.ClosedSlot `json:"closed_slots"`
	Config      RunConfig          `json:"config"`
	SavedAt     time.Time          `json:"saved_at"`
}

// Snapshot holds the outcome of one scheduling run: the input tasks, the
// generated plan and the parameters used.
type Snapshot struct {
	RunID    string              `json:"run_id,omitempty"`
	Tasks    []model.Task        `json:"tasks"`
	Schedule []model.DaySchedule `json:"schedule"`
	Warnings []string            `json:"validation_warnings"`
	Config   RunConfig           `json:"config"`
	SavedAt  time.Time           `json:"saved_at"`
}

// Store persists task documents and schedule snapshots. The scheduling core
// never touches it; only the API and CLI layers do.
type Store interface {
	SaveTasks(ctx context.Context, doc TasksDocument) error
	LoadTasks(ctx context.Context) (TasksDocument, error)
	SaveSchedule(ctx context.Context, snap Snapshot) error
	LoadSchedule(ctx context.Context) (Snapshot, error)
}
