package scheduler

import (
	"fmt"

	"github.com/prakharVirus1289/calender-scheduler/core/availability"
	"github.com/prakharVirus1289/calender-scheduler/core/logger"
	"github.com/prakharVirus1289/calender-scheduler/core/model"
)

// Engine plans task sessions into the free time of consecutive calendar
// days. It is a first-fit greedy heuristic, not a solver: sessions are
// allocated day by day in urgency order, and infeasibility is reported
// through warnings, never through errors.
type Engine struct {
	cfg Config
	log logger.Logger
}

// New creates an Engine with defaults applied. A nil log disables logging.
func New(cfg Config, log logger.Logger) (*Engine, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scheduler config: %w", err)
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &Engine{cfg: cfg, log: log}, nil
}

// Validate checks every task's session length against the longest free
// interval observed over a bounded look-ahead window and returns one warning
// per task whose sessions can never fit. A non-positive lookaheadDays falls
// back to DefaultLookaheadDays.
func (e *Engine) Validate(tasks []model.Task, blocked []model.BlockedInterval, lookaheadDays int) []string {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}
	maxDur := availability.MaxDuration(e.cfg.Start, blocked, lookaheadDays)

	var warnings []string
	for _, t := range tasks {
		if t.HoursPerSession > maxDur {
			warnings = append(warnings, fmt.Sprintf(
				"Task '%s' requires %.1fh per session, but longest available block is %.1fh",
				t.Name, t.HoursPerSession, maxDur))
		}
	}
	return warnings
}

// Schedule generates the day-by-day plan for the given tasks. The caller's
// task slice is never mutated; the engine works on independent copies. It
// returns the planned days (days without sessions or warnings are omitted)
// and the feasibility warnings of the pre-pass.
func (e *Engine) Schedule(tasks []model.Task, blocked []model.BlockedInterval) ([]model.DaySchedule, []string) {
	if len(tasks) == 0 {
		return nil, nil
	}

	horizon := e.cfg.HorizonDays
	if horizon == 0 {
		for _, t := range tasks {
			if t.DeadlineDay+HorizonSlackDays > horizon {
				horizon = t.DeadlineDay + HorizonSlackDays
			}
		}
	}

	lookahead := horizon
	if lookahead > DefaultLookaheadDays {
		lookahead = DefaultLookaheadDays
	}
	validationWarnings := e.Validate(tasks, blocked, lookahead)

	working := make([]*model.Task, 0, len(tasks))
	for _, t := range tasks {
		working = append(working, t.Clone())
	}

	var plan []model.DaySchedule
	for day := 1; day <= horizon && anyIncomplete(working); day++ {
		date := e.cfg.Start.AddDate(0, 0, day-1)

		free := availability.Resolve(date, blocked)
		if len(free) == 0 {
			e.log.Debugf("day %d (%s): no free time, skipped", day, date.Format(model.DateLayout))
			continue
		}

		daySchedule := model.DaySchedule{DayNumber: day, Date: date}
		records := newDayCapacity(free)
		ranked := rankTasks(incomplete(working), day)
		newStartsToday := 0

		e.log.Debugw("day pass", map[string]any{
			"day":            day,
			"date":           date.Format(model.DateLayout),
			"free_intervals": len(free),
			"candidates":     len(ranked),
		})

		for _, task := range ranked {
			// Hard cutoff: once the new-start quota is hit, the rest of the
			// ranked list is not serviced this day, continuations included.
			if !task.InProgress && newStartsToday >= e.cfg.MaxNewTasksPerDay {
				break
			}
			if !task.InProgress && !task.CanMeetDeadline(day) {
				daySchedule.AddWarning(fmt.Sprintf(
					"Cannot start '%s' - needs %d sessions but deadline is in %d days",
					task.Name, task.SessionsRemaining(), task.DeadlineDay-day))
				continue
			}

			record := firstFit(records, task.HoursPerSession)
			if record == nil {
				if task.InProgress {
					daySchedule.AddWarning(fmt.Sprintf(
						"Cannot continue '%s' - no available %.1fh block",
						task.Name, task.HoursPerSession))
				}
				continue
			}

			start, end := record.Allocate(task.HoursPerSession, e.cfg.BufferMinutes)

			wasPending := !task.InProgress
			task.HoursCompleted += task.HoursPerSession
			if task.HoursCompleted > task.TotalHours {
				task.HoursCompleted = task.TotalHours
			}
			task.InProgress = true

			daySchedule.AddSession(model.ScheduledSession{
				TaskID:        task.ID,
				TaskName:      task.Name,
				StartTime:     model.MinuteClock(start),
				EndTime:       model.MinuteClock(end),
				DurationHours: task.HoursPerSession,
				Priority:      task.Priority,
				Progress:      fmt.Sprintf("%.1fh / %.1fh", task.HoursCompleted, task.TotalHours),
			})

			if task.IsComplete() {
				task.InProgress = false
			}
			if wasPending {
				newStartsToday++
			}
		}

		if daySchedule.HasContent() {
			plan = append(plan, daySchedule)
		}
	}

	e.log.Infof("planned %d days for %d tasks, %d validation warnings",
		len(plan), len(tasks), len(validationWarnings))
	return plan, validationWarnings
}

func anyIncomplete(tasks []*model.Task) bool {
	for _, t := range tasks {
		if !t.IsComplete() {
			return true
		}
	}
	return false
}

func incomplete(tasks []*model.Task) []*model.Task {
	out := make([]*model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsComplete() {
			out = append(out, t)
		}
	}
	return out
}
