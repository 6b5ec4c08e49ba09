package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/prakharVirus1289/calender-scheduler/core/model"
)

// Plan bundles a generated schedule with its validation warnings for export.
type Plan struct {
	Schedule []model.DaySchedule `json:"schedule"`
	Warnings []string            `json:"validation_warnings"`
}

// WriteJSON writes the plan to w in JSON format.
func WriteJSON(w io.Writer, plan Plan) error {
	if plan.Schedule == nil {
		plan.Schedule = []model.DaySchedule{}
	}
	if plan.Warnings == nil {
		plan.Warnings = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// WriteCSV writes one row per scheduled session.
func WriteCSV(w io.Writer, plan Plan) error {
	cw := csv.NewWriter(w)
	header := []string{"day", "date", "task_id", "task_name", "start", "end", "duration_hours", "priority", "progress"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, day := range plan.Schedule {
		for _, s := range day.Sessions {
			rec := []string{
				strconv.Itoa(day.DayNumber),
				day.Date.Format(model.DateLayout),
				strconv.Itoa(s.TaskID),
				s.TaskName,
				s.StartTime,
				s.EndTime,
				strconv.FormatFloat(s.DurationHours, 'f', -1, 64),
				s.Priority.String(),
				s.Progress,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteText writes a human readable rendering of the plan.
func WriteText(w io.Writer, plan Plan) error {
	if len(plan.Warnings) > 0 {
		if _, err := fmt.Fprintln(w, "VALIDATION WARNINGS:"); err != nil {
			return err
		}
		for _, warn := range plan.Warnings {
			if _, err := fmt.Fprintf(w, "  - %s\n", warn); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	for _, day := range plan.Schedule {
		if _, err := fmt.Fprintf(w, "DAY %d - %s\n", day.DayNumber, day.Date.Format("Monday, January 02, 2006")); err != nil {
			return err
		}
		for _, warn := range day.Warnings {
			if _, err := fmt.Fprintf(w, "  ! %s\n", warn); err != nil {
				return err
			}
		}
		for _, s := range day.Sessions {
			if _, err := fmt.Fprintf(w, "  %s - %s (%.1fh) %s [%s] %s\n",
				s.StartTime, s.EndTime, s.DurationHours, s.TaskName, s.Priority, s.Progress); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "\n%d days planned\n", len(plan.Schedule))
	return err
}
