package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	apischedule "github.com/prakharVirus1289/calender-scheduler/api/schedule"
	"github.com/prakharVirus1289/calender-scheduler/core/scheduler"
	"github.com/prakharVirus1289/calender-scheduler/infra/logger"
	"github.com/prakharVirus1289/calender-scheduler/pkg/export"
)

var (
	planPath   string
	planFormat string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate a plan from a JSON plan file",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVarP(&planPath, "input", "i", "", "plan file (JSON)")
	scheduleCmd.Flags().StringVarP(&planFormat, "format", "f", "text", "output format: text, json or csv")
	if err := scheduleCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(scheduleCmd)
}

func readPlanFile(path string) (apischedule.ScheduleRequest, error) {
	var req apischedule.ScheduleRequest
	b, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read plan file: %w", err)
	}
	if err := json.Unmarshal(b, &req); err != nil {
		return req, fmt.Errorf("parse plan file: %w", err)
	}
	return req, nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	req, err := readPlanFile(planPath)
	if err != nil {
		return err
	}
	tasks, blocked, cfg, _, err := req.BuildRun(time.Now())
	if err != nil {
		return err
	}

	eng, err := scheduler.New(cfg, logger.New("schedule-command"))
	if err != nil {
		return err
	}
	days, warnings := eng.Schedule(tasks, blocked)
	plan := export.Plan{Schedule: days, Warnings: warnings}

	out := cmd.OutOrStdout()
	switch planFormat {
	case "json":
		return export.WriteJSON(out, plan)
	case "csv":
		return export.WriteCSV(out, plan)
	case "text":
		return export.WriteText(out, plan)
	default:
		return fmt.Errorf("unknown format %q", planFormat)
	}
}
