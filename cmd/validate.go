package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/prakharVirus1289/calender-scheduler/core/scheduler"
	"github.com/prakharVirus1289/calender-scheduler/infra/logger"
)

var lookaheadDays int

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every task's session length can fit in the free time",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&planPath, "input", "i", "", "plan file (JSON)")
	validateCmd.Flags().IntVar(&lookaheadDays, "lookahead", 0, "look-ahead window in days (default 30)")
	if err := validateCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	req, err := readPlanFile(planPath)
	if err != nil {
		return err
	}
	tasks, blocked, cfg, _, err := req.BuildRun(time.Now())
	if err != nil {
		return err
	}

	eng, err := scheduler.New(cfg, logger.New("validate-command"))
	if err != nil {
		return err
	}
	warnings := eng.Validate(tasks, blocked, lookaheadDays)

	out := cmd.OutOrStdout()
	if len(warnings) == 0 {
		_, err = fmt.Fprintln(out, "all tasks fit the available time")
		return err
	}
	for _, w := range warnings {
		if _, err := fmt.Fprintf(out, "! %s\n", w); err != nil {
			return err
		}
	}
	return fmt.Errorf("%d tasks cannot fit", len(warnings))
}
