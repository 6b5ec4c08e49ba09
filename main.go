package main

import (
	"os"

	"github.com/prakharVirus1289/calender-scheduler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
