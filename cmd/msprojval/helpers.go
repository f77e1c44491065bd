// Shared helpers for msprojval CLI commands.
package main

import (
	"fmt"
	"time"

	"github.com/jare20895/MSProjectXMLValidator/internal/history"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// printErrors writes the remaining errors to stdout, grouped by category in
// recorded order.
func printErrors(res types.Result) {
	if res.ErrorCount() == 0 {
		return
	}
	fmt.Printf("\nIssues found (%d):\n", res.ErrorCount())
	for _, cat := range res.ErrorCategories {
		msgs := res.Errors[cat]
		fmt.Printf("\n%s (%d errors):\n", cat, len(msgs))
		for _, msg := range msgs {
			fmt.Printf("  - %s\n", msg)
		}
	}
}

// printRepairs writes the applied repairs to stdout, grouped by category in
// recorded order.
func printRepairs(res types.Result) {
	if res.RepairCount() == 0 {
		return
	}
	fmt.Printf("\nRepairs made (%d):\n", res.RepairCount())
	for _, cat := range res.RepairCategories {
		msgs := res.Repairs[cat]
		fmt.Printf("\n%s (%d repairs):\n", cat, len(msgs))
		for _, msg := range msgs {
			fmt.Printf("  - %s\n", msg)
		}
	}
}

// recordHistory journals the run when history is enabled. Failures are
// logged, never fatal; the validation result stands on its own.
func recordHistory(input, output string, repairMode bool, res types.Result) {
	if flagNoHistory || !cfg.GetBool(cfgKeyHistoryEnabled) {
		return
	}
	store, err := history.Open(cfg.GetString(cfgKeyHistoryDataDir))
	if err != nil {
		logger.Warn("history journal unavailable", "err", err)
		return
	}
	defer store.Close()

	runID, err := store.Record(history.Run{
		InputPath:  input,
		OutputPath: output,
		RepairMode: repairMode,
		StartedAt:  time.Now(),
	}, res)
	if err != nil {
		logger.Warn("could not record run", "err", err)
		return
	}
	logger.Debug("run recorded", "run_id", runID)
}
