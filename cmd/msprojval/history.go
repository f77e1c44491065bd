// History commands: inspect the journal of past runs.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jare20895/MSProjectXMLValidator/internal/history"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the journal of past validation runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the errors and repairs recorded for a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyListCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "maximum runs to list")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
}

func openHistory() (*history.Store, error) {
	store, err := history.Open(cfg.GetString(cfgKeyHistoryDataDir))
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}
	for _, r := range runs {
		mode := "validate"
		if r.RepairMode {
			mode = "repair"
		}
		status := "FAILED"
		if r.Success {
			status = "ok"
		}
		fmt.Printf("%s  %s  %-8s  %-6s  errors=%d repairs=%d  %s\n",
			r.RunID, r.StartedAt.Format("2006-01-02 15:04:05"), mode, status,
			r.ErrorCount, r.RepairCount, r.InputPath)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Entries(args[0])
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No entries for run", args[0])
		return nil
	}
	for _, e := range entries {
		fmt.Printf("[%s] %s: %s\n", e.Kind, e.Category, e.Message)
	}
	return nil
}
