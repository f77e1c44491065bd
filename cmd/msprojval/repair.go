// Repair command: validate, apply corrective transforms, and write the
// repaired document plus its repair log.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jare20895/MSProjectXMLValidator/internal/engine"
	"github.com/jare20895/MSProjectXMLValidator/internal/report"
)

var repairCmd = &cobra.Command{
	Use:   "repair <input.xml> <output.xml>",
	Short: "Validate a project file and repair what can be repaired",
	Long: `Repair runs the validation checks and then the corrective passes:
summary-task predecessor relocation, circular dependency removal, date and
duration normalization, explicit date removal, default field insertion,
milestone correction, zero-work defaults, and finish date derivation.

The repaired document is written to <output.xml> with a companion
<output>_repair.log summarizing every repair and remaining error.

Exit code is 0 when no errors remain, 1 otherwise.`,
	Args: cobra.ExactArgs(2),
	RunE: runRepair,
}

func runRepair(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]
	res, err := engine.Run(engine.Options{
		InputPath:  input,
		OutputPath: output,
		Repair:     true,
		Policy:     policy,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	recordHistory(input, output, true, res)
	printRepairs(res)
	printErrors(res)

	fmt.Printf("\nRepaired document saved to: %s\n", output)
	fmt.Printf("Repair log saved to:        %s\n", report.LogPath(output))

	if !res.Success {
		fmt.Println("\nREPAIR INCOMPLETE: some issues could not be fixed")
		exitCode = exitFailure
		return nil
	}
	if res.RepairCount() > 0 {
		fmt.Printf("\nAll issues repaired (%d repairs made)\n", res.RepairCount())
	} else {
		fmt.Println("\nNo repairs were necessary")
	}
	return nil
}
