// Validate command: run the checks without modifying the document.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jare20895/MSProjectXMLValidator/internal/engine"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input.xml>",
	Short: "Validate a project file without modifying it",
	Long: `Validate runs the structural checks (duplicate UIDs, broken references,
date and duration formats, calendar arithmetic) against a project file and
reports every defect found. The file is never modified.

Exit code is 0 when the file passes, 1 when any error is found.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	res, err := engine.Run(engine.Options{
		InputPath: args[0],
		Repair:    false,
		Policy:    policy,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	recordHistory(args[0], "", false, res)
	printErrors(res)

	if !res.Success {
		fmt.Println("\nVALIDATION FAILED")
		fmt.Printf("Tip: run %q to attempt automatic repairs.\n",
			fmt.Sprintf("msprojval repair %s <output.xml>", args[0]))
		exitCode = exitFailure
		return nil
	}
	fmt.Println("\nVALIDATION PASSED")
	return nil
}
