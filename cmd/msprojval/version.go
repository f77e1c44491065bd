// Version command for the msprojval CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jare20895/MSProjectXMLValidator/pkg/msprojval"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the msprojval version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("msprojval", msprojval.Version)
	},
}
