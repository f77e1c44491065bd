// Root command for the msprojval CLI.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jare20895/MSProjectXMLValidator/pkg/msprojval"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagVerbose   bool
	flagNoHistory bool
)

// Loaded by PersistentPreRunE so all subcommands can use them.
var (
	cfg    *viper.Viper
	policy types.Policy
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:           "msprojval",
	Short:         "Validate and repair MS Project XML schedule files",
	Version:       msprojval.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir := resolveConfigDir()
		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		cfg = v
		policy = policyFromConfig(v)
		logger = newLogger(v, flagVerbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.msprojval)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "skip recording the run in the history journal")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(historyCmd)
}

// resolveConfigDir returns the configuration directory: the --config-dir
// flag when set, else $(CWD)/.msprojval.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	return ".msprojval"
}

// newLogger builds the narration logger. Narration goes to stderr so stdout
// stays reserved for command output.
func newLogger(v *viper.Viper, verbose bool) *log.Logger {
	level := log.InfoLevel
	if parsed, err := log.ParseLevel(v.GetString(cfgKeyLogLevel)); err == nil {
		level = parsed
	}
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "msprojval",
	})
}
