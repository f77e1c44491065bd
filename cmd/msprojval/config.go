// Config loading for the msprojval CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileFull = "config.yaml"

	cfgKeyKeepDates           = "policy.keep_dates"
	cfgKeyMilestoneExceptions = "policy.milestone_exceptions"
	cfgKeyDefaultTaskHours    = "policy.default_task_hours"
	cfgKeyHistoryEnabled      = "history.enabled"
	cfgKeyHistoryDataDir      = "history.data_dir"
	cfgKeyLogLevel            = "log.level"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# msprojval configuration

# Repair policy. Task UIDs listed under keep_dates retain their explicit
# Start/Finish values; milestone_exceptions lists milestone UIDs whose
# dates are also retained.
policy:
  keep_dates: ["3", "37"]
  milestone_exceptions: ["39", "40", "41", "42"]
  default_task_hours: 8

# Run history journal.
history:
  enabled: true
  # data_dir: .msprojval/history

# Logging: debug, info, warn, error.
log:
  level: info
`

// loadConfig reads config.yaml from the config directory using Viper,
// creating the directory and a default file on first run. A missing file is
// not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	defaults := types.DefaultPolicy()
	v.SetDefault(cfgKeyKeepDates, defaults.KeepDates)
	v.SetDefault(cfgKeyMilestoneExceptions, defaults.MilestoneExceptions)
	v.SetDefault(cfgKeyDefaultTaskHours, defaults.DefaultTaskHours)
	v.SetDefault(cfgKeyHistoryEnabled, true)
	v.SetDefault(cfgKeyHistoryDataDir, filepath.Join(configDir, "history"))
	v.SetDefault(cfgKeyLogLevel, "info")

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileFull)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// policyFromConfig assembles the repair policy from configuration.
func policyFromConfig(v *viper.Viper) types.Policy {
	return types.Policy{
		KeepDates:           v.GetStringSlice(cfgKeyKeepDates),
		MilestoneExceptions: v.GetStringSlice(cfgKeyMilestoneExceptions),
		DefaultTaskHours:    v.GetInt(cfgKeyDefaultTaskHours),
	}
}
