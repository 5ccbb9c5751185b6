// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keySource              = "source"
	keyDest                = "dest"
	keyPattern             = "pattern"
	keyStrip               = "strip"
	keyHideTag             = "hide_tag"
	keyTodoTag             = "todo_tag"
	keyPlaceholder         = "placeholder"
	keyClearExecutionCount = "clear_execution_count"

	defaultDest = "notebooks"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	Source              string `mapstructure:"source" json:"source" yaml:"source"`                                           // Root of the solution notebooks
	Dest                string `mapstructure:"dest" json:"dest" yaml:"dest"`                                                 // Root of the published notebooks
	Pattern             string `mapstructure:"pattern" json:"pattern" yaml:"pattern"`                                        // Glob locating notebooks under the source
	Strip               string `mapstructure:"strip" json:"strip" yaml:"strip"`                                              // Leading directory removed from destination paths
	HideTag             string `mapstructure:"hide_tag" json:"hide_tag" yaml:"hide_tag"`                                     // Tag emptying a cell
	TodoTag             string `mapstructure:"todo_tag" json:"todo_tag" yaml:"todo_tag"`                                     // Tag replacing a cell by the placeholder
	Placeholder         string `mapstructure:"placeholder" json:"placeholder" yaml:"placeholder"`                            // Source of todo cells
	ClearExecutionCount bool   `mapstructure:"clear_execution_count" json:"clear_execution_count" yaml:"clear_execution_count"` // Reset execution counts
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage a config",
	Long: `Commands to manage nbredact CLI config.

The config holds the settings that do not change across runs: where notebooks
are found and written, and which tags drive the redaction.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
