// Copyright © 2018 One Concern

package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/spf13/cobra"
)

const configFileName = "nbredact.yaml"

var configGen = &cobra.Command{
	Use:   "create",
	Short: "Create a config",
	Long: "Create a config to use for nbredact, from the current settings and flags. " +
		"Config file will be placed in $HOME/.nbredact/" + configFileName,
	Run: func(cmd *cobra.Command, args []string) {
		home, err := os.UserHomeDir()
		if err != nil {
			wrapFatalln("could not get home directory for user", err)
			return
		}
		config := CLIConfig{
			Source:              nbFlags.paths.Source,
			Dest:                nbFlags.paths.Dest,
			Pattern:             nbFlags.paths.Pattern,
			Strip:               nbFlags.paths.Strip,
			HideTag:             nbFlags.rules.HideTag,
			TodoTag:             nbFlags.rules.TodoTag,
			Placeholder:         nbFlags.rules.Placeholder,
			ClearExecutionCount: !nbFlags.rules.KeepExecutionCount,
		}
		o, e := yaml.Marshal(config)
		if e != nil {
			wrapFatalln("serialize config to yaml", e)
			return
		}
		_ = os.Mkdir(filepath.Join(home, ".nbredact"), 0777)
		target := filepath.Join(home, ".nbredact", configFileName)
		err = ioutil.WriteFile(target, o, 0666)
		if err != nil {
			wrapFatalln("write config file", err)
			return
		}
		infoLogger.Println("Config written to", target)
	},
}

func init() {
	addPublishFlags(configGen)

	configCmd.AddCommand(configGen)
}
