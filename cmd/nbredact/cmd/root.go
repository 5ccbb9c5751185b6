// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/oneconcern/nbredact/pkg/publish"
	"github.com/oneconcern/nbredact/pkg/redact"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nbredact",
	Short: "nbredact publishes solution notebooks to students",
	Long: `nbredact publishes solution notebooks to students.

Every notebook found under the solutions directory is stripped of its outputs.
Non-markdown cells tagged "hide" lose their source, those tagged "todo" get a
placeholder instead of the solution. Markdown cells are left alone.

The cleaned notebook is written under the destination directory, at the same
path relative to the solutions directory.
`,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addLogLevel(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault(keySource, ".")
	viper.SetDefault(keyDest, defaultDest)
	viper.SetDefault(keyPattern, publish.DefaultPattern)
	viper.SetDefault(keyStrip, publish.DefaultStrip)
	viper.SetDefault(keyHideTag, redact.DefaultHideTag)
	viper.SetDefault(keyTodoTag, redact.DefaultTodoTag)
	viper.SetDefault(keyPlaceholder, redact.DefaultPlaceholder)
	viper.SetDefault(keyClearExecutionCount, true)

	if os.Getenv("NBREDACT_CONFIG") != "" {
		viper.SetConfigFile(os.Getenv("NBREDACT_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.nbredact")
		viper.AddConfigPath("/etc/nbredact")
		viper.SetConfigName("nbredact")
	}

	viper.SetEnvPrefix("nbredact")
	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		infoLogger.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		wrapFatalln("read config", err)
		return
	}
	nbFlags.setDefaultsFromConfig(config)
}

// interruptible returns a context cancelled on SIGINT
func interruptible() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	go func() {
		select {
		case <-signalChan:
			errlog.Println("Received SIGINT, stopping after the current notebook...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(signalChan)
	}()
	return ctx, cancel
}
