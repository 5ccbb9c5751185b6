// Copyright © 2018 One Concern

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// exit code reported when published notebooks are out of date
const staleExitCode = 1

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check published notebooks are up to date",
	Long: `Check that every published notebook matches the cleaned version of its solution.

Nothing is written. The command exits with a non-zero status when a published
notebook is missing or differs, which makes it suitable for CI.`,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := nbFlags.publisher()
		if err != nil {
			wrapFatalln("create publisher", err)
			return
		}

		ctx, cancel := interruptible()
		defer cancel()

		results, err := p.Check(ctx)
		if err != nil {
			wrapFatalln("check notebooks", err)
			return
		}

		stale := 0
		mark := color.New(color.FgYellow).SprintFunc()
		for _, res := range results {
			if res.Stale {
				stale++
				infoLogger.Printf("%s %s (from %s)", mark("stale"), res.Destination, res.Source)
			}
		}
		if stale > 0 {
			wrapFatalWithCodef(staleExitCode, "%d of %d published notebook(s) are stale: run nbredact publish", stale, len(results))
			return
		}
		infoLogger.Printf("%d published notebook(s) up to date", len(results))
	},
}

func init() {
	addPublishFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}
