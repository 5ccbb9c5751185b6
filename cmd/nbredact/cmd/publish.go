// Copyright © 2018 One Concern

package cmd

import (
	"github.com/fatih/color"
	"github.com/oneconcern/nbredact/pkg/publish"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish cleaned notebooks",
	Long: `Publish the solution notebooks to students.

Each notebook matching the pattern under the source directory is stripped of its outputs,
its tagged cells are redacted, and it is written under the destination directory.

Notebooks are processed one at a time: the first failure stops the run.`,
	Example: `% nbredact publish --source course --dest course/notebooks
week1/lab.ipynb <- solutions/week1/lab.ipynb: 1 hidden, 2 todo, 3 outputs cleared
published 1 notebook(s)`,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := nbFlags.publisher()
		if err != nil {
			wrapFatalln("create publisher", err)
			return
		}

		ctx, cancel := interruptible()
		defer cancel()

		results, err := p.Run(ctx)
		for _, res := range results {
			printResult(res)
		}
		if err != nil {
			wrapFatalln("publish notebooks", err)
			return
		}
		infoLogger.Printf("published %d notebook(s)", len(results))
	},
}

func printResult(res publish.Result) {
	arrow := color.New(color.FgGreen).SprintFunc()
	infoLogger.Printf("%s %s %s: %d hidden, %d todo, %d outputs cleared",
		res.Destination, arrow("<-"), res.Source,
		res.Report.Hidden, res.Report.Replaced, res.Report.OutputsCleared,
	)
}

func init() {
	addPublishFlags(publishCmd)
	rootCmd.AddCommand(publishCmd)
}
