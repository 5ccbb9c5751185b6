// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

type flagsT struct {
	paths struct {
		Source  string
		Dest    string
		Pattern string
		Strip   string
	}
	rules struct {
		HideTag            string
		TodoTag            string
		Placeholder        string
		KeepExecutionCount bool
	}
	root struct {
		logLevel string
	}
	core struct {
		Template string
	}
	doc struct {
		docTarget string
	}
}

var nbFlags = flagsT{}

func addSourceFlag(cmd *cobra.Command) string {
	source := "source"
	cmd.Flags().StringVar(&nbFlags.paths.Source, source, "", `The root directory holding the solution notebooks (defaults to ".")`)
	return source
}

func addDestFlag(cmd *cobra.Command) string {
	dest := "dest"
	cmd.Flags().StringVar(&nbFlags.paths.Dest, dest, "", `The root directory receiving the published notebooks (defaults to "`+defaultDest+`")`)
	return dest
}

func addPatternFlag(cmd *cobra.Command) string {
	pattern := "pattern"
	cmd.Flags().StringVar(&nbFlags.paths.Pattern, pattern, "", "The glob pattern locating notebooks, relative to the source directory")
	return pattern
}

func addStripFlag(cmd *cobra.Command) string {
	strip := "strip"
	cmd.Flags().StringVar(&nbFlags.paths.Strip, strip, "",
		`The leading directory removed from notebook paths to build destination paths. Use "." to keep paths unchanged`)
	return strip
}

func addHideTagFlag(cmd *cobra.Command) string {
	c := "hide-tag"
	cmd.Flags().StringVar(&nbFlags.rules.HideTag, c, "", "The cell tag removing the source of a cell")
	return c
}

func addTodoTagFlag(cmd *cobra.Command) string {
	c := "todo-tag"
	cmd.Flags().StringVar(&nbFlags.rules.TodoTag, c, "", "The cell tag replacing the source of a cell by the placeholder")
	return c
}

func addPlaceholderFlag(cmd *cobra.Command) string {
	c := "placeholder"
	cmd.Flags().StringVar(&nbFlags.rules.Placeholder, c, "", "The source given to cells tagged as todo")
	return c
}

func addKeepExecutionCountFlag(cmd *cobra.Command) string {
	c := "keep-execution-count"
	cmd.Flags().BoolVar(&nbFlags.rules.KeepExecutionCount, c, false, "Keep the execution counts of code cells")
	return c
}

func addLogLevel(cmd *cobra.Command) string {
	loglevel := "loglevel"
	cmd.PersistentFlags().StringVar(&nbFlags.root.logLevel, loglevel, "info", "The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug")
	return loglevel
}

func addTemplateFlag(cmd *cobra.Command) string {
	c := "format"
	cmd.Flags().StringVar(&nbFlags.core.Template, c, "", `Pretty-print notebook summaries using a Go template. Use '{{ printf "%#v" . }}' to explore available fields`)
	return c
}

func addTargetFlag(cmd *cobra.Command) string {
	c := "target-dir"
	cmd.Flags().StringVar(&nbFlags.doc.docTarget, c, ".", "The target directory where to generate the markdown documentation")
	return c
}

// addPublishFlags registers the flags shared by commands walking the solutions
func addPublishFlags(cmd *cobra.Command) {
	addSourceFlag(cmd)
	addDestFlag(cmd)
	addPatternFlag(cmd)
	addStripFlag(cmd)
	addHideTagFlag(cmd)
	addTodoTagFlag(cmd)
	addPlaceholderFlag(cmd)
	addKeepExecutionCountFlag(cmd)
}

/** parameters struct from other formats */

// apply config file + env vars to structure used to parse cli flags
func (flags *flagsT) setDefaultsFromConfig(c *CLIConfig) {
	if flags.paths.Source == "" {
		flags.paths.Source = c.Source
	}
	if flags.paths.Dest == "" {
		flags.paths.Dest = c.Dest
	}
	if flags.paths.Pattern == "" {
		flags.paths.Pattern = c.Pattern
	}
	if flags.paths.Strip == "" {
		flags.paths.Strip = c.Strip
	}
	if flags.rules.HideTag == "" {
		flags.rules.HideTag = c.HideTag
	}
	if flags.rules.TodoTag == "" {
		flags.rules.TodoTag = c.TodoTag
	}
	if flags.rules.Placeholder == "" {
		flags.rules.Placeholder = c.Placeholder
	}
	if !c.ClearExecutionCount {
		flags.rules.KeepExecutionCount = true
	}
}
