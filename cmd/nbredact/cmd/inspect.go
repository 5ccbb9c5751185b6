// Copyright © 2018 One Concern

package cmd

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/gosuri/uitable"
	"github.com/oneconcern/nbredact/pkg/publish"
	"github.com/spf13/cobra"
)

var summaryTemplate func(flagsT) (*template.Template, error)

func applySummaryTemplate(t *template.Template, summary publish.Summary) error {
	var buf bytes.Buffer
	if err := t.Execute(&buf, summary); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	infoLogger.Println(buf.String())
	return nil
}

func summaryTable(summaries []publish.Summary) *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("NOTEBOOK", "CODE", "MARKDOWN", "RAW", "OUTPUTS", "HIDE", "TODO")
	for _, s := range summaries {
		table.AddRow(s.Path, s.Code, s.Markdown, s.Raw, s.WithOutputs, s.Hide, s.Todo)
	}
	return table
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize solution notebooks",
	Long: `Summarize the solution notebooks which would be published: cells by type,
cells carrying outputs, cells tagged to hide or to turn into a todo.

Nothing is written.`,
	Example: `% nbredact inspect --source course
NOTEBOOK                 	CODE	MARKDOWN	RAW	OUTPUTS	HIDE	TODO
solutions/week1/lab.ipynb	3   	1       	1  	1      	1   	1

% nbredact inspect --source course --format '{{ .Path }}: {{ .Todo }}'
solutions/week1/lab.ipynb: 1`,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := nbFlags.publisher()
		if err != nil {
			wrapFatalln("create publisher", err)
			return
		}

		ctx, cancel := interruptible()
		defer cancel()

		summaries, err := p.Inspect(ctx)
		if err != nil {
			wrapFatalln("inspect notebooks", err)
			return
		}

		t, err := summaryTemplate(nbFlags)
		if err != nil {
			wrapFatalln("invalid template", err)
			return
		}
		if t == nil {
			infoLogger.Println(summaryTable(summaries))
			return
		}
		for _, summary := range summaries {
			if err := applySummaryTemplate(t, summary); err != nil {
				wrapFatalln("print summary", err)
				return
			}
		}
	},
}

func init() {
	addPublishFlags(inspectCmd)
	addTemplateFlag(inspectCmd)
	rootCmd.AddCommand(inspectCmd)

	summaryTemplate = func(opts flagsT) (*template.Template, error) {
		if opts.core.Template == "" {
			return nil, nil
		}
		return template.New("summary").Parse(opts.core.Template)
	}
}
