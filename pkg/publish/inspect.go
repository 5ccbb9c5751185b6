// Copyright © 2018 One Concern

package publish

import (
	"context"

	"github.com/oneconcern/nbredact/pkg/notebook"
)

// Summary counts the cells of a source notebook, as they would be seen by the redactor
type Summary struct {
	Path        string `json:"path" yaml:"path"`
	Code        int    `json:"code" yaml:"code"`
	Markdown    int    `json:"markdown" yaml:"markdown"`
	Raw         int    `json:"raw" yaml:"raw"`
	WithOutputs int    `json:"withOutputs" yaml:"withOutputs"`
	Hide        int    `json:"hide" yaml:"hide"`
	Todo        int    `json:"todo" yaml:"todo"`
}

// Inspect summarizes the source notebooks without modifying anything.
//
// Tags are counted with the tag names of the publisher's redactor. Tags on
// markdown cells are not counted since the redactor leaves them alone.
func (p *Publisher) Inspect(ctx context.Context) ([]Summary, error) {
	files, err := p.Discover()
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summaries, err
		}
		nb, err := notebook.ReadFile(p.source, file)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, p.summarize(file, nb))
	}
	return summaries, nil
}

func (p *Publisher) summarize(path string, nb *notebook.Notebook) Summary {
	s := Summary{Path: path}
	for _, cell := range nb.Cells {
		switch cell.Type {
		case notebook.Markdown:
			s.Markdown++
			continue
		case notebook.Code:
			s.Code++
		case notebook.Raw:
			s.Raw++
		}
		if cell.HasOutputs() {
			s.WithOutputs++
		}
		switch {
		case cell.HasTag(p.redactor.HideLabel()):
			s.Hide++
		case cell.HasTag(p.redactor.TodoLabel()):
			s.Todo++
		}
	}
	return s
}
