// Copyright © 2018 One Concern

// Package redact strips notebook cells of their outputs and rewrites the source
// of tagged non-markdown cells before notebooks are handed out.
//
// For every cell other than markdown, outputs are cleared and the tags metadata
// entry is consumed. A cell tagged "hide" loses its source. A cell tagged "todo"
// (and not "hide") gets its source replaced by a placeholder.
package redact

import (
	"fmt"

	"github.com/oneconcern/nbredact/pkg/notebook"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultHideTag marks cells whose source is removed
	DefaultHideTag = "hide"
	// DefaultTodoTag marks cells whose source is replaced by the placeholder
	DefaultTodoTag = "todo"
	// DefaultPlaceholder is the source given to todo cells
	DefaultPlaceholder = "# YOUR CODE HERE"
)

// ErrMalformedTags is returned when a cell carries a tags entry which is not a list of strings
var ErrMalformedTags = errors.New("malformed cell tags")

// Action tells what happened to the source of a cell
type Action int

const (
	// Kept means the source is unchanged
	Kept Action = iota
	// Skipped means the cell was not processed at all
	Skipped
	// Hidden means the source was emptied
	Hidden
	// Replaced means the source was replaced by the placeholder
	Replaced
)

func (a Action) String() string {
	switch a {
	case Kept:
		return "kept"
	case Skipped:
		return "skipped"
	case Hidden:
		return "hidden"
	case Replaced:
		return "replaced"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Report sums up the changes made to a notebook
type Report struct {
	Cells          int `json:"cells" yaml:"cells"`
	Skipped        int `json:"skipped" yaml:"skipped"`
	OutputsCleared int `json:"outputsCleared" yaml:"outputsCleared"`
	CountsCleared  int `json:"countsCleared" yaml:"countsCleared"`
	Hidden         int `json:"hidden" yaml:"hidden"`
	Replaced       int `json:"replaced" yaml:"replaced"`
	TagsConsumed   int `json:"tagsConsumed" yaml:"tagsConsumed"`
}

// Changed tells if the notebook was modified
func (r Report) Changed() bool {
	return r.OutputsCleared+r.CountsCleared+r.Hidden+r.Replaced+r.TagsConsumed > 0
}

// Redactor applies the redaction rules to notebook cells.
//
// Cells are mutated in place.
type Redactor struct {
	hideTag             string
	todoTag             string
	placeholder         notebook.Source
	clearExecutionCount bool
	l                   *zap.Logger
}

// New builds a redactor with the default rules, amended by options
func New(opts ...Option) *Redactor {
	r := &Redactor{
		hideTag:             DefaultHideTag,
		todoTag:             DefaultTodoTag,
		placeholder:         notebook.NewSource(DefaultPlaceholder),
		clearExecutionCount: true,
		l:                   zap.NewNop(),
	}
	for _, apply := range opts {
		apply(r)
	}
	return r
}

// Notebook redacts all the cells of a notebook.
//
// The first malformed cell aborts the redaction: cells before it have been modified already.
func (r *Redactor) Notebook(nb *notebook.Notebook) (Report, error) {
	var report Report
	for i, cell := range nb.Cells {
		hadOutputs := cell.HasOutputs()
		hadCount := cell.ExecutionCount != nil
		_, hadTags := cell.Metadata[notebook.TagsKey]

		action, err := r.Cell(cell)
		if err != nil {
			return report, errors.Wrapf(err, "cell %d", i)
		}

		report.Cells++
		if action == Skipped {
			report.Skipped++
			continue
		}
		if hadOutputs {
			report.OutputsCleared++
		}
		if hadCount && cell.ExecutionCount == nil {
			report.CountsCleared++
		}
		if hadTags {
			report.TagsConsumed++
		}
		switch action {
		case Hidden:
			report.Hidden++
		case Replaced:
			report.Replaced++
		}
		if action != Kept {
			r.l.Debug("cell source rewritten", zap.Int("cell", i), zap.Stringer("action", action))
		}
	}
	return report, nil
}

// Cell redacts a single cell
func (r *Redactor) Cell(cell *notebook.Cell) (Action, error) {
	if cell.Type == notebook.Markdown {
		return Skipped, nil
	}

	if cell.Type == notebook.Code || cell.Outputs != nil {
		cell.Outputs = []notebook.Output{}
	}
	if cell.Type == notebook.Code && r.clearExecutionCount {
		cell.ExecutionCount = nil
	}

	tags, ok, err := cell.Tags()
	if !ok {
		return Kept, nil
	}
	if err != nil {
		return Kept, errors.Wrap(ErrMalformedTags, err.Error())
	}
	delete(cell.Metadata, notebook.TagsKey)

	switch {
	case contains(tags, r.hideTag):
		cell.Source = notebook.Source{}
		return Hidden, nil
	case contains(tags, r.todoTag):
		cell.Source = append(notebook.Source{}, r.placeholder...)
		return Replaced, nil
	default:
		return Kept, nil
	}
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
