// Copyright © 2018 One Concern

package redact

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/oneconcern/nbredact/pkg/notebook"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func tagged(tags string) map[string]notebook.RawValue {
	return map[string]notebook.RawValue{
		"collapsed":       notebook.RawValue(`false`),
		notebook.TagsKey: notebook.RawValue(tags),
	}
}

func output() []notebook.Output {
	return []notebook.Output{notebook.RawValue(`{"output_type":"stream","name":"stdout","text":["hi\n"]}`)}
}

func count(n int) *int {
	return &n
}

// snapshot renders a cell as compact JSON, whatever the layout of its raw values
func snapshot(t *testing.T, cell *notebook.Cell) string {
	b, err := cell.MarshalJSON()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, json.Compact(&buf, b))
	return buf.String()
}

func TestCell(t *testing.T) {
	const solution = "a = 1\nprint(a)\n"

	tests := []struct {
		name       string
		cell       notebook.Cell
		wantAction Action
		wantSource string
	}{
		{
			name:       "no tags",
			cell:       notebook.Cell{Type: notebook.Code, Source: notebook.NewSource(solution), Outputs: output(), ExecutionCount: count(2)},
			wantAction: Kept,
			wantSource: solution,
		},
		{
			name:       "hide",
			cell:       notebook.Cell{Type: notebook.Code, Source: notebook.NewSource(solution), Outputs: output(), Metadata: tagged(`["hide"]`)},
			wantAction: Hidden,
			wantSource: "",
		},
		{
			name:       "todo",
			cell:       notebook.Cell{Type: notebook.Code, Source: notebook.NewSource(solution), Metadata: tagged(`["todo"]`)},
			wantAction: Replaced,
			wantSource: DefaultPlaceholder,
		},
		{
			name:       "hide wins over todo",
			cell:       notebook.Cell{Type: notebook.Code, Source: notebook.NewSource(solution), Metadata: tagged(`["todo", "hide"]`)},
			wantAction: Hidden,
			wantSource: "",
		},
		{
			name:       "other tags",
			cell:       notebook.Cell{Type: notebook.Code, Source: notebook.NewSource(solution), Metadata: tagged(`["slow"]`)},
			wantAction: Kept,
			wantSource: solution,
		},
		{
			name:       "empty tags",
			cell:       notebook.Cell{Type: notebook.Code, Source: notebook.NewSource(solution), Metadata: tagged(`[]`)},
			wantAction: Kept,
			wantSource: solution,
		},
		{
			name:       "raw cell with hide",
			cell:       notebook.Cell{Type: notebook.Raw, Source: notebook.NewSource(solution), Metadata: tagged(`["hide"]`)},
			wantAction: Hidden,
			wantSource: "",
		},
	}

	for _, tts := range tests {
		tt := tts
		t.Run(tt.name, func(t *testing.T) {
			cell := tt.cell
			action, err := New().Cell(&cell)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAction, action)
			assert.Equal(t, tt.wantSource, cell.Source.Text())
			assert.NotContains(t, cell.Metadata, notebook.TagsKey)
			if cell.Type == notebook.Code {
				assert.NotNil(t, cell.Outputs)
				assert.Empty(t, cell.Outputs)
				assert.Nil(t, cell.ExecutionCount)
			} else {
				assert.Nil(t, cell.Outputs)
			}
			if tt.cell.Metadata != nil {
				assert.Contains(t, cell.Metadata, "collapsed", "other metadata must survive")
			}
		})
	}
}

func TestCellMarkdown(t *testing.T) {
	cell := &notebook.Cell{
		Type:     notebook.Markdown,
		Source:   notebook.NewSource("# Title\n"),
		Metadata: tagged(`["hide", "todo"]`),
	}
	before := snapshot(t, cell)

	action, err := New().Cell(cell)
	require.NoError(t, err)
	assert.Equal(t, Skipped, action)
	assert.Equal(t, before, snapshot(t, cell))
}

func TestCellMalformedTags(t *testing.T) {
	for _, tags := range []string{`"hide"`, `[1, 2]`, `{"hide": true}`} {
		cell := &notebook.Cell{Type: notebook.Code, Metadata: tagged(tags)}
		_, err := New().Cell(cell)
		require.Error(t, err, tags)
		assert.True(t, errors.Is(err, ErrMalformedTags), tags)
	}
}

func TestCellOptions(t *testing.T) {
	r := New(
		HideTag("solution"),
		TodoTag("exercise"),
		Placeholder("# fill me\nraise NotImplementedError()"),
		ClearExecutionCount(false),
		Logger(zap.NewExample()),
	)

	hidden := &notebook.Cell{Type: notebook.Code, Source: notebook.NewSource("x = 1"), Metadata: tagged(`["solution"]`), ExecutionCount: count(1)}
	action, err := r.Cell(hidden)
	require.NoError(t, err)
	assert.Equal(t, Hidden, action)
	require.NotNil(t, hidden.ExecutionCount)
	assert.Equal(t, 1, *hidden.ExecutionCount)

	todo := &notebook.Cell{Type: notebook.Code, Source: notebook.NewSource("x = 1"), Metadata: tagged(`["exercise"]`)}
	action, err = r.Cell(todo)
	require.NoError(t, err)
	assert.Equal(t, Replaced, action)
	assert.Equal(t, notebook.Source{"# fill me\n", "raise NotImplementedError()"}, todo.Source)

	// default tags no longer apply
	plain := &notebook.Cell{Type: notebook.Code, Source: notebook.NewSource("x = 1"), Metadata: tagged(`["hide"]`)}
	action, err = r.Cell(plain)
	require.NoError(t, err)
	assert.Equal(t, Kept, action)
	assert.Equal(t, "x = 1", plain.Source.Text())
	assert.NotContains(t, plain.Metadata, notebook.TagsKey)
}

func TestPlaceholderIsNotShared(t *testing.T) {
	r := New()
	a := &notebook.Cell{Type: notebook.Code, Metadata: tagged(`["todo"]`)}
	b := &notebook.Cell{Type: notebook.Code, Metadata: tagged(`["todo"]`)}
	_, err := r.Cell(a)
	require.NoError(t, err)
	_, err = r.Cell(b)
	require.NoError(t, err)

	a.Source[0] = "changed"
	assert.Equal(t, DefaultPlaceholder, b.Source.Text())
}

func loadSolution(t *testing.T) *notebook.Notebook {
	f, err := os.Open("../notebook/testdata/solution.ipynb")
	require.NoError(t, err)
	defer f.Close()
	nb, err := notebook.Decode(f)
	require.NoError(t, err)
	return nb
}

func TestNotebook(t *testing.T) {
	nb := loadSolution(t)
	original := loadSolution(t)

	report, err := New().Notebook(nb)
	require.NoError(t, err)

	assert.Equal(t, Report{
		Cells:          5,
		Skipped:        1,
		OutputsCleared: 1,
		CountsCleared:  2,
		Hidden:         1,
		Replaced:       1,
		TagsConsumed:   2,
	}, report)
	assert.True(t, report.Changed())

	for i, cell := range nb.Cells {
		orig := original.Cells[i]
		if orig.Type == notebook.Markdown {
			assert.Equal(t, snapshot(t, orig), snapshot(t, cell))
			continue
		}
		assert.NotContains(t, cell.Metadata, notebook.TagsKey)
		if cell.Type == notebook.Code {
			assert.Empty(t, cell.Outputs)
		}
		switch {
		case orig.HasTag(DefaultHideTag):
			assert.Empty(t, cell.Source.Text())
		case orig.HasTag(DefaultTodoTag):
			assert.Equal(t, DefaultPlaceholder, cell.Source.Text())
		default:
			assert.Equal(t, orig.Source, cell.Source)
		}
	}
	assert.Equal(t, original.Metadata, nb.Metadata)
}

func TestNotebookIdempotent(t *testing.T) {
	nb := loadSolution(t)
	r := New()

	_, err := r.Notebook(nb)
	require.NoError(t, err)
	var once bytes.Buffer
	require.NoError(t, notebook.Encode(&once, nb))

	report, err := r.Notebook(nb)
	require.NoError(t, err)
	assert.False(t, report.Changed())
	var twice bytes.Buffer
	require.NoError(t, notebook.Encode(&twice, nb))

	assert.Equal(t, once.String(), twice.String())
}

func TestNotebookAbortsOnMalformedTags(t *testing.T) {
	nb := &notebook.Notebook{
		NBFormat: 4,
		Cells: []*notebook.Cell{
			{Type: notebook.Code, Outputs: output()},
			{Type: notebook.Code, Metadata: tagged(`"todo"`)},
			{Type: notebook.Code, Outputs: output()},
		},
	}
	_, err := New().Notebook(nb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cell 1")
	assert.True(t, errors.Is(err, ErrMalformedTags))
	assert.True(t, nb.Cells[2].HasOutputs(), "cells after the fault are left alone")
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "action(9)", Action(9).String())
}
