// Copyright © 2018 One Concern

package notebook

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// CellType enumerates the kinds of cells found in a notebook
type CellType string

const (
	// Code cells carry program text and its execution outputs
	Code CellType = "code"
	// Markdown cells carry prose
	Markdown CellType = "markdown"
	// Raw cells are passed verbatim to converters
	Raw CellType = "raw"
)

// TagsKey is the cell metadata key holding tag labels
const TagsKey = "tags"

// RawValue is a JSON value kept verbatim
type RawValue = jsoniter.RawMessage

// Output is an execution result of a code cell, kept verbatim
type Output = RawValue

// Notebook is a notebook document: an ordered list of cells plus document-level metadata
type Notebook struct {
	Cells         []*Cell
	Metadata      map[string]RawValue
	NBFormat      int
	NBFormatMinor int

	// Extra holds the top-level keys this package does not interpret
	Extra map[string]RawValue
}

// Cell is one unit of a notebook
type Cell struct {
	Type     CellType
	Source   Source
	Outputs  []Output
	Metadata map[string]RawValue

	// ExecutionCount is only meaningful for code cells. nil encodes as null.
	ExecutionCount *int

	Extra map[string]RawValue
}

// Source is the text of a cell, as a list of lines. Each line keeps its
// trailing newline, except possibly the last one.
type Source []string

// NewSource splits a text into source lines
func NewSource(text string) Source {
	if text == "" {
		return Source{}
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return Source(lines)
}

// Text joins the source lines back into a single text
func (s Source) Text() string {
	return strings.Join(s, "")
}

// Tags returns the tags held in the cell metadata, and whether a tags entry exists at all
func (c *Cell) Tags() ([]string, bool, error) {
	raw, ok := c.Metadata[TagsKey]
	if !ok {
		return nil, false, nil
	}
	if len(raw) == 0 {
		return nil, true, nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, true, err
	}
	return tags, true, nil
}

// HasTag tells if the cell is tagged with a given label. Malformed tags are reported as not tagged.
func (c *Cell) HasTag(tag string) bool {
	tags, _, err := c.Tags()
	if err != nil {
		return false
	}
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasOutputs tells if the cell carries at least one execution output
func (c *Cell) HasOutputs() bool {
	return len(c.Outputs) > 0
}
