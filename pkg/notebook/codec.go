// Copyright © 2018 One Concern

package notebook

import (
	"bytes"
	stdjson "encoding/json"
	"io"
	"io/ioutil"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// MinFormat is the oldest nbformat major version understood by this package
const MinFormat = 4

// ErrUnsupportedFormat is returned when decoding a notebook older than nbformat v4
var ErrUnsupportedFormat = errors.New("unsupported notebook format")

// nbformat writers do not escape HTML and sort mapping keys
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

const indent = " "

const (
	keyCells          = "cells"
	keyMetadata       = "metadata"
	keyNBFormat       = "nbformat"
	keyNBFormatMinor  = "nbformat_minor"
	keyCellType       = "cell_type"
	keySource         = "source"
	keyOutputs        = "outputs"
	keyExecutionCount = "execution_count"
)

var rawNull = jsoniter.RawMessage("null")

// Decode reads a whole notebook document
func Decode(r io.Reader) (*Notebook, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read notebook")
	}
	var nb Notebook
	if err := json.Unmarshal(b, &nb); err != nil {
		return nil, errors.Wrap(err, "decode notebook")
	}
	if nb.NBFormat < MinFormat {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "nbformat %d", nb.NBFormat)
	}
	return &nb, nil
}

// Encode writes a notebook document, indented the way nbformat does, with a trailing newline
func Encode(w io.Writer, nb *Notebook) error {
	compact, err := json.Marshal(nb)
	if err != nil {
		return errors.Wrap(err, "encode notebook")
	}
	// raw fragments kept from the input carry their own layout: re-indent the whole document
	var buf bytes.Buffer
	if err := stdjson.Indent(&buf, compact, "", indent); err != nil {
		return errors.Wrap(err, "indent notebook")
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

// UnmarshalJSON decodes a notebook document, keeping unknown keys
func (nb *Notebook) UnmarshalJSON(data []byte) error {
	fields := make(map[string]jsoniter.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	restoreNulls(fields)
	*nb = Notebook{}
	if err := pop(fields, keyCells, &nb.Cells); err != nil {
		return errors.Wrap(err, keyCells)
	}
	if err := pop(fields, keyMetadata, &nb.Metadata); err != nil {
		return errors.Wrap(err, keyMetadata)
	}
	restoreNulls(nb.Metadata)
	if err := pop(fields, keyNBFormat, &nb.NBFormat); err != nil {
		return errors.Wrap(err, keyNBFormat)
	}
	if err := pop(fields, keyNBFormatMinor, &nb.NBFormatMinor); err != nil {
		return errors.Wrap(err, keyNBFormatMinor)
	}
	if len(fields) > 0 {
		nb.Extra = fields
	}
	return nil
}

// MarshalJSON encodes a notebook document with sorted keys
func (nb Notebook) MarshalJSON() ([]byte, error) {
	fields := make(map[string]interface{}, len(nb.Extra)+4)
	for k, v := range nb.Extra {
		fields[k] = v
	}
	cells := nb.Cells
	if cells == nil {
		cells = []*Cell{}
	}
	fields[keyCells] = cells
	fields[keyMetadata] = nonNilMap(nb.Metadata)
	fields[keyNBFormat] = nb.NBFormat
	fields[keyNBFormatMinor] = nb.NBFormatMinor
	return json.Marshal(fields)
}

// UnmarshalJSON decodes a cell, keeping unknown keys
func (c *Cell) UnmarshalJSON(data []byte) error {
	fields := make(map[string]jsoniter.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	restoreNulls(fields)
	*c = Cell{}
	if err := pop(fields, keyCellType, &c.Type); err != nil {
		return errors.Wrap(err, keyCellType)
	}
	if raw, ok := fields[keySource]; ok {
		source, err := decodeSource(raw)
		if err != nil {
			return errors.Wrap(err, keySource)
		}
		c.Source = source
		delete(fields, keySource)
	}
	if err := pop(fields, keyMetadata, &c.Metadata); err != nil {
		return errors.Wrap(err, keyMetadata)
	}
	restoreNulls(c.Metadata)
	if raw, ok := fields[keyOutputs]; ok {
		c.Outputs = []jsoniter.RawMessage{}
		if err := json.Unmarshal(raw, &c.Outputs); err != nil {
			return errors.Wrap(err, keyOutputs)
		}
		if c.Outputs == nil {
			c.Outputs = []jsoniter.RawMessage{}
		}
		for i := range c.Outputs {
			if len(c.Outputs[i]) == 0 {
				c.Outputs[i] = rawNull
			}
		}
		delete(fields, keyOutputs)
	}
	if c.Type == Code {
		if err := pop(fields, keyExecutionCount, &c.ExecutionCount); err != nil {
			return errors.Wrap(err, keyExecutionCount)
		}
	}
	if len(fields) > 0 {
		c.Extra = fields
	}
	return nil
}

// MarshalJSON encodes a cell with sorted keys.
//
// Code cells always get an outputs list and an execution count. Other cells get
// an outputs list only when they had one.
func (c Cell) MarshalJSON() ([]byte, error) {
	fields := make(map[string]interface{}, len(c.Extra)+5)
	for k, v := range c.Extra {
		fields[k] = v
	}
	source := []string(c.Source)
	if source == nil {
		source = []string{}
	}
	fields[keyCellType] = c.Type
	fields[keySource] = source
	fields[keyMetadata] = nonNilMap(c.Metadata)

	if c.Type == Code || c.Outputs != nil {
		outputs := c.Outputs
		if outputs == nil {
			outputs = []jsoniter.RawMessage{}
		}
		fields[keyOutputs] = outputs
	}

	if c.Type == Code {
		if c.ExecutionCount == nil {
			fields[keyExecutionCount] = rawNull
		} else {
			fields[keyExecutionCount] = *c.ExecutionCount
		}
	}
	return json.Marshal(fields)
}

// decodeSource accepts both forms of multiline strings: one string or a list of lines
func decodeSource(raw jsoniter.RawMessage) (Source, error) {
	if len(raw) == 0 {
		return Source{}, nil
	}
	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil {
		if lines == nil {
			lines = []string{}
		}
		return Source(lines), nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil, err
	}
	return NewSource(text), nil
}

func pop(fields map[string]jsoniter.RawMessage, key string, target interface{}) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	delete(fields, key)
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, target)
}

// restoreNulls puts back the JSON nulls that jsoniter decodes as empty raw values
func restoreNulls(m map[string]jsoniter.RawMessage) {
	for k, v := range m {
		if len(v) == 0 {
			m[k] = rawNull
		}
	}
}

func nonNilMap(m map[string]jsoniter.RawMessage) map[string]jsoniter.RawMessage {
	if m == nil {
		return map[string]jsoniter.RawMessage{}
	}
	return m
}
