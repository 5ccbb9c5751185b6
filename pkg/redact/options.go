// Copyright © 2018 One Concern

package redact

import (
	"github.com/oneconcern/nbredact/pkg/notebook"
	"go.uber.org/zap"
)

// Option to configure a redactor
type Option func(*Redactor)

// HideTag sets the tag marking cells to empty. An empty tag keeps the default.
func HideTag(tag string) Option {
	return func(r *Redactor) {
		if tag != "" {
			r.hideTag = tag
		}
	}
}

// TodoTag sets the tag marking cells to replace by the placeholder. An empty tag keeps the default.
func TodoTag(tag string) Option {
	return func(r *Redactor) {
		if tag != "" {
			r.todoTag = tag
		}
	}
}

// Placeholder sets the source given to todo cells
func Placeholder(text string) Option {
	return func(r *Redactor) {
		r.placeholder = notebook.NewSource(text)
	}
}

// ClearExecutionCount toggles the reset of execution counts on code cells
func ClearExecutionCount(enabled bool) Option {
	return func(r *Redactor) {
		r.clearExecutionCount = enabled
	}
}

// Logger sets a logger for the redactor
func Logger(l *zap.Logger) Option {
	return func(r *Redactor) {
		if l != nil {
			r.l = l
		}
	}
}

// HideLabel is the tag marking cells to empty
func (r *Redactor) HideLabel() string {
	return r.hideTag
}

// TodoLabel is the tag marking cells to replace by the placeholder
func (r *Redactor) TodoLabel() string {
	return r.todoTag
}
