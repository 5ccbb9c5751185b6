// Copyright © 2018 One Concern

package publish

import (
	"github.com/oneconcern/nbredact/pkg/redact"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option to configure a publisher
type Option func(*Publisher)

// SourceFs sets the filesystem holding the solution notebooks
func SourceFs(fs afero.Fs) Option {
	return func(p *Publisher) {
		p.source = fs
	}
}

// DestinationFs sets the filesystem receiving the cleaned notebooks
func DestinationFs(fs afero.Fs) Option {
	return func(p *Publisher) {
		p.destination = fs
	}
}

// Pattern sets the glob locating notebooks on the source filesystem
func Pattern(pattern string) Option {
	return func(p *Publisher) {
		if pattern != "" {
			p.pattern = pattern
		}
	}
}

// Strip sets the leading directory removed from source paths. An empty value keeps paths unchanged.
func Strip(dir string) Option {
	return func(p *Publisher) {
		p.strip = dir
	}
}

// Redactor sets the redactor applied to each notebook
func Redactor(r *redact.Redactor) Option {
	return func(p *Publisher) {
		p.redactor = r
	}
}

// Logger sets the logger
func Logger(l *zap.Logger) Option {
	return func(p *Publisher) {
		if l != nil {
			p.l = l
		}
	}
}
