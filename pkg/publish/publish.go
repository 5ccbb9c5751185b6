// Copyright © 2018 One Concern

package publish

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oneconcern/nbredact/pkg/notebook"
	"github.com/oneconcern/nbredact/pkg/redact"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	// DefaultPattern locates solution notebooks, relative to the source root
	DefaultPattern = "solutions/*/*" + notebook.Extension
	// DefaultStrip is the leading directory removed from source paths to build destination paths
	DefaultStrip = "solutions"
)

// ErrOutsideStrip is returned when a source notebook does not live under the stripped directory
var ErrOutsideStrip = errors.New("notebook is not located under the stripped directory")

// Result describes the outcome for one notebook
type Result struct {
	Source      string        `json:"source" yaml:"source"`
	Destination string        `json:"destination" yaml:"destination"`
	Report      redact.Report `json:"report" yaml:"report"`

	// Stale is only set by Check: the destination is missing or differs from the cleaned source
	Stale bool `json:"stale,omitempty" yaml:"stale,omitempty"`
}

// Publisher cleans source notebooks and writes them to a destination
type Publisher struct {
	source      afero.Fs
	destination afero.Fs
	pattern     string
	strip       string
	redactor    *redact.Redactor
	l           *zap.Logger
}

// New builds a publisher. Both filesystems default to the current working directory.
func New(opts ...Option) *Publisher {
	p := &Publisher{
		pattern: DefaultPattern,
		strip:   DefaultStrip,
		l:       zap.NewNop(),
	}
	for _, apply := range opts {
		apply(p)
	}
	if p.source == nil {
		p.source = afero.NewOsFs()
	}
	if p.destination == nil {
		p.destination = p.source
	}
	if p.redactor == nil {
		p.redactor = redact.New(redact.Logger(p.l))
	}
	return p
}

// Discover lists the source notebooks matching the pattern, sorted by path
func (p *Publisher) Discover() ([]string, error) {
	matches, err := afero.Glob(p.source, p.pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "glob %q", p.pattern)
	}
	files := matches[:0]
	for _, match := range matches {
		fi, err := p.source.Stat(match)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %q", match)
		}
		if fi.IsDir() {
			continue
		}
		files = append(files, match)
	}
	sort.Strings(files)
	return files, nil
}

// Destination maps a source path to its destination path: the stripped directory is removed
func (p *Publisher) Destination(source string) (string, error) {
	clean := filepath.Clean(source)
	if p.strip == "" {
		return clean, nil
	}
	rel, err := filepath.Rel(filepath.Clean(p.strip), clean)
	if err != nil {
		return "", errors.Wrapf(ErrOutsideStrip, "%q: %v", source, err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Wrapf(ErrOutsideStrip, "%q", source)
	}
	return rel, nil
}

// Run cleans every source notebook and writes it to its destination.
//
// Files are processed one at a time. The first error aborts the run: results
// for the notebooks already written are returned along with the error.
func (p *Publisher) Run(ctx context.Context) ([]Result, error) {
	return p.each(ctx, func(nb *notebook.Notebook, res *Result) error {
		if err := notebook.WriteFile(p.destination, res.Destination, nb); err != nil {
			return err
		}
		p.l.Info("published notebook",
			zap.String("source", res.Source),
			zap.String("destination", res.Destination),
			zap.Int("hidden", res.Report.Hidden),
			zap.Int("replaced", res.Report.Replaced),
			zap.Int("outputs", res.Report.OutputsCleared),
		)
		return nil
	})
}

// Check cleans every source notebook in memory and compares it to the existing destination.
// Nothing is written.
func (p *Publisher) Check(ctx context.Context) ([]Result, error) {
	return p.each(ctx, func(nb *notebook.Notebook, res *Result) error {
		var buf bytes.Buffer
		if err := notebook.Encode(&buf, nb); err != nil {
			return errors.Wrapf(err, "%q", res.Source)
		}
		current, err := afero.ReadFile(p.destination, res.Destination)
		switch {
		case os.IsNotExist(err):
			res.Stale = true
		case err != nil:
			return errors.Wrapf(err, "read %q", res.Destination)
		default:
			res.Stale = !bytes.Equal(current, buf.Bytes())
		}
		if res.Stale {
			p.l.Warn("stale notebook", zap.String("source", res.Source), zap.String("destination", res.Destination))
		} else {
			p.l.Debug("notebook up to date", zap.String("destination", res.Destination))
		}
		return nil
	})
}

func (p *Publisher) each(ctx context.Context, done func(*notebook.Notebook, *Result) error) ([]Result, error) {
	files, err := p.Discover()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		p.l.Warn("no notebook found", zap.String("pattern", p.pattern))
	}

	results := make([]Result, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		dest, err := p.Destination(file)
		if err != nil {
			return results, err
		}
		nb, err := notebook.ReadFile(p.source, file)
		if err != nil {
			return results, err
		}
		report, err := p.redactor.Notebook(nb)
		if err != nil {
			return results, errors.Wrapf(err, "%q", file)
		}

		res := Result{
			Source:      file,
			Destination: dest,
			Report:      report,
		}
		if err := done(nb, &res); err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
