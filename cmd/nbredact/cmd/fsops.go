// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oneconcern/nbredact/pkg/dlogger"
	"github.com/oneconcern/nbredact/pkg/publish"
	"github.com/oneconcern/nbredact/pkg/redact"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func sanitizePath(path string) (string, error) {
	return filepath.Abs(filepath.Clean(path))
}

// DieIfNotDirectory exits the process if the path is not an accessible directory.
func DieIfNotDirectory(path string) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		wrapFatalln(fmt.Sprintf("couldn't stat %q", path), err)
		return
	}
	if !fileInfo.IsDir() {
		wrapFatalln("incorrect file info", fmt.Errorf("%q is not a directory", path))
	}
}

func (flags *flagsT) getLogger() (*zap.Logger, error) {
	return dlogger.GetConsoleLogger(flags.root.logLevel)
}

func (flags *flagsT) redactor(logger *zap.Logger) *redact.Redactor {
	opts := []redact.Option{
		redact.HideTag(flags.rules.HideTag),
		redact.TodoTag(flags.rules.TodoTag),
		redact.ClearExecutionCount(!flags.rules.KeepExecutionCount),
		redact.Logger(logger),
	}
	if flags.rules.Placeholder != "" {
		opts = append(opts, redact.Placeholder(flags.rules.Placeholder))
	}
	return redact.New(opts...)
}

// publisher builds a publisher rooted at the source and destination directories.
//
// The destination must not be the solutions directory itself, or solutions would be overwritten.
func (flags *flagsT) publisher() (*publish.Publisher, error) {
	logger, err := flags.getLogger()
	if err != nil {
		return nil, fmt.Errorf("get logger: %w", err)
	}

	source, err := sanitizePath(flags.paths.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to sanitize source: %s: %w", flags.paths.Source, err)
	}
	dest, err := sanitizePath(flags.paths.Dest)
	if err != nil {
		return nil, fmt.Errorf("failed to sanitize destination: %s: %w", flags.paths.Dest, err)
	}
	if dest == filepath.Join(source, flags.paths.Strip) {
		return nil, fmt.Errorf("destination %s would overwrite the solution notebooks", dest)
	}

	DieIfNotDirectory(source)

	return publish.New(
		publish.SourceFs(afero.NewBasePathFs(afero.NewOsFs(), source)),
		publish.DestinationFs(afero.NewBasePathFs(afero.NewOsFs(), dest)),
		publish.Pattern(flags.paths.Pattern),
		publish.Strip(flags.paths.Strip),
		publish.Redactor(flags.redactor(logger)),
		publish.Logger(logger),
	), nil
}
