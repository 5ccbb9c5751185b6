// Copyright © 2018 One Concern

// Package publish turns a tree of solution notebooks into student notebooks.
//
// Source notebooks are located with a glob pattern on a source filesystem,
// cleaned by a redactor, then written under the same relative path on a
// destination filesystem, minus a leading directory (e.g. "solutions").
//
// Example:
//
//	p := publish.New(
//		publish.SourceFs(afero.NewBasePathFs(afero.NewOsFs(), "/course")),
//		publish.DestinationFs(afero.NewBasePathFs(afero.NewOsFs(), "/course/notebooks")),
//	)
//	results, err := p.Run(ctx)
package publish
