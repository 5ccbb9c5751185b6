// Copyright © 2018 One Concern

package notebook

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// Extension of notebook files
const Extension = ".ipynb"

// ReadFile decodes the notebook stored at path on fs
func ReadFile(fs afero.Fs, path string) (*Notebook, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	nb, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%q", path)
	}
	return nb, nil
}

// WriteFile encodes a notebook to path on fs, creating intermediate directories
func WriteFile(fs afero.Fs, path string, nb *Notebook) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err = fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "ensuring directories for %q", path)
		}
	}
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrapf(err, "create %q", path)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if err = Encode(f, nb); err != nil {
		return errors.Wrapf(err, "write %q", path)
	}
	return nil
}
