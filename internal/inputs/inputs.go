// Package inputs resolves the positional arguments of the CLI (files and
// directories) into a flat, ordered list of file paths.
package inputs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrPathNotFound is returned when an input path does not exist. A bad
// path aborts the run; nothing is silently skipped.
var ErrPathNotFound = errors.New("path not found")

// Resolve expands each path in order: directories are walked recursively
// and contribute every regular file in lexical walk order, plain files are
// included as-is. The result preserves argument order.
func Resolve(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}
	return files, nil
}
