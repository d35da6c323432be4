// Package archive builds Walk abstraction on top of "archive/zip". Office
// documents (PPTX, XLSX) are zip packages, so this is how produced decks are
// inspected.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// WalkFunc is called for each file in the package visited by Walk. If an
// error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk visits all files in the archive whose names start with prefix.
// Entries with absolute names or ".." components make the whole package
// invalid.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// Count returns number of files in the archive matching shell pattern (see
// path.Match), e.g. "ppt/slides/slide*.xml".
func Count(archive, pattern string) (int, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return 0, err
	}
	dir, _ := path.Split(pattern)

	var n int
	err := Walk(archive, dir, func(_ string, f *zip.File) error {
		if ok, _ := path.Match(pattern, f.Name); ok {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ReadFile returns content of a single named part of the package.
func ReadFile(archive, name string) ([]byte, error) {
	var (
		data  []byte
		found bool
	)
	err := Walk(archive, name, func(_ string, f *zip.File) error {
		if f.Name != name {
			return nil
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err = io.ReadAll(rc)
		found = true
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s: %q not found", archive, name)
	}
	return data, nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
