// Package output decides where produced deck goes and writes it there.
package output

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
)

const (
	Extension   = ".pptx"
	badFileName = "_bad_file_name_"
)

// BuildPath returns deck path for source file src. Destination dst may be
// empty (directory of the source), a directory or a file name ending with
// .pptx. Non empty name is expanded name template, it may contain slash
// separated subdirectories which are created under destination directory.
// Every path segment coming from the source or the template is cleaned and
// optionally transliterated.
func BuildPath(src, dst, name string, transliterate bool) string {
	if strings.EqualFold(filepath.Ext(dst), Extension) {
		return dst
	}

	outDir := dst
	if len(outDir) == 0 {
		outDir = filepath.Dir(src)
	}

	if len(strings.TrimSpace(name)) == 0 {
		base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		return filepath.Join(outDir, cleanSegment(base, transliterate)+Extension)
	}
	return assemblePath(outDir, name, transliterate)
}

// assemblePath puts expanded template name which may have subdirectories
// under outDir.
func assemblePath(outDir, name string, transliterate bool) string {
	segments := splitPath(filepath.FromSlash(name))
	if len(segments) == 0 {
		return filepath.Join(outDir, badFileName+Extension)
	}

	last := strings.TrimSuffix(segments[len(segments)-1], Extension)
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, outDir)
	for _, segment := range segments[:len(segments)-1] {
		parts = append(parts, cleanSegment(segment, transliterate))
	}
	parts = append(parts, cleanSegment(last, transliterate)+Extension)
	return filepath.Join(parts...)
}

// splitPath breaks relative path into segments dropping empty and relative
// ones, so template cannot escape destination directory.
func splitPath(path string) []string {
	segments := make([]string, 0, 8)
	for head, tail := filepath.Split(path); ; head, tail = filepath.Split(head) {
		if tail != "" && tail != "." && tail != ".." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimRight(head, string(filepath.Separator))
		if head == "" || head == filepath.VolumeName(head) {
			break
		}
	}
	return segments
}

func cleanSegment(segment string, transliterate bool) string {
	if transliterate {
		segment = slug.Make(segment)
	}
	return CleanFileName(segment)
}
