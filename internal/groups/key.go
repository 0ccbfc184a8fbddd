package groups

import (
	"path/filepath"
	"strings"
)

// Ext returns the lowercase extension of path without the leading dot.
// A dot at the start of the base name does not begin an extension, so
// ".bashrc" has none.
func Ext(path string) string {
	base := baseName(path)

	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}

	return strings.ToLower(base[i+1:])
}

// Name returns the base name of path, extension included.
func Name(path string) string {
	return baseName(path)
}

// Parent returns the name of the directory that immediately contains path,
// or "" when path has no named parent component.
func Parent(path string) string {
	return baseName(filepath.Dir(path))
}

// baseName is filepath.Base without its placeholder results: an empty path,
// "." and ".." and bare separators or volumes yield "".
func baseName(path string) string {
	if path == "" {
		return ""
	}

	base := filepath.Base(path)

	switch {
	case base == "." || base == "..":
		return ""
	case strings.Trim(base, `/\`) == "":
		return ""
	case base == filepath.VolumeName(path):
		return ""
	}

	return base
}
