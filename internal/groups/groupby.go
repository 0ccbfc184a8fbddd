package groups

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGroupBy is returned when a grouping mode cannot be parsed.
var ErrInvalidGroupBy = errors.New("group is not one of [extension, type, filename, directory]")

// GroupBy selects the key under which file sizes are accumulated.
type GroupBy int

const (
	// Extension groups by lowercase file extension. This is the default.
	Extension GroupBy = iota
	// Type groups by coarse file category, e.g. Image, Video, Document.
	Type
	// FileName groups by base name.
	FileName
	// Directory groups by the name of the immediate parent directory.
	Directory
)

//nolint:gochecknoglobals // Lookup table
var names = [...]string{
	Extension: "extension",
	Type:      "type",
	FileName:  "filename",
	Directory: "directory",
}

// Parse resolves a grouping mode from any case-insensitive prefix of its name,
// so "e", "ext" and "extension" all select Extension.
func Parse(s string) (GroupBy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Extension, fmt.Errorf("%w: empty value", ErrInvalidGroupBy)
	}

	for g, name := range names {
		if strings.HasPrefix(name, s) {
			return GroupBy(g), nil
		}
	}

	return Extension, fmt.Errorf("%w: %q", ErrInvalidGroupBy, s)
}

// String returns the full name of the mode.
func (g GroupBy) String() string {
	if g < 0 || int(g) >= len(names) {
		return fmt.Sprintf("GroupBy(%d)", int(g))
	}

	return names[g]
}

// Set implements pflag.Value.
func (g *GroupBy) Set(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*g = parsed

	return nil
}

// Type implements pflag.Value.
func (g *GroupBy) Type() string {
	return "group"
}

// MarshalText implements encoding.TextMarshaler.
func (g GroupBy) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GroupBy) UnmarshalText(text []byte) error {
	return g.Set(string(text))
}

// Key returns the group key of path under mode g.
func (g GroupBy) Key(path string) string {
	switch g {
	case Type:
		return Classify(Ext(path)).String()
	case FileName:
		return Name(path)
	case Directory:
		return Parent(path)
	default:
		return Ext(path)
	}
}
