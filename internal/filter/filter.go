// Package filter parses and evaluates size predicates such as "+500k".
package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
)

// ErrInvalidFilter is returned for a size filter that does not follow <+-><NUM><UNIT>.
var ErrInvalidFilter = errors.New("invalid size filter")

// Op is the comparison a SizeFilter applies.
type Op int

const (
	// Exactly matches sizes equal to the bound.
	Exactly Op = iota
	// AtLeast matches sizes greater than or equal to the bound.
	AtLeast
	// AtMost matches sizes less than or equal to the bound.
	AtMost
)

// SizeFilter is a predicate over a byte count.
type SizeFilter struct {
	Op    Op
	Bytes uint64
}

// Parse reads a filter of the form <+-><NUM><UNIT>. A leading '+' means at
// least, '-' means at most, and no sign means exactly. Units are case
// insensitive: b, k, m, g, t are powers of 1000 and ki, mi, gi, ti powers of
// 1024. A bare number is a byte count.
func Parse(s string) (SizeFilter, error) {
	raw := strings.TrimSpace(s)

	var f SizeFilter

	switch {
	case strings.HasPrefix(raw, "+"):
		f.Op = AtLeast
		raw = raw[1:]
	case strings.HasPrefix(raw, "-"):
		f.Op = AtMost
		raw = raw[1:]
	}

	if raw == "" || raw[0] < '0' || raw[0] > '9' {
		return SizeFilter{}, fmt.Errorf("%w %q: expected a number after the optional sign", ErrInvalidFilter, s)
	}

	n, err := humanize.ParseBytes(raw)
	if err != nil {
		return SizeFilter{}, fmt.Errorf("%w %q: %w", ErrInvalidFilter, s, err)
	}

	f.Bytes = n

	return f, nil
}

// Matches reports whether size satisfies the filter.
func (f SizeFilter) Matches(size uint64) bool {
	switch f.Op {
	case AtLeast:
		return size >= f.Bytes
	case AtMost:
		return size <= f.Bytes
	default:
		return size == f.Bytes
	}
}

// String renders the filter in its canonical byte form, e.g. "+150".
func (f SizeFilter) String() string {
	n := strconv.FormatUint(f.Bytes, 10)

	switch f.Op {
	case AtLeast:
		return "+" + n
	case AtMost:
		return "-" + n
	default:
		return n
	}
}

// List is a set of filters combined with logical AND. It implements
// pflag.Value so a flag can be repeated.
type List []SizeFilter

// Matches reports whether size satisfies every filter. An empty list matches everything.
func (l List) Matches(size uint64) bool {
	return lo.EveryBy(l, func(f SizeFilter) bool { return f.Matches(size) })
}

// String implements pflag.Value.
func (l *List) String() string {
	if len(*l) == 0 {
		return ""
	}

	return "[" + strings.Join(lo.Map(*l, func(f SizeFilter, _ int) string { return f.String() }), ",") + "]"
}

// Set implements pflag.Value by appending one parsed filter.
func (l *List) Set(s string) error {
	f, err := Parse(s)
	if err != nil {
		return err
	}

	*l = append(*l, f)

	return nil
}

// Type implements pflag.Value.
func (l *List) Type() string {
	return "size"
}
