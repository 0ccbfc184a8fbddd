package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrInvalidFormat is returned for an unknown size format.
var ErrInvalidFormat = errors.New("size format is not one of [decimal, binary, bytes, auto]")

// FormatOption selects how byte counts are rendered.
type FormatOption string

const (
	// Decimal renders base-10 units, e.g. MB.
	Decimal FormatOption = "decimal"
	// Binary renders base-2 units, e.g. MiB.
	Binary FormatOption = "binary"
	// Bytes renders the raw byte count.
	Bytes FormatOption = "bytes"
	// Auto renders Decimal on a terminal and Bytes otherwise.
	Auto FormatOption = "auto"
)

// String implements pflag.Value.
func (f *FormatOption) String() string {
	return string(*f)
}

// Set implements pflag.Value.
func (f *FormatOption) Set(s string) error {
	switch v := FormatOption(strings.ToLower(strings.TrimSpace(s))); v {
	case Decimal, Binary, Bytes, Auto:
		*f = v

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// Type implements pflag.Value.
func (f *FormatOption) Type() string {
	return "format"
}

// Resolve replaces Auto by the concrete format for the given output.
func (f FormatOption) Resolve(terminal bool) FormatOption {
	if f != Auto {
		return f
	}

	if terminal {
		return Decimal
	}

	return Bytes
}

// Format renders size. Auto must be resolved first; it renders as Bytes.
func (f FormatOption) Format(size uint64) string {
	switch f {
	case Decimal:
		return humanize.Bytes(size)
	case Binary:
		return humanize.IBytes(size)
	default:
		return strconv.FormatUint(size, 10)
	}
}
