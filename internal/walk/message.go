package walk

import "fmt"

// ErrorKind classifies a filesystem failure recovered during a walk.
type ErrorKind int

const (
	// NoMetadataForPath means the entry could not be lstat'ed.
	NoMetadataForPath ErrorKind = iota
	// CouldNotReadDir means a directory's contents could not be listed.
	CouldNotReadDir
)

func (k ErrorKind) String() string {
	switch k {
	case NoMetadataForPath:
		return "NoMetadataForPath"
	case CouldNotReadDir:
		return "CouldNotReadDir"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Error is a filesystem failure at Path. Err holds the underlying cause when known.
type Error struct {
	Kind ErrorKind `json:"kind" yaml:"kind"`
	Path string    `json:"path" yaml:"path"`
	Err  error     `json:"-"    yaml:"-"`
}

func (e Error) Error() string {
	switch e.Kind {
	case CouldNotReadDir:
		return fmt.Sprintf("could not read contents of directory '%s'", e.Path)
	default:
		return fmt.Sprintf("could not retrieve metadata for path '%s'", e.Path)
	}
}

func (e Error) Unwrap() error {
	return e.Err
}

// Message is the unit sent from walkers to the Aggregator. Exactly one of
// Error or the size fields is meaningful: a non-nil Error marks a failure.
type Message struct {
	// ID is the physical identity of the file, nil when the platform has none.
	ID    *Identity
	Path  string
	Size  uint64
	Error *Error
}

func sizeEntry(id *Identity, path string, size uint64) Message {
	return Message{ID: id, Path: path, Size: size}
}

func errorEntry(kind ErrorKind, path string, err error) Message {
	return Message{Path: path, Error: &Error{Kind: kind, Path: path, Err: err}}
}
