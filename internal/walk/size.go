package walk

import "io/fs"

// SizeMode selects how the size of a file is measured. One mode applies to a whole run.
type SizeMode int

const (
	// DiskUsage counts allocated blocks. It degrades to ApparentSize where the
	// platform does not report block counts.
	DiskUsage SizeMode = iota
	// ApparentSize counts the logical length of the file's content.
	ApparentSize
)

func (m SizeMode) String() string {
	if m == ApparentSize {
		return "apparent-size"
	}

	return "disk-usage"
}

// Size returns the size of the file described by info under mode m.
func (m SizeMode) Size(info fs.FileInfo) uint64 {
	if m == DiskUsage {
		if n, ok := allocated(info); ok {
			return n
		}
	}

	return uint64(max(info.Size(), 0)) //nolint:gosec // Clamped to non-negative
}
