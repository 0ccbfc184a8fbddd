//go:build unix

package walk

import (
	"io/fs"
	"syscall"
)

// blockSize is the unit of Stat_t.Blocks, fixed at 512 regardless of the filesystem block size.
const blockSize = 512

func allocated(info fs.FileInfo) (uint64, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok || stat == nil || stat.Blocks < 0 {
		return 0, false
	}

	return uint64(stat.Blocks) * blockSize, true //nolint:gosec // Checked non-negative
}
