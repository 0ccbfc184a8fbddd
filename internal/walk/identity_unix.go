//go:build unix

package walk

import (
	"io/fs"
	"syscall"
)

func platformIdentity(info fs.FileInfo) (Identity, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok || stat == nil {
		return Identity{}, false
	}

	return Identity{
		Dev: uint64(stat.Dev), //nolint:gosec,unconvert // Dev is signed or narrower on some platforms
		Ino: uint64(stat.Ino), //nolint:gosec,unconvert // Ino width differs per platform
	}, true
}
