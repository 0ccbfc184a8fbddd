//go:build !unix

package walk

import "io/fs"

func platformIdentity(fs.FileInfo) (Identity, bool) {
	return Identity{}, false
}
