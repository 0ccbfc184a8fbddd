package walk

import "io/fs"

// Identity distinguishes physical files from the paths that name them.
// Two entries with equal identity are hard links to the same storage.
type Identity struct {
	Dev uint64
	Ino uint64
}

// IdentityOf returns the identity of the file described by info, or nil when
// the platform does not expose one. Without an identity every entry is
// treated as unique.
func IdentityOf(info fs.FileInfo) *Identity {
	id, ok := platformIdentity(info)
	if !ok {
		return nil
	}

	return &id
}
