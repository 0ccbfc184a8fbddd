// Package groups resolves the key a file's size is accumulated under: its
// extension, its coarse file type, its name or its parent directory.
package groups
