package fsops

import "io/fs"

// FS abstracts the mount-file operations the fixture performs.
// Enables tests to inject missing or read-only mounts without touching disk.
type FS interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}
