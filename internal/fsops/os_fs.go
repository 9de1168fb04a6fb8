package fsops

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OSFS implements FS using real os package calls.
// Names are resolved against Root; an empty Root means the working directory,
// which is what the WASI guest uses since the host preopens the mounts there.
type OSFS struct {
	Root string
}

func (o OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(o.path(name))
}

func (o OSFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(o.path(name), data, perm)
}

func (o OSFS) path(name string) string {
	if o.Root == "" {
		return name
	}
	return filepath.Join(o.Root, name)
}
