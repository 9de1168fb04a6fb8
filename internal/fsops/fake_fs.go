package fsops

import (
	"io/fs"
	"sync"
)

// FakeFS implements FS for testing.
// Files live in memory and every call is recorded so tests can prove which
// mounts a function touched.
type FakeFS struct {
	mu       sync.Mutex
	Files    map[string][]byte
	ReadOnly bool
	Calls    []string
}

// NewFakeFS returns a FakeFS seeded with the given files.
func NewFakeFS(files map[string][]byte) *FakeFS {
	f := &FakeFS{Files: make(map[string][]byte, len(files))}
	for name, data := range files {
		f.Files[name] = append([]byte(nil), data...)
	}
	return f
}

func (f *FakeFS) ReadFile(name string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, "read:"+name)
	data, ok := f.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (f *FakeFS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, "write:"+name)
	if f.ReadOnly {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	if f.Files == nil {
		f.Files = make(map[string][]byte)
	}
	f.Files[name] = append([]byte(nil), data...)
	return nil
}
