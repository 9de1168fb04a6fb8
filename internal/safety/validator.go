package safety

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrEmptyName     = errors.New("mount name is empty")
	ErrAbsoluteName  = errors.New("mount name must be relative")
	ErrTraversal     = errors.New("path traversal detected")
	ErrNestedName    = errors.New("mount name must not contain a path separator")
	ErrDuplicateName = errors.New("mount name used more than once")
)

// ValidateMountName enforces that a mount resolves to a single file directly
// inside the preopened directory the host provisions.
func ValidateMountName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return fmt.Errorf("%w: %s", ErrAbsoluteName, name)
	}
	if DetectTraversal(name) {
		return fmt.Errorf("%w: %s", ErrTraversal, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %s", ErrNestedName, name)
	}
	return nil
}

// ValidateMountNames validates each name and rejects duplicates.
func ValidateMountNames(names ...string) error {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if err := ValidateMountName(n); err != nil {
			return err
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateName, n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// DetectTraversal reports whether any segment of path is "..".
func DetectTraversal(path string) bool {
	for _, seg := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return true
		}
	}
	return false
}
