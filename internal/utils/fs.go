package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir ensures the parent directory of path exists, creating it if
// necessary
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}

// ReplaceExt replaces the extension of path with ext ("" removes it).
// A path without an extension gets ext appended.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// ContainsPath reports whether path lies under root. Both paths are
// normalized first; the comparison is a plain case-sensitive prefix test on
// path components, not a symlink-aware containment check.
func ContainsPath(root, path string) bool {
	root = filepath.Clean(root)
	path = filepath.Clean(path)
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}

// RelativeTo returns path relative to root, or the path unchanged when it
// cannot be made relative.
func RelativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
