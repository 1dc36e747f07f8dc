// Package spath handles paths on the remote side of a transfer,
// which are always POSIX style regardless of the local OS.
package spath

import (
	"path"
	"strings"
)

const separator = '/'

// IsAbs reports whether a remote path is absolute
func IsAbs(p string) bool {
	return len(p) > 0 && p[0] == separator
}

// Join joins remote path elements, skipping empty ones, and cleans
// the result
func Join(elem ...string) string {
	var parts []string
	for _, e := range elem {
		if e != "" {
			parts = append(parts, e)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return path.Clean(strings.Join(parts, string(separator)))
}

// ToSlash normalizes a local path fragment for use on the remote,
// converting Windows separators to forward slashes
func ToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
