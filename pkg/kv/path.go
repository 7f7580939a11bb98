package kv

import "strings"

// BuildRootedPath turns a caller-supplied key into the canonical path form
// used throughout the framework: absolute, slash-delimited, duplicate
// separators collapsed, no trailing slash. The empty key maps to "/".
//
// Examples:
//
//	BuildRootedPath("foo/bar")   → "/foo/bar"
//	BuildRootedPath("/foo/bar/") → "/foo/bar"
//	BuildRootedPath("a//b")      → "/a/b"
//	BuildRootedPath("")          → "/"
//
// Canonical paths satisfy the invariant hierarchical backends rely on: the
// parent of path[:i] for any separator index i is itself a canonical path.
func BuildRootedPath(key string) string {
	if key == "" {
		return "/"
	}

	segments := strings.Split(key, "/")

	// Collapse empty segments produced by leading, trailing or duplicate
	// separators.
	parts := segments[:0]
	for _, seg := range segments {
		if seg != "" {
			parts = append(parts, seg)
		}
	}

	if len(parts) == 0 {
		return "/"
	}

	return "/" + strings.Join(parts, "/")
}
