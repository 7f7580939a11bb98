package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRootedPath(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"relative key", "foo/bar", "/foo/bar"},
		{"already rooted", "/foo/bar", "/foo/bar"},
		{"trailing slash", "foo/bar/", "/foo/bar"},
		{"duplicate separators", "a//b", "/a/b"},
		{"leading and trailing", "//a/b//", "/a/b"},
		{"single segment", "foo", "/foo"},
		{"empty key", "", "/"},
		{"only slashes", "///", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildRootedPath(tt.key))
		})
	}
}

// Every separator-bounded prefix of a canonical path must itself be
// canonical; the ancestor walk in hierarchical adapters relies on it.
func TestBuildRootedPath_PrefixesAreCanonical(t *testing.T) {
	path := BuildRootedPath("a/b/c/d")

	for i, r := range path {
		if r != '/' || i == 0 {
			continue
		}
		prefix := path[:i]
		assert.Equal(t, prefix, BuildRootedPath(prefix))
	}
}
