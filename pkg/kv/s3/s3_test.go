package s3

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey_Mapping(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		path   string
		want   string
	}{
		{
			name: "rooted path loses leading slash",
			path: "/foo/bar",
			want: "foo/bar",
		},
		{
			name: "single segment",
			path: "/foo",
			want: "foo",
		},
		{
			name:   "prefix prepended",
			prefix: "dittokv/",
			path:   "/foo/bar",
			want:   "dittokv/foo/bar",
		},
		{
			name:   "prefix without trailing slash is used verbatim",
			prefix: "ns-",
			path:   "/foo",
			want:   "ns-foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := &Adapter{keyPrefix: tt.prefix}
			assert.Equal(t, tt.want, adapter.objectKey(tt.path))
		})
	}
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}

func TestMetadata_Capabilities(t *testing.T) {
	adapter := &Adapter{bucket: "test"}

	meta := adapter.Metadata()
	assert.Equal(t, "s3", meta.Scheme)
	assert.True(t, meta.Capability.Read)
	assert.True(t, meta.Capability.Write)
	assert.True(t, meta.Capability.Delete)
}
