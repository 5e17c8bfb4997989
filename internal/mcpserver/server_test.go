package mcpserver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "no path",
			err:  errors.New("something went wrong"),
			want: "something went wrong",
		},
		{
			name: "tmp path",
			err:  errors.New("scanner: failed to read directory: open /tmp/specs: no such file or directory"),
			want: "scanner: failed to read directory: open <path>: no such file or directory",
		},
		{
			name: "home path",
			err:  errors.New("decode failed for /home/alice/work/api.json"),
			want: "decode failed for <path>",
		},
		{
			name: "users path",
			err:  errors.New("stat /Users/bob/specs/api.yaml: permission denied"),
			want: "stat <path>: permission denied",
		},
		{
			name: "multiple paths",
			err:  errors.New("/var/a.json and /opt/b.json failed"),
			want: "<path> and <path> failed",
		},
		{
			name: "relative path untouched",
			err:  errors.New("open specs/api.json: no such file"),
			want: "open specs/api.json: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom at /tmp/x.json"))
	assert.True(t, result.IsError)
	assert.Len(t, result.Content, 1)
}
