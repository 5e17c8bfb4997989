package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APISCOPER_MAX_NESTING_DEPTH", "")
	t.Setenv("APISCOPER_MAX_FILE_SIZE", "")

	c := loadConfig()
	assert.Equal(t, 100, c.MaxNestingDepth)
	assert.EqualValues(t, 10*1024*1024, c.MaxFileSize)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APISCOPER_MAX_NESTING_DEPTH", "25")
	t.Setenv("APISCOPER_MAX_FILE_SIZE", "2048")

	c := loadConfig()
	assert.Equal(t, 25, c.MaxNestingDepth)
	assert.EqualValues(t, 2048, c.MaxFileSize)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not a number", value: "lots"},
		{name: "negative", value: "-5"},
		{name: "zero", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APISCOPER_MAX_NESTING_DEPTH", tt.value)
			t.Setenv("APISCOPER_MAX_FILE_SIZE", tt.value)

			c := loadConfig()
			assert.Equal(t, 100, c.MaxNestingDepth, "invalid values fall back to the default")
			assert.EqualValues(t, 10*1024*1024, c.MaxFileSize)
		})
	}
}
