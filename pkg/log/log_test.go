package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "debug", want: DebugLevel},
		{input: "info", want: InfoLevel},
		{input: "warn", want: WarnLevel},
		{input: "error", want: ErrorLevel},
		{input: "trace", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestInitJSONOutput(t *testing.T) {
	saved := Logger
	defer func() { Logger = saved }()

	var buf bytes.Buffer
	Init(Config{Level: InfoLevel, JSONOutput: true, Output: &buf})

	logger := WithComponent("config")
	logger.Debug().Msg("hidden")
	logger.Info().Msg("visible")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "config", entry["component"])
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestWithService(t *testing.T) {
	saved := Logger
	defer func() { Logger = saved }()

	var buf bytes.Buffer
	Init(Config{Level: DebugLevel, JSONOutput: true, Output: &buf})

	logger := WithService("core/redis", "")
	logger.Info().Msg("started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "core/redis", entry["package"])
	assert.NotContains(t, entry, "group")
}
