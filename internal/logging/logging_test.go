package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, LevelWarn)

	logger.Debug("debug %d", 1)
	logger.Info("info %d", 2)
	logger.Warn("warn %d", 3)
	logger.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "[WARN] warn 3")
	assert.Contains(t, out, "[ERROR] error 4")
}

func TestLogger_HTTPRequestsGated(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, LevelInfo)

	logger.LogHTTPRequest("POST", "/contact", "1.2.3.4", 200, 11, "1ms")
	assert.Empty(t, buf.String())

	logger.SetRequests(true)
	logger.LogHTTPRequest("POST", "/contact", "1.2.3.4", 200, 11, "1ms")
	assert.Contains(t, buf.String(), "/contact")
	assert.Contains(t, buf.String(), "1.2.3.4")
}

func TestLogConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  LogConfig
		wantErr bool
	}{
		{"stdout only", LogConfig{Level: "info"}, false},
		{"upper case level", LogConfig{Level: "DEBUG"}, false},
		{"unknown level", LogConfig{Level: "verbose"}, true},
		{"file without size", LogConfig{Level: "info", File: "x.log"}, true},
		{"file", LogConfig{Level: "info", File: "x.log", MaxSize: 10, MaxBackups: 1, MaxAge: 1}, false},
		{"negative backups", LogConfig{Level: "info", File: "x.log", MaxSize: 10, MaxBackups: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "ctx"))

	base := errors.New("boom")
	err := WrapError(base, "sending")
	require.Error(t, err)
	assert.Equal(t, "sending: boom", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestGetGlobalLogger_FallbackBeforeInit(t *testing.T) {
	assert.NotNil(t, GetGlobalLogger())
}
