package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{FATAL, "FATAL"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel("warning"))
	assert.Equal(t, ERROR, ParseLevel("ERROR"))
	assert.Equal(t, INFO, ParseLevel("nonsense"))
}

func TestDebugRespectsVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetWriterForAll(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
	})

	SetVerbose(false)
	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}

func TestInfoAndExtraSink(t *testing.T) {
	var console, file bytes.Buffer
	SetWriterForAll(&console)
	AddWriterForAll(&file)

	Info("Analyzer: scanned %d files", 7)

	assert.Contains(t, console.String(), "Analyzer: scanned 7 files")
	assert.Contains(t, console.String(), "INF")
	assert.Contains(t, file.String(), `"level":"info"`)
	assert.Contains(t, file.String(), `"message":"Analyzer: scanned 7 files"`)
}

func TestSetLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	SetWriterForAll(&buf)
	t.Cleanup(func() {
		SetLevel(INFO)
		SetVerbose(false)
	})

	SetLevel(ParseLevel("warn"))
	Info("quiet info")
	Warn("loud warn")
	assert.NotContains(t, buf.String(), "quiet info")
	assert.Contains(t, buf.String(), "loud warn")

	SetLevel(ParseLevel("debug"))
	assert.True(t, IsVerbose())
	Debug("debug now shown")
	assert.Contains(t, buf.String(), "debug now shown")
}

func TestRemoveWriterForAll(t *testing.T) {
	var console, file bytes.Buffer
	SetWriterForAll(&console)
	AddWriterForAll(&file)

	Info("before")
	RemoveWriterForAll(&file)
	Info("after")

	assert.Contains(t, file.String(), "before")
	assert.NotContains(t, file.String(), "after")
	assert.Contains(t, console.String(), "after")
}

func TestFatalCallsExit(t *testing.T) {
	var buf bytes.Buffer
	SetWriterForAll(&buf)

	code := -1
	SetExitFunc(func(c int) { code = c })

	GetLogFromLevel(FATAL)("boom")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "boom")
}
