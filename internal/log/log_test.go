package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetLevel(LevelWarn)
	defer SetLevel(LevelInfo)

	Debug("debug %d", 1)
	Info("info %d", 2)
	Warn("warn %d", 3)
	Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "[SWLS] warn 3")
	assert.Contains(t, out, "[SWLS] error 4")
}

func TestGetLevel(t *testing.T) {
	SetLevel(LevelDebug)
	defer SetLevel(LevelInfo)
	assert.Equal(t, LevelDebug, GetLevel())
}
