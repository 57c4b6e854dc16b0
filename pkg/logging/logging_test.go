package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitForCLI_WritesText(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("Test", "hidden %d", 1)
	Info("Test", "hello %s", "world")
	Error("Test", errors.New("boom"), "failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "subsystem=Test")
	assert.Contains(t, out, "error=boom")
}

func TestInitForTUI_DeliversEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("Test", "filtered")
	Warn("Test", "careful %d", 2)

	select {
	case e := <-ch:
		assert.Equal(t, LevelWarn, e.Level)
		assert.Equal(t, "careful 2", e.Message)
		assert.Equal(t, "Test", e.Subsystem)
	case <-time.After(time.Second):
		t.Fatal("expected a log entry")
	}
	assert.Len(t, ch, 0)
}

func TestTUIChannel_DropsWhenFull(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	defer CloseTUIChannel()

	before := Dropped()
	for i := 0; i < tuiChannelBufferSize+5; i++ {
		Debug("Flood", "n=%d", i)
	}
	assert.Len(t, ch, tuiChannelBufferSize)
	assert.Equal(t, before+5, Dropped())
}

func TestLogEntryLine(t *testing.T) {
	e := LogEntry{
		Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:     LevelError,
		Subsystem: "Effects",
		Message:   "download failed",
		Err:       errors.New("no such file"),
	}
	line := e.Line()
	require.True(t, strings.HasPrefix(line, "03:04:05"))
	assert.Equal(t, "03:04:05 [ERROR] [Effects] download failed: no such file", line)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}
