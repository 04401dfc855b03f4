package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	assert.False(t, IsVerbose())
	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("grid %dx%d", 5, 8)
	Info("steps=%d", 31)
	Warn("no path")
	Section("Solve")

	assert.Equal(t, "[DEBUG] grid 5x8\n[INFO] steps=31\n[WARN] no path\n\n=== Solve ===\n", buf.String())
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("x")
	Info("x")
	Warn("x")
	Section("x")

	assert.Zero(t, buf.Len())
}
