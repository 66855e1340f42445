// ABOUTME: Tests for logger construction.
// ABOUTME: Verifies level parsing and fallback behavior.

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewParsesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "error")

	assert.Equal(t, log.ErrorLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Error("shown", "slot", "notes")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "shown"))
	assert.Contains(t, out, "slot=notes")
}

func TestNewFallsBackToInfo(t *testing.T) {
	logger := New(&bytes.Buffer{}, "loud")
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}
