package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn)

	log.Debug("d")
	log.Info("i")
	assert.Empty(t, buf.String())

	log.Warn("w")
	log.Error("e")
	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "ERROR")
}

func TestComponentPrefixAndSortedFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelDebug).WithComponent("scene")

	log.Info("rebuilt", map[string]interface{}{"zeta": 1, "alpha": "x"})

	out := buf.String()
	assert.Contains(t, out, "[scene]")
	assert.Contains(t, out, "alpha=x zeta=1")
}

func TestChildLoggerKeepsSinkAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelError).WithComponent("hud")

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}
