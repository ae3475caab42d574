package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, false)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	logger = New(&buf, true)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNew_WritesConsoleEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Named("write").Debug("hidden")
	logger.Named("write").Warn("file exists, skipping", zap.String("path", "A.java"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "crudgen.write")
	assert.Contains(t, out, `"path": "A.java"`)
}

func TestNew_DebugAddsCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("configuration loaded")
	require.NoError(t, logger.Sync())

	assert.Contains(t, buf.String(), "logging_test.go")
}
