package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/godamri/helix-db/pkg/contextx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriter_JSONWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, Config{Level: "info", Format: "json"})

	ctx := contextx.WithTraceID(context.Background(), "trace-1")
	logger.DebugContext(ctx, "hidden")
	logger.InfoContext(ctx, "shown", "code", "P2002")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "P2002", rec["code"])
	assert.Equal(t, "trace-1", rec["trace_id"])
}

func TestNewWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, Config{Level: "debug", Format: "console"})

	logger.Debug("pretty")

	assert.Contains(t, buf.String(), "pretty")
}
