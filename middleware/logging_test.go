package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantMsg   string
	}{
		{name: "success", wantLevel: "DEBUG", wantMsg: "handled request"},
		{name: "failure", err: errors.New("boom"), wantLevel: "ERROR", wantMsg: "handler failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			_, err := dispatch(t, func(context.Context, string) (string, error) {
				return "ok", tt.err
			}, "req", Logging[string, string](logger))
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			line := lines[0]
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, tt.wantMsg, line["msg"])
			assert.Equal(t, "dispatch-1", line["dispatch_id"])
			assert.Equal(t, "worker", line["handler"])
			assert.Contains(t, line, "duration")
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), line["error"])
			}
		})
	}
}

func TestLoggingDefaultLogger(t *testing.T) {
	handle := Logging[string, string](nil)(func(_ context.Context, req string) (string, error) {
		return req, nil
	})
	res, err := handle(context.Background(), "plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", res)
}
