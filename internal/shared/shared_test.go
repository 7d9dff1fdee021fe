package shared

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerHelpers(t *testing.T) {
	t.Run("WithLogger stamps every entry with the key-value pairs", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)

		child := WithLogger(logger, "component", "mail")
		child.Info("sending")

		if out := buf.String(); !strings.Contains(out, "component=mail") {
			t.Errorf("expected component key in output, got %q", out)
		}
	})

	t.Run("SetLogLevel controls which entries are emitted", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)

		logger.Debug("hidden")
		if buf.Len() != 0 {
			t.Fatalf("debug entry emitted at default level: %q", buf.String())
		}

		SetLogLevel(logger, log.DebugLevel)
		logger.Debug("visible")
		if !strings.Contains(buf.String(), "visible") {
			t.Errorf("expected debug entry after lowering level, got %q", buf.String())
		}
	})
}
