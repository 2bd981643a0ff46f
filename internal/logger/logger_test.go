package logger_test

import (
	"bytes"
	"siren/internal/logger"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestInitLevels(t *testing.T) {
	tests := []struct {
		verbose   bool
		want      log.Level
		debugSeen bool
	}{
		{verbose: false, want: log.WarnLevel, debugSeen: false},
		{verbose: true, want: log.DebugLevel, debugSeen: true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		l := logger.InitWriter(&buf, tt.verbose, true)

		if l.GetLevel() != tt.want {
			t.Errorf("verbose=%v: expected level %v, got %v", tt.verbose, tt.want, l.GetLevel())
		}
		if log.Default() != l {
			t.Errorf("verbose=%v: logger was not installed as default", tt.verbose)
		}

		log.Debug("tracing call")
		log.Warn("careful")

		out := buf.String()
		if !strings.Contains(out, "SIREN") || !strings.Contains(out, "careful") {
			t.Errorf("verbose=%v: expected prefixed warning, got %q", tt.verbose, out)
		}
		if strings.Contains(out, "tracing call") != tt.debugSeen {
			t.Errorf("verbose=%v: debug visibility mismatch in %q", tt.verbose, out)
		}
	}
}
