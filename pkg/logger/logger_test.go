package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ruping/ruping-setup/pkg/logger"
)

func TestFileLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		traceMode bool
		logFn     string
		want      bool
	}{
		{name: "error always logged", logFn: "error", want: true},
		{name: "info suppressed by default", logFn: "info", want: false},
		{name: "info logged in debug mode", debugMode: true, logFn: "info", want: true},
		{name: "debug suppressed in debug mode", debugMode: true, logFn: "debug", want: false},
		{name: "debug logged in trace mode", traceMode: true, logFn: "debug", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			log := logger.NewFileLoggerWithWriter(&buf, tt.debugMode, tt.traceMode)

			switch tt.logFn {
			case "error":
				log.Error("boom")
			case "info":
				log.Info("hello")
			case "debug":
				log.Debug("details")
			}

			got := buf.Len() > 0
			if got != tt.want {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestFileLoggerFormatsKeyValues(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewFileLoggerWithWriter(&buf, true, false)
	log.Info("deployed", "path", "/opt/RuPing", "files", 4)

	out := buf.String()
	if !strings.Contains(out, "INFO deployed") {
		t.Errorf("missing level and message: %q", out)
	}

	if !strings.Contains(out, "path=/opt/RuPing") || !strings.Contains(out, "files=4") {
		t.Errorf("missing key-value pairs: %q", out)
	}
}

func TestFileLoggerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewFileLoggerWithWriter(&buf, true, false)
	log.Info("resolved", "dir", `C:\Program Files\RuPing`)

	if !strings.Contains(buf.String(), `dir="C:\\Program Files\\RuPing"`) {
		t.Errorf("value not quoted: %q", buf.String())
	}
}

func TestWithAddsBaseFields(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewFileLoggerWithWriter(&buf, true, false).With("step", "deploy")
	log.Info("copied")

	if !strings.Contains(buf.String(), "step=deploy") {
		t.Errorf("base field missing: %q", buf.String())
	}
}

func TestNoOpLogger(t *testing.T) {
	log := logger.NewNoOpLogger()

	// Must not panic and With must keep returning a usable logger.
	log.With("a", 1).Info("ignored")
	log.Error("ignored")
}
