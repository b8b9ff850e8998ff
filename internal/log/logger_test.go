package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/felixgeelhaar/planlint/internal/errors"
)

func testConfig(buf *bytes.Buffer, level Level, format Format) Config {
	return Config{
		Level:  level,
		Format: format,
		Output: NewOutput(buf),
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(testConfig(&buf, LevelInfo, FormatJSON))

	logger.Info("lint complete", "issues", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["msg"] != "lint complete" {
		t.Errorf("expected msg 'lint complete', got %v", entry["msg"])
	}
	if entry["issues"] != float64(3) {
		t.Errorf("expected issues=3, got %v", entry["issues"])
	}
}

func TestLoggerTextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(testConfig(&buf, LevelDebug, FormatText))

	logger.Debug("resolved references", "edges", 2)

	out := buf.String()
	if !strings.Contains(out, "resolved references") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "edges=2") {
		t.Errorf("expected attribute in output, got %q", out)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(testConfig(&buf, LevelWarn, FormatJSON))

	logger.Info("suppressed")
	if buf.Len() != 0 {
		t.Errorf("info message should be suppressed at warn level, got %q", buf.String())
	}

	logger.Warn("visible")
	if buf.Len() == 0 {
		t.Error("warn message should be visible at warn level")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(testConfig(&buf, LevelInfo, FormatJSON))

	err := errors.NewDuplicateStepError("s1")
	logger.WithError(err).Error("lint aborted")

	var entry map[string]any
	if jsonErr := json.Unmarshal(buf.Bytes(), &entry); jsonErr != nil {
		t.Fatalf("output is not valid JSON: %v", jsonErr)
	}
	if entry["error_code"] != "CONFIG-001" {
		t.Errorf("expected error_code CONFIG-001, got %v", entry["error_code"])
	}
}

func TestEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := New(testConfig(&buf, LevelWarn, FormatJSON))

	ctx := context.Background()
	if logger.Enabled(ctx, LevelDebug) {
		t.Error("debug should not be enabled at warn level")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"WARNING", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
