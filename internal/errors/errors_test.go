package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeConfigDuplicateStep, "test error message")

	if err.Code != ErrCodeConfigDuplicateStep {
		t.Errorf("expected code %s, got %s", ErrCodeConfigDuplicateStep, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeFileUnmarshal, "failed to parse plan", cause)

	if err.Code != ErrCodeFileUnmarshal {
		t.Errorf("expected code %s, got %s", ErrCodeFileUnmarshal, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is to find the cause")
	}
}

func TestErrorFormat(t *testing.T) {
	err := New(ErrCodeConfigDuplicateTool, "duplicate tool spec \"fetch\"").
		WithSuggestion("Remove one of the conflicting specs")

	msg := err.Error()
	if !strings.Contains(msg, "[CONFIG-002]") {
		t.Errorf("expected error code in message, got %q", msg)
	}
	if !strings.Contains(msg, "Suggestions:") {
		t.Errorf("expected suggestions section in message, got %q", msg)
	}
}

func TestIsConfiguration(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"duplicate step", NewDuplicateStepError("s1"), true},
		{"duplicate tool", NewDuplicateToolError("fetch"), true},
		{"unknown type", NewUnknownTypeError("fetch", "url", "uri"), true},
		{"patch conflict", NewPatchConflictError("step gone"), false},
		{"plain error", fmt.Errorf("boom"), false},
		{"wrapped config", fmt.Errorf("outer: %w", NewDuplicateStepError("s1")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfiguration(tt.err); got != tt.want {
				t.Errorf("IsConfiguration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPatchConflict(t *testing.T) {
	if !IsPatchConflict(NewPatchConflictError("parameter vanished")) {
		t.Error("expected patch conflict to be detected")
	}
	if IsPatchConflict(NewDuplicateStepError("s1")) {
		t.Error("configuration error misclassified as patch conflict")
	}
}
