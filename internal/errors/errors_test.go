package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorCategoryString(t *testing.T) {
	tests := map[string]struct {
		category ErrorCategory
		expected string
	}{
		"Argument":      {category: Argument, expected: "Argument Error"},
		"Configuration": {category: Configuration, expected: "Configuration Error"},
		"Prerequisite":  {category: Prerequisite, expected: "Prerequisite Error"},
		"Runtime":       {category: Runtime, expected: "Runtime Error"},
		"Unknown":       {category: ErrorCategory(99), expected: "Error"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			result := test.category.String()
			if result != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, result)
			}
		})
	}
}

func TestCLIErrorError(t *testing.T) {
	err := &CLIError{Category: Argument, Message: "test error message"}

	if err.Error() != "test error message" {
		t.Errorf("Expected 'test error message', got %q", err.Error())
	}
}

func TestNewRuntimeErrorWraps(t *testing.T) {
	cause := errors.New("disk full")
	err := NewRuntimeError("install failed", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected wrapped error to satisfy errors.Is")
	}
}

func TestFormatError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		if FormatError(nil) != "" {
			t.Error("Expected empty string for nil error")
		}
	})

	t.Run("plain error", func(t *testing.T) {
		result := FormatError(errors.New("boom"))
		if !strings.Contains(result, "boom") {
			t.Errorf("Expected output to contain the message, got %q", result)
		}
	})

	t.Run("with remediation", func(t *testing.T) {
		err := NewArgumentError("missing argument", "provide the argument", "see --help")
		result := FormatError(err)

		if !strings.Contains(result, "Argument Error") {
			t.Errorf("Expected category header, got %q", result)
		}
		if !strings.Contains(result, "To fix this:") {
			t.Errorf("Expected remediation header, got %q", result)
		}
		if !strings.Contains(result, "provide the argument") {
			t.Errorf("Expected remediation step, got %q", result)
		}
	})

	t.Run("with usage", func(t *testing.T) {
		err := &CLIError{Category: Argument, Message: "invalid arg", Usage: "ringring theme use <name>"}
		result := FormatError(err)

		if !strings.Contains(result, "Usage:") {
			t.Error("Expected output to contain 'Usage:'")
		}
	})

	t.Run("with cause", func(t *testing.T) {
		err := NewRuntimeError("install failed", errors.New("disk full"))
		result := FormatError(err)

		if !strings.Contains(result, "disk full") {
			t.Errorf("Expected cause in output, got %q", result)
		}
	})
}
