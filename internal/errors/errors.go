// Package errors provides categorized CLI errors with remediation hints
// for the ringring management commands. The hook dispatch path never uses
// these: it swallows every failure by design.
package errors

import (
	"fmt"
	"strings"
)

// ErrorCategory classifies a CLI error for display purposes.
type ErrorCategory int

const (
	// Argument indicates invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration indicates a problem with config files or values.
	Configuration
	// Prerequisite indicates a missing tool, file, or permission.
	Prerequisite
	// Runtime indicates a failure during command execution.
	Runtime
)

// String returns a human-readable representation of the category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a user-facing command error with optional remediation steps.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	Err         error
}

func (e *CLIError) Error() string {
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an Argument-category error with remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewConfigError creates a Configuration-category error with remediation steps.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewPrerequisiteError creates a Prerequisite-category error with remediation steps.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Prerequisite, Message: message, Remediation: remediation}
}

// NewRuntimeError wraps an underlying failure as a Runtime-category error.
func NewRuntimeError(message string, err error) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Err: err}
}

// FormatError renders a CLIError (or any error) for terminal display.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	cliErr, ok := err.(*CLIError)
	if !ok {
		return fmt.Sprintf("Error: %v\n", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", cliErr.Category, cliErr.Message)
	if cliErr.Err != nil {
		fmt.Fprintf(&b, "  caused by: %v\n", cliErr.Err)
	}
	if cliErr.Usage != "" {
		fmt.Fprintf(&b, "\nUsage: %s\n", cliErr.Usage)
	}
	if len(cliErr.Remediation) > 0 {
		b.WriteString("\nTo fix this:\n")
		for _, step := range cliErr.Remediation {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
	}
	return b.String()
}
