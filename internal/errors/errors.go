package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/dayplanner/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	logger.Error("Command execution failed", "error", fmt.Sprintf(format, args...))
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}

// FormatWarning formats a non-fatal message, such as an advisory validation
// result, with a "Warning: " prefix. Empty messages stay empty.
func FormatWarning(msg string) string {
	if msg == "" {
		return ""
	}
	return "Warning: " + msg
}
