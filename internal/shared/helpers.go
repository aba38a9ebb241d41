// Package shared provides common utility functions used across multiple
// packages in the platform-tools codebase.
package shared

import (
	"fmt"
	"strings"
)

// NormalizeAppName lowercases an application name taken from a resource
// tag and replaces spaces with hyphens so it can double as a grouping
// key and a file-name fragment.
func NormalizeAppName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	return strings.ReplaceAll(lower, " ", "-")
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
