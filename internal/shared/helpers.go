// Package shared provides common utility functions used across multiple
// packages in the logcatalog codebase.
package shared

import (
	"fmt"
	"strings"
)

// IsBlank reports whether value is empty after trimming whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// FormatBool renders a flag the way catalogs store it.
func FormatBool(value bool) string {
	return fmt.Sprintf("%t", value)
}

// TrimAll trims every element and drops the blank ones.
func TrimAll(values []string) []string {
	var out []string
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
