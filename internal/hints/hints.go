// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForManifestNotFound returns hints for manifest not found errors.
// Suggests the --manifest flag, the environment variable and the init command.
func ForManifestNotFound(envVar string) string {
	hints := []string{"use --manifest /path/to/assets.yaml"}
	if envVar != "" {
		hints = append(hints, "set "+envVar)
	}
	hints = append(hints, "run 'assetpipe init' to create one")
	return formatHints(hints)
}

// ForUnknownContainer returns hints listing the containers a manifest defines.
func ForUnknownContainer(available []string) string {
	if len(available) == 0 {
		return format("the manifest defines no containers")
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForDependency returns hints for unknown dependency and cycle errors.
func ForDependency() string {
	return format("run 'assetpipe check' to list every problem, or 'assetpipe graph' to inspect the order")
}

// ForFingerprint returns hints for invalid fingerprint modes.
func ForFingerprint(modes []string) string {
	return format("supported modes: " + strings.Join(modes, ", "))
}

// ForOutput returns hints for output file errors.
func ForOutput() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
