// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-packassets/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForManifestUnavailable returns hints for a manifest that could not be loaded.
// Network locations point at the dev server; disk locations at the build output.
func ForManifestUnavailable(location string) string {
	if location == "" {
		return ""
	}

	var hints []string
	if fileutil.IsURL(location) {
		hints = append(hints, "check the development server is running and serves "+location)
		if IsInContainer() && isLoopback(location) {
			hints = append(hints, "inside a container, use host.docker.internal instead of localhost")
		}
	} else if dir := filepath.Dir(location); !fileutil.DirExists(dir) {
		hints = append(hints, "build output "+dir+" is missing, run the production build")
	} else {
		hints = append(hints, "run the production build or fix productionFilePath/manifestPath")
	}

	return formatHints(hints)
}

// ForBaseURLRequired returns a hint for an instance without a production URL.
func ForBaseURLRequired() string {
	return format("set productionUrl for the instance in the config file")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-packassets/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml or run 'packassets init'"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-packassets") {
			hint += " (or create " + p + ")"
			break
		}
	}

	return format(hint)
}

// ForInstanceNotFound returns a hint listing the configured instances.
func ForInstanceNotFound(available []string) string {
	if len(available) == 0 {
		return format("no instances configured")
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForTimeout returns a hint about increasing the manifest fetch timeout.
func ForTimeout() string {
	return format("for slow development servers, use --timeout flag")
}

func isLoopback(location string) bool {
	lower := strings.ToLower(location)
	return strings.Contains(lower, "://localhost") || strings.Contains(lower, "://127.0.0.1")
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
