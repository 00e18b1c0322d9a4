// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-jot/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Swapped in tests.
var IsInContainer = func() bool {
	return ContainerSignal() != ""
}

// ContainerSignal returns the first container marker found, or "" outside
// a container. JOT_CONTAINER=1 forces detection.
func ContainerSignal() string {
	switch {
	case os.Getenv("JOT_CONTAINER") == "1":
		return "JOT_CONTAINER=1"
	case fileutil.FileExists("/.dockerenv"):
		return "/.dockerenv"
	case os.Getenv("container") != "": // podman, systemd-nspawn
		return "container=" + os.Getenv("container")
	case os.Getenv("KUBERNETES_SERVICE_HOST") != "":
		return "KUBERNETES_SERVICE_HOST"
	}
	return ""
}

// InCI reports whether a known CI environment variable is set.
func InCI() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// BrowserNotFound is the remediation shown when no browser can be discovered.
const BrowserNotFound = "converting to PDF requires a Chrome-like browser installed and available on the PATH; " +
	"install Chrome, Chromium, Edge or a similar Chromium-family browser, or set ROD_BROWSER_BIN"

// ForBrowserConnect returns hints for browser launch and connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	if (InCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use a specific Chrome binary")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns the hint for an explicit config path that does not exist.
func ForConfigNotFound(defaultPath string) string {
	hint := "use --config /path/to/conf.toml"
	if defaultPath != "" {
		hint += " or create " + defaultPath
	}
	return format(hint)
}

// ForParentNotFound returns the hint for an output path whose directory is missing.
func ForParentNotFound() string {
	return format("output directories are never created; create the directory first")
}

// ForDestinationExists returns the hint for a destination that already exists.
func ForDestinationExists() string {
	return format("existing files are never overwritten; remove it or choose another --output")
}

// ForExtensionMismatch returns the hint for an output path with the wrong extension.
func ForExtensionMismatch(ext string) string {
	return format("output file name must end in ." + ext)
}

// ForImplicitOutput returns the hint for a bare --output without an input file.
func ForImplicitOutput() string {
	return format("pass --input, or give --output a file path when reading stdin")
}

// ForEditorNotFound returns the hint for a missing editor executable.
func ForEditorNotFound() string {
	return format("set editor in conf.toml, JOT_EDITOR or EDITOR, or use --no-edit")
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
