package core

import (
	"regexp"
	"strings"

	"mcl/internal/domain"
)

// The backend reports a refused launch as free-text error messages in two
// structured shapes, with a loose "client: <name>" fragment as a fallback.
// TODO: replace with a structured error payload from the backend and keep
// these patterns only for older hosts.
var (
	blockedSignatureRe = regexp.MustCompile(`Blocked by signature: ([^\r\n(]+?) \(([^)]+)\)`)
	blockedFilenameRe  = regexp.MustCompile(`Blocked by filename: ([^\r\n]+)`)
	clientLabelRe      = regexp.MustCompile(`client: ([A-Za-z0-9_.-]+)`)
)

// IsBlockedMessage reports whether backend error text indicates a blocked
// launch. Any mention of "blocked" counts, even without a structured shape.
func IsBlockedMessage(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "blocked")
}

// ParseBlocked classifies backend launch-error text. It returns the
// user-facing report and true when the message is a blocked launch.
func ParseBlocked(msg string) (domain.BlockedReport, bool) {
	if !IsBlockedMessage(msg) {
		return domain.BlockedReport{}, false
	}

	var path, label string
	if m := blockedSignatureRe.FindStringSubmatch(msg); m != nil {
		path, label = m[1], m[2]
	} else if m := blockedFilenameRe.FindStringSubmatch(msg); m != nil {
		path = m[1]
	} else if m := clientLabelRe.FindStringSubmatch(msg); m != nil {
		label = m[1]
	}

	file := baseName(strings.TrimSpace(path))
	if label == "" && file != "" {
		label = displayLabel(file)
	}

	report := domain.BlockedReport{
		Title: "Launch blocked",
		File:  file,
		Label: label,
	}
	if label != "" {
		report.Body = "A disallowed add-on was detected: " + label
		if file != "" {
			report.Body += " (" + file + ")"
		}
	} else {
		report.Body = "The backend refused to launch because a disallowed add-on was detected."
	}

	return report, true
}

// baseName returns the last path segment, accepting both separators since
// the backend may report Windows paths.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// displayLabel derives a label from a mod filename by stripping the
// .jar / .jar.disabled suffixes.
func displayLabel(file string) string {
	label := strings.TrimSuffix(file, ".disabled")
	return strings.TrimSuffix(label, ".jar")
}
