// Package version holds the tool version, overridable at build time:
//
//	go build -ldflags "-X tcr/internal/version.Version=1.2.0 -X tcr/internal/version.Commit=abc123"
package version

var (
	// Version is the semantic version of the toolkit.
	Version = "1.0.0"

	// Commit is the git commit hash (set at build time).
	Commit = "unknown"

	// BuildDate is the build timestamp (set at build time).
	BuildDate = "unknown"
)

// Info returns a short version string.
func Info() string {
	if Commit != "unknown" && len(Commit) > 7 {
		return Version + " (" + Commit[:7] + ")"
	}
	return Version
}

// Full returns complete version information.
func Full() string {
	return "tcr version " + Version + "\n" +
		"Commit: " + Commit + "\n" +
		"Built: " + BuildDate
}
