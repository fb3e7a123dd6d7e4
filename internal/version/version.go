// Package version exposes build information for the ddlshape binary.
package version

import "runtime"

const app = "0.2.0"

// Build-time variables set via ldflags
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App returns the current ddlshape version.
func App() string {
	return app
}

// Platform returns the OS/architecture combination.
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
