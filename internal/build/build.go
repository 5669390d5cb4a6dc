// Package build provides build information that is linked into the application. Other modules
// can import this package to get the build information.
package build

// Version, Commit and Date are set at link time, e.g.
// -ldflags "-X github.com/openfga/lists/internal/build.Version=v0.1.0".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
