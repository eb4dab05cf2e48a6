// Package version holds the application version string.
package version

// Version is the application version, overridable at build time with
// -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "1.2.0"
