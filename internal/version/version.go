// internal/version/version.go
package version

// Version is the toolkit release, shared by both binaries.
const Version = "0.1.0"
