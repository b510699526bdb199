// Package version provides build version information for the dryer
// binary.
//
// Version, git commit, branch, and build time are set at compile time
// via -ldflags:
//
//	go build -ldflags "-X github.com/articledry/dryer/version.Version=1.0.0"
package version
