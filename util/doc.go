// Package util provides small generic helpers shared across the
// service: size-string parsing and secret masking for log output.
package util
