// Package acervo holds version information of the acervo client.
package acervo

var (
	// Version of acervo, set during build.
	Version = "v0.1.0"

	// Build timestamp, set during build.
	Build = "n/a"
)
