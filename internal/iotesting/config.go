// Package iotesting provides shared test utilities.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/acervo/pkg/config"
)

// GetTestConfig returns a configuration for tests pointing the API client
// to baseURL. Logs go to stderr so tests never write into a real home.
func GetTestConfig(baseURL string) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptAPIBaseURL(baseURL),
		config.OptLogDestination("stderr"),
		config.OptLogLevel("error"),
	})
	return cfg
}

// SetupTempHome creates a temporary home directory and points HOME to it
// for the duration of the test.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    home := iotesting.SetupTempHome(t)
//	    // ~/.config/acervo is now inside home
//	}
func SetupTempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

// WriteTempFile writes content to name inside dir and returns its path.
func WriteTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
