package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/acervo/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "acervo"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "acervo", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "acervo", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
		assert.Equal(t, 0, cfg.API.Timeout)
		assert.Equal(t, time.Duration(0), cfg.RequestTimeout())
		assert.Equal(t, "127.0.0.1:8080", cfg.Web.Addr)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)
		assert.Empty(t, cfg.HomeDir)
	})
}

func TestOptionAPIBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid url",
			input:    "https://plantas.example.org",
			expected: "https://plantas.example.org",
		},
		{
			name:     "trims whitespace and trailing slash",
			input:    "  http://localhost:9000/  ",
			expected: "http://localhost:9000",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "http://127.0.0.1:8000",
		},
		{
			name:     "ignores unsupported scheme",
			input:    "ftp://example.org",
			expected: "http://127.0.0.1:8000",
		},
		{
			name:     "ignores url without host",
			input:    "http://",
			expected: "http://127.0.0.1:8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptAPIBaseURL(tt.input)})
			assert.Equal(t, tt.expected, cfg.API.BaseURL)
		})
	}
}

func TestOptionAPITimeout(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "sets positive timeout", input: 15, expected: 15},
		{name: "ignores zero", input: 0, expected: 0},
		{name: "ignores negative", input: -3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptAPITimeout(tt.input)})
			assert.Equal(t, tt.expected, cfg.API.Timeout)
		})
	}

	cfg := config.New()
	cfg.Update([]config.Option{config.OptAPITimeout(7)})
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout())
}

func TestOptionLogEnums(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptLogLevel(" DEBUG "),
		config.OptLogFormat("text"),
		config.OptLogDestination("stderr"),
	})
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{
		config.OptLogLevel("verbose"),
		config.OptLogFormat("xml"),
		config.OptLogDestination("printer"),
	})
	assert.Equal(t, "debug", cfg.Log.Level, "invalid level is ignored")
	assert.Equal(t, "text", cfg.Log.Format, "invalid format is ignored")
	assert.Equal(t, "stderr", cfg.Log.Destination,
		"invalid destination is ignored")
}

func TestOptionWebAddrAndHomeDir(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptWebAddr(":9090"),
		config.OptHomeDir("/home/flora"),
	})
	assert.Equal(t, ":9090", cfg.Web.Addr)
	assert.Equal(t, "/home/flora", cfg.HomeDir)

	cfg.Update([]config.Option{config.OptWebAddr("  ")})
	assert.Equal(t, ":9090", cfg.Web.Addr)
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptAPIBaseURL("https://api.example.org"),
		config.OptAPITimeout(30),
		config.OptWebAddr("0.0.0.0:8181"),
		config.OptLogLevel("warn"),
		config.OptLogFormat("tint"),
		config.OptLogDestination("stdout"),
		config.OptHomeDir("/tmp/home"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, src.API, dst.API)
	assert.Equal(t, src.Web, dst.Web)
	assert.Equal(t, src.Log, dst.Log)
	assert.Empty(t, dst.HomeDir, "HomeDir is runtime-only")
}
