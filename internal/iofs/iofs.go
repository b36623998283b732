// Package iofs creates the directories and files acervo keeps in the
// user's home.
package iofs

import (
	"os"

	"github.com/gnames/acervo/pkg/config"
	"github.com/gnames/acervo/pkg/templates"
)

// EnsureDirs creates config and log directories if they do not exist.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless the user already
// has one.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	err := os.WriteFile(configPath, []byte(templates.ConfigYAML), 0644)
	if err != nil {
		return WriteConfigError(configPath, err)
	}

	return nil
}

// ReadSeed returns the content of a seed file. An empty path gives the
// built-in seed.
func ReadSeed(path string) ([]byte, error) {
	if path == "" {
		return []byte(templates.SeedYAML), nil
	}
	res, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}
