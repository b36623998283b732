// Package templates provides embedded YAML templates.
package templates

import _ "embed"

// ConfigYAML contains the default config.yaml written to
// ~/.config/acervo on the first run.
//
//go:embed config.yaml
var ConfigYAML string

// SeedYAML contains the plants created by 'acervo seed' when no file is
// given.
//
//go:embed seed.yaml
var SeedYAML string
