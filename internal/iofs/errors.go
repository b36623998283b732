package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/acervo/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateDirError is returned when a config or log directory of acervo
// cannot be made.
func CreateDirError(dir string, err error) error {
	msg := `Cannot create directory <em>%s</em>

Check permissions of your home directory.`
	pc, _, _, _ := runtime.Caller(1)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: []any{dir},
		Err: fmt.Errorf("from %s: mkdir %s: %w",
			runtime.FuncForPC(pc).Name(), dir, err),
	}
}

// WriteConfigError is returned when the default config.yaml cannot be
// written on first run.
func WriteConfigError(path string, err error) error {
	msg := "Cannot write default configuration to <em>%s</em>"
	pc, _, _, _ := runtime.Caller(1)
	return &gn.Error{
		Code: errcode.WriteConfigError,
		Msg:  msg,
		Vars: []any{path},
		Err: fmt.Errorf("from %s: write default config %s: %w",
			runtime.FuncForPC(pc).Name(), path, err),
	}
}

// ReadFileError is returned when a config or seed file cannot be read or
// decoded.
func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	pc, _, _, _ := runtime.Caller(1)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: []any{path},
		Err: fmt.Errorf("from %s: read %s: %w",
			runtime.FuncForPC(pc).Name(), path, err),
	}
}
