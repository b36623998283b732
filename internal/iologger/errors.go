package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/acervo/pkg/errcode"
	"github.com/gnames/gn"
)

// OpenLogFileError is returned when the log file cannot be opened for
// writing.
func OpenLogFileError(path string, err error) error {
	msg := `Cannot open log file <em>%s</em>

Set <em>log.destination</em> to stderr to log to the terminal instead.`
	pc, _, _, _ := runtime.Caller(1)
	return &gn.Error{
		Code: errcode.OpenLogFileError,
		Msg:  msg,
		Vars: []any{path},
		Err: fmt.Errorf("from %s: open %s for logging: %w",
			runtime.FuncForPC(pc).Name(), path, err),
	}
}
