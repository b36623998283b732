package ioweb

import (
	"fmt"
	"runtime"

	"github.com/gnames/acervo/pkg/errcode"
	"github.com/gnames/gn"
)

// TemplateError is returned when embedded templates cannot be parsed.
func TemplateError(err error) error {
	msg := "Cannot prepare web pages"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WebTemplateError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot parse templates: %w", fn.Name(), err),
	}
}

// ServerError is returned when the web server cannot start or stops
// unexpectedly.
func ServerError(addr string, err error) error {
	msg := "Web server at <em>%s</em> failed"
	vars := []any{addr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WebServerError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: server at %s: %w", fn.Name(), addr, err),
	}
}
