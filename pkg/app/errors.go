package app

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/gnames/acervo/pkg/errcode"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/gnames/gn"
)

// RecordNotFoundError is returned when an action refers to an identifier
// that is not in the current catalog.
func RecordNotFoundError(id plant.ID) error {
	msg := "Planta com ID %s não está no acervo carregado"
	vars := []any{id.String()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RecordNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: record %s is not in the catalog",
			fn.Name(), id),
	}
}

// UnknownActionError is returned for actions the dispatcher cannot run.
func UnknownActionError(kind string) error {
	msg := "Ação desconhecida: %s"
	vars := []any{kind}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownActionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown action %q", fn.Name(), kind),
	}
}

var tags = regexp.MustCompile(`</?[a-z]+>`)

// UserMessage returns the text of an error meant for users. For gn errors
// it is the formatted message without markup, for other errors their text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Msg != "" {
		msg := gnErr.Msg
		if len(gnErr.Vars) > 0 {
			msg = fmt.Sprintf(msg, gnErr.Vars...)
		}
		return strings.TrimSpace(tags.ReplaceAllString(msg, ""))
	}
	return err.Error()
}

// ErrorCode returns the code of a gn error, UnknownError otherwise.
func ErrorCode(err error) gn.ErrorCode {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code
	}
	return errcode.UnknownError
}
