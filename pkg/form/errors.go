package form

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/acervo/pkg/errcode"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/gnames/gn"
)

// ErrSubmitInProgress is wrapped by the error returned when a submit is
// attempted while another one waits for the backend.
var ErrSubmitInProgress = errors.New("submit already in progress")

// ValidationError is returned when required fields are blank.
func ValidationError(missing []string) error {
	labels := make([]string, len(missing))
	for i, v := range missing {
		labels[i] = plant.Labels[v]
	}
	msg := "Por favor, preencha todos os campos obrigatórios: %s"
	vars := []any{strings.Join(labels, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FormValidationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: required fields are blank: %s",
			fn.Name(), strings.Join(missing, ", ")),
	}
}

// BusyError is returned when a submit is already in flight.
func BusyError() error {
	msg := "Aguarde, o envio anterior ainda está em andamento."
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FormBusyError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), ErrSubmitInProgress),
	}
}

// UnknownFieldError is returned when a form field does not exist.
func UnknownFieldError(name string) error {
	msg := "Campo desconhecido: <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FormValidationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown field %q", fn.Name(), name),
	}
}
