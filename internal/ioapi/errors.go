package ioapi

import (
	"fmt"
	"net/http"

	"github.com/gnames/acervo/pkg/errcode"
	"github.com/gnames/gn"
)

// NetworkError is returned when the backend cannot be reached or the
// response cannot be read.
func NetworkError(method, url string, err error) error {
	msg := `Não foi possível conectar à API

<em>Requisição:</em> %s %s

Verifique se a API está rodando e se <em>api.base_url</em> está correto.`
	vars := []any{method, url}
	return &gn.Error{
		Code: errcode.APINetworkError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("request %s %s failed: %w", method, url, err),
	}
}

// StatusError is returned for a non-2xx response. The message is the
// detail sent by the backend or, without it, a generic text with the
// status code.
func StatusError(method, url string, status int, detail string) error {
	msg := "%s"
	vars := []any{detail}
	if detail == "" {
		msg = "Erro %d: Falha na operação."
		if method == http.MethodDelete {
			msg = "Erro %d: Não foi possível deletar a planta."
		}
		vars = []any{status}
	}
	return &gn.Error{
		Code: errcode.APIStatusError,
		Msg:  msg,
		Vars: vars,
		Err: &statusErr{
			status: status,
			err: fmt.Errorf("request %s %s returned %d %s: %q",
				method, url, status, http.StatusText(status), detail),
		},
	}
}

// DecodeError is returned when a successful response body is not a valid
// plant record or list of records.
func DecodeError(method, url string, err error) error {
	msg := "Resposta inválida da API para %s %s"
	vars := []any{method, url}
	return &gn.Error{
		Code: errcode.APIDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot decode response of %s %s: %w", method, url, err),
	}
}

// EncodeError is returned when a request body cannot be serialized.
func EncodeError(err error) error {
	msg := "Não foi possível preparar os dados da planta"
	return &gn.Error{
		Code: errcode.APIEncodeError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot encode request body: %w", err),
	}
}
