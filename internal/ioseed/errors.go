package ioseed

import (
	"fmt"
	"runtime"

	"github.com/gnames/acervo/pkg/errcode"
	"github.com/gnames/gn"
)

// SeedFileError is returned when a seed file is not valid.
func SeedFileError(reason string, err error) error {
	msg := `Arquivo de plantas inválido: %s

<em>Formato esperado:</em>
  plants:
    - nome_popular: Jiboia
      nome_cientifico: Epipremnum aureum
      familia: Araceae
      origem: Ilhas Salomão
      cuidados: Luz indireta.`
	vars := []any{reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SeedFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid seed: %s: %w", fn.Name(), reason, err),
	}
}

// SeedCreateError is returned when the backend refuses a seed plant.
func SeedCreateError(name string, created int, err error) error {
	msg := "Não foi possível adicionar <em>%s</em> (%d plantas já adicionadas)"
	vars := []any{name, created}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SeedCreateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create %q: %w", fn.Name(), name, err),
	}
}
