package ioterm

import (
	"github.com/gnames/acervo/pkg/app"
	"github.com/gnames/gn"
)

type notifier struct{}

// NewNotifier returns an app.Notifier printing to the console.
func NewNotifier() app.Notifier {
	return notifier{}
}

func (notifier) Success(msg string) {
	gn.Info("<em>%s</em>", msg)
}

func (notifier) Error(msg string) {
	gn.Warn("<warn>ERRO:</warn> %s", msg)
}
