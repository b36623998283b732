package ioweb

import (
	"context"

	"github.com/gnames/acervo/pkg/app"
)

type answerKey struct{}

// withAnswer stores the answer the user gave on the confirmation page.
func withAnswer(ctx context.Context, yes bool) context.Context {
	return context.WithValue(ctx, answerKey{}, yes)
}

// pageConfirmer reads the answer from the request context. The question
// itself was shown by the confirmation page, so without an answer the
// delete is declined.
var pageConfirmer = app.ConfirmerFunc(
	func(ctx context.Context, _ string) (bool, error) {
		yes, _ := ctx.Value(answerKey{}).(bool)
		return yes, nil
	},
)
