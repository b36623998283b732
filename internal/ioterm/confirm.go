// Package ioterm implements terminal interaction: yes/no prompts,
// notifications and printing of the catalog.
package ioterm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/acervo/pkg/app"
)

type confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConfirmer creates an app.Confirmer that prints the question to out
// and reads the answer from in. Only "yes", "y", "sim" and "s" confirm.
func NewConfirmer(in io.Reader, out io.Writer) app.Confirmer {
	return &confirmer{in: bufio.NewReader(in), out: out}
}

// Confirm blocks until a line is read. End of input declines.
func (c *confirmer) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(c.out, "%s [y/N]: ", question)

	response, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	switch response {
	case "yes", "y", "sim", "s":
		return true, nil
	default:
		return false, nil
	}
}

// Yes is an app.Confirmer that confirms without asking.
var Yes = app.ConfirmerFunc(func(context.Context, string) (bool, error) {
	return true, nil
})
