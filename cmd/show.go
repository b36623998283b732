/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/acervo/internal/ioapi"
	"github.com/gnames/acervo/internal/ioterm"
	"github.com/gnames/acervo/pkg/app"
	"github.com/gnames/acervo/pkg/parserpool"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/gnames/acervo/pkg/view"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getShowCmd returns the show command.
func getShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one plant",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().StringP("format", "f", "text", "output format")
	return showCmd
}

func runShow(cmd *cobra.Command, args []string) error {
	fmtName, _ := cmd.Flags().GetString("format")
	f, err := ioterm.ParseFormat(fmtName)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	p, err := ioapi.New(cfg).Get(cmd.Context(), plant.ID(args[0]))
	if err != nil {
		gn.Warn("<warn>ERRO:</warn> %s", app.UserMessage(err))
		return err
	}

	pool := parserpool.NewPool(1)
	defer pool.Close()
	cards := view.NewRenderer(pool).Render([]plant.Plant{p})
	g := view.Grid{Cards: cards, Total: 1}
	if f == ioterm.Text {
		ioterm.PrintCard(cmd.OutOrStdout(), cards[0])
		return nil
	}
	return ioterm.PrintGrid(cmd.OutOrStdout(), g, f)
}
