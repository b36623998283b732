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
	"github.com/gnames/acervo/internal/ioterm"
	"github.com/gnames/acervo/pkg/app"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getDeleteCmd returns the delete command.
func getDeleteCmd() *cobra.Command {
	var yes bool

	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a plant",
		Long: `Delete a plant from the catalog. The deletion is irreversible, so
a confirmation is asked first.

Use --yes to skip confirmation.

Examples:
  acervo delete 4
  acervo delete 4 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var confirm app.Confirmer = ioterm.Yes
			if !yes {
				confirm = ioterm.NewConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
			}

			a, done := newApp(confirm)
			defer done()

			ok, err := a.RequestDelete(cmd.Context(), plant.ID(args[0]))
			if err != nil {
				return err
			}
			if !ok {
				gn.Info("Aborted. No changes made.")
			}
			return nil
		},
	}

	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false,
		"delete without confirmation")
	return deleteCmd
}
