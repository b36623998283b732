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
	"github.com/gnames/acervo/pkg/plant"
	"github.com/spf13/cobra"
)

// getAddCmd returns the add command.
func getAddCmd() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a plant to the catalog",
		Long: `Add a plant to the catalog. All fields are required.

Example:
  acervo add --popular Jiboia --scientific "Epipremnum aureum" \
    --family Araceae --origin "Ilhas Salomão" \
    --care "Manter o solo úmido, mas não encharcado."`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}
	addPlantFlags(addCmd)
	return addCmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, done := newApp(nil)
	defer done()

	var in plant.Input
	for k, v := range changedFields(cmd) {
		in.Set(k, v)
	}
	a.Form().Fill(in)

	res, err := a.Submit(cmd.Context())
	if err != nil {
		return err
	}
	ioterm.PrintCard(cmd.OutOrStdout(), a.Card(res.Plant))
	return nil
}
