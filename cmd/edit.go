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
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getEditCmd returns the edit command.
func getEditCmd() *cobra.Command {
	editCmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a plant",
		Long: `Edit a plant of the catalog. Fields that are not given keep their
current values.

Example:
  acervo edit 3 --care "Luz indireta e solo levemente úmido."`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}
	addPlantFlags(editCmd)
	return editCmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, done := newApp(nil)
	defer done()

	if err := loadCatalog(ctx, a); err != nil {
		return err
	}

	if err := a.Edit(plant.ID(args[0])); err != nil {
		return err
	}

	changed := changedFields(cmd)
	if len(changed) == 0 {
		gn.Info("No fields given, the plant is saved unchanged")
	}
	for k, v := range changed {
		if err := a.Form().SetField(k, v); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	res, err := a.Submit(ctx)
	if err != nil {
		return err
	}
	ioterm.PrintCard(cmd.OutOrStdout(), a.Card(res.Plant))
	return nil
}
