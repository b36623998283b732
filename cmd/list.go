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
	"strings"

	"github.com/gnames/acervo/internal/ioterm"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getListCmd returns the list command.
func getListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List plants of the catalog",
		Long: `List all plants of the catalog, optionally filtered by a search term.

The search is case-insensitive and matches popular name, scientific name
or family.

Examples:
  acervo list
  acervo list --search araceae
  acervo list -s jib --format csv`,
		RunE: runList,
	}

	listCmd.Flags().StringP("search", "s", "", "search term")
	listCmd.Flags().StringP("format", "f", "text",
		"output format: "+strings.Join(ioterm.FormatNames, ", "))
	return listCmd
}

func runList(cmd *cobra.Command, args []string) error {
	term, _ := cmd.Flags().GetString("search")
	fmtName, _ := cmd.Flags().GetString("format")
	f, err := ioterm.ParseFormat(fmtName)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	a, done := newApp(nil)
	defer done()

	if err = loadCatalog(cmd.Context(), a); err != nil {
		return err
	}

	return ioterm.PrintGrid(cmd.OutOrStdout(), a.Grid(term), f)
}
