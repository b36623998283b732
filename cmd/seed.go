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
	"github.com/dustin/go-humanize"
	"github.com/gnames/acervo/internal/ioapi"
	"github.com/gnames/acervo/internal/iofs"
	"github.com/gnames/acervo/internal/ioseed"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getSeedCmd returns the seed command.
func getSeedCmd() *cobra.Command {
	var quiet bool

	seedCmd := &cobra.Command{
		Use:   "seed [FILE]",
		Short: "Add plants from a YAML file",
		Long: `Add plants listed in a YAML file to the catalog. Without FILE four
well-known house plants are added.

Plants whose scientific name is already in the catalog are skipped, so
running seed twice changes nothing.

File format:
  plants:
    - nome_popular: Jiboia
      nome_cientifico: Epipremnum aureum
      familia: Araceae
      origem: Ilhas Salomão
      cuidados: Luz indireta.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			data, err := iofs.ReadSeed(path)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			plants, err := ioseed.Parse(data)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			rep, err := ioseed.Run(cmd.Context(), ioapi.New(cfg), plants,
				ioseed.OptProgress(!quiet))
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			gn.Info("Added <em>%s</em> plants, %s already in the catalog (%s)",
				humanize.Comma(int64(rep.Created)),
				humanize.Comma(int64(rep.Skipped)),
				gnfmt.TimeString(rep.Duration.Seconds()),
			)
			return nil
		},
	}

	seedCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"do not show progress bar")
	return seedCmd
}
