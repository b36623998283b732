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
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/acervo/internal/ioapi"
	"github.com/gnames/acervo/internal/ioweb"
	"github.com/gnames/acervo/pkg/parserpool"
	"github.com/gnames/acervo/pkg/view"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getServeCmd returns the serve command.
func getServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog in the browser",
		Long: `Start a local web UI for the plant catalog.

The page shows all plants as cards with a search box and a form to add
or edit plants. Cards have "Editar" and "Excluir" actions, deleting asks
for confirmation first.

Examples:
  acervo serve
  acervo serve --addr 127.0.0.1:9000 --api-url http://plantas.local:8000`,
		RunE: runServe,
	}

	serveCmd.Flags().String("addr", "", "address of the web UI (host:port)")
	return serveCmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool := parserpool.NewPool(0)
	defer pool.Close()

	srv, err := ioweb.New(cfg, ioapi.New(cfg), view.NewRenderer(pool))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Acervo is available at <em>http://%s</em>", cfg.Web.Addr)
	gn.Info("Plant catalog API: <em>%s</em>", cfg.API.BaseURL)

	if err = srv.Run(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Web UI stopped")
	return nil
}
