// Package ioweb serves the browser UI of acervo. Pages are rendered on the
// server from the application state: the grid of cards, the plant form and
// one-shot notifications. Every card action is a plain link or form post
// carrying the record identifier.
package ioweb

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/acervo/pkg/api"
	"github.com/gnames/acervo/pkg/app"
	"github.com/gnames/acervo/pkg/config"
	"github.com/gnames/acervo/pkg/view"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/*
var templateFS embed.FS

// Server wires HTTP requests to the application root.
type Server struct {
	app   *app.App
	flash *Flash
	addr  string
	tmpl  *template.Template
}

// New creates a server talking to the backend through cl. The renderer
// decides how cards are built, nil gives plain cards.
func New(cfg *config.Config, cl api.Client, r *view.Renderer) (*Server, error) {
	tmpl, err := template.New("acervo").
		Funcs(template.FuncMap{
			"actionURL": actionURL,
			"comma":     comma,
		}).
		ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, TemplateError(err)
	}

	fl := &Flash{}
	a := app.New(cl,
		app.OptNotifier(fl),
		app.OptConfirmer(pageConfirmer),
		app.OptRenderer(r),
	)
	return &Server{app: a, flash: fl, addr: cfg.Web.Addr, tmpl: tmpl}, nil
}

// App returns the application root used by the server.
func (s *Server) App() *app.App {
	return s.app
}

// Handler returns the mux with all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.index)
	mux.HandleFunc("GET /grid.json", s.gridJSON)
	mux.HandleFunc("POST /plantas", s.submit)
	mux.HandleFunc("POST /plantas/{id}/edit", s.edit)
	mux.HandleFunc("GET /plantas/{id}/delete", s.confirmDelete)
	mux.HandleFunc("POST /plantas/{id}/delete", s.remove)
	mux.HandleFunc("POST /form/clear", s.clear)
	mux.HandleFunc("POST /refresh", s.refresh)
	return logRequests(mux)
}

// Run fetches the catalog and serves the UI until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.app.Refresh(ctx); err != nil {
		slog.Warn("Catalog is not available yet", "error", err)
	}

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Web UI listening", "addr", s.addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return ServerError(s.addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func comma(i int) string {
	return humanize.Comma(int64(i))
}

func actionURL(a view.Action) string {
	return "/plantas/" + url.PathEscape(a.ID.String()) + "/" + string(a.Kind)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
