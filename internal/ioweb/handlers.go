package ioweb

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gnames/acervo/pkg/app"
	"github.com/gnames/acervo/pkg/form"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/gnames/acervo/pkg/view"
	"github.com/gnames/gnfmt"
)

type field struct {
	Name      string
	Label     string
	Value     string
	Multiline bool
}

type formData struct {
	ID      plant.ID
	Editing bool
	Label   string
	Fields  []field
}

type indexPage struct {
	Grid     view.Grid
	Form     formData
	Messages []Message
}

type confirmPage struct {
	ID       plant.ID
	Name     string
	Question string
	Messages []Message
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	if s.app.Store().Snapshot().FetchedAt.IsZero() {
		_ = s.app.Refresh(r.Context())
	}

	fc := s.app.Form()
	in := fc.Values()
	fields := make([]field, len(plant.Fields))
	for i, v := range plant.Fields {
		val, _ := in.Get(v)
		fields[i] = field{
			Name:      v,
			Label:     plant.Labels[v],
			Value:     val,
			Multiline: v == plant.FieldCare,
		}
	}

	data := indexPage{
		Grid: s.app.Grid(r.URL.Query().Get("q")),
		Form: formData{
			ID:      fc.CurrentID(),
			Editing: fc.Mode() == form.Edit,
			Label:   fc.SubmitLabel(),
			Fields:  fields,
		},
		Messages: s.flash.Pop(),
	}
	s.render(w, "index.gohtml", data)
}

func (s *Server) gridJSON(w http.ResponseWriter, r *http.Request) {
	g := s.app.Grid(r.URL.Query().Get("q"))
	bs, err := gnfmt.GNjson{}.Encode(g)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if g.Unavailable != "" {
		w.WriteHeader(http.StatusBadGateway)
	}
	_, _ = w.Write(bs)
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var in plant.Input
	for _, v := range plant.Fields {
		in.Set(v, r.PostForm.Get(v))
	}

	if _, err := s.app.SubmitInput(r.Context(), in); err != nil {
		redirect(w, r, "/#planta-form")
		return
	}
	redirect(w, r, "/")
}

func (s *Server) edit(w http.ResponseWriter, r *http.Request) {
	_ = s.app.Edit(plant.ID(r.PathValue("id")))
	redirect(w, r, "/#planta-form")
}

func (s *Server) confirmDelete(w http.ResponseWriter, r *http.Request) {
	id := plant.ID(r.PathValue("id"))
	data := confirmPage{
		ID:       id,
		Question: app.DeleteQuestion(id),
		Messages: s.flash.Pop(),
	}
	if p, ok := s.app.Store().Find(id); ok {
		data.Name = p.PopularName
	}
	s.render(w, "confirm.gohtml", data)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id := plant.ID(r.PathValue("id"))
	yes := r.PostFormValue("confirm") == "yes"
	_, _ = s.app.RequestDelete(withAnswer(r.Context(), yes), id)
	redirect(w, r, "/")
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	s.app.Clear()
	redirect(w, r, "/#planta-form")
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	_ = s.app.Refresh(r.Context())
	target := "/"
	if q := r.PostFormValue("q"); q != "" {
		target += "?q=" + url.QueryEscape(q)
	}
	redirect(w, r, target)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("Cannot render page", "page", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
