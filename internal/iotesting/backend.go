package iotesting

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/gnames/acervo/pkg/plant"
)

// Request is a request received by Backend.
type Request struct {
	Method    string
	Path      string
	Body      map[string]any
	RequestID string
}

type record struct {
	ID int `json:"id"`
	plant.Input
}

// Backend imitates the plant catalog REST service: numeric identifiers,
// 201 on create, {"detail": ...} bodies on errors and a unique scientific
// name. It exists only to exercise the HTTP client in tests.
type Backend struct {
	mu       sync.Mutex
	records  []record
	nextID   int
	requests []Request
}

// NewBackend starts a test server with given inputs stored under
// identifiers 1, 2, ... The server is closed at the end of the test.
func NewBackend(t *testing.T, inputs ...plant.Input) (*Backend, *httptest.Server) {
	t.Helper()

	b := &Backend{}
	for _, v := range inputs {
		b.nextID++
		b.records = append(b.records, record{ID: b.nextID, Input: v})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /plantas/{$}", b.list)
	mux.HandleFunc("POST /plantas/{$}", b.create)
	mux.HandleFunc("GET /plantas/{id}", b.get)
	mux.HandleFunc("PUT /plantas/{id}", b.update)
	mux.HandleFunc("DELETE /plantas/{id}", b.remove)

	srv := httptest.NewServer(b.recorder(mux))
	t.Cleanup(srv.Close)
	return b, srv
}

// Requests returns received requests.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.requests)
}

// Len returns the number of stored records.
func (b *Backend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records)
}

func (b *Backend) recorder(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			RequestID: r.Header.Get("X-Request-ID"),
		}
		if r.Body != nil && r.ContentLength != 0 {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeJSON(w, http.StatusUnprocessableEntity,
					map[string]string{"detail": "invalid JSON body"})
				return
			}
			req.Body = body
			raw, _ := json.Marshal(body)
			r.Body = io.NopCloser(bytes.NewReader(raw))
		}
		b.mu.Lock()
		b.requests = append(b.requests, req)
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) list(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	res := slices.Clone(b.records)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, res)
}

func (b *Backend) get(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.find(r.PathValue("id"))
	if i < 0 {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, b.records[i])
}

func (b *Backend) create(w http.ResponseWriter, r *http.Request) {
	var in plant.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity,
			map[string]string{"detail": err.Error()})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sciNameTaken(in.ScientificName, -1) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": "Nome científico já cadastrado na enciclopédia.",
		})
		return
	}
	b.nextID++
	rec := record{ID: b.nextID, Input: in}
	b.records = append(b.records, rec)
	writeJSON(w, http.StatusCreated, rec)
}

func (b *Backend) update(w http.ResponseWriter, r *http.Request) {
	var in plant.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity,
			map[string]string{"detail": err.Error()})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.find(r.PathValue("id"))
	if i < 0 {
		notFound(w)
		return
	}
	if b.sciNameTaken(in.ScientificName, b.records[i].ID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": "Nome científico já está em uso por outra planta.",
		})
		return
	}
	b.records[i].Input = in
	writeJSON(w, http.StatusOK, b.records[i])
}

func (b *Backend) remove(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.find(r.PathValue("id"))
	if i < 0 {
		notFound(w)
		return
	}
	rec := b.records[i]
	b.records = slices.Delete(b.records, i, i+1)
	writeJSON(w, http.StatusOK, rec)
}

func (b *Backend) find(idStr string) int {
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return -1
	}
	return slices.IndexFunc(b.records, func(r record) bool {
		return r.ID == id
	})
}

func (b *Backend) sciNameTaken(name string, except int) bool {
	return slices.ContainsFunc(b.records, func(r record) bool {
		return r.ScientificName == name && r.ID != except
	})
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"detail": "Planta não encontrada na enciclopédia",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
