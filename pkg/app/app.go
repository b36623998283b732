// Package app is the application root of acervo. It owns the catalog
// store and the form controller, talks to the backend through api.Client
// and reports outcomes through a Notifier. Surfaces (terminal commands and
// the web UI) call App methods and render what they return.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gnames/acervo/pkg/api"
	"github.com/gnames/acervo/pkg/catalog"
	"github.com/gnames/acervo/pkg/form"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/gnames/acervo/pkg/view"
	"golang.org/x/sync/singleflight"
)

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, question string) (bool, error)

// Confirm calls f.
func (f ConfirmerFunc) Confirm(ctx context.Context, question string) (bool, error) {
	return f(ctx, question)
}

// Notifier shows one-shot messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Messages shown after successful operations.
const (
	MsgCreated = "Planta adicionada com sucesso!"
	MsgUpdated = "Planta atualizada com sucesso!"
	MsgDeleted = "Planta excluída com sucesso!"

	// MsgUnavailable replaces the grid when the catalog cannot be fetched.
	MsgUnavailable = "Não foi possível carregar o acervo. A API está rodando?"
)

// App coordinates catalog, form and backend.
type App struct {
	client   api.Client
	store    *catalog.Store
	form     *form.Controller
	renderer *view.Renderer
	confirm  Confirmer
	notify   Notifier
	now      func() time.Time

	refresh singleflight.Group

	mu      sync.RWMutex
	loadErr error
}

// Option configures an App.
type Option func(*App)

// OptConfirmer sets how delete confirmations are obtained. Without it every
// delete request is declined.
func OptConfirmer(c Confirmer) Option {
	return func(a *App) {
		if c != nil {
			a.confirm = c
		}
	}
}

// OptNotifier sets where notifications go. Without it they are only logged.
func OptNotifier(n Notifier) Option {
	return func(a *App) {
		if n != nil {
			a.notify = n
		}
	}
}

// OptRenderer sets the card renderer.
func OptRenderer(r *view.Renderer) Option {
	return func(a *App) {
		if r != nil {
			a.renderer = r
		}
	}
}

// OptClock replaces time.Now, used in tests.
func OptClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates an App with an empty catalog and a form in create mode.
func New(client api.Client, opts ...Option) *App {
	res := &App{
		client:   client,
		store:    catalog.NewStore(),
		form:     form.New(),
		renderer: view.NewRenderer(nil),
		confirm: ConfirmerFunc(func(context.Context, string) (bool, error) {
			return false, nil
		}),
		notify: logNotifier{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Store returns the catalog store.
func (a *App) Store() *catalog.Store {
	return a.store
}

// Form returns the form controller.
func (a *App) Form() *form.Controller {
	return a.form
}

// LoadErr returns the error of the last catalog fetch, nil if it succeeded.
func (a *App) LoadErr() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loadErr
}

func (a *App) setLoadErr(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loadErr = err
}

// Refresh fetches the whole catalog and replaces the store with it.
// On failure the store keeps its previous content, the error is remembered
// and the grid shows the catalog as unavailable until a fetch succeeds.
// Overlapping calls share one request. The shared request is not tied to
// the cancelation of any single caller: a caller whose ctx is done returns
// ctx.Err() while the fetch completes for the others.
func (a *App) Refresh(ctx context.Context) error {
	fetchCtx := context.WithoutCancel(ctx)
	ch := a.refresh.DoChan("catalog", func() (any, error) {
		records, err := a.client.ListAll(fetchCtx)
		if err != nil {
			slog.Error("Cannot fetch catalog", "error", err)
			a.setLoadErr(err)
			return nil, err
		}
		a.store.Replace(records, a.now())
		a.setLoadErr(nil)
		slog.Info("Catalog fetched", "records", len(records))
		return nil, nil
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Shared {
			slog.Debug("Catalog fetch shared with a concurrent caller")
		}
		return res.Err
	}
}

// Grid renders the catalog filtered by term. The filter works on the
// in-memory snapshot only, it never calls the backend.
func (a *App) Grid(term string) view.Grid {
	snap := a.store.Snapshot()
	res := view.Grid{
		Term:      term,
		Total:     snap.Len(),
		FetchedAt: snap.FetchedAt,
	}
	if a.LoadErr() != nil {
		res.Unavailable = MsgUnavailable
		res.Cards = []view.Card{}
		return res
	}
	res.Cards = a.renderer.Render(catalog.Filter(snap.Plants, term))
	return res
}

// Card renders a single record.
func (a *App) Card(p plant.Plant) view.Card {
	return a.renderer.Render([]plant.Plant{p})[0]
}

// Edit loads the record with the given identifier into the form.
func (a *App) Edit(id plant.ID) error {
	p, ok := a.store.Find(id)
	if !ok {
		err := RecordNotFoundError(id)
		a.notify.Error(UserMessage(err))
		return err
	}
	a.form.EnterEditMode(p)
	return nil
}

// Clear resets the form to create mode.
func (a *App) Clear() {
	a.form.Clear()
}

// Submit sends the form. On success the form is reset, a success message
// is shown and the catalog is fetched again. On failure the form and the
// catalog stay as they were and the error is shown.
func (a *App) Submit(ctx context.Context) (form.Result, error) {
	res, err := a.form.Submit(ctx, a.client)
	return a.afterSubmit(ctx, res, err)
}

// SubmitInput fills the form with in and sends it as one step, see Submit.
// A submit already in flight keeps its values.
func (a *App) SubmitInput(ctx context.Context, in plant.Input) (form.Result, error) {
	res, err := a.form.SubmitInput(ctx, a.client, in)
	return a.afterSubmit(ctx, res, err)
}

func (a *App) afterSubmit(
	ctx context.Context,
	res form.Result,
	err error,
) (form.Result, error) {
	if err != nil {
		a.notify.Error(UserMessage(err))
		return res, err
	}

	msg := MsgCreated
	if res.Mode == form.Edit {
		msg = MsgUpdated
	}
	a.notify.Success(msg)
	_ = a.Refresh(ctx)
	return res, nil
}

// RequestDelete asks for confirmation and deletes the record. It returns
// false if the user declined, in that case nothing is sent to the backend.
// On success the catalog is fetched again. On failure the catalog is left
// untouched and the error is shown.
func (a *App) RequestDelete(ctx context.Context, id plant.ID) (bool, error) {
	ok, err := a.confirm.Confirm(ctx, DeleteQuestion(id))
	if err != nil {
		a.notify.Error(UserMessage(err))
		return false, err
	}
	if !ok {
		slog.Info("Delete declined", "id", id)
		return false, nil
	}

	if err = a.client.Remove(ctx, id); err != nil {
		a.notify.Error(UserMessage(err))
		return true, err
	}

	_ = a.Refresh(ctx)
	a.notify.Success(MsgDeleted)
	return true, nil
}

// DeleteQuestion is the confirmation asked before a record is deleted.
func DeleteQuestion(id plant.ID) string {
	return fmt.Sprintf(
		"Tem certeza que deseja EXCLUIR a planta com ID %s? "+
			"Esta ação é irreversível.", id,
	)
}

// Dispatch runs the operation an action from a card refers to.
func (a *App) Dispatch(ctx context.Context, act view.Action) error {
	switch act.Kind {
	case view.ActionEdit:
		return a.Edit(act.ID)
	case view.ActionDelete:
		_, err := a.RequestDelete(ctx, act.ID)
		return err
	default:
		err := UnknownActionError(string(act.Kind))
		a.notify.Error(UserMessage(err))
		return err
	}
}

type logNotifier struct{}

func (logNotifier) Success(msg string) {
	slog.Info(msg)
}

func (logNotifier) Error(msg string) {
	slog.Error(msg)
}
