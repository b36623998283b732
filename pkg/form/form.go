// Package form implements the plant form controller. The form works in two
// modes: in create mode it has no current record identifier and a submit
// creates a new plant, in edit mode it remembers the identifier of the
// record being edited and a submit updates it.
package form

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gnames/acervo/pkg/api"
	"github.com/gnames/acervo/pkg/plant"
)

// Mode of the form, inferred from the presence of a current identifier.
type Mode int

const (
	// Create mode: submit issues a POST.
	Create Mode = iota
	// Edit mode: submit issues a PUT for the current identifier.
	Edit
)

// String returns the name of the mode.
func (m Mode) String() string {
	if m == Edit {
		return "edit"
	}
	return "create"
}

// Labels of the submit trigger in each mode.
const (
	CreateLabel = "Adicionar à Enciclopédia"
	EditLabel   = "Salvar Alterações"
)

// Result describes a successful submit.
type Result struct {
	// Mode the form was in when submitted.
	Mode Mode
	// Plant is the record returned by the backend.
	Plant plant.Plant
}

// Controller owns the form state. It is safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	currentID plant.ID
	values    plant.Input
	inFlight  bool
}

// New returns an empty controller in create mode.
func New() *Controller {
	return &Controller{}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode()
}

func (c *Controller) mode() Mode {
	if c.currentID.IsZero() {
		return Create
	}
	return Edit
}

// CurrentID returns the identifier of the record being edited, it is empty
// in create mode.
func (c *Controller) CurrentID() plant.ID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentID
}

// Values returns the current field values.
func (c *Controller) Values() plant.Input {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

// SubmitLabel returns the label of the submit trigger for the current mode.
func (c *Controller) SubmitLabel() string {
	if c.Mode() == Edit {
		return EditLabel
	}
	return CreateLabel
}

// InFlight is true while a submit request waits for the backend.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// EnterEditMode loads a record into the form and switches to edit mode.
func (c *Controller) EnterEditMode(p plant.Plant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentID = p.ID
	c.values = p.Input
}

// Clear empties all fields and switches back to create mode.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentID = ""
	c.values = plant.Input{}
}

// Fill replaces all field values keeping the mode.
func (c *Controller) Fill(in plant.Input) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = in
}

// SetField changes one field value.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.values.Set(name, value) {
		return UnknownFieldError(name)
	}
	return nil
}

// Submit sends the form to the backend: a create in create mode, an update
// of the current record in edit mode. Blank required fields fail validation
// before any request. Only one submit can be in flight, a concurrent call
// fails with a busy error. On success the form is cleared. On failure the
// form keeps its state so the user can retry.
func (c *Controller) Submit(ctx context.Context, cl api.Client) (Result, error) {
	return c.submit(ctx, cl, nil)
}

// SubmitInput replaces the field values with in and submits them, see
// Submit. While another submit is in flight it fails with a busy error and
// the values of the pending submit are left as they are.
func (c *Controller) SubmitInput(
	ctx context.Context,
	cl api.Client,
	in plant.Input,
) (Result, error) {
	return c.submit(ctx, cl, &in)
}

func (c *Controller) submit(
	ctx context.Context,
	cl api.Client,
	in *plant.Input,
) (Result, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return Result{}, BusyError()
	}
	if in != nil {
		c.values = *in
	}
	if missing := c.values.Missing(); len(missing) > 0 {
		c.mu.Unlock()
		return Result{}, ValidationError(missing)
	}
	id := c.currentID
	vals := c.values
	mode := c.mode()
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	var p plant.Plant
	var err error
	if mode == Edit {
		p, err = cl.Update(ctx, id, vals)
	} else {
		p, err = cl.Create(ctx, vals)
	}
	if err != nil {
		slog.Error("Form submit failed", "mode", mode.String(), "id", id, "error", err)
		return Result{}, err
	}

	slog.Info("Form submitted", "mode", mode.String(), "id", p.ID)
	c.Clear()
	return Result{Mode: mode, Plant: p}, nil
}
