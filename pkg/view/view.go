// Package view projects catalog records into declarative view models.
// Cards do not carry callbacks: each card lists the actions available on
// its record as (kind, id) pairs, and surfaces send them back to a single
// dispatcher.
package view

import (
	"fmt"
	"time"

	"github.com/gnames/acervo/pkg/parserpool"
	"github.com/gnames/acervo/pkg/plant"
)

// ActionKind names an operation triggered from a card.
type ActionKind string

const (
	// ActionEdit loads the record into the form.
	ActionEdit ActionKind = "edit"
	// ActionDelete removes the record after confirmation.
	ActionDelete ActionKind = "delete"
)

// Action binds an operation to a record identifier.
type Action struct {
	Kind  ActionKind `json:"kind"`
	ID    plant.ID   `json:"id"`
	Label string     `json:"label"`
}

// ParseAction builds an Action from its textual kind.
func ParseAction(kind string, id plant.ID) (Action, error) {
	switch ActionKind(kind) {
	case ActionEdit:
		return Action{Kind: ActionEdit, ID: id, Label: "Editar"}, nil
	case ActionDelete:
		return Action{Kind: ActionDelete, ID: id, Label: "Excluir"}, nil
	default:
		return Action{}, fmt.Errorf("unknown action %q", kind)
	}
}

// Card is the display unit of one plant.
type Card struct {
	ID             plant.ID `json:"id"`
	PopularName    string   `json:"nome_popular"`
	ScientificName string   `json:"nome_cientifico"`
	Canonical      string   `json:"canonical,omitempty"`
	NameID         string   `json:"name_id,omitempty"`
	Family         string   `json:"familia"`
	Origin         string   `json:"origem"`
	Care           string   `json:"cuidados"`
	Actions        []Action `json:"actions"`
}

// Grid is the rendered catalog.
type Grid struct {
	// Cards in catalog order.
	Cards []Card `json:"cards"`

	// Term is the search term the cards were filtered with.
	Term string `json:"term,omitempty"`

	// Total is the size of the whole catalog before filtering.
	Total int `json:"total"`

	// FetchedAt is the time of the last successful fetch.
	FetchedAt time.Time `json:"fetched_at"`

	// Unavailable, when not empty, replaces the cards: the catalog could
	// not be fetched from the backend.
	Unavailable string `json:"unavailable,omitempty"`
}

// Renderer turns plant records into cards.
type Renderer struct {
	pool parserpool.Pool
}

// NewRenderer creates a renderer. The pool is used to show canonical forms
// of scientific names, it can be nil.
func NewRenderer(pool parserpool.Pool) *Renderer {
	return &Renderer{pool: pool}
}

// Render produces one card per record, in the order of records. It has no
// side effects: rendering the same records twice gives equal results.
func (r *Renderer) Render(records []plant.Plant) []Card {
	res := make([]Card, len(records))
	for i, v := range records {
		res[i] = r.card(v)
	}
	return res
}

func (r *Renderer) card(p plant.Plant) Card {
	edit, _ := ParseAction(string(ActionEdit), p.ID)
	del, _ := ParseAction(string(ActionDelete), p.ID)
	res := Card{
		ID:             p.ID,
		PopularName:    p.PopularName,
		ScientificName: p.ScientificName,
		Family:         p.Family,
		Origin:         p.Origin,
		Care:           p.Care,
		Actions:        []Action{edit, del},
	}
	if r.pool != nil {
		res.Canonical = r.pool.Canonical(p.ScientificName)
		res.NameID = parserpool.NameID(res.Canonical)
	}
	return res
}
