package view_test

import (
	"testing"

	"github.com/gnames/acervo/pkg/parserpool"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/gnames/acervo/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records() []plant.Plant {
	return []plant.Plant{
		{ID: "1", Input: plant.Input{
			PopularName:    "Jiboia",
			ScientificName: "Epipremnum aureum",
			Family:         "Araceae",
			Origin:         "Ilhas Salomão",
			Care:           "Luz indireta.",
		}},
		{ID: "2", Input: plant.Input{
			PopularName:    "Espada-de-São-Jorge",
			ScientificName: "Dracaena trifasciata",
			Family:         "Asparagaceae",
			Origin:         "África",
			Care:           "Regar pouco.",
		}},
	}
}

func TestParseAction(t *testing.T) {
	a, err := view.ParseAction("edit", "3")
	require.NoError(t, err)
	assert.Equal(t, view.ActionEdit, a.Kind)
	assert.Equal(t, plant.ID("3"), a.ID)
	assert.Equal(t, "Editar", a.Label)

	a, err = view.ParseAction("delete", "3")
	require.NoError(t, err)
	assert.Equal(t, view.ActionDelete, a.Kind)
	assert.Equal(t, "Excluir", a.Label)

	_, err = view.ParseAction("water", "3")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	r := view.NewRenderer(nil)
	cards := r.Render(records())
	require.Len(t, cards, 2)

	c := cards[1]
	assert.Equal(t, plant.ID("2"), c.ID)
	assert.Equal(t, "Espada-de-São-Jorge", c.PopularName)
	assert.Equal(t, "Dracaena trifasciata", c.ScientificName)
	assert.Equal(t, "Asparagaceae", c.Family)
	assert.Equal(t, "África", c.Origin)
	assert.Equal(t, "Regar pouco.", c.Care)
	assert.Empty(t, c.Canonical, "no parser, no canonical")

	require.Len(t, c.Actions, 2)
	for _, a := range c.Actions {
		assert.Equal(t, c.ID, a.ID, "actions are bound to the record")
	}
	assert.Equal(t, view.ActionEdit, c.Actions[0].Kind)
	assert.Equal(t, view.ActionDelete, c.Actions[1].Kind)
}

func TestRenderIdempotent(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()
	r := view.NewRenderer(pool)

	first := r.Render(records())
	second := r.Render(records())
	assert.Equal(t, first, second)

	assert.Equal(t, "Epipremnum aureum", first[0].Canonical)
	assert.Equal(t, parserpool.NameID("Epipremnum aureum"), first[0].NameID)
}

func TestRenderEmpty(t *testing.T) {
	r := view.NewRenderer(nil)
	cards := r.Render(nil)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}
