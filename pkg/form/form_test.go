package form_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gnames/acervo/internal/iotesting"
	"github.com/gnames/acervo/pkg/errcode"
	"github.com/gnames/acervo/pkg/form"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jiboia() plant.Plant {
	return plant.Plant{
		ID: "7",
		Input: plant.Input{
			PopularName:    "Jiboia",
			ScientificName: "Epipremnum aureum",
			Family:         "Araceae",
			Origin:         "Ilhas Salomão",
			Care:           "Manter o solo úmido.",
		},
	}
}

func TestNewController(t *testing.T) {
	c := form.New()
	assert.Equal(t, form.Create, c.Mode())
	assert.True(t, c.CurrentID().IsZero())
	assert.Equal(t, form.CreateLabel, c.SubmitLabel())
	assert.True(t, c.Values().IsBlank())
	assert.False(t, c.InFlight())
}

func TestEnterEditModeAndClear(t *testing.T) {
	c := form.New()
	p := jiboia()

	c.EnterEditMode(p)
	assert.Equal(t, form.Edit, c.Mode())
	assert.Equal(t, "edit", c.Mode().String())
	assert.Equal(t, p.ID, c.CurrentID())
	assert.Equal(t, p.Input, c.Values())
	assert.Equal(t, form.EditLabel, c.SubmitLabel())

	c.Clear()
	assert.Equal(t, form.Create, c.Mode())
	assert.True(t, c.CurrentID().IsZero())
	assert.True(t, c.Values().IsBlank())
	assert.Equal(t, form.CreateLabel, c.SubmitLabel())
}

func TestSetField(t *testing.T) {
	c := form.New()
	require.NoError(t, c.SetField(plant.FieldOrigin, "Brasil"))
	assert.Equal(t, "Brasil", c.Values().Origin)

	err := c.SetField("altura", "2m")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.FormValidationError, gnErr.Code)
}

func TestSubmitCreate(t *testing.T) {
	ctx := context.Background()
	cl := iotesting.NewFakeClient()
	c := form.New()
	c.Fill(jiboia().Input)

	res, err := c.Submit(ctx, cl)
	require.NoError(t, err)
	assert.Equal(t, form.Create, res.Mode)
	assert.Equal(t, plant.ID("1"), res.Plant.ID)

	calls := cl.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Create", calls[0].Method)
	assert.True(t, calls[0].ID.IsZero(), "create carries no id")
	assert.Equal(t, jiboia().Input, calls[0].Input)

	assert.True(t, c.Values().IsBlank(), "form resets after success")
	assert.Equal(t, form.Create, c.Mode())
}

func TestSubmitEditUnchanged(t *testing.T) {
	ctx := context.Background()
	p := jiboia()
	cl := iotesting.NewFakeClient(p)
	c := form.New()

	c.EnterEditMode(p)
	res, err := c.Submit(ctx, cl)
	require.NoError(t, err)
	assert.Equal(t, form.Edit, res.Mode)

	calls := cl.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Update", calls[0].Method)
	assert.Equal(t, p.ID, calls[0].ID)
	assert.Equal(t, p.Input, calls[0].Input, "fields are unchanged")
	assert.Equal(t, form.Create, c.Mode(), "form resets after update")
}

func TestSubmitBlankAfterClear(t *testing.T) {
	ctx := context.Background()
	cl := iotesting.NewFakeClient(jiboia())
	c := form.New()

	c.EnterEditMode(jiboia())
	c.Clear()
	_, err := c.Submit(ctx, cl)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.FormValidationError, gnErr.Code)
	assert.Empty(t, cl.Calls(), "blank form never reaches the API")
	assert.True(t, c.CurrentID().IsZero())
}

func TestSubmitMissingField(t *testing.T) {
	ctx := context.Background()
	cl := iotesting.NewFakeClient()
	c := form.New()
	in := jiboia().Input
	in.Care = " "
	c.Fill(in)

	_, err := c.Submit(ctx, cl)
	require.Error(t, err)
	gnErr := err.(*gn.Error)
	require.Len(t, gnErr.Vars, 1)
	assert.Equal(t, "Cuidados", gnErr.Vars[0])
	assert.Empty(t, cl.Calls())
	assert.Equal(t, in, c.Values(), "form keeps values")
}

func TestSubmitFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	p := jiboia()
	cl := iotesting.NewFakeClient(p)
	cl.UpdateErr = errors.New("Planta não encontrada na enciclopédia")
	c := form.New()

	c.EnterEditMode(p)
	require.NoError(t, c.SetField(plant.FieldCare, "Regar pouco."))
	_, err := c.Submit(ctx, cl)
	require.Error(t, err)

	assert.Equal(t, form.Edit, c.Mode())
	assert.Equal(t, p.ID, c.CurrentID())
	assert.Equal(t, "Regar pouco.", c.Values().Care)
	assert.False(t, c.InFlight())
}

func TestSubmitInFlightGuard(t *testing.T) {
	ctx := context.Background()
	cl := iotesting.NewFakeClient()
	cl.Block = make(chan struct{})
	c := form.New()
	c.Fill(jiboia().Input)

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(ctx, cl)
		done <- err
	}()

	require.Eventually(t, c.InFlight, time.Second, time.Millisecond)

	_, err := c.Submit(ctx, cl)
	require.Error(t, err)
	assert.ErrorIs(t, err.(*gn.Error).Err, form.ErrSubmitInProgress)

	close(cl.Block)
	require.NoError(t, <-done)
	assert.Len(t, cl.CallsOf("Create"), 1, "no duplicate POST")
	assert.False(t, c.InFlight())
}

func TestSubmitInputKeepsPendingValues(t *testing.T) {
	ctx := context.Background()
	cl := iotesting.NewFakeClient()
	cl.Block = make(chan struct{})
	c := form.New()
	first := jiboia().Input

	done := make(chan error, 1)
	go func() {
		_, err := c.SubmitInput(ctx, cl, first)
		done <- err
	}()
	require.Eventually(t, c.InFlight, time.Second, time.Millisecond)

	second := first
	second.PopularName = "Outra"
	_, err := c.SubmitInput(ctx, cl, second)
	require.Error(t, err)
	assert.ErrorIs(t, err.(*gn.Error).Err, form.ErrSubmitInProgress)
	assert.Equal(t, first, c.Values(), "pending values are not overwritten")

	close(cl.Block)
	require.NoError(t, <-done)
	creates := cl.CallsOf("Create")
	require.Len(t, creates, 1)
	assert.Equal(t, first, creates[0].Input)
	assert.True(t, c.Values().IsBlank())
}
