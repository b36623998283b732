package ioweb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash(t *testing.T) {
	var f Flash
	assert.Empty(t, f.Pop())

	f.Success("Planta adicionada com sucesso!")
	f.Error("Nome científico já cadastrado na enciclopédia.")
	msgs := f.Pop()
	require.Len(t, msgs, 2)
	assert.False(t, msgs[0].Error)
	assert.True(t, msgs[1].Error)
	assert.Equal(t, "ERRO: Nome científico já cadastrado na enciclopédia.", msgs[1].Text)
	assert.Empty(t, f.Pop())
}

func TestPageConfirmer(t *testing.T) {
	ctx := context.Background()
	ok, err := pageConfirmer.Confirm(ctx, "?")
	require.NoError(t, err)
	assert.False(t, ok, "no answer declines")

	ok, err = pageConfirmer.Confirm(withAnswer(ctx, true), "?")
	require.NoError(t, err)
	assert.True(t, ok)
}
