package ioterm_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gnames/acervo/internal/ioterm"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/gnames/acervo/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		msg   string
		input string
		yes   bool
	}{
		{"yes", "yes\n", true},
		{"y upper", "Y\n", true},
		{"sim", "sim\n", true},
		{"s with spaces", "  s  \n", true},
		{"no", "n\n", false},
		{"empty line", "\n", false},
		{"eof", "", false},
		{"no newline", "y", true},
	}

	for _, v := range tests {
		var out bytes.Buffer
		c := ioterm.NewConfirmer(strings.NewReader(v.input), &out)
		ok, err := c.Confirm(ctx, "Excluir?")
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.yes, ok, v.msg)
		assert.Equal(t, "Excluir? [y/N]: ", out.String(), v.msg)
	}
}

func TestConfirmCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	c := ioterm.NewConfirmer(strings.NewReader("yes\n"), &out)
	ok, err := c.Confirm(ctx, "Excluir?")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Empty(t, out.String())
}

func TestYes(t *testing.T) {
	ok, err := ioterm.Yes.Confirm(context.Background(), "?")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParseFormat(t *testing.T) {
	for i, v := range ioterm.FormatNames {
		f, err := ioterm.ParseFormat(v)
		require.NoError(t, err)
		assert.Equal(t, ioterm.Format(i), f)
	}
	f, err := ioterm.ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, ioterm.CSV, f)

	_, err = ioterm.ParseFormat("xml")
	assert.Error(t, err)
}

func grid() view.Grid {
	r := view.NewRenderer(nil)
	cards := r.Render([]plant.Plant{
		{ID: "1", Input: plant.Input{
			PopularName:    "Jiboia",
			ScientificName: "Epipremnum aureum",
			Family:         "Araceae",
			Origin:         "Ilhas Salomão",
			Care:           "Luz indireta.",
		}},
	})
	return view.Grid{Cards: cards, Total: 4, Term: "jib"}
}

func TestPrintText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ioterm.PrintGrid(&out, grid(), ioterm.Text))
	s := out.String()
	assert.Contains(t, s, "[1] Jiboia (Epipremnum aureum)")
	assert.Contains(t, s, "Família: Araceae")
	assert.Contains(t, s, "Cuidados: Luz indireta.")
	assert.Contains(t, s, `1 de 4 plantas para "jib"`)
}

func TestPrintTextAll(t *testing.T) {
	g := grid()
	g.Term = ""
	var out bytes.Buffer
	require.NoError(t, ioterm.PrintGrid(&out, g, ioterm.Text))
	assert.Contains(t, out.String(), "4 plantas no acervo")
}

func TestPrintCSV(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ioterm.PrintGrid(&out, grid(), ioterm.CSV))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,nome_popular,nome_cientifico"))
	assert.True(t, strings.HasPrefix(lines[1], "1,Jiboia,Epipremnum aureum"))

	out.Reset()
	require.NoError(t, ioterm.PrintGrid(&out, grid(), ioterm.TSV))
	lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1", strings.Split(lines[1], "\t")[0])
	assert.Equal(t, "Jiboia", strings.Split(lines[1], "\t")[1])
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ioterm.PrintGrid(&out, grid(), ioterm.JSON))
	assert.Contains(t, out.String(), `"nome_popular":"Jiboia"`)

	out.Reset()
	require.NoError(t, ioterm.PrintGrid(&out, grid(), ioterm.PrettyJSON))
	assert.Contains(t, out.String(), "\n")
	assert.Contains(t, out.String(), `"Epipremnum aureum"`)
}

func TestPrintUnavailable(t *testing.T) {
	var out bytes.Buffer
	g := view.Grid{Unavailable: "A API está rodando?"}
	err := ioterm.PrintGrid(&out, g, ioterm.Text)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
