package plant_test

import (
	"encoding/json"
	"testing"

	"github.com/gnames/acervo/pkg/plant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		msg  string
		json string
		id   plant.ID
	}{
		{"number", `{"id": 42}`, "42"},
		{"string", `{"id": "a7f3"}`, "a7f3"},
		{"null", `{"id": null}`, ""},
		{"absent", `{}`, ""},
	}

	for _, v := range tests {
		var p plant.Plant
		err := json.Unmarshal([]byte(v.json), &p)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.id, p.ID, v.msg)
	}

	var p plant.Plant
	err := json.Unmarshal([]byte(`{"id": true}`), &p)
	assert.Error(t, err)
}

func TestPlantDecode(t *testing.T) {
	data := `[{"id":1,"nome_popular":"Jiboia","nome_cientifico":"Epipremnum aureum",
"familia":"Araceae","origem":"Ilhas Salomão","cuidados":"Luz indireta."}]`

	var res []plant.Plant
	err := json.Unmarshal([]byte(data), &res)
	require.NoError(t, err)
	require.Len(t, res, 1)

	p := res[0]
	assert.Equal(t, plant.ID("1"), p.ID)
	assert.Equal(t, "Jiboia", p.PopularName)
	assert.Equal(t, "Epipremnum aureum", p.ScientificName)
	assert.Equal(t, "Araceae", p.Family)
	assert.Equal(t, "Ilhas Salomão", p.Origin)
	assert.Equal(t, "Luz indireta.", p.Care)
}

func TestInputEncodeHasNoID(t *testing.T) {
	in := plant.Input{PopularName: "Jiboia"}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"id"`)
	assert.Contains(t, string(b), `"nome_popular":"Jiboia"`)
}

func TestInputGetSet(t *testing.T) {
	var in plant.Input
	for i, f := range plant.Fields {
		ok := in.Set(f, string(rune('a'+i)))
		assert.True(t, ok, f)
	}
	assert.Equal(t, "a", in.PopularName)
	assert.Equal(t, "e", in.Care)

	v, ok := in.Get(plant.FieldFamily)
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	assert.False(t, in.Set("cor", "verde"))
	_, ok = in.Get("cor")
	assert.False(t, ok)
}

func TestInputMissing(t *testing.T) {
	var in plant.Input
	assert.True(t, in.IsBlank())
	assert.Equal(t, plant.Fields, in.Missing())

	in = plant.Input{
		PopularName:    "Jiboia",
		ScientificName: "Epipremnum aureum",
		Family:         "  ",
		Origin:         "Ilhas Salomão",
	}
	assert.False(t, in.IsBlank())
	assert.Equal(t,
		[]string{plant.FieldFamily, plant.FieldCare}, in.Missing())
}
