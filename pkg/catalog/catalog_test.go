package catalog_test

import (
	"sync"
	"testing"
	"time"

	"github.com/gnames/acervo/pkg/catalog"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples() []plant.Plant {
	return []plant.Plant{
		{ID: "1", Input: plant.Input{
			PopularName:    "Samambaia",
			ScientificName: "Nephrolepis exaltata",
			Family:         "Nephrolepidaceae",
			Origin:         "América tropical",
			Care:           "Solo úmido.",
		}},
		{ID: "2", Input: plant.Input{
			PopularName:    "Orquídea",
			ScientificName: "Phalaenopsis amabilis",
			Family:         "Orchidaceae",
			Origin:         "Sudeste Asiático",
			Care:           "Luz filtrada.",
		}},
		{ID: "3", Input: plant.Input{
			PopularName:    "Costela-de-Adão",
			ScientificName: "Monstera deliciosa",
			Family:         "Araceae",
			Origin:         "México",
			Care:           "Luz indireta.",
		}},
	}
}

func ids(pp []plant.Plant) []plant.ID {
	res := make([]plant.ID, len(pp))
	for i, v := range pp {
		res[i] = v.ID
	}
	return res
}

func TestStoreReplace(t *testing.T) {
	s := catalog.NewStore()
	assert.Equal(t, 0, s.Snapshot().Len())
	assert.True(t, s.Snapshot().FetchedAt.IsZero())

	now := time.Now()
	s.Replace(samples(), now)
	snap := s.Snapshot()
	assert.Equal(t, samples(), snap.Plants,
		"store equals fetched sequence in the same order")
	assert.Equal(t, now, snap.FetchedAt)

	s.Replace(samples()[2:], now.Add(time.Minute))
	assert.Equal(t, []plant.ID{"3"}, ids(s.All()),
		"replace discards previous records")
}

func TestStoreReplaceDuplicates(t *testing.T) {
	s := catalog.NewStore()
	pp := samples()
	dup := pp[0]
	dup.PopularName = "Samambaia de novo"
	pp = append(pp, dup)

	s.Replace(pp, time.Now())
	res := s.All()
	require.Len(t, res, 3)
	assert.Equal(t, "Samambaia", res[0].PopularName,
		"first occurrence wins")
}

func TestStoreFind(t *testing.T) {
	s := catalog.NewStore()
	s.Replace(samples(), time.Now())

	p, ok := s.Find("2")
	assert.True(t, ok)
	assert.Equal(t, "Orquídea", p.PopularName)

	_, ok = s.Find("99")
	assert.False(t, ok)
}

func TestStoreAllIsCopy(t *testing.T) {
	s := catalog.NewStore()
	s.Replace(samples(), time.Now())

	all := s.All()
	all[0].PopularName = "mudado"
	p, _ := s.Find("1")
	assert.Equal(t, "Samambaia", p.PopularName)
}

func TestStoreConcurrentReaders(t *testing.T) {
	s := catalog.NewStore()
	a := samples()
	b := samples()[:1]

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				n := s.Snapshot().Len()
				assert.Contains(t, []int{0, 1, 3}, n)
			}
		}()
	}
	for j := 0; j < 200; j++ {
		if j%2 == 0 {
			s.Replace(a, time.Now())
		} else {
			s.Replace(b, time.Now())
		}
	}
	wg.Wait()
}

func TestFilter(t *testing.T) {
	pp := samples()

	tests := []struct {
		msg  string
		term string
		res  []plant.ID
	}{
		{"popular name prefix", "orqu", []plant.ID{"2"}},
		{"case insensitive", "SAMAMBAIA", []plant.ID{"1"}},
		{"scientific name", "monstera", []plant.ID{"3"}},
		{"family", "araceae", []plant.ID{"3"}},
		{"shared substring keeps order", "ae", []plant.ID{"1", "2", "3"}},
		{"empty term", "", []plant.ID{"1", "2", "3"}},
		{"blank term", "   ", []plant.ID{"1", "2", "3"}},
		{"origin is not searched", "méxico", []plant.ID{}},
		{"care is not searched", "luz", []plant.ID{}},
		{"no match", "cacto", []plant.ID{}},
	}

	for _, v := range tests {
		res := catalog.Filter(pp, v.term)
		assert.Equal(t, v.res, ids(res), v.msg)
		for _, p := range res {
			assert.Contains(t, pp, p, v.msg)
		}
	}
}

func TestStoreFilterUsesSnapshot(t *testing.T) {
	s := catalog.NewStore()
	s.Replace(samples(), time.Now())
	res := s.Filter("orqu")
	require.Len(t, res, 1)
	assert.Equal(t, plant.ID("2"), res[0].ID)
}
