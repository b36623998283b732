package catalog

import (
	"slices"
	"strings"

	"github.com/gnames/acervo/pkg/plant"
)

// Filter returns records where term is a case-insensitive substring of the
// popular name, the scientific name or the family. The result keeps the
// order of records. An empty or whitespace-only term returns all records.
func Filter(records []plant.Plant, term string) []plant.Plant {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(records)
	}

	res := make([]plant.Plant, 0, len(records))
	for _, v := range records {
		if matches(v, term) {
			res = append(res, v)
		}
	}
	return res
}

func matches(p plant.Plant, term string) bool {
	fields := []string{p.PopularName, p.ScientificName, p.Family}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
