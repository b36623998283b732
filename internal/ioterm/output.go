package ioterm

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/gnames/acervo/pkg/view"
	"github.com/gnames/gnfmt"
)

// Format of the catalog output.
type Format int

const (
	// Text is a human readable list of cards.
	Text Format = iota
	CSV
	TSV
	// JSON is compact JSON, one document.
	JSON
	PrettyJSON
)

var formats = map[string]Format{
	"text":   Text,
	"csv":    CSV,
	"tsv":    TSV,
	"json":   JSON,
	"pretty": PrettyJSON,
}

// FormatNames lists accepted format names.
var FormatNames = []string{"text", "csv", "tsv", "json", "pretty"}

// ParseFormat converts a format name to Format.
func ParseFormat(s string) (Format, error) {
	if f, ok := formats[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return Text, fmt.Errorf("unknown format %q, use one of %s",
		s, strings.Join(FormatNames, ", "))
}

var csvHeader = []string{
	"id",
	plant.FieldPopularName,
	plant.FieldScientificName,
	"canonico",
	plant.FieldFamily,
	plant.FieldOrigin,
	plant.FieldCare,
}

// PrintGrid writes the grid to w in format f.
func PrintGrid(w io.Writer, g view.Grid, f Format) error {
	if g.Unavailable != "" {
		return fmt.Errorf("%s", g.Unavailable)
	}

	switch f {
	case CSV, TSV:
		sep := ','
		if f == TSV {
			sep = '\t'
		}
		fmt.Fprintln(w, gnfmt.ToCSV(csvHeader, sep))
		for _, c := range g.Cards {
			fmt.Fprintln(w, gnfmt.ToCSV(row(c), sep))
		}
		return nil
	case JSON, PrettyJSON:
		enc := gnfmt.GNjson{Pretty: f == PrettyJSON}
		bs, err := enc.Encode(g)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(bs))
		return nil
	default:
		for i, c := range g.Cards {
			if i > 0 {
				fmt.Fprintln(w)
			}
			PrintCard(w, c)
		}
		printSummary(w, g)
		return nil
	}
}

// PrintCard writes one card as text.
func PrintCard(w io.Writer, c view.Card) {
	fmt.Fprintf(w, "[%s] %s (%s)\n", c.ID, c.PopularName, c.ScientificName)
	if c.Canonical != "" && c.Canonical != c.ScientificName {
		fmt.Fprintf(w, "    Canônico: %s\n", c.Canonical)
	}
	fmt.Fprintf(w, "    %s: %s\n", plant.Labels[plant.FieldFamily], c.Family)
	fmt.Fprintf(w, "    %s: %s\n", plant.Labels[plant.FieldOrigin], c.Origin)
	fmt.Fprintf(w, "    %s: %s\n", plant.Labels[plant.FieldCare], c.Care)
}

func printSummary(w io.Writer, g view.Grid) {
	shown := humanize.Comma(int64(len(g.Cards)))
	total := humanize.Comma(int64(g.Total))
	if g.Term == "" {
		fmt.Fprintf(w, "\n%s plantas no acervo\n", total)
		return
	}
	fmt.Fprintf(w, "\n%s de %s plantas para \"%s\"\n", shown, total, g.Term)
}

func row(c view.Card) []string {
	return []string{
		c.ID.String(),
		c.PopularName,
		c.ScientificName,
		c.Canonical,
		c.Family,
		c.Origin,
		c.Care,
	}
}
