// Package plant defines the plant record, the only entity of the catalog.
// This is a pure package without I/O.
package plant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is a backend-assigned identifier of a plant record. It is treated as
// an opaque comparable token: the backend may send it as a JSON number or
// a JSON string, it is kept verbatim and used only to address the record.
type ID string

// UnmarshalJSON accepts both numeric and string identifiers.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("plant id must be a number or a string: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as it appears in URL paths.
func (id ID) String() string {
	return string(id)
}

// IsZero is true for records not yet created by the backend.
func (id ID) IsZero() bool {
	return id == ""
}

// Input holds the five text fields of a plant. It is the body of create
// and update requests, so it never contains an identifier.
type Input struct {
	// PopularName is the common name ("nome popular").
	PopularName string `json:"nome_popular" yaml:"nome_popular"`

	// ScientificName is the scientific name, unique in the backend.
	ScientificName string `json:"nome_cientifico" yaml:"nome_cientifico"`

	// Family is the botanical family.
	Family string `json:"familia" yaml:"familia"`

	// Origin describes where the plant comes from.
	Origin string `json:"origem" yaml:"origem"`

	// Care is a free-form text with care notes.
	Care string `json:"cuidados" yaml:"cuidados"`
}

// Plant is a record of the catalog as returned by the backend.
type Plant struct {
	ID ID `json:"id"`
	Input
}

// Field names, as used by the backend and by form inputs.
const (
	FieldPopularName    = "nome_popular"
	FieldScientificName = "nome_cientifico"
	FieldFamily         = "familia"
	FieldOrigin         = "origem"
	FieldCare           = "cuidados"
)

// Fields lists all required fields in display order.
var Fields = []string{
	FieldPopularName,
	FieldScientificName,
	FieldFamily,
	FieldOrigin,
	FieldCare,
}

// Labels maps field names to labels shown to users.
var Labels = map[string]string{
	FieldPopularName:    "Nome popular",
	FieldScientificName: "Nome científico",
	FieldFamily:         "Família",
	FieldOrigin:         "Origem",
	FieldCare:           "Cuidados",
}

// Get returns the value of a field by its name.
func (in Input) Get(field string) (string, bool) {
	switch field {
	case FieldPopularName:
		return in.PopularName, true
	case FieldScientificName:
		return in.ScientificName, true
	case FieldFamily:
		return in.Family, true
	case FieldOrigin:
		return in.Origin, true
	case FieldCare:
		return in.Care, true
	default:
		return "", false
	}
}

// Set assigns a field by its name. It returns false for unknown fields.
func (in *Input) Set(field, value string) bool {
	switch field {
	case FieldPopularName:
		in.PopularName = value
	case FieldScientificName:
		in.ScientificName = value
	case FieldFamily:
		in.Family = value
	case FieldOrigin:
		in.Origin = value
	case FieldCare:
		in.Care = value
	default:
		return false
	}
	return true
}

// Missing returns names of required fields that are blank.
func (in Input) Missing() []string {
	var res []string
	for _, f := range Fields {
		v, _ := in.Get(f)
		if strings.TrimSpace(v) == "" {
			res = append(res, f)
		}
	}
	return res
}

// IsBlank is true when every field is empty.
func (in Input) IsBlank() bool {
	return len(in.Missing()) == len(Fields)
}
