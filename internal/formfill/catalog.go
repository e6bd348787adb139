// File path: internal/formfill/catalog.go

// Package formfill locates semantically meaningful fields inside a
// third-party fillable form and writes values into them. The official form is
// not under our control: its internal field names are inconsistent, vary by
// locale and often arrive with a corrupted encoding, so discovery is purely
// name-based and every write is best-effort.
package formfill

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrMalformedForm reports that the uploaded bytes are not a recognizable
// fillable-form container.
var ErrMalformedForm = errors.New("formfill: not a fillable form container")

// FieldDescriptor describes one field of the form catalog. The export
// identifies a field by its id attribute or, failing that, by its name
// attribute; both are carried so a fill targets the attribute that actually
// exists. Page exists in the source document but plays no role in resolution.
type FieldDescriptor struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Page         int    `json:"page"`
	TextSettable bool   `json:"text_settable"`
}

// Label is the identifying attribute of the field, preferring id over name.
// It is the string the resolver classifies and the reports carry.
func (f FieldDescriptor) Label() string {
	if f.ID != "" {
		return f.ID
	}
	return f.Name
}

// HasFormSignature is the cheap structural pre-check run before a full parse.
func HasFormSignature(b []byte) bool {
	return len(b) >= 5 && bytes.HasPrefix(b, []byte("%PDF-"))
}

// LoadCatalog parses the form's field tree and returns a flat ordered list of
// descriptors. A valid document without any form fields yields an empty
// catalog; anything that is not a form container yields ErrMalformedForm.
func LoadCatalog(formBytes []byte) ([]FieldDescriptor, error) {
	if !HasFormSignature(formBytes) {
		return nil, fmt.Errorf("%w: missing document signature", ErrMalformedForm)
	}
	export, err := exportForm(formBytes)
	if err != nil {
		if isNoFormData(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedForm, err)
	}
	return descriptorsFromExport(export), nil
}

// formExport mirrors the subset of the pdfcpu form-export JSON we consume.
type formExport struct {
	Forms []formRecord `json:"forms"`
}

type formRecord struct {
	TextFields  []exportedField `json:"textfield"`
	DateFields  []exportedField `json:"datefield"`
	CheckBoxes  []exportedField `json:"checkbox"`
	RadioGroups []exportedField `json:"radiobuttongroup"`
	ComboBoxes  []exportedField `json:"combobox"`
	ListBoxes   []exportedField `json:"listbox"`
}

type exportedField struct {
	Pages  []int  `json:"pages"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	Locked bool   `json:"locked"`
}

func (f exportedField) page() int {
	if len(f.Pages) > 0 {
		return f.Pages[0]
	}
	return 0
}

func exportForm(formBytes []byte) (*formExport, error) {
	var buf bytes.Buffer
	if err := api.ExportFormJSON(bytes.NewReader(formBytes), &buf, "", model.NewDefaultConfiguration()); err != nil {
		return nil, err
	}
	var export formExport
	if err := json.Unmarshal(buf.Bytes(), &export); err != nil {
		return nil, fmt.Errorf("decode form export: %w", err)
	}
	return &export, nil
}

func descriptorsFromExport(export *formExport) []FieldDescriptor {
	var out []FieldDescriptor
	for _, record := range export.Forms {
		for _, f := range record.TextFields {
			out = append(out, FieldDescriptor{ID: f.ID, Name: f.Name, Page: f.page(), TextSettable: !f.Locked})
		}
		for _, f := range record.DateFields {
			out = append(out, FieldDescriptor{ID: f.ID, Name: f.Name, Page: f.page(), TextSettable: !f.Locked})
		}
		for _, group := range [][]exportedField{record.CheckBoxes, record.RadioGroups, record.ComboBoxes, record.ListBoxes} {
			for _, f := range group {
				out = append(out, FieldDescriptor{ID: f.ID, Name: f.Name, Page: f.page(), TextSettable: false})
			}
		}
	}
	return out
}

// isNoFormData matches pdfcpu's report of a well-formed document that simply
// carries no form dictionary.
func isNoFormData(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "no form")
}
