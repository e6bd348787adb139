// File path: internal/formfill/writer.go
package formfill

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/acambier/plume/internal/common"
)

// WriteReport records the outcome of one field-write attempt.
type WriteReport struct {
	Field   string `json:"field"`
	Role    Role   `json:"role"`
	Written bool   `json:"written"`
	Reason  string `json:"reason,omitempty"`
}

// fieldFiller writes a single value into a single field. It is an interface
// so tests can inject failing writes.
type fieldFiller interface {
	fill(form []byte, field FieldDescriptor, value string) ([]byte, error)
}

// Writer fills resolved fields one at a time. A failed write is logged,
// reported and skipped; it never aborts the remaining fields.
type Writer struct {
	loader func([]byte) ([]FieldDescriptor, error)
	filler fieldFiller
}

func NewWriter() *Writer {
	return &Writer{loader: LoadCatalog, filler: pdfcpuFiller{}}
}

// Fill resolves every catalog field against the role table and attempts to
// write the corresponding value. It returns the (possibly partially) filled
// form bytes and the per-field report. Zero successful writes is not an
// error: the caller still receives usable form bytes. The only error path is
// an input-shape failure of the catalog itself.
func (w *Writer) Fill(formBytes []byte, values map[Role]string) ([]byte, []WriteReport, error) {
	logger := common.Logger()
	catalog, err := w.loader(formBytes)
	if err != nil {
		return nil, nil, err
	}

	current := formBytes
	var reports []WriteReport
	for _, field := range catalog {
		label := field.Label()
		role := Resolve(label)
		if role == RoleNone {
			continue
		}
		value, ok := values[role]
		if !ok || value == "" {
			continue
		}
		report := WriteReport{Field: label, Role: role}
		if !field.TextSettable {
			report.Reason = "field is not text-settable"
			logger.Warn("formfill: skipping field", "field", label, "reason", report.Reason)
			reports = append(reports, report)
			continue
		}
		updated, err := w.filler.fill(current, field, value)
		if err != nil {
			report.Reason = err.Error()
			logger.Warn("formfill: field write failed", "field", label, "role", role, "error", err)
			reports = append(reports, report)
			continue
		}
		current = updated
		report.Written = true
		reports = append(reports, report)
	}
	logger.Info("formfill: fill pass complete", "fields", len(catalog), "attempted", len(reports), "written", countWritten(reports))
	return current, reports, nil
}

func countWritten(reports []WriteReport) int {
	n := 0
	for _, r := range reports {
		if r.Written {
			n++
		}
	}
	return n
}

// pdfcpuFiller applies one value through pdfcpu's form-fill JSON round trip.
// Filling field by field keeps write failures isolated to the field that
// caused them. The fill record carries the same id/name pair the export
// produced, so fields the export identified by name alone still match.
type pdfcpuFiller struct{}

func (pdfcpuFiller) fill(form []byte, field FieldDescriptor, value string) ([]byte, error) {
	fill := formExport{Forms: []formRecord{{
		TextFields: []exportedField{{ID: field.ID, Name: field.Name, Value: value}},
	}}}
	payload, err := json.Marshal(fill)
	if err != nil {
		return nil, fmt.Errorf("encode fill payload: %w", err)
	}
	var out bytes.Buffer
	if err := api.FillForm(bytes.NewReader(form), bytes.NewReader(payload), &out, model.NewDefaultConfiguration()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
