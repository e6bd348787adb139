// File path: internal/api/form_handler.go
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/acambier/plume/internal/common"
	"github.com/acambier/plume/internal/formfill"
)

const maxFormSize = 30 << 20 // 30 MiB per form upload

// handleFormFill pre-fills an uploaded official form with the dossier's
// identity values. Premium-gated. Surname and given name come from the
// answers; birthplace and legal-representative values are optional multipart
// fields because the interview does not collect them.
//
// Returns the filled form bytes by default; with ?report=true it returns the
// per-field write report instead.
func (s *Server) handleFormFill(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	id := chi.URLParam(r, "dossierID")
	d, err := s.store.GetDossier(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !d.Premium {
		writeError(w, http.StatusForbidden, fmt.Errorf("form pre-fill requires the premium entitlement"))
		return
	}
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid multipart payload: %w", err))
		return
	}
	file, _, err := r.FormFile("form")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("form part required: %w", err))
		return
	}
	defer file.Close()
	formBytes, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("read form upload: %w", err))
		return
	}

	values := map[formfill.Role]string{
		formfill.RoleGivenName: strings.TrimSpace(d.Answers.FirstName),
		formfill.RoleSurname:   strings.TrimSpace(d.Answers.LastName),
	}
	if v := strings.TrimSpace(r.FormValue("birthplace")); v != "" {
		values[formfill.RoleBirthplace] = v
	}
	if v := strings.TrimSpace(r.FormValue("legal_representative")); v != "" {
		values[formfill.RoleLegalRep] = v
	}

	filled, reports, err := s.filler.Fill(formBytes, values)
	if err != nil {
		if errors.Is(err, formfill.ErrMalformedForm) {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	written := 0
	for _, report := range reports {
		if report.Written {
			written++
		}
	}
	logger.Info("api: form filled", "dossier", id, "attempted", len(reports), "written", written)

	if strings.EqualFold(r.URL.Query().Get("report"), "true") {
		writeJSON(w, http.StatusOK, formFillResponse{Reports: reports})
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("X-Fields-Written", strconv.Itoa(written))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(filled)
}
