// File path: internal/api/evidence_handler.go
package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/acambier/plume/internal/common"
	"github.com/acambier/plume/internal/dossier"
)

const maxEvidenceSize = 20 << 20 // 20 MiB per upload

// handleEvidenceUpload streams one supporting document into blob storage and
// records its metadata. The optional expires_on form value (YYYY-MM-DD) feeds
// the attachment expiry flags of the synthesis.
func (s *Server) handleEvidenceUpload(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	id := chi.URLParam(r, "dossierID")
	if _, err := s.store.GetDossier(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	if s.blobs == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("evidence storage not configured"))
		return
	}
	if err := r.ParseMultipartForm(maxEvidenceSize); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid multipart payload: %w", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("file part required: %w", err))
		return
	}
	defer file.Close()

	doc := dossier.SupportingDocument{
		DossierID: id,
		Kind:      strings.TrimSpace(r.FormValue("kind")),
		Filename:  filepath.Base(header.Filename),
	}
	if raw := strings.TrimSpace(r.FormValue("expires_on")); raw != "" {
		ts, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("expires_on must be YYYY-MM-DD: %w", err))
			return
		}
		doc.ExpiresOn = &ts
	}
	doc.ObjectKey = fmt.Sprintf("%s/%s-%s", id, uuid.NewString(), doc.Filename)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.blobs.Put(r.Context(), doc.ObjectKey, file, header.Size, contentType); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	saved, err := s.store.AddDocument(r.Context(), doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: evidence stored", "dossier", id, "key", doc.ObjectKey, "size", header.Size)
	writeJSON(w, http.StatusCreated, evidenceResponse{Document: saved})
}
