// File path: internal/api/generate_handler.go
package api

import (
	"fmt"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/acambier/plume/internal/common"
	"github.com/acambier/plume/internal/compose"
	"github.com/acambier/plume/internal/dossier"
	"github.com/acambier/plume/internal/rewrite"
)

// handleGenerate runs the synthesis pipeline on a completed dossier: attempt
// the external rewrite, then compose the sectioned narrative. A rewrite
// failure never fails the request; the composed fallback text is used and the
// reason surfaces in the response.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	id := chi.URLParam(r, "dossierID")
	d, err := s.store.GetDossier(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if d.Status != dossier.StatusCompleted {
		writeError(w, http.StatusConflict, fmt.Errorf("dossier %s is not completed", id))
		return
	}
	docs, err := s.store.ListDocuments(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	outcome := rewrite.Outcome{Unavailable: true, Reason: "rewriting disabled"}
	if s.rewriter != nil {
		outcome = s.rewriter.Rewrite(r.Context(), d.Answers)
	}

	document := compose.Build(d.Answers, compose.Options{
		Now:       s.now(),
		Rewritten: outcome.Text,
		Documents: docs,
	})
	resp := generateResponse{
		Document:  document,
		Text:      document.Render(),
		Rewritten: !outcome.Unavailable,
	}
	if outcome.Unavailable {
		resp.RewriteFallback = outcome.Reason
	}
	logger.Info("api: synthesis generated", "dossier", id, "sections", len(document.Sections), "rewritten", resp.Rewritten)
	writeJSON(w, http.StatusOK, resp)
}
