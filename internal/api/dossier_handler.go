// File path: internal/api/dossier_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/acambier/plume/internal/common"
	"github.com/acambier/plume/internal/dossier"
	"github.com/acambier/plume/internal/store"
)

func (s *Server) handleCreateDossier(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req createDossierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	d, err := s.store.CreateDossier(r.Context(), req.Answers)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: dossier created", "dossier", d.ID)
	writeJSON(w, http.StatusCreated, dossierResponse{Dossier: d})
}

func (s *Server) handleGetDossier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "dossierID")
	d, err := s.store.GetDossier(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	docs, err := s.store.ListDocuments(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, dossierResponse{Dossier: d, Documents: docs})
}

// handlePatchAnswers merges an autosave patch into the stored answer set.
// Completed dossiers are frozen and reject further edits.
func (s *Server) handlePatchAnswers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "dossierID")
	d, err := s.store.GetDossier(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if d.Status != dossier.StatusDraft {
		writeError(w, http.StatusConflict, fmt.Errorf("dossier %s is no longer editable", id))
		return
	}
	var patch dossier.AnswerSet
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	merged := d.Answers.Merge(patch)
	if err := s.store.UpdateAnswers(r.Context(), id, merged); err != nil {
		writeStoreError(w, err)
		return
	}
	d.Answers = merged
	writeJSON(w, http.StatusOK, dossierResponse{Dossier: d})
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	id := chi.URLParam(r, "dossierID")
	d, err := s.store.GetDossier(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if strings.TrimSpace(d.Answers.FirstName) == "" && strings.TrimSpace(d.Answers.LastName) == "" {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("cannot complete a dossier without the child's identity"))
		return
	}
	if err := s.store.SetStatus(r.Context(), id, dossier.StatusCompleted); err != nil {
		writeStoreError(w, err)
		return
	}
	d.Status = dossier.StatusCompleted
	logger.Info("api: dossier completed", "dossier", id)
	writeJSON(w, http.StatusOK, dossierResponse{Dossier: d})
}

func (s *Server) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req paymentWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if strings.TrimSpace(req.DossierID) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("dossier_id required"))
		return
	}
	premium := strings.EqualFold(req.Status, "paid")
	if err := s.store.SetPremium(r.Context(), req.DossierID, premium); err != nil {
		writeStoreError(w, err)
		return
	}
	logger.Info("api: premium flag updated", "dossier", req.DossierID, "premium", premium)
	writeJSON(w, http.StatusOK, map[string]bool{"premium": premium})
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeError(w, http.StatusInternalServerError, err)
}
