// File path: internal/api/server.go
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/acambier/plume/internal/common"
	"github.com/acambier/plume/internal/dossier"
	"github.com/acambier/plume/internal/formfill"
	"github.com/acambier/plume/internal/rewrite"
)

// DossierStore is the persistence surface the handlers need. *store.Store
// satisfies it; tests substitute an in-memory fake.
type DossierStore interface {
	CreateDossier(ctx context.Context, answers dossier.AnswerSet) (dossier.Dossier, error)
	GetDossier(ctx context.Context, id string) (dossier.Dossier, error)
	UpdateAnswers(ctx context.Context, id string, answers dossier.AnswerSet) error
	SetStatus(ctx context.Context, id string, status dossier.Status) error
	SetPremium(ctx context.Context, id string, premium bool) error
	AddDocument(ctx context.Context, doc dossier.SupportingDocument) (dossier.SupportingDocument, error)
	ListDocuments(ctx context.Context, dossierID string) ([]dossier.SupportingDocument, error)
}

// BlobStore stores the raw bytes of uploaded evidence.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}

// Rewriter attempts the external narrative rewrite. A nil Rewriter simply
// means every generation uses the locally composed text.
type Rewriter interface {
	Rewrite(ctx context.Context, answers dossier.AnswerSet) rewrite.Outcome
}

// FormFiller fills a form upload from resolved role values.
type FormFiller interface {
	Fill(formBytes []byte, values map[formfill.Role]string) ([]byte, []formfill.WriteReport, error)
}

type Server struct {
	router   chi.Router
	store    DossierStore
	blobs    BlobStore
	rewriter Rewriter
	filler   FormFiller
	now      func() time.Time
}

func NewServer(store DossierStore, blobs BlobStore, rewriter Rewriter) *Server {
	srv := &Server{
		router:   chi.NewRouter(),
		store:    store,
		blobs:    blobs,
		rewriter: rewriter,
		filler:   formfill.NewWriter(),
		now:      time.Now,
	}
	srv.routes()
	common.Logger().Info("api: server ready")
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Post("/v1/dossiers", s.handleCreateDossier)
	s.router.Get("/v1/dossiers/{dossierID}", s.handleGetDossier)
	s.router.Patch("/v1/dossiers/{dossierID}/answers", s.handlePatchAnswers)
	s.router.Post("/v1/dossiers/{dossierID}/complete", s.handleComplete)
	s.router.Post("/v1/dossiers/{dossierID}/evidence", s.handleEvidenceUpload)
	s.router.Post("/v1/dossiers/{dossierID}/generate", s.handleGenerate)
	s.router.Post("/v1/dossiers/{dossierID}/form", s.handleFormFill)
	s.router.Post("/v1/webhooks/payment", s.handlePaymentWebhook)
	s.router.Get("/v1/logs", s.handleLogs)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"logs": common.LogEntries()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
