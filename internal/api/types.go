// File path: internal/api/types.go
package api

import (
	"github.com/acambier/plume/internal/compose"
	"github.com/acambier/plume/internal/dossier"
	"github.com/acambier/plume/internal/formfill"
)

type createDossierRequest struct {
	Answers dossier.AnswerSet `json:"answers"`
}

type dossierResponse struct {
	Dossier   dossier.Dossier              `json:"dossier"`
	Documents []dossier.SupportingDocument `json:"documents,omitempty"`
}

type evidenceResponse struct {
	Document dossier.SupportingDocument `json:"document"`
}

type generateResponse struct {
	Document        compose.Document `json:"document"`
	Text            string           `json:"text"`
	Rewritten       bool             `json:"rewritten"`
	RewriteFallback string           `json:"rewrite_fallback,omitempty"`
}

type formFillResponse struct {
	Reports []formfill.WriteReport `json:"reports"`
}

type paymentWebhookRequest struct {
	DossierID string `json:"dossier_id"`
	Status    string `json:"status"`
}
