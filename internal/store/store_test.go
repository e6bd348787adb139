// File path: internal/store/store_test.go
package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/acambier/plume/internal/dossier"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "plume.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGetDossier(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateDossier(ctx, dossier.AnswerSet{FirstName: "Léo", LastName: "Martin"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Status != dossier.StatusDraft {
		t.Fatalf("created = %+v", created)
	}

	got, err := s.GetDossier(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Answers.FirstName != "Léo" || got.Answers.LastName != "Martin" {
		t.Fatalf("answers round trip failed: %+v", got.Answers)
	}
	if got.Premium {
		t.Fatal("new dossier must not be premium")
	}
}

func TestGetDossierNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetDossier(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateAnswersAndStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateDossier(ctx, dossier.AnswerSet{FirstName: "Léo"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated := created.Answers
	updated.Grade = "CE2"
	updated.HasCrises = true
	updated.Care = map[dossier.Profession]dossier.CareItem{
		dossier.ProfessionSpeechTherapist: {Present: true, MonthlyCost: "120"},
	}
	if err := s.UpdateAnswers(ctx, created.ID, updated); err != nil {
		t.Fatalf("update answers: %v", err)
	}
	if err := s.SetStatus(ctx, created.ID, dossier.StatusCompleted); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if err := s.SetPremium(ctx, created.ID, true); err != nil {
		t.Fatalf("set premium: %v", err)
	}

	got, err := s.GetDossier(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != dossier.StatusCompleted || !got.Premium {
		t.Fatalf("dossier = %+v", got)
	}
	if got.Answers.Grade != "CE2" || !got.Answers.HasCrises {
		t.Fatalf("answers = %+v", got.Answers)
	}
	if item := got.Answers.Care[dossier.ProfessionSpeechTherapist]; !item.Present || item.MonthlyCost != "120" {
		t.Fatalf("care map = %+v", got.Answers.Care)
	}

	if err := s.SetStatus(ctx, "missing", dossier.StatusCompleted); !errors.Is(err, ErrNotFound) {
		t.Fatalf("set status on missing dossier: %v", err)
	}
}

func TestDocuments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateDossier(ctx, dossier.AnswerSet{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	expires := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	first, err := s.AddDocument(ctx, dossier.SupportingDocument{
		DossierID: created.ID,
		Kind:      "certificat médical",
		Filename:  "certificat.pdf",
		ObjectKey: created.ID + "/certificat.pdf",
		ExpiresOn: &expires,
	})
	if err != nil {
		t.Fatalf("add document: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("document id not assigned")
	}
	if _, err := s.AddDocument(ctx, dossier.SupportingDocument{
		DossierID: created.ID,
		Filename:  "bilan.pdf",
		ObjectKey: created.ID + "/bilan.pdf",
	}); err != nil {
		t.Fatalf("add second document: %v", err)
	}

	docs, err := s.ListDocuments(ctx, created.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("documents = %d, want 2", len(docs))
	}
	if docs[0].Kind != "certificat médical" || docs[0].ExpiresOn == nil || !docs[0].ExpiresOn.Equal(expires) {
		t.Fatalf("first document = %+v", docs[0])
	}
	if docs[1].ExpiresOn != nil {
		t.Fatalf("undated document got an expiry: %+v", docs[1])
	}
}
