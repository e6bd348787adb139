// File path: internal/store/store.go

// Package store persists dossiers and supporting-document metadata in a
// SQLite database accessed through sqlx. The interview UI owns the write
// cadence (autosave patches); the synthesis engine only ever reads a frozen
// snapshot.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/acambier/plume/internal/dossier"
)

// ErrNotFound reports a dossier id with no row behind it.
var ErrNotFound = errors.New("store: dossier not found")

// Store wraps a pooled sqlx.DB connection to the dossier database.
type Store struct {
	db *sqlx.DB
}

// Open constructs a Store backed by the SQLite database at the provided
// path. The schema is migrated on first use.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store: sqlite path required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve sqlite path: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", abs)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database resources.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	for i, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("execute schema statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS dossiers (
                id TEXT PRIMARY KEY,
                status TEXT NOT NULL,
                premium INTEGER NOT NULL DEFAULT 0,
                answers TEXT NOT NULL,
                created_at TEXT NOT NULL,
                updated_at TEXT NOT NULL
        );`,
	`CREATE TABLE IF NOT EXISTS documents (
                id INTEGER PRIMARY KEY AUTOINCREMENT,
                dossier_id TEXT NOT NULL,
                kind TEXT,
                filename TEXT NOT NULL,
                object_key TEXT NOT NULL,
                expires_on TEXT,
                created_at TEXT NOT NULL,
                FOREIGN KEY(dossier_id) REFERENCES dossiers(id) ON DELETE CASCADE
        );`,
	`CREATE INDEX IF NOT EXISTS idx_documents_dossier ON documents(dossier_id);`,
}

type dossierRow struct {
	ID        string `db:"id"`
	Status    string `db:"status"`
	Premium   bool   `db:"premium"`
	Answers   string `db:"answers"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

type documentRow struct {
	ID        int64          `db:"id"`
	DossierID string         `db:"dossier_id"`
	Kind      sql.NullString `db:"kind"`
	Filename  string         `db:"filename"`
	ObjectKey string         `db:"object_key"`
	ExpiresOn sql.NullString `db:"expires_on"`
	CreatedAt string         `db:"created_at"`
}

func (r dossierRow) toDossier() (dossier.Dossier, error) {
	var answers dossier.AnswerSet
	if err := json.Unmarshal([]byte(r.Answers), &answers); err != nil {
		return dossier.Dossier{}, fmt.Errorf("decode answers for %s: %w", r.ID, err)
	}
	return dossier.Dossier{
		ID:        r.ID,
		Status:    dossier.Status(r.Status),
		Premium:   r.Premium,
		Answers:   answers,
		CreatedAt: parseStamp(r.CreatedAt),
		UpdatedAt: parseStamp(r.UpdatedAt),
	}, nil
}

func (r documentRow) toDocument() dossier.SupportingDocument {
	doc := dossier.SupportingDocument{
		ID:        r.ID,
		DossierID: r.DossierID,
		Kind:      r.Kind.String,
		Filename:  r.Filename,
		ObjectKey: r.ObjectKey,
		CreatedAt: parseStamp(r.CreatedAt),
	}
	if r.ExpiresOn.Valid && r.ExpiresOn.String != "" {
		if ts, err := time.Parse("2006-01-02", r.ExpiresOn.String); err == nil {
			doc.ExpiresOn = &ts
		}
	}
	return doc
}

func parseStamp(v string) time.Time {
	ts, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// CreateDossier inserts a fresh draft dossier seeded with the given answers
// (typically identity only) and returns it.
func (s *Store) CreateDossier(ctx context.Context, answers dossier.AnswerSet) (dossier.Dossier, error) {
	now := time.Now().UTC()
	d := dossier.Dossier{
		ID:        uuid.NewString(),
		Status:    dossier.StatusDraft,
		Answers:   answers,
		CreatedAt: now,
		UpdatedAt: now,
	}
	payload, err := json.Marshal(d.Answers)
	if err != nil {
		return dossier.Dossier{}, fmt.Errorf("encode answers: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO dossiers (id, status, premium, answers, created_at, updated_at) VALUES (?, ?, 0, ?, ?, ?)`,
		d.ID, string(d.Status), string(payload), now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		return dossier.Dossier{}, fmt.Errorf("insert dossier: %w", err)
	}
	return d, nil
}

// GetDossier loads one dossier by id.
func (s *Store) GetDossier(ctx context.Context, id string) (dossier.Dossier, error) {
	var row dossierRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM dossiers WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return dossier.Dossier{}, ErrNotFound
	}
	if err != nil {
		return dossier.Dossier{}, fmt.Errorf("select dossier: %w", err)
	}
	return row.toDossier()
}

// UpdateAnswers replaces the stored answer set of a dossier.
func (s *Store) UpdateAnswers(ctx context.Context, id string, answers dossier.AnswerSet) error {
	payload, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE dossiers SET answers = ?, updated_at = ? WHERE id = ?`,
		string(payload), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("update answers: %w", err)
	}
	return requireRow(res)
}

// SetStatus moves a dossier through its lifecycle.
func (s *Store) SetStatus(ctx context.Context, id string, status dossier.Status) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE dossiers SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return requireRow(res)
}

// SetPremium flips the entitlement flag. It is driven exclusively by the
// payment-webhook collaborator.
func (s *Store) SetPremium(ctx context.Context, id string, premium bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE dossiers SET premium = ?, updated_at = ? WHERE id = ?`,
		premium, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("update premium: %w", err)
	}
	return requireRow(res)
}

// AddDocument records the metadata of one uploaded evidence file.
func (s *Store) AddDocument(ctx context.Context, doc dossier.SupportingDocument) (dossier.SupportingDocument, error) {
	now := time.Now().UTC()
	var expires any
	if doc.ExpiresOn != nil {
		expires = doc.ExpiresOn.Format("2006-01-02")
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (dossier_id, kind, filename, object_key, expires_on, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		doc.DossierID, doc.Kind, doc.Filename, doc.ObjectKey, expires, now.Format(time.RFC3339))
	if err != nil {
		return dossier.SupportingDocument{}, fmt.Errorf("insert document: %w", err)
	}
	id, err := res.LastInsertId()
	if err == nil {
		doc.ID = id
	}
	doc.CreatedAt = now
	return doc, nil
}

// ListDocuments returns the evidence metadata of one dossier in upload order.
func (s *Store) ListDocuments(ctx context.Context, dossierID string) ([]dossier.SupportingDocument, error) {
	var rows []documentRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT * FROM documents WHERE dossier_id = ? ORDER BY id`, dossierID)
	if err != nil {
		return nil, fmt.Errorf("select documents: %w", err)
	}
	out := make([]dossier.SupportingDocument, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDocument())
	}
	return out, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
