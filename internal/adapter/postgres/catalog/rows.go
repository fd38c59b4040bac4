// Package catalog implements the draft and canonical-item repositories using
// PostgreSQL. All four entity families share two tables, discriminated by an
// entity_type column; the family payload travels as a JSONB attrs document.
package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	draftsTable     = "drafts"
	canonicalsTable = "canonical_items"
)

var draftColumns = []string{
	"id", "entity_type", "canonical_id", "translation_set_id", "editor_id",
	"language", "status", "merger_id", "merged_at", "attrs",
	"created_at", "updated_at",
}

var canonicalColumns = []string{
	"id", "entity_type", "translation_set_id", "language", "version", "attrs",
	"created_at", "updated_at",
}

type draftRow struct {
	ID               uuid.UUID       `db:"id"`
	EntityType       string          `db:"entity_type"`
	CanonicalID      *uuid.UUID      `db:"canonical_id"`
	TranslationSetID uuid.UUID       `db:"translation_set_id"`
	EditorID         uuid.UUID       `db:"editor_id"`
	Language         string          `db:"language"`
	Status           string          `db:"status"`
	MergerID         *uuid.UUID      `db:"merger_id"`
	MergedAt         *time.Time      `db:"merged_at"`
	Attrs            json.RawMessage `db:"attrs"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type canonicalRow struct {
	ID               uuid.UUID       `db:"id"`
	EntityType       string          `db:"entity_type"`
	TranslationSetID uuid.UUID       `db:"translation_set_id"`
	Language         string          `db:"language"`
	Version          int             `db:"version"`
	Attrs            json.RawMessage `db:"attrs"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func toDomainDraft[A domain.Attributes](row draftRow) (*domain.Draft[A], error) {
	var attrs A
	if err := json.Unmarshal(row.Attrs, &attrs); err != nil {
		return nil, fmt.Errorf("draft %s unmarshal attrs: %w", row.ID, err)
	}
	return &domain.Draft[A]{
		ID:               row.ID,
		CanonicalID:      row.CanonicalID,
		TranslationSetID: row.TranslationSetID,
		EditorID:         row.EditorID,
		Language:         domain.Language(row.Language),
		Status:           domain.ApprovalStatus(row.Status),
		MergerID:         row.MergerID,
		MergedAt:         row.MergedAt,
		Attrs:            attrs,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}

func toDomainCanonical[A domain.Attributes](row canonicalRow) (*domain.Canonical[A], error) {
	var attrs A
	if err := json.Unmarshal(row.Attrs, &attrs); err != nil {
		return nil, fmt.Errorf("canonical %s unmarshal attrs: %w", row.ID, err)
	}
	return &domain.Canonical[A]{
		ID:               row.ID,
		TranslationSetID: row.TranslationSetID,
		Language:         domain.Language(row.Language),
		Version:          row.Version,
		Attrs:            attrs,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}
