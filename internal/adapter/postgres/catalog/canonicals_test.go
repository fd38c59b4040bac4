package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

func canonicalRowValues(id uuid.UUID, version int, attrs domain.GroupAttrs) *pgxmock.Rows {
	attrsJSON, _ := json.Marshal(attrs)
	now := time.Now()
	return pgxmock.NewRows(canonicalColumns).
		AddRow(id, "GROUP", uuid.New(), "ja", version, json.RawMessage(attrsJSON), now, now)
}

func TestCanonicalRepo_GetByID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	attrs := domain.GroupAttrs{GroupID: uuid.New(), AgencyID: uuid.New(), Name: "Aurora Five"}

	mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM canonical_items`).
		WillReturnRows(canonicalRowValues(id, 3, attrs))

	repo := NewCanonicalRepo[domain.GroupAttrs](mock, domain.EntityTypeGroup)

	item, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if item.Version != 3 {
		t.Errorf("GetByID() version = %d, want 3", item.Version)
	}
	if item.Attrs.Name != "Aurora Five" {
		t.Errorf("GetByID() name = %q, want %q", item.Attrs.Name, "Aurora Five")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCanonicalRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM canonical_items`).
		WillReturnError(pgx.ErrNoRows)

	repo := NewCanonicalRepo[domain.GroupAttrs](mock, domain.EntityTypeGroup)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestCanonicalRepo_Save(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectExec(`INSERT INTO canonical_items`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewCanonicalRepo[domain.GroupAttrs](mock, domain.EntityTypeGroup)
	now := time.Now()
	item := &domain.Canonical[domain.GroupAttrs]{
		ID:               uuid.New(),
		TranslationSetID: uuid.New(),
		Language:         domain.LanguageJA,
		Version:          1,
		Attrs:            domain.GroupAttrs{GroupID: uuid.New(), AgencyID: uuid.New(), Name: "Aurora Five"},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := repo.Save(context.Background(), item); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCanonicalRepo_Save_StaleVersion(t *testing.T) {
	t.Parallel()

	// The conditional upsert touches zero rows when the stored version is
	// already at or past the incoming one.
	mock := newMock(t)
	mock.ExpectExec(`INSERT INTO canonical_items`).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	repo := NewCanonicalRepo[domain.GroupAttrs](mock, domain.EntityTypeGroup)
	item := &domain.Canonical[domain.GroupAttrs]{
		ID:      uuid.New(),
		Version: 2,
		Attrs:   domain.GroupAttrs{GroupID: uuid.New(), AgencyID: uuid.New(), Name: "Aurora Five"},
	}

	err := repo.Save(context.Background(), item)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Save() error = %v, want ErrConflict", err)
	}
}

func TestCanonicalRepo_ListByTranslationSet(t *testing.T) {
	t.Parallel()

	attrs := domain.GroupAttrs{GroupID: uuid.New(), AgencyID: uuid.New(), Name: "Aurora Five"}

	mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM canonical_items`).
		WillReturnRows(canonicalRowValues(uuid.New(), 1, attrs))

	repo := NewCanonicalRepo[domain.GroupAttrs](mock, domain.EntityTypeGroup)

	items, err := repo.ListByTranslationSet(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ListByTranslationSet() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("ListByTranslationSet() returned %d items, want 1", len(items))
	}
}
