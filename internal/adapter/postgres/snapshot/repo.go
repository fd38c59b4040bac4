// Package snapshot implements the version snapshot repository using
// PostgreSQL. Snapshots are write-once: a (canonical_id, version) pair is
// inserted exactly once when the version is minted and never touched again.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/adapter/postgres"
	"github.com/sawamura/stagepedia-backend/internal/domain"
)

var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "snapshots"

var columns = []string{
	"canonical_id", "version", "translation_set_id", "language", "attrs", "created_at",
}

type row struct {
	CanonicalID      uuid.UUID       `db:"canonical_id"`
	Version          int             `db:"version"`
	TranslationSetID uuid.UUID       `db:"translation_set_id"`
	Language         string          `db:"language"`
	Attrs            json.RawMessage `db:"attrs"`
	CreatedAt        time.Time       `db:"created_at"`
}

// Repo provides snapshot persistence for one entity family.
type Repo[A domain.Attributes] struct {
	db postgres.Querier
}

// New creates a new snapshot repository.
func New[A domain.Attributes](db postgres.Querier) *Repo[A] {
	return &Repo[A]{db: db}
}

// Save inserts one snapshot. A duplicate (canonical_id, version) pair maps
// to domain.ErrAlreadyExists via the unique constraint.
func (r *Repo[A]) Save(ctx context.Context, snapshot domain.Snapshot[A]) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	attrsJSON, err := json.Marshal(snapshot.Attrs)
	if err != nil {
		return fmt.Errorf("snapshot %s marshal attrs: %w", snapshot.CanonicalID, err)
	}

	query := sq.Insert(table).
		Columns(columns...).
		Values(
			snapshot.CanonicalID, snapshot.Version, snapshot.TranslationSetID,
			snapshot.Language.String(), attrsJSON, snapshot.CreatedAt,
		)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build snapshot insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "snapshot", snapshot.CanonicalID)
	}
	return nil
}

// ListByCanonical returns all snapshots of one canonical item, newest
// version first.
func (r *Repo[A]) ListByCanonical(ctx context.Context, canonicalID uuid.UUID) ([]domain.Snapshot[A], error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := sq.Select(columns...).
		From(table).
		Where(squirrel.Eq{"canonical_id": canonicalID}).
		OrderBy("version DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build snapshot select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	snapshots := make([]domain.Snapshot[A], len(rows))
	for i, rw := range rows {
		snap, err := toDomain[A](rw)
		if err != nil {
			return nil, err
		}
		snapshots[i] = snap
	}
	return snapshots, nil
}

// GetVersion returns one specific version of a canonical item.
func (r *Repo[A]) GetVersion(ctx context.Context, canonicalID uuid.UUID, version int) (*domain.Snapshot[A], error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := sq.Select(columns...).
		From(table).
		Where(squirrel.Eq{"canonical_id": canonicalID, "version": version})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build snapshot select: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "snapshot", canonicalID)
	}
	snap, err := toDomain[A](rw)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func toDomain[A domain.Attributes](rw row) (domain.Snapshot[A], error) {
	var attrs A
	if err := json.Unmarshal(rw.Attrs, &attrs); err != nil {
		return domain.Snapshot[A]{}, fmt.Errorf("snapshot %s v%d unmarshal attrs: %w", rw.CanonicalID, rw.Version, err)
	}
	return domain.Snapshot[A]{
		CanonicalID:      rw.CanonicalID,
		Version:          rw.Version,
		TranslationSetID: rw.TranslationSetID,
		Language:         domain.Language(rw.Language),
		Attrs:            attrs,
		CreatedAt:        rw.CreatedAt,
	}, nil
}
