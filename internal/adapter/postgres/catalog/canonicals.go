package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/adapter/postgres"
	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// CanonicalRepo provides published-item persistence for one entity family.
type CanonicalRepo[A domain.Attributes] struct {
	db         postgres.Querier
	entityType domain.EntityType
}

// NewCanonicalRepo creates a canonical-item repository bound to one entity family.
func NewCanonicalRepo[A domain.Attributes](db postgres.Querier, entityType domain.EntityType) *CanonicalRepo[A] {
	return &CanonicalRepo[A]{db: db, entityType: entityType}
}

// GetByID returns the canonical item with the given id.
func (r *CanonicalRepo[A]) GetByID(ctx context.Context, id uuid.UUID) (*domain.Canonical[A], error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := sq.Select(canonicalColumns...).
		From(canonicalsTable).
		Where(squirrel.Eq{"id": id, "entity_type": r.entityType.String()})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build canonical select: %w", err)
	}

	var row canonicalRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "canonical", id)
	}
	return toDomainCanonical[A](row)
}

// List returns published items of this family, most recently updated first.
func (r *CanonicalRepo[A]) List(ctx context.Context, limit, offset int) ([]*domain.Canonical[A], error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := sq.Select(canonicalColumns...).
		From(canonicalsTable).
		Where(squirrel.Eq{"entity_type": r.entityType.String()}).
		OrderBy("updated_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build canonical list: %w", err)
	}

	var rows []canonicalRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list canonicals: %w", err)
	}

	items := make([]*domain.Canonical[A], len(rows))
	for i, row := range rows {
		item, err := toDomainCanonical[A](row)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

// ListByTranslationSet returns every language edition of one translation set.
func (r *CanonicalRepo[A]) ListByTranslationSet(ctx context.Context, translationSetID uuid.UUID) ([]*domain.Canonical[A], error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := sq.Select(canonicalColumns...).
		From(canonicalsTable).
		Where(squirrel.Eq{
			"entity_type":        r.entityType.String(),
			"translation_set_id": translationSetID,
		}).
		OrderBy("language ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build canonical set select: %w", err)
	}

	var rows []canonicalRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list canonicals by translation set: %w", err)
	}

	items := make([]*domain.Canonical[A], len(rows))
	for i, row := range rows {
		item, err := toDomainCanonical[A](row)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

// Save upserts the canonical item. The version guard in the update arm keeps
// a stale writer from silently clobbering a newer version: the row is only
// touched when the incoming version is strictly higher.
func (r *CanonicalRepo[A]) Save(ctx context.Context, item *domain.Canonical[A]) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	attrsJSON, err := json.Marshal(item.Attrs)
	if err != nil {
		return fmt.Errorf("canonical %s marshal attrs: %w", item.ID, err)
	}

	query := sq.Insert(canonicalsTable).
		Columns(canonicalColumns...).
		Values(
			item.ID, r.entityType.String(), item.TranslationSetID,
			item.Language.String(), item.Version, attrsJSON,
			item.CreatedAt, item.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			version = EXCLUDED.version,
			attrs = EXCLUDED.attrs,
			updated_at = EXCLUDED.updated_at
		WHERE canonical_items.version < EXCLUDED.version`)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build canonical upsert: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "canonical", item.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("canonical %s: stale version %d: %w", item.ID, item.Version, domain.ErrConflict)
	}
	return nil
}
