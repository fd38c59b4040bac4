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

// DraftRepo provides draft persistence for one entity family.
type DraftRepo[A domain.Attributes] struct {
	db         postgres.Querier
	entityType domain.EntityType
}

// NewDraftRepo creates a draft repository bound to one entity family.
func NewDraftRepo[A domain.Attributes](db postgres.Querier, entityType domain.EntityType) *DraftRepo[A] {
	return &DraftRepo[A]{db: db, entityType: entityType}
}

// GetByID returns the draft with the given id.
func (r *DraftRepo[A]) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft[A], error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := sq.Select(draftColumns...).
		From(draftsTable).
		Where(squirrel.Eq{"id": id, "entity_type": r.entityType.String()})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build draft select: %w", err)
	}

	var row draftRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "draft", id)
	}
	return toDomainDraft[A](row)
}

// ListByStatus returns drafts of this family in the given status, oldest
// first. Backs the moderation review queue.
func (r *DraftRepo[A]) ListByStatus(ctx context.Context, status domain.ApprovalStatus, limit, offset int) ([]*domain.Draft[A], error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := sq.Select(draftColumns...).
		From(draftsTable).
		Where(squirrel.Eq{"entity_type": r.entityType.String(), "status": status.String()}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build draft list: %w", err)
	}

	var rows []draftRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list drafts by status: %w", err)
	}

	drafts := make([]*domain.Draft[A], len(rows))
	for i, row := range rows {
		draft, err := toDomainDraft[A](row)
		if err != nil {
			return nil, err
		}
		drafts[i] = draft
	}
	return drafts, nil
}

// Save upserts the draft.
func (r *DraftRepo[A]) Save(ctx context.Context, draft *domain.Draft[A]) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	attrsJSON, err := json.Marshal(draft.Attrs)
	if err != nil {
		return fmt.Errorf("draft %s marshal attrs: %w", draft.ID, err)
	}

	query := sq.Insert(draftsTable).
		Columns(draftColumns...).
		Values(
			draft.ID, r.entityType.String(), draft.CanonicalID,
			draft.TranslationSetID, draft.EditorID, draft.Language.String(),
			draft.Status.String(), draft.MergerID, draft.MergedAt, attrsJSON,
			draft.CreatedAt, draft.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			merger_id = EXCLUDED.merger_id,
			merged_at = EXCLUDED.merged_at,
			attrs = EXCLUDED.attrs,
			updated_at = EXCLUDED.updated_at`)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build draft upsert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "draft", draft.ID)
	}
	return nil
}

// Delete removes the draft. Publishing consumes drafts this way.
func (r *DraftRepo[A]) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := sq.Delete(draftsTable).
		Where(squirrel.Eq{"id": id, "entity_type": r.entityType.String()})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build draft delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "draft", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
