// Package history implements the moderation audit trail repository using
// PostgreSQL. Records are append-only: there is no update or delete.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/adapter/postgres"
	"github.com/sawamura/stagepedia-backend/internal/domain"
)

var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "history_records"

var columns = []string{
	"id", "entity_type", "editor_id", "submitter_id", "canonical_id",
	"draft_id", "from_status", "to_status", "subject_name", "created_at",
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	EntityType  string     `db:"entity_type"`
	EditorID    uuid.UUID  `db:"editor_id"`
	SubmitterID *uuid.UUID `db:"submitter_id"`
	CanonicalID *uuid.UUID `db:"canonical_id"`
	DraftID     *uuid.UUID `db:"draft_id"`
	FromStatus  *string    `db:"from_status"`
	ToStatus    string     `db:"to_status"`
	SubjectName string     `db:"subject_name"`
	CreatedAt   time.Time  `db:"created_at"`
}

// Repo provides history record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Record appends one history record.
func (r *Repo) Record(ctx context.Context, record domain.HistoryRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var fromStatus *string
	if record.FromStatus != nil {
		s := record.FromStatus.String()
		fromStatus = &s
	}

	query := sq.Insert(table).
		Columns(columns...).
		Values(
			record.ID, record.EntityType.String(), record.EditorID,
			record.SubmitterID, record.CanonicalID, record.DraftID,
			fromStatus, record.ToStatus.String(), record.SubjectName,
			record.CreatedAt,
		)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build history insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "history_record", record.ID)
	}
	return nil
}

// ListByDraft returns the trail for one draft, newest first.
func (r *Repo) ListByDraft(ctx context.Context, draftID uuid.UUID, limit int) ([]domain.HistoryRecord, error) {
	return r.list(ctx, squirrel.Eq{"draft_id": draftID}, limit)
}

// ListByCanonical returns the trail for one canonical item, newest first.
func (r *Repo) ListByCanonical(ctx context.Context, canonicalID uuid.UUID, limit int) ([]domain.HistoryRecord, error) {
	return r.list(ctx, squirrel.Eq{"canonical_id": canonicalID}, limit)
}

func (r *Repo) list(ctx context.Context, where squirrel.Eq, limit int) ([]domain.HistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := sq.Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list history records: %w", err)
	}

	records := make([]domain.HistoryRecord, len(rows))
	for i, rw := range rows {
		records[i] = toDomain(rw)
	}
	return records, nil
}

func toDomain(rw row) domain.HistoryRecord {
	record := domain.HistoryRecord{
		ID:          rw.ID,
		EntityType:  domain.EntityType(rw.EntityType),
		EditorID:    rw.EditorID,
		SubmitterID: rw.SubmitterID,
		CanonicalID: rw.CanonicalID,
		DraftID:     rw.DraftID,
		ToStatus:    domain.ApprovalStatus(rw.ToStatus),
		SubjectName: rw.SubjectName,
		CreatedAt:   rw.CreatedAt,
	}
	if rw.FromStatus != nil {
		from := domain.ApprovalStatus(*rw.FromStatus)
		record.FromStatus = &from
	}
	return record
}
