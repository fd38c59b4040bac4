// Package principal implements the principal directory repository using
// PostgreSQL. Principals arrive pre-authenticated; this repo only resolves
// ids to roles and scope grants.
package principal

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

const table = "principals"

var columns = []string{
	"id", "display_name", "role", "agency_scope", "group_scopes",
	"talent_scopes", "created_at",
}

// Scope grants are stored as JSONB arrays of uuid strings; the shape rarely
// changes and a join table buys nothing for sub-dozen grants per principal.
type row struct {
	ID           uuid.UUID       `db:"id"`
	DisplayName  string          `db:"display_name"`
	Role         string          `db:"role"`
	AgencyScope  *uuid.UUID      `db:"agency_scope"`
	GroupScopes  json.RawMessage `db:"group_scopes"`
	TalentScopes json.RawMessage `db:"talent_scopes"`
	CreatedAt    time.Time       `db:"created_at"`
}

// Repo provides principal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new principal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID resolves a principal id to its role and scope grants.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Principal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := sq.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build principal select: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "principal", id)
	}
	return toDomain(rw)
}

// Save upserts a principal. Used by seeding and scope administration.
func (r *Repo) Save(ctx context.Context, p *domain.Principal) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	groupScopes, err := json.Marshal(p.GroupScopes)
	if err != nil {
		return fmt.Errorf("principal %s marshal group scopes: %w", p.ID, err)
	}
	talentScopes, err := json.Marshal(p.TalentScopes)
	if err != nil {
		return fmt.Errorf("principal %s marshal talent scopes: %w", p.ID, err)
	}

	query := sq.Insert(table).
		Columns(columns...).
		Values(
			p.ID, p.DisplayName, p.Role.String(), p.AgencyScope,
			groupScopes, talentScopes, p.CreatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			role = EXCLUDED.role,
			agency_scope = EXCLUDED.agency_scope,
			group_scopes = EXCLUDED.group_scopes,
			talent_scopes = EXCLUDED.talent_scopes`)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build principal upsert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "principal", p.ID)
	}
	return nil
}

func toDomain(rw row) (*domain.Principal, error) {
	p := &domain.Principal{
		ID:          rw.ID,
		DisplayName: rw.DisplayName,
		Role:        domain.Role(rw.Role),
		AgencyScope: rw.AgencyScope,
		CreatedAt:   rw.CreatedAt,
	}

	if len(rw.GroupScopes) > 0 {
		if err := json.Unmarshal(rw.GroupScopes, &p.GroupScopes); err != nil {
			return nil, fmt.Errorf("principal %s unmarshal group scopes: %w", rw.ID, err)
		}
	}
	if len(rw.TalentScopes) > 0 {
		if err := json.Unmarshal(rw.TalentScopes, &p.TalentScopes); err != nil {
			return nil, fmt.Errorf("principal %s unmarshal talent scopes: %w", rw.ID, err)
		}
	}

	return p, nil
}
