package catalog

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/adapter/postgres"
	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// Guard answers the approval conflict question for one entity family:
// does the translation set already hold another approved draft that has not
// been folded in yet? Approving a second language while one is pending
// propagation would fork the set.
type Guard struct {
	db         postgres.Querier
	entityType domain.EntityType
}

// NewGuard creates a conflict guard bound to one entity family.
func NewGuard(db postgres.Querier, entityType domain.EntityType) *Guard {
	return &Guard{db: db, entityType: entityType}
}

// ExistsApprovedButNotTranslated reports whether a sibling draft in the same
// translation set is APPROVED and unmerged. excludeID is the draft under
// consideration itself.
func (g *Guard) ExistsApprovedButNotTranslated(ctx context.Context, translationSetID, excludeID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, g.db)

	const query = `SELECT EXISTS(
		SELECT 1 FROM drafts
		WHERE translation_set_id = $1
		  AND entity_type = $2
		  AND status = $3
		  AND merged_at IS NULL
		  AND id <> $4
	)`

	var exists bool
	err := pgxscan.Get(ctx, q, &exists, query,
		translationSetID, g.entityType.String(), domain.StatusApproved.String(), excludeID)
	if err != nil {
		return false, fmt.Errorf("conflict guard query: %w", err)
	}
	return exists, nil
}
