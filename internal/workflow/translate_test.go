package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

func sourceCanonical(lang domain.Language) *domain.Canonical[domain.GroupAttrs] {
	return &domain.Canonical[domain.GroupAttrs]{
		ID:               uuid.New(),
		TranslationSetID: uuid.New(),
		Language:         lang,
		Version:          2,
		Attrs:            domain.GroupAttrs{GroupID: uuid.New(), AgencyID: uuid.New(), Name: "Aurora Five"},
	}
}

func TestCoordinator_TranslateAll_FansOutToSiblings(t *testing.T) {
	t.Parallel()

	item := sourceCanonical(domain.LanguageEN)
	f := newFixture(groupConfig(), newMockDraftRepo(), newMockCanonicalRepo(item))
	p := admin()

	drafts, err := f.coord.TranslateAll(context.Background(), p, item.ID)
	require.NoError(t, err)

	// Three configured languages, source excluded.
	require.Len(t, drafts, 2)
	for _, d := range drafts {
		assert.Equal(t, domain.StatusPending, d.Status)
		assert.Equal(t, p.ID, d.EditorID)
		assert.Equal(t, item.TranslationSetID, d.TranslationSetID)
		assert.NotEqual(t, item.Language, d.Language)
	}
	assert.Len(t, f.drafts.saved, 2)
}

func TestCoordinator_TranslateAll_OrderFollowsLanguageOrdinal(t *testing.T) {
	t.Parallel()

	// Configured languages deliberately out of ordinal order.
	cfg := groupConfig()
	cfg.Languages = []domain.Language{domain.LanguageKO, domain.LanguageEN, domain.LanguageJA}

	item := sourceCanonical(domain.LanguageEN)
	f := newFixture(cfg, newMockDraftRepo(), newMockCanonicalRepo(item))

	drafts, err := f.coord.TranslateAll(context.Background(), admin(), item.ID)
	require.NoError(t, err)

	require.Len(t, drafts, 2)
	assert.Equal(t, domain.LanguageJA, drafts[0].Language, "ja precedes ko regardless of configuration order")
	assert.Equal(t, domain.LanguageKO, drafts[1].Language)
}

func TestCoordinator_TranslateAll_AuthorizedOnceAgainstSource(t *testing.T) {
	t.Parallel()

	item := sourceCanonical(domain.LanguageJA)
	f := newFixture(groupConfig(), newMockDraftRepo(), newMockCanonicalRepo(item))

	otherGroup := uuid.New()
	p := &domain.Principal{ID: uuid.New(), Role: domain.RoleGroupActor, GroupScopes: []uuid.UUID{otherGroup}}

	_, err := f.coord.TranslateAll(context.Background(), p, item.ID)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, f.drafts.saved)
}

func TestCoordinator_TranslateAll_TranslatorFailureWritesNothing(t *testing.T) {
	t.Parallel()

	item := sourceCanonical(domain.LanguageJA)
	f := newFixture(groupConfig(), newMockDraftRepo(), newMockCanonicalRepo(item))
	f.translator.translateFunc = func(_ context.Context, _ domain.Canonical[domain.GroupAttrs], target domain.Language) (domain.Draft[domain.GroupAttrs], error) {
		if target == domain.LanguageKO {
			return domain.Draft[domain.GroupAttrs]{}, errors.New("service unavailable")
		}
		return domain.Draft[domain.GroupAttrs]{Attrs: item.Attrs}, nil
	}

	_, err := f.coord.TranslateAll(context.Background(), admin(), item.ID)
	require.Error(t, err)
	assert.Empty(t, f.drafts.saved, "all translations are computed before any write")
}

func TestCoordinator_TranslateAll_CanonicalNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(groupConfig(), newMockDraftRepo(), newMockCanonicalRepo())
	_, err := f.coord.TranslateAll(context.Background(), admin(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
