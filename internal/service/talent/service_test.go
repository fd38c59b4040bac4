package talent

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

type mockCoordinator struct {
	CreateDraftFunc func(ctx context.Context, p *domain.Principal, language domain.Language, attrs domain.TalentAttrs, canonicalID *uuid.UUID) (*domain.Draft[domain.TalentAttrs], error)
}

func (m *mockCoordinator) CreateDraft(ctx context.Context, p *domain.Principal, language domain.Language, attrs domain.TalentAttrs, canonicalID *uuid.UUID) (*domain.Draft[domain.TalentAttrs], error) {
	if m.CreateDraftFunc != nil {
		return m.CreateDraftFunc(ctx, p, language, attrs, canonicalID)
	}
	return &domain.Draft[domain.TalentAttrs]{ID: uuid.New(), Attrs: attrs, Status: domain.StatusPending}, nil
}

func (m *mockCoordinator) EditDraft(_ context.Context, _ *domain.Principal, draftID uuid.UUID, attrs domain.TalentAttrs) (*domain.Draft[domain.TalentAttrs], error) {
	return &domain.Draft[domain.TalentAttrs]{ID: draftID, Attrs: attrs}, nil
}

func (m *mockCoordinator) SubmitDraft(_ context.Context, _ *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.TalentAttrs], error) {
	return &domain.Draft[domain.TalentAttrs]{ID: draftID, Status: domain.StatusUnderReview}, nil
}

func (m *mockCoordinator) Approve(_ context.Context, _ *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.TalentAttrs], error) {
	return &domain.Draft[domain.TalentAttrs]{ID: draftID, Status: domain.StatusApproved}, nil
}

func (m *mockCoordinator) Reject(_ context.Context, _ *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.TalentAttrs], error) {
	return &domain.Draft[domain.TalentAttrs]{ID: draftID, Status: domain.StatusRejected}, nil
}

func (m *mockCoordinator) Publish(_ context.Context, _ *domain.Principal, _ uuid.UUID) (*domain.Canonical[domain.TalentAttrs], error) {
	return &domain.Canonical[domain.TalentAttrs]{ID: uuid.New(), Version: 1}, nil
}

func (m *mockCoordinator) TranslateAll(_ context.Context, _ *domain.Principal, _ uuid.UUID) ([]*domain.Draft[domain.TalentAttrs], error) {
	return nil, nil
}

type mockImageStore struct {
	calls int
}

func (m *mockImageStore) Upload(_ context.Context, _ string) (string, error) {
	m.calls++
	return "images/talent.png", nil
}

func newService(coord *mockCoordinator, images *mockImageStore) *Service {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewService(logger, coord, images)
}

func TestService_Create_MintsTalentID(t *testing.T) {
	t.Parallel()

	var gotAttrs domain.TalentAttrs
	coord := &mockCoordinator{
		CreateDraftFunc: func(_ context.Context, _ *domain.Principal, _ domain.Language, attrs domain.TalentAttrs, _ *uuid.UUID) (*domain.Draft[domain.TalentAttrs], error) {
			gotAttrs = attrs
			return &domain.Draft[domain.TalentAttrs]{ID: uuid.New(), Attrs: attrs}, nil
		},
	}
	svc := newService(coord, &mockImageStore{})
	p := &domain.Principal{ID: uuid.New(), Role: domain.RoleCollaborator}

	_, err := svc.Create(context.Background(), p, CreateInput{
		Language: domain.LanguageJA,
		GroupID:  uuid.New(),
		AgencyID: uuid.New(),
		Name:     "Rin Hoshizaki",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, gotAttrs.TalentID, "talent id minted when absent")
}

func TestService_Create_DeniedBeforeImageUpload(t *testing.T) {
	t.Parallel()

	images := &mockImageStore{}
	svc := newService(&mockCoordinator{}, images)

	encoded := "aGVsbG8="
	// Scoped to a different talent than the one being created.
	otherTalent := uuid.New()
	p := &domain.Principal{
		ID:           uuid.New(),
		Role:         domain.RoleTalentActor,
		TalentScopes: []uuid.UUID{otherTalent},
	}
	_, err := svc.Create(context.Background(), p, CreateInput{
		Language:    domain.LanguageJA,
		GroupID:     uuid.New(),
		AgencyID:    uuid.New(),
		Name:        "Rin Hoshizaki",
		ImageBase64: &encoded,
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, images.calls, "denied request must not upload")
}

func TestService_Edit_Validation(t *testing.T) {
	t.Parallel()

	svc := newService(&mockCoordinator{}, &mockImageStore{})
	p := &domain.Principal{ID: uuid.New(), Role: domain.RoleCollaborator}

	_, err := svc.Edit(context.Background(), p, EditInput{})
	require.ErrorIs(t, err, domain.ErrValidation)
}
