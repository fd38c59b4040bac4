package group

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Manual mocks (func fields)
// ---------------------------------------------------------------------------

type mockCoordinator struct {
	CreateDraftFunc  func(ctx context.Context, p *domain.Principal, language domain.Language, attrs domain.GroupAttrs, canonicalID *uuid.UUID) (*domain.Draft[domain.GroupAttrs], error)
	EditDraftFunc    func(ctx context.Context, p *domain.Principal, draftID uuid.UUID, attrs domain.GroupAttrs) (*domain.Draft[domain.GroupAttrs], error)
	SubmitDraftFunc  func(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.GroupAttrs], error)
	ApproveFunc      func(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.GroupAttrs], error)
	RejectFunc       func(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.GroupAttrs], error)
	PublishFunc      func(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Canonical[domain.GroupAttrs], error)
	TranslateAllFunc func(ctx context.Context, p *domain.Principal, canonicalID uuid.UUID) ([]*domain.Draft[domain.GroupAttrs], error)
}

func (m *mockCoordinator) CreateDraft(ctx context.Context, p *domain.Principal, language domain.Language, attrs domain.GroupAttrs, canonicalID *uuid.UUID) (*domain.Draft[domain.GroupAttrs], error) {
	if m.CreateDraftFunc != nil {
		return m.CreateDraftFunc(ctx, p, language, attrs, canonicalID)
	}
	return &domain.Draft[domain.GroupAttrs]{ID: uuid.New(), Attrs: attrs, Status: domain.StatusPending}, nil
}

func (m *mockCoordinator) EditDraft(ctx context.Context, p *domain.Principal, draftID uuid.UUID, attrs domain.GroupAttrs) (*domain.Draft[domain.GroupAttrs], error) {
	if m.EditDraftFunc != nil {
		return m.EditDraftFunc(ctx, p, draftID, attrs)
	}
	return &domain.Draft[domain.GroupAttrs]{ID: draftID, Attrs: attrs}, nil
}

func (m *mockCoordinator) SubmitDraft(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.GroupAttrs], error) {
	if m.SubmitDraftFunc != nil {
		return m.SubmitDraftFunc(ctx, p, draftID)
	}
	return &domain.Draft[domain.GroupAttrs]{ID: draftID}, nil
}

func (m *mockCoordinator) Approve(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.GroupAttrs], error) {
	if m.ApproveFunc != nil {
		return m.ApproveFunc(ctx, p, draftID)
	}
	return &domain.Draft[domain.GroupAttrs]{ID: draftID}, nil
}

func (m *mockCoordinator) Reject(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.GroupAttrs], error) {
	if m.RejectFunc != nil {
		return m.RejectFunc(ctx, p, draftID)
	}
	return &domain.Draft[domain.GroupAttrs]{ID: draftID}, nil
}

func (m *mockCoordinator) Publish(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Canonical[domain.GroupAttrs], error) {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, p, draftID)
	}
	return &domain.Canonical[domain.GroupAttrs]{ID: uuid.New(), Version: 1}, nil
}

func (m *mockCoordinator) TranslateAll(ctx context.Context, p *domain.Principal, canonicalID uuid.UUID) ([]*domain.Draft[domain.GroupAttrs], error) {
	if m.TranslateAllFunc != nil {
		return m.TranslateAllFunc(ctx, p, canonicalID)
	}
	return nil, nil
}

type mockImageStore struct {
	uploadFunc func(ctx context.Context, encoded string) (string, error)
	calls      int
}

func (m *mockImageStore) Upload(ctx context.Context, encoded string) (string, error) {
	m.calls++
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, encoded)
	}
	return "images/test.png", nil
}

func newService(coord *mockCoordinator, images *mockImageStore) *Service {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewService(logger, coord, images)
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestService_Create_HappyPath(t *testing.T) {
	t.Parallel()

	images := &mockImageStore{}
	svc := newService(&mockCoordinator{}, images)

	p := &domain.Principal{ID: uuid.New(), Role: domain.RoleCollaborator}
	draft, err := svc.Create(context.Background(), p, CreateInput{
		Language: domain.LanguageJA,
		AgencyID: uuid.New(),
		Name:     "Aurora Five",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, draft.Status)
	assert.Equal(t, "Aurora Five", draft.Attrs.Name)
	assert.Zero(t, images.calls, "no image provided")
}

func TestService_Create_ValidationFailure(t *testing.T) {
	t.Parallel()

	svc := newService(&mockCoordinator{}, &mockImageStore{})
	p := &domain.Principal{ID: uuid.New(), Role: domain.RoleCollaborator}

	_, err := svc.Create(context.Background(), p, CreateInput{Language: domain.LanguageJA})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Create_UploadsImage(t *testing.T) {
	t.Parallel()

	images := &mockImageStore{
		uploadFunc: func(_ context.Context, _ string) (string, error) {
			return "images/aurora.png", nil
		},
	}
	var gotAttrs domain.GroupAttrs
	coord := &mockCoordinator{
		CreateDraftFunc: func(_ context.Context, _ *domain.Principal, _ domain.Language, attrs domain.GroupAttrs, _ *uuid.UUID) (*domain.Draft[domain.GroupAttrs], error) {
			gotAttrs = attrs
			return &domain.Draft[domain.GroupAttrs]{ID: uuid.New(), Attrs: attrs}, nil
		},
	}
	svc := newService(coord, images)

	encoded := "aGVsbG8="
	p := &domain.Principal{ID: uuid.New(), Role: domain.RoleCollaborator}
	_, err := svc.Create(context.Background(), p, CreateInput{
		Language:    domain.LanguageJA,
		AgencyID:    uuid.New(),
		Name:        "Aurora Five",
		ImageBase64: &encoded,
	})
	require.NoError(t, err)
	require.NotNil(t, gotAttrs.ImagePath)
	assert.Equal(t, "images/aurora.png", *gotAttrs.ImagePath)
}

func TestService_Create_DeniedBeforeImageUpload(t *testing.T) {
	t.Parallel()

	images := &mockImageStore{}
	svc := newService(&mockCoordinator{}, images)

	encoded := "aGVsbG8="
	p := &domain.Principal{ID: uuid.New(), Role: domain.RoleNone}
	_, err := svc.Create(context.Background(), p, CreateInput{
		Language:    domain.LanguageJA,
		AgencyID:    uuid.New(),
		Name:        "Aurora Five",
		ImageBase64: &encoded,
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, images.calls, "denied request must not upload")
}

func TestService_Create_ImageUploadFailure(t *testing.T) {
	t.Parallel()

	images := &mockImageStore{
		uploadFunc: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("disk full")
		},
	}
	svc := newService(&mockCoordinator{}, images)

	encoded := "aGVsbG8="
	p := &domain.Principal{ID: uuid.New(), Role: domain.RoleCollaborator}
	_, err := svc.Create(context.Background(), p, CreateInput{
		Language:    domain.LanguageJA,
		AgencyID:    uuid.New(),
		Name:        "Aurora Five",
		ImageBase64: &encoded,
	})
	require.ErrorContains(t, err, "disk full")
}

func TestService_Edit_Validation(t *testing.T) {
	t.Parallel()

	svc := newService(&mockCoordinator{}, &mockImageStore{})
	p := &domain.Principal{ID: uuid.New(), Role: domain.RoleCollaborator}

	_, err := svc.Edit(context.Background(), p, EditInput{})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Delegations(t *testing.T) {
	t.Parallel()

	draftID := uuid.New()
	canonicalID := uuid.New()
	var approved, published, translated bool

	coord := &mockCoordinator{
		ApproveFunc: func(_ context.Context, _ *domain.Principal, id uuid.UUID) (*domain.Draft[domain.GroupAttrs], error) {
			approved = true
			assert.Equal(t, draftID, id)
			return &domain.Draft[domain.GroupAttrs]{ID: id, Status: domain.StatusApproved}, nil
		},
		PublishFunc: func(_ context.Context, _ *domain.Principal, id uuid.UUID) (*domain.Canonical[domain.GroupAttrs], error) {
			published = true
			return &domain.Canonical[domain.GroupAttrs]{ID: canonicalID, Version: 1}, nil
		},
		TranslateAllFunc: func(_ context.Context, _ *domain.Principal, id uuid.UUID) ([]*domain.Draft[domain.GroupAttrs], error) {
			translated = true
			assert.Equal(t, canonicalID, id)
			return nil, nil
		},
	}
	svc := newService(coord, &mockImageStore{})
	p := &domain.Principal{ID: uuid.New(), Role: domain.RoleAdministrator}

	_, err := svc.Approve(context.Background(), p, draftID)
	require.NoError(t, err)
	_, err = svc.Publish(context.Background(), p, draftID)
	require.NoError(t, err)
	_, err = svc.Translate(context.Background(), p, canonicalID)
	require.NoError(t, err)

	assert.True(t, approved)
	assert.True(t, published)
	assert.True(t, translated)
}
