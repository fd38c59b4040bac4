package workflow

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Manual mocks over the group family (func fields on top of in-memory state)
// ---------------------------------------------------------------------------

type mockDraftRepo struct {
	byID    map[uuid.UUID]*domain.Draft[domain.GroupAttrs]
	saved   []*domain.Draft[domain.GroupAttrs]
	deleted []uuid.UUID

	saveErr error
}

func newMockDraftRepo(drafts ...*domain.Draft[domain.GroupAttrs]) *mockDraftRepo {
	m := &mockDraftRepo{byID: make(map[uuid.UUID]*domain.Draft[domain.GroupAttrs])}
	for _, d := range drafts {
		copied := *d
		m.byID[d.ID] = &copied
	}
	return m
}

func (m *mockDraftRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Draft[domain.GroupAttrs], error) {
	d, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (m *mockDraftRepo) Save(_ context.Context, draft *domain.Draft[domain.GroupAttrs]) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *draft
	m.byID[draft.ID] = &copied
	m.saved = append(m.saved, &copied)
	return nil
}

func (m *mockDraftRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockCanonicalRepo struct {
	byID  map[uuid.UUID]*domain.Canonical[domain.GroupAttrs]
	saved []*domain.Canonical[domain.GroupAttrs]
}

func newMockCanonicalRepo(items ...*domain.Canonical[domain.GroupAttrs]) *mockCanonicalRepo {
	m := &mockCanonicalRepo{byID: make(map[uuid.UUID]*domain.Canonical[domain.GroupAttrs])}
	for _, c := range items {
		copied := *c
		m.byID[c.ID] = &copied
	}
	return m
}

func (m *mockCanonicalRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Canonical[domain.GroupAttrs], error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *mockCanonicalRepo) Save(_ context.Context, item *domain.Canonical[domain.GroupAttrs]) error {
	copied := *item
	m.byID[item.ID] = &copied
	m.saved = append(m.saved, &copied)
	return nil
}

type mockHistoryRecorder struct {
	records   []domain.HistoryRecord
	recordErr error
}

func (m *mockHistoryRecorder) Record(_ context.Context, record domain.HistoryRecord) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.records = append(m.records, record)
	return nil
}

type mockSnapshotStore struct {
	snapshots []domain.Snapshot[domain.GroupAttrs]
}

func (m *mockSnapshotStore) Save(_ context.Context, snapshot domain.Snapshot[domain.GroupAttrs]) error {
	m.snapshots = append(m.snapshots, snapshot)
	return nil
}

type mockConflictGuard struct {
	exists bool
	err    error
	calls  int
}

func (m *mockConflictGuard) ExistsApprovedButNotTranslated(_ context.Context, _, _ uuid.UUID) (bool, error) {
	m.calls++
	return m.exists, m.err
}

type mockTranslator struct {
	translateFunc func(ctx context.Context, item domain.Canonical[domain.GroupAttrs], target domain.Language) (domain.Draft[domain.GroupAttrs], error)
}

func (m *mockTranslator) Translate(ctx context.Context, item domain.Canonical[domain.GroupAttrs], target domain.Language) (domain.Draft[domain.GroupAttrs], error) {
	if m.translateFunc != nil {
		return m.translateFunc(ctx, item, target)
	}
	return domain.Draft[domain.GroupAttrs]{Attrs: item.Attrs}, nil
}

type mockTxManager struct{}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

type fixture struct {
	drafts     *mockDraftRepo
	canonicals *mockCanonicalRepo
	history    *mockHistoryRecorder
	snapshots  *mockSnapshotStore
	guard      *mockConflictGuard
	translator *mockTranslator
	coord      *Coordinator[domain.GroupAttrs]
}

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newFixture(cfg Config, drafts *mockDraftRepo, canonicals *mockCanonicalRepo) *fixture {
	f := &fixture{
		drafts:     drafts,
		canonicals: canonicals,
		history:    &mockHistoryRecorder{},
		snapshots:  &mockSnapshotStore{},
		guard:      &mockConflictGuard{},
		translator: &mockTranslator{},
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	f.coord = New(logger, cfg, f.drafts, f.canonicals, f.history, f.snapshots, f.guard, f.translator, &mockTxManager{}).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func groupConfig() Config {
	return Config{
		EntityType:      domain.EntityTypeGroup,
		PublishRequires: domain.StatusApproved,
		Languages:       []domain.Language{domain.LanguageJA, domain.LanguageEN, domain.LanguageKO},
	}
}

func admin() *domain.Principal {
	return &domain.Principal{ID: uuid.New(), Role: domain.RoleAdministrator}
}

func groupDraft(status domain.ApprovalStatus) *domain.Draft[domain.GroupAttrs] {
	return &domain.Draft[domain.GroupAttrs]{
		ID:               uuid.New(),
		TranslationSetID: uuid.New(),
		EditorID:         uuid.New(),
		Language:         domain.LanguageJA,
		Status:           status,
		Attrs: domain.GroupAttrs{
			GroupID:  uuid.New(),
			AgencyID: uuid.New(),
			Name:     "Aurora Five",
		},
	}
}
