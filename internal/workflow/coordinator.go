// Package workflow implements the draft/approve/publish/translate engine
// shared by every entity family in the catalog. Each family instantiates one
// Coordinator with its own repositories and Config; the lifecycle rules,
// authorization checks and audit recording are identical across families.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// Config carries the per-family knobs of the engine.
type Config struct {
	EntityType domain.EntityType
	// PublishRequires is the draft status Publish demands. Families differ:
	// most gate on APPROVED, songs accept UNDER_REVIEW directly.
	PublishRequires domain.ApprovalStatus
	// Languages is the catalog language set, kept in fixed ordinal order.
	Languages []domain.Language
}

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type draftRepo[A domain.Attributes] interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft[A], error)
	Save(ctx context.Context, draft *domain.Draft[A]) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type canonicalRepo[A domain.Attributes] interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Canonical[A], error)
	Save(ctx context.Context, item *domain.Canonical[A]) error
}

type historyRecorder interface {
	Record(ctx context.Context, record domain.HistoryRecord) error
}

type snapshotStore[A domain.Attributes] interface {
	Save(ctx context.Context, snapshot domain.Snapshot[A]) error
}

type conflictGuard interface {
	ExistsApprovedButNotTranslated(ctx context.Context, translationSetID, excludeID uuid.UUID) (bool, error)
}

type translator[A domain.Attributes] interface {
	Translate(ctx context.Context, item domain.Canonical[A], target domain.Language) (domain.Draft[A], error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Coordinator
// ---------------------------------------------------------------------------

// Coordinator orchestrates the moderation lifecycle for one entity family.
// Every operation follows the same ordering: authorize, validate state,
// compute resulting values, then write. A failed precondition never leaves
// partial state behind.
type Coordinator[A domain.Attributes] struct {
	log        *slog.Logger
	cfg        Config
	drafts     draftRepo[A]
	canonicals canonicalRepo[A]
	history    historyRecorder
	snapshots  snapshotStore[A]
	guard      conflictGuard
	translator translator[A]
	tx         txManager
	now        func() time.Time
}

// New creates a Coordinator for one entity family.
func New[A domain.Attributes](
	logger *slog.Logger,
	cfg Config,
	drafts draftRepo[A],
	canonicals canonicalRepo[A],
	history historyRecorder,
	snapshots snapshotStore[A],
	guard conflictGuard,
	translator translator[A],
	tx txManager,
) *Coordinator[A] {
	return &Coordinator[A]{
		log:        logger.With("workflow", cfg.EntityType.String()),
		cfg:        cfg,
		drafts:     drafts,
		canonicals: canonicals,
		history:    history,
		snapshots:  snapshots,
		guard:      guard,
		translator: translator,
		tx:         tx,
		now:        time.Now,
	}
}

// WithClock overrides the time source. Tests only.
func (c *Coordinator[A]) WithClock(now func() time.Time) *Coordinator[A] {
	c.now = now
	return c
}

// ---------------------------------------------------------------------------
// Create / Edit
// ---------------------------------------------------------------------------

// CreateDraft starts a new moderation cycle. When canonicalID is set, the
// draft is an edit of a published item and inherits its translation set;
// otherwise a fresh translation set is minted and the first publish will
// mint a new canonical item.
func (c *Coordinator[A]) CreateDraft(ctx context.Context, p *domain.Principal, language domain.Language, attrs A, canonicalID *uuid.UUID) (*domain.Draft[A], error) {
	// Authorize before any state read.
	if err := domain.Authorize(p, domain.ActionCreate, attrs.Scope()); err != nil {
		return nil, err
	}
	if !language.IsValid() {
		return nil, domain.NewValidationError("language", "unknown language: "+language.String())
	}

	now := c.now()
	draft := &domain.Draft[A]{
		ID:        uuid.New(),
		EditorID:  p.ID,
		Language:  language,
		Status:    domain.StatusPending,
		Attrs:     attrs,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if canonicalID != nil {
		canonical, err := c.canonicals.GetByID(ctx, *canonicalID)
		if err != nil {
			return nil, fmt.Errorf("load canonical: %w", err)
		}
		draft.CanonicalID = &canonical.ID
		draft.TranslationSetID = canonical.TranslationSetID
	} else {
		draft.TranslationSetID = uuid.New()
	}

	record, err := c.historyRecord(p, draft, nil, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	err = c.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := c.drafts.Save(txCtx, draft); err != nil {
			return fmt.Errorf("save draft: %w", err)
		}
		return c.history.Record(txCtx, record)
	})
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "draft created",
		slog.String("draft_id", draft.ID.String()),
		slog.String("editor_id", p.ID.String()),
		slog.String("language", language.String()),
	)

	return draft, nil
}

// EditDraft applies field changes to an existing draft. The status is left
// at its current value; editing a terminal draft is rejected; a fresh
// cycle must be started through CreateDraft instead.
func (c *Coordinator[A]) EditDraft(ctx context.Context, p *domain.Principal, draftID uuid.UUID, attrs A) (*domain.Draft[A], error) {
	// Authorize against the incoming scope before any state read.
	if err := domain.Authorize(p, domain.ActionEdit, attrs.Scope()); err != nil {
		return nil, err
	}

	var draft *domain.Draft[A]
	err := c.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		draft, err = c.drafts.GetByID(txCtx, draftID)
		if err != nil {
			return fmt.Errorf("load draft: %w", err)
		}
		if draft.Status.IsTerminal() {
			return &domain.InvalidStatusError{
				Action:   domain.ActionEdit,
				Required: domain.StatusPending,
				Actual:   draft.Status,
			}
		}

		draft.Attrs = attrs
		draft.UpdatedAt = c.now()
		if err := c.drafts.Save(txCtx, draft); err != nil {
			return fmt.Errorf("save draft: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "draft edited",
		slog.String("draft_id", draftID.String()),
		slog.String("editor_id", p.ID.String()),
	)

	return draft, nil
}

// ---------------------------------------------------------------------------
// Submit / Approve / Reject
// ---------------------------------------------------------------------------

// SubmitDraft moves a PENDING draft into review.
func (c *Coordinator[A]) SubmitDraft(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[A], error) {
	return c.transition(ctx, p, draftID, domain.ActionSubmit, nil)
}

// Approve moves an UNDER_REVIEW draft to APPROVED, unless another language
// in the same translation set is already approved and untranslated.
func (c *Coordinator[A]) Approve(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[A], error) {
	guard := func(ctx context.Context, draft *domain.Draft[A]) error {
		conflicted, err := c.guard.ExistsApprovedButNotTranslated(ctx, draft.TranslationSetID, draft.ID)
		if err != nil {
			return fmt.Errorf("conflict guard: %w", err)
		}
		if conflicted {
			return &domain.ApprovedUntranslatedError{TranslationSetID: draft.TranslationSetID}
		}
		return nil
	}
	return c.transition(ctx, p, draftID, domain.ActionApprove, guard)
}

// Reject moves an UNDER_REVIEW draft to REJECTED.
func (c *Coordinator[A]) Reject(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[A], error) {
	return c.transition(ctx, p, draftID, domain.ActionReject, nil)
}

// transition runs the shared load → validate → authorize → guard → write
// sequence for pure status transitions.
func (c *Coordinator[A]) transition(ctx context.Context, p *domain.Principal, draftID uuid.UUID, action domain.Action, guard func(context.Context, *domain.Draft[A]) error) (*domain.Draft[A], error) {
	draft, err := c.drafts.GetByID(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}

	next, err := domain.Transition(action, draft.Status)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(p, action, draft.Attrs.Scope()); err != nil {
		return nil, err
	}

	if guard != nil {
		if err := guard(ctx, draft); err != nil {
			return nil, err
		}
	}

	fromStatus := draft.Status
	draft.Status = next
	draft.UpdatedAt = c.now()

	record, err := c.historyRecord(p, draft, &fromStatus, next)
	if err != nil {
		return nil, err
	}

	err = c.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := c.drafts.Save(txCtx, draft); err != nil {
			return fmt.Errorf("save draft: %w", err)
		}
		return c.history.Record(txCtx, record)
	})
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "draft transitioned",
		slog.String("draft_id", draft.ID.String()),
		slog.String("action", action.String()),
		slog.String("from", fromStatus.String()),
		slog.String("to", next.String()),
		slog.String("principal_id", p.ID.String()),
	)

	return draft, nil
}

// ---------------------------------------------------------------------------
// Publish
// ---------------------------------------------------------------------------

// Publish consumes a draft and folds it into the published catalog. With an
// existing canonical item the mutable fields are overwritten and the version
// advances by one; without one a brand-new canonical item is minted at
// version 1. Either way a snapshot of the resulting version is written and
// the draft is deleted.
func (c *Coordinator[A]) Publish(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Canonical[A], error) {
	draft, err := c.drafts.GetByID(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}

	if draft.Status != c.cfg.PublishRequires {
		return nil, &domain.InvalidStatusError{
			Action:   domain.ActionPublish,
			Required: c.cfg.PublishRequires,
			Actual:   draft.Status,
		}
	}

	if err := domain.Authorize(p, domain.ActionPublish, draft.Attrs.Scope()); err != nil {
		return nil, err
	}

	now := c.now()
	var canonical *domain.Canonical[A]

	if draft.CanonicalID != nil {
		canonical, err = c.canonicals.GetByID(ctx, *draft.CanonicalID)
		if err != nil {
			return nil, fmt.Errorf("load canonical: %w", err)
		}
		canonical.Attrs = draft.Attrs
		canonical.Version++
		canonical.UpdatedAt = now
	} else {
		canonical = &domain.Canonical[A]{
			ID:               uuid.New(),
			TranslationSetID: draft.TranslationSetID,
			Language:         draft.Language,
			Version:          1,
			Attrs:            draft.Attrs,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
	}

	fromStatus := draft.Status
	record, err := c.publishHistoryRecord(p, draft, canonical, &fromStatus)
	if err != nil {
		return nil, err
	}
	snapshot := domain.SnapshotOf(*canonical, now)

	err = c.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := c.canonicals.Save(txCtx, canonical); err != nil {
			return fmt.Errorf("save canonical: %w", err)
		}
		if err := c.snapshots.Save(txCtx, snapshot); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		if err := c.history.Record(txCtx, record); err != nil {
			return err
		}
		if err := c.drafts.Delete(txCtx, draft.ID); err != nil {
			return fmt.Errorf("delete draft: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "draft published",
		slog.String("draft_id", draft.ID.String()),
		slog.String("canonical_id", canonical.ID.String()),
		slog.Int("version", canonical.Version),
		slog.String("principal_id", p.ID.String()),
	)

	return canonical, nil
}

// ---------------------------------------------------------------------------
// History helpers
// ---------------------------------------------------------------------------

// historyRecord builds the audit entry for a draft-subject transition.
// SubmitterID is set only when the acting principal is not the editor.
func (c *Coordinator[A]) historyRecord(p *domain.Principal, draft *domain.Draft[A], from *domain.ApprovalStatus, to domain.ApprovalStatus) (domain.HistoryRecord, error) {
	draftID := draft.ID
	return domain.NewHistoryRecord(
		c.cfg.EntityType,
		draft.EditorID,
		c.submitterID(p, draft),
		nil, &draftID,
		from, to,
		draft.Attrs.SubjectName(),
		c.now(),
	)
}

// publishHistoryRecord references both the consumed draft and the resulting
// canonical item.
func (c *Coordinator[A]) publishHistoryRecord(p *domain.Principal, draft *domain.Draft[A], canonical *domain.Canonical[A], from *domain.ApprovalStatus) (domain.HistoryRecord, error) {
	draftID, canonicalID := draft.ID, canonical.ID
	return domain.NewHistoryRecord(
		c.cfg.EntityType,
		draft.EditorID,
		c.submitterID(p, draft),
		&canonicalID, &draftID,
		from, domain.StatusApproved,
		canonical.Attrs.SubjectName(),
		c.now(),
	)
}

func (c *Coordinator[A]) submitterID(p *domain.Principal, draft *domain.Draft[A]) *uuid.UUID {
	if p.ID == draft.EditorID {
		return nil
	}
	id := p.ID
	return &id
}
