package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// TranslateAll fans one canonical item out into one PENDING draft per
// sibling language of the catalog. The principal is authorized once against
// the source item's scope, not per language, and the output order follows
// the fixed language ordinal, never map iteration order.
//
// All external translation calls happen before any write, so a failing
// language leaves nothing behind.
func (c *Coordinator[A]) TranslateAll(ctx context.Context, p *domain.Principal, canonicalID uuid.UUID) ([]*domain.Draft[A], error) {
	item, err := c.canonicals.GetByID(ctx, canonicalID)
	if err != nil {
		return nil, fmt.Errorf("load canonical: %w", err)
	}

	if err := domain.Authorize(p, domain.ActionTranslate, item.Attrs.Scope()); err != nil {
		return nil, err
	}

	targets := make([]domain.Language, 0, len(c.cfg.Languages))
	for _, lang := range c.cfg.Languages {
		if lang != item.Language {
			targets = append(targets, lang)
		}
	}
	domain.SortLanguages(targets)

	now := c.now()
	drafts := make([]*domain.Draft[A], 0, len(targets))
	for _, lang := range targets {
		translated, err := c.translator.Translate(ctx, *item, lang)
		if err != nil {
			return nil, fmt.Errorf("translate to %s: %w", lang, err)
		}

		translated.ID = uuid.New()
		translated.TranslationSetID = item.TranslationSetID
		translated.Language = lang
		translated.Status = domain.StatusPending
		translated.EditorID = p.ID
		translated.CreatedAt = now
		translated.UpdatedAt = now

		draft := translated
		drafts = append(drafts, &draft)
	}

	err = c.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, draft := range drafts {
			if err := c.drafts.Save(txCtx, draft); err != nil {
				return fmt.Errorf("save draft %s: %w", draft.Language, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "translation fanout",
		slog.String("canonical_id", item.ID.String()),
		slog.String("source_language", item.Language.String()),
		slog.Int("drafts", len(drafts)),
		slog.String("principal_id", p.ID.String()),
	)

	return drafts, nil
}
