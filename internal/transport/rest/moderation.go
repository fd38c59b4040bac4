package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
	"github.com/sawamura/stagepedia-backend/internal/transport/middleware"
)

// moderationService is the part of a family service shared by all four
// families: the lifecycle transitions keyed by a draft or canonical id.
type moderationService[A domain.Attributes] interface {
	Submit(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[A], error)
	Approve(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[A], error)
	Reject(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[A], error)
	Publish(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Canonical[A], error)
	Translate(ctx context.Context, p *domain.Principal, canonicalID uuid.UUID) ([]*domain.Draft[A], error)
}

// ModerationHandler serves the uniform lifecycle endpoints for one family.
type ModerationHandler[A domain.Attributes] struct {
	log        *slog.Logger
	svc        moderationService[A]
	entityType domain.EntityType
	attrs      func(A) any
}

// NewModerationHandler creates a ModerationHandler for one family.
// attrs renders the family payload into its wire shape.
func NewModerationHandler[A domain.Attributes](
	logger *slog.Logger,
	svc moderationService[A],
	entityType domain.EntityType,
	attrs func(A) any,
) *ModerationHandler[A] {
	return &ModerationHandler[A]{
		log:        logger.With("handler", "moderation", "entity_type", entityType.String()),
		svc:        svc,
		entityType: entityType,
		attrs:      attrs,
	}
}

// requirePrincipal rejects requests that did not resolve a principal.
// Write endpoints all pass through here; reads stay open.
func requirePrincipal(w http.ResponseWriter, r *http.Request) *domain.Principal {
	p := middleware.PrincipalFromCtx(r.Context())
	if p == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return nil
	}
	return p
}

// Submit handles POST /v1/{family}/drafts/{id}/submit.
func (h *ModerationHandler[A]) Submit(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Submit)
}

// Approve handles POST /v1/{family}/drafts/{id}/approve.
func (h *ModerationHandler[A]) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Approve)
}

// Reject handles POST /v1/{family}/drafts/{id}/reject.
func (h *ModerationHandler[A]) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Reject)
}

func (h *ModerationHandler[A]) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, *domain.Principal, uuid.UUID) (*domain.Draft[A], error),
) {
	p := requirePrincipal(w, r)
	if p == nil {
		return
	}

	draftID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := op(r.Context(), p, draftID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(h.entityType, draft, h.attrs))
}

// Publish handles POST /v1/{family}/drafts/{id}/publish.
func (h *ModerationHandler[A]) Publish(w http.ResponseWriter, r *http.Request) {
	p := requirePrincipal(w, r)
	if p == nil {
		return
	}

	draftID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.Publish(r.Context(), p, draftID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCanonicalResponse(h.entityType, item, h.attrs))
}

// Translate handles POST /v1/{family}/items/{id}/translate. It fans the
// canonical item out into drafts for every missing catalog language.
func (h *ModerationHandler[A]) Translate(w http.ResponseWriter, r *http.Request) {
	p := requirePrincipal(w, r)
	if p == nil {
		return
	}

	canonicalID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	drafts, err := h.svc.Translate(r.Context(), p, canonicalID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"drafts": toDraftResponses(h.entityType, drafts, h.attrs),
	})
}
