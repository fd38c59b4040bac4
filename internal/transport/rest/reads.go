package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// Read-side consumer interfaces, satisfied by the postgres repositories.
// Reads go straight to the repositories: they need no authorization and
// no workflow rules, so a service layer would only forward calls.

type draftReader[A domain.Attributes] interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft[A], error)
	ListByStatus(ctx context.Context, status domain.ApprovalStatus, limit, offset int) ([]*domain.Draft[A], error)
}

type canonicalReader[A domain.Attributes] interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Canonical[A], error)
	List(ctx context.Context, limit, offset int) ([]*domain.Canonical[A], error)
	ListByTranslationSet(ctx context.Context, translationSetID uuid.UUID) ([]*domain.Canonical[A], error)
}

type historyReader interface {
	ListByDraft(ctx context.Context, draftID uuid.UUID, limit int) ([]domain.HistoryRecord, error)
	ListByCanonical(ctx context.Context, canonicalID uuid.UUID, limit int) ([]domain.HistoryRecord, error)
}

type snapshotReader[A domain.Attributes] interface {
	ListByCanonical(ctx context.Context, canonicalID uuid.UUID) ([]domain.Snapshot[A], error)
	GetVersion(ctx context.Context, canonicalID uuid.UUID, version int) (*domain.Snapshot[A], error)
}

// ReadHandler serves the query endpoints for one family.
type ReadHandler[A domain.Attributes] struct {
	log        *slog.Logger
	drafts     draftReader[A]
	canonicals canonicalReader[A]
	history    historyReader
	snapshots  snapshotReader[A]
	entityType domain.EntityType
	attrs      func(A) any
}

// NewReadHandler creates a ReadHandler for one family.
func NewReadHandler[A domain.Attributes](
	logger *slog.Logger,
	drafts draftReader[A],
	canonicals canonicalReader[A],
	history historyReader,
	snapshots snapshotReader[A],
	entityType domain.EntityType,
	attrs func(A) any,
) *ReadHandler[A] {
	return &ReadHandler[A]{
		log:        logger.With("handler", "reads", "entity_type", entityType.String()),
		drafts:     drafts,
		canonicals: canonicals,
		history:    history,
		snapshots:  snapshots,
		entityType: entityType,
		attrs:      attrs,
	}
}

// GetDraft handles GET /v1/{family}/drafts/{id}.
func (h *ReadHandler[A]) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := h.drafts.GetByID(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(h.entityType, draft, h.attrs))
}

// ListDrafts handles GET /v1/{family}/drafts?status=UNDER_REVIEW.
// Status defaults to the review queue, the list moderators live in.
func (h *ReadHandler[A]) ListDrafts(w http.ResponseWriter, r *http.Request) {
	status := domain.StatusUnderReview
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = domain.ApprovalStatus(raw)
		if !status.IsValid() {
			handleError(h.log, w, r, domain.NewValidationError("status", "unknown status"))
			return
		}
	}

	limit, offset := pageParams(r)

	drafts, err := h.drafts.ListByStatus(r.Context(), status, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"drafts": toDraftResponses(h.entityType, drafts, h.attrs),
	})
}

// GetItem handles GET /v1/{family}/items/{id}.
func (h *ReadHandler[A]) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.canonicals.GetByID(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCanonicalResponse(h.entityType, item, h.attrs))
}

// ListItems handles GET /v1/{family}/items.
func (h *ReadHandler[A]) ListItems(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)

	items, err := h.canonicals.List(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]canonicalResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toCanonicalResponse(h.entityType, item, h.attrs))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// ListTranslations handles GET /v1/{family}/items/{id}/translations:
// every published language version sharing the item's translation set.
func (h *ReadHandler[A]) ListTranslations(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.canonicals.GetByID(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	siblings, err := h.canonicals.ListByTranslationSet(r.Context(), item.TranslationSetID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]canonicalResponse, 0, len(siblings))
	for _, s := range siblings {
		out = append(out, toCanonicalResponse(h.entityType, s, h.attrs))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// DraftHistory handles GET /v1/{family}/drafts/{id}/history.
func (h *ReadHandler[A]) DraftHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit, _ := pageParams(r)

	records, err := h.history.ListByDraft(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeHistory(w, records)
}

// ItemHistory handles GET /v1/{family}/items/{id}/history.
func (h *ReadHandler[A]) ItemHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit, _ := pageParams(r)

	records, err := h.history.ListByCanonical(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeHistory(w, records)
}

func (h *ReadHandler[A]) writeHistory(w http.ResponseWriter, records []domain.HistoryRecord) {
	out := make([]historyResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toHistoryResponse(rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": out})
}

// ListSnapshots handles GET /v1/{family}/items/{id}/snapshots.
func (h *ReadHandler[A]) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	snapshots, err := h.snapshots.ListByCanonical(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]snapshotResponse, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, toSnapshotResponse(s, h.attrs))
	}
	writeJSON(w, http.StatusOK, map[string]any{"snapshots": out})
}

// GetSnapshot handles GET /v1/{family}/items/{id}/snapshots/{version}.
func (h *ReadHandler[A]) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	version, err := strconv.Atoi(r.PathValue("version"))
	if err != nil || version < 1 {
		handleError(h.log, w, r, domain.NewValidationError("version", "must be a positive integer"))
		return
	}

	snapshot, err := h.snapshots.GetVersion(r.Context(), id, version)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSnapshotResponse(*snapshot, h.attrs))
}
