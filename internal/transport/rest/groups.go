package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sawamura/stagepedia-backend/internal/domain"
	"github.com/sawamura/stagepedia-backend/internal/service/group"
)

// groupService defines the minimal interface needed by GroupHandler.
type groupService interface {
	Create(ctx context.Context, p *domain.Principal, input group.CreateInput) (*domain.Draft[domain.GroupAttrs], error)
	Edit(ctx context.Context, p *domain.Principal, input group.EditInput) (*domain.Draft[domain.GroupAttrs], error)
}

type fullGroupService interface {
	groupService
	moderationService[domain.GroupAttrs]
}

// NewGroupEndpoints bundles every group handler for the router.
func NewGroupEndpoints(
	logger *slog.Logger,
	svc fullGroupService,
	drafts draftReader[domain.GroupAttrs],
	canonicals canonicalReader[domain.GroupAttrs],
	history historyReader,
	snapshots snapshotReader[domain.GroupAttrs],
) FamilyEndpoints[domain.GroupAttrs] {
	h := NewGroupHandler(svc, logger)
	return FamilyEndpoints[domain.GroupAttrs]{
		Create:     h.Create,
		Edit:       h.Edit,
		Moderation: NewModerationHandler(logger, svc, domain.EntityTypeGroup, viewGroupAttrs),
		Reads:      NewReadHandler(logger, drafts, canonicals, history, snapshots, domain.EntityTypeGroup, viewGroupAttrs),
	}
}

// GroupHandler serves the group draft create/edit endpoints.
type GroupHandler struct {
	svc groupService
	log *slog.Logger
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(svc groupService, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{svc: svc, log: logger.With("handler", "group")}
}

type createGroupRequest struct {
	Language    string  `json:"language"`
	AgencyID    string  `json:"agencyId"`
	GroupID     *string `json:"groupId,omitempty"`
	CanonicalID *string `json:"canonicalId,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	DebutOn     *string `json:"debutOn,omitempty"`
	ImageBase64 *string `json:"imageBase64,omitempty"`
}

type editGroupRequest struct {
	AgencyID    string  `json:"agencyId"`
	GroupID     string  `json:"groupId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	DebutOn     *string `json:"debutOn,omitempty"`
	ImageBase64 *string `json:"imageBase64,omitempty"`
}

// Create handles POST /v1/groups/drafts.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	p := requirePrincipal(w, r)
	if p == nil {
		return
	}

	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := h.svc.Create(r.Context(), p, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDraftResponse(domain.EntityTypeGroup, draft, viewGroupAttrs))
}

// Edit handles PUT /v1/groups/drafts/{id}.
func (h *GroupHandler) Edit(w http.ResponseWriter, r *http.Request) {
	p := requirePrincipal(w, r)
	if p == nil {
		return
	}

	draftID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req editGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	agencyID, err := uuidField("agencyId", req.AgencyID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	groupID, err := uuidField("groupId", req.GroupID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	debutOn, err := optionalDate("debutOn", req.DebutOn)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := h.svc.Edit(r.Context(), p, group.EditInput{
		DraftID:     draftID,
		AgencyID:    agencyID,
		GroupID:     groupID,
		Name:        req.Name,
		Description: req.Description,
		DebutOn:     debutOn,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(domain.EntityTypeGroup, draft, viewGroupAttrs))
}

func (req createGroupRequest) toInput() (group.CreateInput, error) {
	lang := domain.Language(req.Language)
	if !lang.IsValid() {
		return group.CreateInput{}, domain.NewValidationError("language", "unsupported language")
	}
	agencyID, err := uuidField("agencyId", req.AgencyID)
	if err != nil {
		return group.CreateInput{}, err
	}
	groupID, err := optionalUUID("groupId", req.GroupID)
	if err != nil {
		return group.CreateInput{}, err
	}
	canonicalID, err := optionalUUID("canonicalId", req.CanonicalID)
	if err != nil {
		return group.CreateInput{}, err
	}
	debutOn, err := optionalDate("debutOn", req.DebutOn)
	if err != nil {
		return group.CreateInput{}, err
	}

	return group.CreateInput{
		Language:    lang,
		AgencyID:    agencyID,
		GroupID:     groupID,
		CanonicalID: canonicalID,
		Name:        req.Name,
		Description: req.Description,
		DebutOn:     debutOn,
		ImageBase64: req.ImageBase64,
	}, nil
}
