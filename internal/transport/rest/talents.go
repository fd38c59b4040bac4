package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sawamura/stagepedia-backend/internal/domain"
	"github.com/sawamura/stagepedia-backend/internal/service/talent"
)

// talentService defines the minimal interface needed by TalentHandler.
type talentService interface {
	Create(ctx context.Context, p *domain.Principal, input talent.CreateInput) (*domain.Draft[domain.TalentAttrs], error)
	Edit(ctx context.Context, p *domain.Principal, input talent.EditInput) (*domain.Draft[domain.TalentAttrs], error)
}

type fullTalentService interface {
	talentService
	moderationService[domain.TalentAttrs]
}

// NewTalentEndpoints bundles every talent handler for the router.
func NewTalentEndpoints(
	logger *slog.Logger,
	svc fullTalentService,
	drafts draftReader[domain.TalentAttrs],
	canonicals canonicalReader[domain.TalentAttrs],
	history historyReader,
	snapshots snapshotReader[domain.TalentAttrs],
) FamilyEndpoints[domain.TalentAttrs] {
	h := NewTalentHandler(svc, logger)
	return FamilyEndpoints[domain.TalentAttrs]{
		Create:     h.Create,
		Edit:       h.Edit,
		Moderation: NewModerationHandler(logger, svc, domain.EntityTypeTalent, viewTalentAttrs),
		Reads:      NewReadHandler(logger, drafts, canonicals, history, snapshots, domain.EntityTypeTalent, viewTalentAttrs),
	}
}

// TalentHandler serves the talent draft create/edit endpoints.
type TalentHandler struct {
	svc talentService
	log *slog.Logger
}

// NewTalentHandler creates a TalentHandler.
func NewTalentHandler(svc talentService, logger *slog.Logger) *TalentHandler {
	return &TalentHandler{svc: svc, log: logger.With("handler", "talent")}
}

type createTalentRequest struct {
	Language    string  `json:"language"`
	TalentID    *string `json:"talentId,omitempty"`
	GroupID     string  `json:"groupId"`
	AgencyID    string  `json:"agencyId"`
	CanonicalID *string `json:"canonicalId,omitempty"`
	Name        string  `json:"name"`
	Birthday    *string `json:"birthday,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	ImageBase64 *string `json:"imageBase64,omitempty"`
}

type editTalentRequest struct {
	TalentID    string  `json:"talentId"`
	GroupID     string  `json:"groupId"`
	AgencyID    string  `json:"agencyId"`
	Name        string  `json:"name"`
	Birthday    *string `json:"birthday,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	ImageBase64 *string `json:"imageBase64,omitempty"`
}

// Create handles POST /v1/talents/drafts.
func (h *TalentHandler) Create(w http.ResponseWriter, r *http.Request) {
	p := requirePrincipal(w, r)
	if p == nil {
		return
	}

	var req createTalentRequest
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

	writeJSON(w, http.StatusCreated, toDraftResponse(domain.EntityTypeTalent, draft, viewTalentAttrs))
}

// Edit handles PUT /v1/talents/drafts/{id}.
func (h *TalentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	p := requirePrincipal(w, r)
	if p == nil {
		return
	}

	draftID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req editTalentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	talentID, err := uuidField("talentId", req.TalentID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	groupID, err := uuidField("groupId", req.GroupID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	agencyID, err := uuidField("agencyId", req.AgencyID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	birthday, err := optionalDate("birthday", req.Birthday)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := h.svc.Edit(r.Context(), p, talent.EditInput{
		DraftID:     draftID,
		TalentID:    talentID,
		GroupID:     groupID,
		AgencyID:    agencyID,
		Name:        req.Name,
		Birthday:    birthday,
		Bio:         req.Bio,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(domain.EntityTypeTalent, draft, viewTalentAttrs))
}

func (req createTalentRequest) toInput() (talent.CreateInput, error) {
	lang := domain.Language(req.Language)
	if !lang.IsValid() {
		return talent.CreateInput{}, domain.NewValidationError("language", "unsupported language")
	}
	talentID, err := optionalUUID("talentId", req.TalentID)
	if err != nil {
		return talent.CreateInput{}, err
	}
	groupID, err := uuidField("groupId", req.GroupID)
	if err != nil {
		return talent.CreateInput{}, err
	}
	agencyID, err := uuidField("agencyId", req.AgencyID)
	if err != nil {
		return talent.CreateInput{}, err
	}
	canonicalID, err := optionalUUID("canonicalId", req.CanonicalID)
	if err != nil {
		return talent.CreateInput{}, err
	}
	birthday, err := optionalDate("birthday", req.Birthday)
	if err != nil {
		return talent.CreateInput{}, err
	}

	return talent.CreateInput{
		Language:    lang,
		TalentID:    talentID,
		GroupID:     groupID,
		AgencyID:    agencyID,
		CanonicalID: canonicalID,
		Name:        req.Name,
		Birthday:    birthday,
		Bio:         req.Bio,
		ImageBase64: req.ImageBase64,
	}, nil
}
