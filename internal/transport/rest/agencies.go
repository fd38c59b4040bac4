package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sawamura/stagepedia-backend/internal/domain"
	"github.com/sawamura/stagepedia-backend/internal/service/agency"
)

// agencyService defines the minimal interface needed by AgencyHandler.
type agencyService interface {
	Create(ctx context.Context, p *domain.Principal, input agency.CreateInput) (*domain.Draft[domain.AgencyAttrs], error)
	Edit(ctx context.Context, p *domain.Principal, input agency.EditInput) (*domain.Draft[domain.AgencyAttrs], error)
}

// fullAgencyService is the whole agency surface: create/edit plus the
// shared lifecycle transitions.
type fullAgencyService interface {
	agencyService
	moderationService[domain.AgencyAttrs]
}

// NewAgencyEndpoints bundles every agency handler for the router.
func NewAgencyEndpoints(
	logger *slog.Logger,
	svc fullAgencyService,
	drafts draftReader[domain.AgencyAttrs],
	canonicals canonicalReader[domain.AgencyAttrs],
	history historyReader,
	snapshots snapshotReader[domain.AgencyAttrs],
) FamilyEndpoints[domain.AgencyAttrs] {
	h := NewAgencyHandler(svc, logger)
	return FamilyEndpoints[domain.AgencyAttrs]{
		Create:     h.Create,
		Edit:       h.Edit,
		Moderation: NewModerationHandler(logger, svc, domain.EntityTypeAgency, viewAgencyAttrs),
		Reads:      NewReadHandler(logger, drafts, canonicals, history, snapshots, domain.EntityTypeAgency, viewAgencyAttrs),
	}
}

// AgencyHandler serves the agency draft create/edit endpoints. The
// lifecycle and read endpoints are covered by the shared handlers.
type AgencyHandler struct {
	svc agencyService
	log *slog.Logger
}

// NewAgencyHandler creates an AgencyHandler.
func NewAgencyHandler(svc agencyService, logger *slog.Logger) *AgencyHandler {
	return &AgencyHandler{svc: svc, log: logger.With("handler", "agency")}
}

type createAgencyRequest struct {
	Language    string  `json:"language"`
	AgencyID    *string `json:"agencyId,omitempty"`
	CanonicalID *string `json:"canonicalId,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	FoundedOn   *string `json:"foundedOn,omitempty"`
	Website     *string `json:"website,omitempty"`
	ImageBase64 *string `json:"imageBase64,omitempty"`
}

type editAgencyRequest struct {
	AgencyID    string  `json:"agencyId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	FoundedOn   *string `json:"foundedOn,omitempty"`
	Website     *string `json:"website,omitempty"`
	ImageBase64 *string `json:"imageBase64,omitempty"`
}

// Create handles POST /v1/agencies/drafts.
func (h *AgencyHandler) Create(w http.ResponseWriter, r *http.Request) {
	p := requirePrincipal(w, r)
	if p == nil {
		return
	}

	var req createAgencyRequest
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

	writeJSON(w, http.StatusCreated, toDraftResponse(domain.EntityTypeAgency, draft, viewAgencyAttrs))
}

// Edit handles PUT /v1/agencies/drafts/{id}.
func (h *AgencyHandler) Edit(w http.ResponseWriter, r *http.Request) {
	p := requirePrincipal(w, r)
	if p == nil {
		return
	}

	draftID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req editAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	agencyID, err := uuidField("agencyId", req.AgencyID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	foundedOn, err := optionalDate("foundedOn", req.FoundedOn)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := h.svc.Edit(r.Context(), p, agency.EditInput{
		DraftID:     draftID,
		AgencyID:    agencyID,
		Name:        req.Name,
		Description: req.Description,
		FoundedOn:   foundedOn,
		Website:     req.Website,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(domain.EntityTypeAgency, draft, viewAgencyAttrs))
}

func (req createAgencyRequest) toInput() (agency.CreateInput, error) {
	lang := domain.Language(req.Language)
	if !lang.IsValid() {
		return agency.CreateInput{}, domain.NewValidationError("language", "unsupported language")
	}
	agencyID, err := optionalUUID("agencyId", req.AgencyID)
	if err != nil {
		return agency.CreateInput{}, err
	}
	canonicalID, err := optionalUUID("canonicalId", req.CanonicalID)
	if err != nil {
		return agency.CreateInput{}, err
	}
	foundedOn, err := optionalDate("foundedOn", req.FoundedOn)
	if err != nil {
		return agency.CreateInput{}, err
	}

	return agency.CreateInput{
		Language:    lang,
		AgencyID:    agencyID,
		CanonicalID: canonicalID,
		Name:        req.Name,
		Description: req.Description,
		FoundedOn:   foundedOn,
		Website:     req.Website,
		ImageBase64: req.ImageBase64,
	}, nil
}
