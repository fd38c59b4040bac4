package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sawamura/stagepedia-backend/internal/domain"
	"github.com/sawamura/stagepedia-backend/internal/service/song"
)

// songService defines the minimal interface needed by SongHandler.
type songService interface {
	Create(ctx context.Context, p *domain.Principal, input song.CreateInput) (*domain.Draft[domain.SongAttrs], error)
	Edit(ctx context.Context, p *domain.Principal, input song.EditInput) (*domain.Draft[domain.SongAttrs], error)
}

type fullSongService interface {
	songService
	moderationService[domain.SongAttrs]
}

// NewSongEndpoints bundles every song handler for the router.
func NewSongEndpoints(
	logger *slog.Logger,
	svc fullSongService,
	drafts draftReader[domain.SongAttrs],
	canonicals canonicalReader[domain.SongAttrs],
	history historyReader,
	snapshots snapshotReader[domain.SongAttrs],
) FamilyEndpoints[domain.SongAttrs] {
	h := NewSongHandler(svc, logger)
	return FamilyEndpoints[domain.SongAttrs]{
		Create:     h.Create,
		Edit:       h.Edit,
		Moderation: NewModerationHandler(logger, svc, domain.EntityTypeSong, viewSongAttrs),
		Reads:      NewReadHandler(logger, drafts, canonicals, history, snapshots, domain.EntityTypeSong, viewSongAttrs),
	}
}

// SongHandler serves the song draft create/edit endpoints.
type SongHandler struct {
	svc songService
	log *slog.Logger
}

// NewSongHandler creates a SongHandler.
func NewSongHandler(svc songService, logger *slog.Logger) *SongHandler {
	return &SongHandler{svc: svc, log: logger.With("handler", "song")}
}

type createSongRequest struct {
	Language    string  `json:"language"`
	GroupID     string  `json:"groupId"`
	CanonicalID *string `json:"canonicalId,omitempty"`
	Title       string  `json:"title"`
	Lyricist    *string `json:"lyricist,omitempty"`
	Composer    *string `json:"composer,omitempty"`
	ReleasedOn  *string `json:"releasedOn,omitempty"`
}

type editSongRequest struct {
	GroupID    string  `json:"groupId"`
	Title      string  `json:"title"`
	Lyricist   *string `json:"lyricist,omitempty"`
	Composer   *string `json:"composer,omitempty"`
	ReleasedOn *string `json:"releasedOn,omitempty"`
}

// Create handles POST /v1/songs/drafts.
func (h *SongHandler) Create(w http.ResponseWriter, r *http.Request) {
	p := requirePrincipal(w, r)
	if p == nil {
		return
	}

	var req createSongRequest
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

	writeJSON(w, http.StatusCreated, toDraftResponse(domain.EntityTypeSong, draft, viewSongAttrs))
}

// Edit handles PUT /v1/songs/drafts/{id}.
func (h *SongHandler) Edit(w http.ResponseWriter, r *http.Request) {
	p := requirePrincipal(w, r)
	if p == nil {
		return
	}

	draftID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req editSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	groupID, err := uuidField("groupId", req.GroupID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	releasedOn, err := optionalDate("releasedOn", req.ReleasedOn)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := h.svc.Edit(r.Context(), p, song.EditInput{
		DraftID:    draftID,
		GroupID:    groupID,
		Title:      req.Title,
		Lyricist:   req.Lyricist,
		Composer:   req.Composer,
		ReleasedOn: releasedOn,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(domain.EntityTypeSong, draft, viewSongAttrs))
}

func (req createSongRequest) toInput() (song.CreateInput, error) {
	lang := domain.Language(req.Language)
	if !lang.IsValid() {
		return song.CreateInput{}, domain.NewValidationError("language", "unsupported language")
	}
	groupID, err := uuidField("groupId", req.GroupID)
	if err != nil {
		return song.CreateInput{}, err
	}
	canonicalID, err := optionalUUID("canonicalId", req.CanonicalID)
	if err != nil {
		return song.CreateInput{}, err
	}
	releasedOn, err := optionalDate("releasedOn", req.ReleasedOn)
	if err != nil {
		return song.CreateInput{}, err
	}

	return song.CreateInput{
		Language:    lang,
		GroupID:     groupID,
		CanonicalID: canonicalID,
		Title:       req.Title,
		Lyricist:    req.Lyricist,
		Composer:    req.Composer,
		ReleasedOn:  releasedOn,
	}, nil
}
