package rest

import (
	"net/http"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// FamilyEndpoints bundles everything one entity family exposes over HTTP.
type FamilyEndpoints[A domain.Attributes] struct {
	Create     http.HandlerFunc
	Edit       http.HandlerFunc
	Moderation *ModerationHandler[A]
	Reads      *ReadHandler[A]
}

// Handlers collects the handlers wired into the router.
type Handlers struct {
	Health   *HealthHandler
	Agencies FamilyEndpoints[domain.AgencyAttrs]
	Groups   FamilyEndpoints[domain.GroupAttrs]
	Songs    FamilyEndpoints[domain.SongAttrs]
	Talents  FamilyEndpoints[domain.TalentAttrs]
}

// NewRouter builds the HTTP route table. Middleware is applied by the
// caller around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	registerFamily(mux, "/v1/agencies", h.Agencies)
	registerFamily(mux, "/v1/groups", h.Groups)
	registerFamily(mux, "/v1/songs", h.Songs)
	registerFamily(mux, "/v1/talents", h.Talents)

	return mux
}

func registerFamily[A domain.Attributes](mux *http.ServeMux, base string, eps FamilyEndpoints[A]) {
	mux.HandleFunc("POST "+base+"/drafts", eps.Create)
	mux.HandleFunc("GET "+base+"/drafts", eps.Reads.ListDrafts)
	mux.HandleFunc("GET "+base+"/drafts/{id}", eps.Reads.GetDraft)
	mux.HandleFunc("PUT "+base+"/drafts/{id}", eps.Edit)
	mux.HandleFunc("GET "+base+"/drafts/{id}/history", eps.Reads.DraftHistory)

	mux.HandleFunc("POST "+base+"/drafts/{id}/submit", eps.Moderation.Submit)
	mux.HandleFunc("POST "+base+"/drafts/{id}/approve", eps.Moderation.Approve)
	mux.HandleFunc("POST "+base+"/drafts/{id}/reject", eps.Moderation.Reject)
	mux.HandleFunc("POST "+base+"/drafts/{id}/publish", eps.Moderation.Publish)

	mux.HandleFunc("GET "+base+"/items", eps.Reads.ListItems)
	mux.HandleFunc("GET "+base+"/items/{id}", eps.Reads.GetItem)
	mux.HandleFunc("GET "+base+"/items/{id}/translations", eps.Reads.ListTranslations)
	mux.HandleFunc("POST "+base+"/items/{id}/translate", eps.Moderation.Translate)
	mux.HandleFunc("GET "+base+"/items/{id}/history", eps.Reads.ItemHistory)
	mux.HandleFunc("GET "+base+"/items/{id}/snapshots", eps.Reads.ListSnapshots)
	mux.HandleFunc("GET "+base+"/items/{id}/snapshots/{version}", eps.Reads.GetSnapshot)
}
