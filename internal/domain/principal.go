package domain

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated actor attempting an operation. It is
// resolved once per request by the identity collaborator and is read-only
// inside the core: every use case receives it as an explicit argument.
type Principal struct {
	ID          uuid.UUID
	DisplayName string
	Role        Role
	// AgencyScope restricts an AGENCY_ACTOR to a single agency.
	AgencyScope *uuid.UUID
	// GroupScopes restrict GROUP_ACTOR and TALENT_ACTOR principals.
	GroupScopes []uuid.UUID
	// TalentScopes allow a TALENT_ACTOR a direct match on a talent target.
	TalentScopes []uuid.UUID
	CreatedAt    time.Time
}

// HasGroupScope reports whether the principal holds the given group id.
func (p *Principal) HasGroupScope(groupID uuid.UUID) bool {
	for _, id := range p.GroupScopes {
		if id == groupID {
			return true
		}
	}
	return false
}

// HasTalentScope reports whether the principal holds the given talent id.
func (p *Principal) HasTalentScope(talentID uuid.UUID) bool {
	for _, id := range p.TalentScopes {
		if id == talentID {
			return true
		}
	}
	return false
}
