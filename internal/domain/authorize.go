package domain

import "github.com/google/uuid"

// TargetScope carries the ownership identifiers of the entity an action is
// aimed at. Which fields are set depends on the entity family: an agency
// carries only its own id, a group its agency and group ids, and so on.
type TargetScope struct {
	AgencyID *uuid.UUID
	GroupID  *uuid.UUID
	TalentID *uuid.UUID
}

// Authorize decides whether the principal may perform the action on the
// target. It never mutates state; the only failure mode is ErrUnauthorized,
// which deliberately carries no detail about why the check failed.
//
// The switch is exhaustive over Role so that adding a role is a
// compile-visible change rather than a silently-denied default.
func Authorize(p *Principal, action Action, target TargetScope) error {
	switch p.Role {
	case RoleNone:
		return ErrUnauthorized

	case RoleAdministrator, RoleSeniorCollaborator:
		return nil

	case RoleCollaborator:
		// Collaborators may create and edit; moderation authority is
		// reserved to senior roles and scoped actors.
		if action.IsModeration() {
			return ErrUnauthorized
		}
		return nil

	case RoleAgencyActor:
		if p.AgencyScope != nil && target.AgencyID != nil && *p.AgencyScope == *target.AgencyID {
			return nil
		}
		return ErrUnauthorized

	case RoleGroupActor:
		if target.GroupID != nil && p.HasGroupScope(*target.GroupID) {
			return nil
		}
		return ErrUnauthorized

	case RoleTalentActor:
		// Talent actors act through their group membership, or through a
		// direct talent-scope match when the target names a talent.
		if target.GroupID != nil && p.HasGroupScope(*target.GroupID) {
			return nil
		}
		if target.TalentID != nil && p.HasTalentScope(*target.TalentID) {
			return nil
		}
		return ErrUnauthorized
	}

	return ErrUnauthorized
}
