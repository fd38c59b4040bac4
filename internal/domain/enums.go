package domain

// ApprovalStatus represents the moderation state of a draft.
type ApprovalStatus string

const (
	StatusPending     ApprovalStatus = "PENDING"
	StatusUnderReview ApprovalStatus = "UNDER_REVIEW"
	StatusApproved    ApprovalStatus = "APPROVED"
	StatusRejected    ApprovalStatus = "REJECTED"
)

func (s ApprovalStatus) String() string { return string(s) }

func (s ApprovalStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends the current moderation cycle.
// A further edit starts a fresh cycle with a new PENDING/UNDER_REVIEW draft.
func (s ApprovalStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Role represents the authorization level of a principal.
type Role string

const (
	RoleNone               Role = "NONE"
	RoleCollaborator       Role = "COLLABORATOR"
	RoleSeniorCollaborator Role = "SENIOR_COLLABORATOR"
	RoleAgencyActor        Role = "AGENCY_ACTOR"
	RoleGroupActor         Role = "GROUP_ACTOR"
	RoleTalentActor        Role = "TALENT_ACTOR"
	RoleAdministrator      Role = "ADMINISTRATOR"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleNone, RoleCollaborator, RoleSeniorCollaborator,
		RoleAgencyActor, RoleGroupActor, RoleTalentActor, RoleAdministrator:
		return true
	}
	return false
}

// Action represents a workflow operation a principal attempts on an entity.
type Action string

const (
	ActionCreate    Action = "CREATE"
	ActionEdit      Action = "EDIT"
	ActionSubmit    Action = "SUBMIT"
	ActionApprove   Action = "APPROVE"
	ActionReject    Action = "REJECT"
	ActionPublish   Action = "PUBLISH"
	ActionTranslate Action = "TRANSLATE"
)

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionEdit, ActionSubmit, ActionApprove,
		ActionReject, ActionPublish, ActionTranslate:
		return true
	}
	return false
}

// IsModeration reports whether the action exercises moderation authority.
// Moderation actions are denied to plain collaborators (see Authorize).
func (a Action) IsModeration() bool {
	switch a {
	case ActionApprove, ActionReject, ActionPublish, ActionTranslate:
		return true
	}
	return false
}

// EntityType identifies the entity family an item belongs to.
type EntityType string

const (
	EntityTypeAgency EntityType = "AGENCY"
	EntityTypeGroup  EntityType = "GROUP"
	EntityTypeSong   EntityType = "SONG"
	EntityTypeTalent EntityType = "TALENT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeAgency, EntityTypeGroup, EntityTypeSong, EntityTypeTalent:
		return true
	}
	return false
}
