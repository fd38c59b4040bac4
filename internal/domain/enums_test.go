package domain

import "testing"

func TestApprovalStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status ApprovalStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusUnderReview, true},
		{StatusApproved, true},
		{StatusRejected, true},
		{ApprovalStatus("INVALID"), false},
		{ApprovalStatus(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("ApprovalStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	valid := []Role{
		RoleNone, RoleCollaborator, RoleSeniorCollaborator,
		RoleAgencyActor, RoleGroupActor, RoleTalentActor, RoleAdministrator,
	}
	for _, r := range valid {
		if !r.IsValid() {
			t.Errorf("Role(%q).IsValid() = false, want true", r)
		}
	}
	if Role("SUPERUSER").IsValid() {
		t.Error("Role(SUPERUSER).IsValid() = true, want false")
	}
}

func TestAction_IsModeration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		action Action
		want   bool
	}{
		{ActionCreate, false},
		{ActionEdit, false},
		{ActionSubmit, false},
		{ActionApprove, true},
		{ActionReject, true},
		{ActionPublish, true},
		{ActionTranslate, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			t.Parallel()
			if got := tt.action.IsModeration(); got != tt.want {
				t.Errorf("Action(%q).IsModeration() = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

func TestEntityType_IsValid(t *testing.T) {
	t.Parallel()

	for _, e := range []EntityType{EntityTypeAgency, EntityTypeGroup, EntityTypeSong, EntityTypeTalent} {
		if !e.IsValid() {
			t.Errorf("EntityType(%q).IsValid() = false, want true", e)
		}
	}
	if EntityType("ALBUM").IsValid() {
		t.Error("EntityType(ALBUM).IsValid() = true, want false")
	}
}
