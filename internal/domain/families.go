package domain

import (
	"time"

	"github.com/google/uuid"
)

// AgencyAttrs are the type-specific fields of an agency.
type AgencyAttrs struct {
	// AgencyID is the canonical agency this record describes. For a draft of
	// a brand-new agency it is minted at creation time so that scoped
	// authorization has a stable id before the first publish.
	AgencyID    uuid.UUID
	Name        string
	Description *string
	FoundedOn   *time.Time
	Website     *string
	ImagePath   *string
}

func (a AgencyAttrs) Scope() TargetScope {
	id := a.AgencyID
	return TargetScope{AgencyID: &id}
}

func (a AgencyAttrs) SubjectName() string { return a.Name }

// GroupAttrs are the type-specific fields of a group.
type GroupAttrs struct {
	GroupID     uuid.UUID
	AgencyID    uuid.UUID
	Name        string
	Description *string
	DebutOn     *time.Time
	ImagePath   *string
}

func (g GroupAttrs) Scope() TargetScope {
	agencyID, groupID := g.AgencyID, g.GroupID
	return TargetScope{AgencyID: &agencyID, GroupID: &groupID}
}

func (g GroupAttrs) SubjectName() string { return g.Name }

// SongAttrs are the type-specific fields of a song.
type SongAttrs struct {
	GroupID    uuid.UUID
	Title      string
	Lyricist   *string
	Composer   *string
	ReleasedOn *time.Time
}

func (s SongAttrs) Scope() TargetScope {
	groupID := s.GroupID
	return TargetScope{GroupID: &groupID}
}

func (s SongAttrs) SubjectName() string { return s.Title }

// TalentAttrs are the type-specific fields of a talent.
type TalentAttrs struct {
	TalentID  uuid.UUID
	GroupID   uuid.UUID
	AgencyID  uuid.UUID
	Name      string
	Birthday  *time.Time
	Bio       *string
	ImagePath *string
}

func (t TalentAttrs) Scope() TargetScope {
	agencyID, groupID, talentID := t.AgencyID, t.GroupID, t.TalentID
	return TargetScope{AgencyID: &agencyID, GroupID: &groupID, TalentID: &talentID}
}

func (t TalentAttrs) SubjectName() string { return t.Name }
