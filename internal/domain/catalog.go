package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attributes is the family-specific payload carried by canonical items,
// drafts and snapshots. Implementations are plain value structs.
type Attributes interface {
	// Scope returns the ownership identifiers used for authorization.
	Scope() TargetScope
	// SubjectName returns the display name recorded in history entries.
	SubjectName() string
}

// Canonical is a published, versioned entity. It is never deleted, only
// superseded: each publish overwrites the mutable fields and bumps Version
// by exactly one.
type Canonical[A Attributes] struct {
	ID               uuid.UUID
	TranslationSetID uuid.UUID
	Language         Language
	Version          int
	Attrs            A
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Draft is a mutable working copy of an entity awaiting moderation.
// CanonicalID is nil for a first publish, which mints a new canonical item.
type Draft[A Attributes] struct {
	ID               uuid.UUID
	CanonicalID      *uuid.UUID
	TranslationSetID uuid.UUID
	EditorID         uuid.UUID
	Language         Language
	Status           ApprovalStatus
	// MergerID and MergedAt are set when the draft is absorbed into another.
	MergerID  *uuid.UUID
	MergedAt  *time.Time
	Attrs     A
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsMerged reports whether the draft has been absorbed into another draft.
func (d *Draft[A]) IsMerged() bool {
	return d.MergedAt != nil
}
