package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is one append-only entry in the moderation audit trail.
// It is written once per successful status transition and never mutated.
type HistoryRecord struct {
	ID         uuid.UUID
	EntityType EntityType
	EditorID   uuid.UUID
	// SubmitterID is set when the acting principal differs from the draft's
	// editor (delegated moderation); nil otherwise.
	SubmitterID *uuid.UUID
	// Exactly one of CanonicalID and DraftID may be nil, never both.
	CanonicalID *uuid.UUID
	DraftID     *uuid.UUID
	FromStatus  *ApprovalStatus
	ToStatus    ApprovalStatus
	// SubjectName snapshots the entity name at transition time so the audit
	// trail stays readable after the subject is renamed.
	SubjectName string
	CreatedAt   time.Time
}

// NewHistoryRecord builds a HistoryRecord, enforcing the subject invariant:
// at least one of canonicalID and draftID must be present. Violating it is
// a caller bug, reported as a validation error.
func NewHistoryRecord(
	entityType EntityType,
	editorID uuid.UUID,
	submitterID, canonicalID, draftID *uuid.UUID,
	fromStatus *ApprovalStatus,
	toStatus ApprovalStatus,
	subjectName string,
	now time.Time,
) (HistoryRecord, error) {
	if canonicalID == nil && draftID == nil {
		return HistoryRecord{}, NewValidationError("subject", "history record needs a canonical or draft subject")
	}
	if !toStatus.IsValid() {
		return HistoryRecord{}, NewValidationError("to_status", "invalid status: "+toStatus.String())
	}

	return HistoryRecord{
		ID:          uuid.New(),
		EntityType:  entityType,
		EditorID:    editorID,
		SubmitterID: submitterID,
		CanonicalID: canonicalID,
		DraftID:     draftID,
		FromStatus:  fromStatus,
		ToStatus:    toStatus,
		SubjectName: subjectName,
		CreatedAt:   now,
	}, nil
}
