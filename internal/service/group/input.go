package group

import (
	"time"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 4000
)

// CreateInput holds the parameters for creating a group draft.
// GroupID nil mints a brand-new group identity; CanonicalID set makes the
// draft an edit of a published group.
type CreateInput struct {
	Language    domain.Language
	AgencyID    uuid.UUID
	GroupID     *uuid.UUID
	CanonicalID *uuid.UUID
	Name        string
	Description *string
	DebutOn     *time.Time
	ImageBase64 *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.AgencyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agency_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateInput) attrs() domain.GroupAttrs {
	groupID := uuid.New()
	if i.GroupID != nil {
		groupID = *i.GroupID
	}
	return domain.GroupAttrs{
		GroupID:     groupID,
		AgencyID:    i.AgencyID,
		Name:        i.Name,
		Description: i.Description,
		DebutOn:     i.DebutOn,
	}
}

// EditInput holds the parameters for editing a group draft.
type EditInput struct {
	DraftID     uuid.UUID
	AgencyID    uuid.UUID
	GroupID     uuid.UUID
	Name        string
	Description *string
	DebutOn     *time.Time
	ImageBase64 *string
}

// Validate checks all fields and collects all errors.
func (i EditInput) Validate() error {
	var errs []domain.FieldError

	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draft_id", Message: "required"})
	}
	if i.AgencyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agency_id", Message: "required"})
	}
	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i EditInput) attrs() domain.GroupAttrs {
	return domain.GroupAttrs{
		GroupID:     i.GroupID,
		AgencyID:    i.AgencyID,
		Name:        i.Name,
		Description: i.Description,
		DebutOn:     i.DebutOn,
	}
}
