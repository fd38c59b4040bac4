package agency

import (
	"time"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 4000
	maxWebsiteLen     = 500
)

// CreateInput holds the parameters for creating an agency draft.
type CreateInput struct {
	Language    domain.Language
	AgencyID    *uuid.UUID
	CanonicalID *uuid.UUID
	Name        string
	Description *string
	FoundedOn   *time.Time
	Website     *string
	ImageBase64 *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Website != nil && len(*i.Website) > maxWebsiteLen {
		errs = append(errs, domain.FieldError{Field: "website", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateInput) attrs() domain.AgencyAttrs {
	agencyID := uuid.New()
	if i.AgencyID != nil {
		agencyID = *i.AgencyID
	}
	return domain.AgencyAttrs{
		AgencyID:    agencyID,
		Name:        i.Name,
		Description: i.Description,
		FoundedOn:   i.FoundedOn,
		Website:     i.Website,
	}
}

// EditInput holds the parameters for editing an agency draft.
type EditInput struct {
	DraftID     uuid.UUID
	AgencyID    uuid.UUID
	Name        string
	Description *string
	FoundedOn   *time.Time
	Website     *string
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
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Website != nil && len(*i.Website) > maxWebsiteLen {
		errs = append(errs, domain.FieldError{Field: "website", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i EditInput) attrs() domain.AgencyAttrs {
	return domain.AgencyAttrs{
		AgencyID:    i.AgencyID,
		Name:        i.Name,
		Description: i.Description,
		FoundedOn:   i.FoundedOn,
		Website:     i.Website,
	}
}
