package talent

import (
	"time"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

const (
	maxNameLen = 200
	maxBioLen  = 4000
)

// CreateInput holds the parameters for creating a talent draft.
type CreateInput struct {
	Language    domain.Language
	TalentID    *uuid.UUID
	GroupID     uuid.UUID
	AgencyID    uuid.UUID
	CanonicalID *uuid.UUID
	Name        string
	Birthday    *time.Time
	Bio         *string
	ImageBase64 *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
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
	if i.Bio != nil && len(*i.Bio) > maxBioLen {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateInput) attrs() domain.TalentAttrs {
	talentID := uuid.New()
	if i.TalentID != nil {
		talentID = *i.TalentID
	}
	return domain.TalentAttrs{
		TalentID: talentID,
		GroupID:  i.GroupID,
		AgencyID: i.AgencyID,
		Name:     i.Name,
		Birthday: i.Birthday,
		Bio:      i.Bio,
	}
}

// EditInput holds the parameters for editing a talent draft.
type EditInput struct {
	DraftID     uuid.UUID
	TalentID    uuid.UUID
	GroupID     uuid.UUID
	AgencyID    uuid.UUID
	Name        string
	Birthday    *time.Time
	Bio         *string
	ImageBase64 *string
}

// Validate checks all fields and collects all errors.
func (i EditInput) Validate() error {
	var errs []domain.FieldError

	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draft_id", Message: "required"})
	}
	if i.TalentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "talent_id", Message: "required"})
	}
	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
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
	if i.Bio != nil && len(*i.Bio) > maxBioLen {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i EditInput) attrs() domain.TalentAttrs {
	return domain.TalentAttrs{
		TalentID: i.TalentID,
		GroupID:  i.GroupID,
		AgencyID: i.AgencyID,
		Name:     i.Name,
		Birthday: i.Birthday,
		Bio:      i.Bio,
	}
}
