package song

import (
	"time"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

const (
	maxTitleLen  = 300
	maxCreditLen = 200
)

// CreateInput holds the parameters for creating a song draft.
type CreateInput struct {
	Language    domain.Language
	GroupID     uuid.UUID
	CanonicalID *uuid.UUID
	Title       string
	Lyricist    *string
	Composer    *string
	ReleasedOn  *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Lyricist != nil && len(*i.Lyricist) > maxCreditLen {
		errs = append(errs, domain.FieldError{Field: "lyricist", Message: "too long"})
	}
	if i.Composer != nil && len(*i.Composer) > maxCreditLen {
		errs = append(errs, domain.FieldError{Field: "composer", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateInput) attrs() domain.SongAttrs {
	return domain.SongAttrs{
		GroupID:    i.GroupID,
		Title:      i.Title,
		Lyricist:   i.Lyricist,
		Composer:   i.Composer,
		ReleasedOn: i.ReleasedOn,
	}
}

// EditInput holds the parameters for editing a song draft.
type EditInput struct {
	DraftID    uuid.UUID
	GroupID    uuid.UUID
	Title      string
	Lyricist   *string
	Composer   *string
	ReleasedOn *time.Time
}

// Validate checks all fields and collects all errors.
func (i EditInput) Validate() error {
	var errs []domain.FieldError

	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draft_id", Message: "required"})
	}
	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i EditInput) attrs() domain.SongAttrs {
	return domain.SongAttrs{
		GroupID:    i.GroupID,
		Title:      i.Title,
		Lyricist:   i.Lyricist,
		Composer:   i.Composer,
		ReleasedOn: i.ReleasedOn,
	}
}
