package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// Wire shapes shared by every family. Attributes carries the
// family-specific payload rendered by the family's attrsView function.

type draftResponse struct {
	ID               uuid.UUID  `json:"id"`
	EntityType       string     `json:"entityType"`
	TranslationSetID uuid.UUID  `json:"translationSetId"`
	CanonicalID      *uuid.UUID `json:"canonicalId,omitempty"`
	EditorID         uuid.UUID  `json:"editorId"`
	Language         string     `json:"language"`
	Status           string     `json:"status"`
	MergerID         *uuid.UUID `json:"mergerId,omitempty"`
	MergedAt         *time.Time `json:"mergedAt,omitempty"`
	Attributes       any        `json:"attributes"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type canonicalResponse struct {
	ID               uuid.UUID `json:"id"`
	EntityType       string    `json:"entityType"`
	TranslationSetID uuid.UUID `json:"translationSetId"`
	Language         string    `json:"language"`
	Version          int       `json:"version"`
	Attributes       any       `json:"attributes"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type snapshotResponse struct {
	CanonicalID      uuid.UUID `json:"canonicalId"`
	Version          int       `json:"version"`
	TranslationSetID uuid.UUID `json:"translationSetId"`
	Language         string    `json:"language"`
	Attributes       any       `json:"attributes"`
	CreatedAt        time.Time `json:"createdAt"`
}

type historyResponse struct {
	ID          uuid.UUID  `json:"id"`
	EntityType  string     `json:"entityType"`
	EditorID    uuid.UUID  `json:"editorId"`
	SubmitterID *uuid.UUID `json:"submitterId,omitempty"`
	CanonicalID *uuid.UUID `json:"canonicalId,omitempty"`
	DraftID     *uuid.UUID `json:"draftId,omitempty"`
	FromStatus  *string    `json:"fromStatus,omitempty"`
	ToStatus    string     `json:"toStatus"`
	SubjectName string     `json:"subjectName"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toDraftResponse[A domain.Attributes](entityType domain.EntityType, d *domain.Draft[A], attrs func(A) any) draftResponse {
	return draftResponse{
		ID:               d.ID,
		EntityType:       entityType.String(),
		TranslationSetID: d.TranslationSetID,
		CanonicalID:      d.CanonicalID,
		EditorID:         d.EditorID,
		Language:         d.Language.String(),
		Status:           d.Status.String(),
		MergerID:         d.MergerID,
		MergedAt:         d.MergedAt,
		Attributes:       attrs(d.Attrs),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toDraftResponses[A domain.Attributes](entityType domain.EntityType, drafts []*domain.Draft[A], attrs func(A) any) []draftResponse {
	out := make([]draftResponse, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, toDraftResponse(entityType, d, attrs))
	}
	return out
}

func toCanonicalResponse[A domain.Attributes](entityType domain.EntityType, c *domain.Canonical[A], attrs func(A) any) canonicalResponse {
	return canonicalResponse{
		ID:               c.ID,
		EntityType:       entityType.String(),
		TranslationSetID: c.TranslationSetID,
		Language:         c.Language.String(),
		Version:          c.Version,
		Attributes:       attrs(c.Attrs),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func toSnapshotResponse[A domain.Attributes](s domain.Snapshot[A], attrs func(A) any) snapshotResponse {
	return snapshotResponse{
		CanonicalID:      s.CanonicalID,
		Version:          s.Version,
		TranslationSetID: s.TranslationSetID,
		Language:         s.Language.String(),
		Attributes:       attrs(s.Attrs),
		CreatedAt:        s.CreatedAt,
	}
}

func toHistoryResponse(rec domain.HistoryRecord) historyResponse {
	var from *string
	if rec.FromStatus != nil {
		s := rec.FromStatus.String()
		from = &s
	}
	return historyResponse{
		ID:          rec.ID,
		EntityType:  rec.EntityType.String(),
		EditorID:    rec.EditorID,
		SubmitterID: rec.SubmitterID,
		CanonicalID: rec.CanonicalID,
		DraftID:     rec.DraftID,
		FromStatus:  from,
		ToStatus:    rec.ToStatus.String(),
		SubjectName: rec.SubjectName,
		CreatedAt:   rec.CreatedAt,
	}
}

// Family attribute views. Identity fields travel alongside the display
// fields so clients can follow ownership without extra lookups.

type agencyAttrsView struct {
	AgencyID    uuid.UUID  `json:"agencyId"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	FoundedOn   *time.Time `json:"foundedOn,omitempty"`
	Website     *string    `json:"website,omitempty"`
	ImagePath   *string    `json:"imagePath,omitempty"`
}

func viewAgencyAttrs(a domain.AgencyAttrs) any {
	return agencyAttrsView{
		AgencyID:    a.AgencyID,
		Name:        a.Name,
		Description: a.Description,
		FoundedOn:   a.FoundedOn,
		Website:     a.Website,
		ImagePath:   a.ImagePath,
	}
}

type groupAttrsView struct {
	GroupID     uuid.UUID  `json:"groupId"`
	AgencyID    uuid.UUID  `json:"agencyId"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	DebutOn     *time.Time `json:"debutOn,omitempty"`
	ImagePath   *string    `json:"imagePath,omitempty"`
}

func viewGroupAttrs(g domain.GroupAttrs) any {
	return groupAttrsView{
		GroupID:     g.GroupID,
		AgencyID:    g.AgencyID,
		Name:        g.Name,
		Description: g.Description,
		DebutOn:     g.DebutOn,
		ImagePath:   g.ImagePath,
	}
}

type songAttrsView struct {
	GroupID    uuid.UUID  `json:"groupId"`
	Title      string     `json:"title"`
	Lyricist   *string    `json:"lyricist,omitempty"`
	Composer   *string    `json:"composer,omitempty"`
	ReleasedOn *time.Time `json:"releasedOn,omitempty"`
}

func viewSongAttrs(s domain.SongAttrs) any {
	return songAttrsView{
		GroupID:    s.GroupID,
		Title:      s.Title,
		Lyricist:   s.Lyricist,
		Composer:   s.Composer,
		ReleasedOn: s.ReleasedOn,
	}
}

type talentAttrsView struct {
	TalentID  uuid.UUID  `json:"talentId"`
	GroupID   uuid.UUID  `json:"groupId"`
	AgencyID  uuid.UUID  `json:"agencyId"`
	Name      string     `json:"name"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Bio       *string    `json:"bio,omitempty"`
	ImagePath *string    `json:"imagePath,omitempty"`
}

func viewTalentAttrs(t domain.TalentAttrs) any {
	return talentAttrsView{
		TalentID:  t.TalentID,
		GroupID:   t.GroupID,
		AgencyID:  t.AgencyID,
		Name:      t.Name,
		Birthday:  t.Birthday,
		Bio:       t.Bio,
		ImagePath: t.ImagePath,
	}
}
