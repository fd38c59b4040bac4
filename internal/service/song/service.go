// Package song exposes the moderation use cases for the song family.
// Songs carry no image and, uniquely, publish straight from review by
// default (see config.WorkflowConfig).
package song

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// coordinator is the slice of the workflow engine this service consumes.
// Satisfied by *workflow.Coordinator[domain.SongAttrs].
type coordinator interface {
	CreateDraft(ctx context.Context, p *domain.Principal, language domain.Language, attrs domain.SongAttrs, canonicalID *uuid.UUID) (*domain.Draft[domain.SongAttrs], error)
	EditDraft(ctx context.Context, p *domain.Principal, draftID uuid.UUID, attrs domain.SongAttrs) (*domain.Draft[domain.SongAttrs], error)
	SubmitDraft(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.SongAttrs], error)
	Approve(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.SongAttrs], error)
	Reject(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.SongAttrs], error)
	Publish(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Canonical[domain.SongAttrs], error)
	TranslateAll(ctx context.Context, p *domain.Principal, canonicalID uuid.UUID) ([]*domain.Draft[domain.SongAttrs], error)
}

// Service implements the song moderation use cases.
type Service struct {
	log   *slog.Logger
	coord coordinator
}

// NewService creates a new song service.
func NewService(logger *slog.Logger, coord coordinator) *Service {
	return &Service{
		log:   logger.With("service", "song"),
		coord: coord,
	}
}

func (s *Service) Create(ctx context.Context, p *domain.Principal, input CreateInput) (*domain.Draft[domain.SongAttrs], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.coord.CreateDraft(ctx, p, input.Language, input.attrs(), input.CanonicalID)
}

func (s *Service) Edit(ctx context.Context, p *domain.Principal, input EditInput) (*domain.Draft[domain.SongAttrs], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.coord.EditDraft(ctx, p, input.DraftID, input.attrs())
}

func (s *Service) Submit(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.SongAttrs], error) {
	return s.coord.SubmitDraft(ctx, p, draftID)
}

func (s *Service) Approve(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.SongAttrs], error) {
	return s.coord.Approve(ctx, p, draftID)
}

func (s *Service) Reject(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.SongAttrs], error) {
	return s.coord.Reject(ctx, p, draftID)
}

func (s *Service) Publish(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Canonical[domain.SongAttrs], error) {
	return s.coord.Publish(ctx, p, draftID)
}

func (s *Service) Translate(ctx context.Context, p *domain.Principal, canonicalID uuid.UUID) ([]*domain.Draft[domain.SongAttrs], error) {
	return s.coord.TranslateAll(ctx, p, canonicalID)
}
