// Package agency exposes the moderation use cases for the agency family.
package agency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

type imageStore interface {
	Upload(ctx context.Context, encoded string) (string, error)
}

// coordinator is the slice of the workflow engine this service consumes.
// Satisfied by *workflow.Coordinator[domain.AgencyAttrs].
type coordinator interface {
	CreateDraft(ctx context.Context, p *domain.Principal, language domain.Language, attrs domain.AgencyAttrs, canonicalID *uuid.UUID) (*domain.Draft[domain.AgencyAttrs], error)
	EditDraft(ctx context.Context, p *domain.Principal, draftID uuid.UUID, attrs domain.AgencyAttrs) (*domain.Draft[domain.AgencyAttrs], error)
	SubmitDraft(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.AgencyAttrs], error)
	Approve(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.AgencyAttrs], error)
	Reject(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.AgencyAttrs], error)
	Publish(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Canonical[domain.AgencyAttrs], error)
	TranslateAll(ctx context.Context, p *domain.Principal, canonicalID uuid.UUID) ([]*domain.Draft[domain.AgencyAttrs], error)
}

// Service implements the agency moderation use cases.
type Service struct {
	log    *slog.Logger
	coord  coordinator
	images imageStore
}

// NewService creates a new agency service.
func NewService(logger *slog.Logger, coord coordinator, images imageStore) *Service {
	return &Service{
		log:    logger.With("service", "agency"),
		coord:  coord,
		images: images,
	}
}

func (s *Service) Create(ctx context.Context, p *domain.Principal, input CreateInput) (*domain.Draft[domain.AgencyAttrs], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	attrs := input.attrs()

	if err := domain.Authorize(p, domain.ActionCreate, attrs.Scope()); err != nil {
		return nil, err
	}

	if input.ImageBase64 != nil {
		path, err := s.images.Upload(ctx, *input.ImageBase64)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		attrs.ImagePath = &path
	}

	return s.coord.CreateDraft(ctx, p, input.Language, attrs, input.CanonicalID)
}

func (s *Service) Edit(ctx context.Context, p *domain.Principal, input EditInput) (*domain.Draft[domain.AgencyAttrs], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	attrs := input.attrs()

	if err := domain.Authorize(p, domain.ActionEdit, attrs.Scope()); err != nil {
		return nil, err
	}

	if input.ImageBase64 != nil {
		path, err := s.images.Upload(ctx, *input.ImageBase64)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		attrs.ImagePath = &path
	}

	return s.coord.EditDraft(ctx, p, input.DraftID, attrs)
}

func (s *Service) Submit(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.AgencyAttrs], error) {
	return s.coord.SubmitDraft(ctx, p, draftID)
}

func (s *Service) Approve(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.AgencyAttrs], error) {
	return s.coord.Approve(ctx, p, draftID)
}

func (s *Service) Reject(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.AgencyAttrs], error) {
	return s.coord.Reject(ctx, p, draftID)
}

func (s *Service) Publish(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Canonical[domain.AgencyAttrs], error) {
	return s.coord.Publish(ctx, p, draftID)
}

func (s *Service) Translate(ctx context.Context, p *domain.Principal, canonicalID uuid.UUID) ([]*domain.Draft[domain.AgencyAttrs], error) {
	return s.coord.TranslateAll(ctx, p, canonicalID)
}
