// Package group exposes the moderation use cases for the group family.
// All lifecycle rules live in the shared workflow engine; this package adds
// input validation, image handling and the family's attribute mapping.
package group

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
// Satisfied by *workflow.Coordinator[domain.GroupAttrs].
type coordinator interface {
	CreateDraft(ctx context.Context, p *domain.Principal, language domain.Language, attrs domain.GroupAttrs, canonicalID *uuid.UUID) (*domain.Draft[domain.GroupAttrs], error)
	EditDraft(ctx context.Context, p *domain.Principal, draftID uuid.UUID, attrs domain.GroupAttrs) (*domain.Draft[domain.GroupAttrs], error)
	SubmitDraft(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.GroupAttrs], error)
	Approve(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.GroupAttrs], error)
	Reject(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.GroupAttrs], error)
	Publish(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Canonical[domain.GroupAttrs], error)
	TranslateAll(ctx context.Context, p *domain.Principal, canonicalID uuid.UUID) ([]*domain.Draft[domain.GroupAttrs], error)
}

// Service implements the group moderation use cases.
type Service struct {
	log    *slog.Logger
	coord  coordinator
	images imageStore
}

// NewService creates a new group service.
func NewService(logger *slog.Logger, coord coordinator, images imageStore) *Service {
	return &Service{
		log:    logger.With("service", "group"),
		coord:  coord,
		images: images,
	}
}

// Create starts a new moderation cycle for a group.
func (s *Service) Create(ctx context.Context, p *domain.Principal, input CreateInput) (*domain.Draft[domain.GroupAttrs], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	attrs := input.attrs()

	// Fail the authorization check before the image side effect.
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

// Edit applies field changes to an existing group draft.
func (s *Service) Edit(ctx context.Context, p *domain.Principal, input EditInput) (*domain.Draft[domain.GroupAttrs], error) {
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

// Submit moves a pending group draft into review.
func (s *Service) Submit(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.GroupAttrs], error) {
	return s.coord.SubmitDraft(ctx, p, draftID)
}

// Approve approves a group draft under review.
func (s *Service) Approve(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.GroupAttrs], error) {
	return s.coord.Approve(ctx, p, draftID)
}

// Reject rejects a group draft under review.
func (s *Service) Reject(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Draft[domain.GroupAttrs], error) {
	return s.coord.Reject(ctx, p, draftID)
}

// Publish folds a group draft into the published catalog.
func (s *Service) Publish(ctx context.Context, p *domain.Principal, draftID uuid.UUID) (*domain.Canonical[domain.GroupAttrs], error) {
	return s.coord.Publish(ctx, p, draftID)
}

// Translate fans a published group out into sibling-language drafts.
func (s *Service) Translate(ctx context.Context, p *domain.Principal, canonicalID uuid.UUID) ([]*domain.Draft[domain.GroupAttrs], error) {
	return s.coord.TranslateAll(ctx, p, canonicalID)
}
