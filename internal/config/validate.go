package config

import (
	"fmt"
	"strings"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if err := c.Workflow.validate(); err != nil {
		return fmt.Errorf("workflow: %w", err)
	}
	if c.Images.MaxBytes <= 0 {
		return fmt.Errorf("images.max_bytes must be > 0 (got %d)", c.Images.MaxBytes)
	}
	return nil
}

func (c *CatalogConfig) validate() error {
	parts := strings.Split(c.LanguagesRaw, ",")
	langs := make([]string, 0, len(parts))
	for _, part := range parts {
		code := strings.TrimSpace(strings.ToLower(part))
		if code == "" {
			continue
		}
		if !domain.Language(code).IsValid() {
			return fmt.Errorf("unknown language %q", code)
		}
		langs = append(langs, code)
	}
	if len(langs) < 2 {
		return fmt.Errorf("at least two languages required (got %d)", len(langs))
	}
	c.Languages = langs
	return nil
}

func (w *WorkflowConfig) validate() error {
	for field, raw := range map[string]string{
		"agency_publish_requires": w.AgencyPublishRequires,
		"group_publish_requires":  w.GroupPublishRequires,
		"song_publish_requires":   w.SongPublishRequires,
		"talent_publish_requires": w.TalentPublishRequires,
	} {
		status := domain.ApprovalStatus(raw)
		if status != domain.StatusApproved && status != domain.StatusUnderReview {
			return fmt.Errorf("%s must be APPROVED or UNDER_REVIEW (got %q)", field, raw)
		}
	}
	return nil
}

// CatalogLanguages returns the configured languages in fixed ordinal order.
func (c *Config) CatalogLanguages() []domain.Language {
	langs := make([]domain.Language, 0, len(c.Catalog.Languages))
	for _, code := range c.Catalog.Languages {
		langs = append(langs, domain.Language(code))
	}
	domain.SortLanguages(langs)
	return langs
}

// PublishRequires returns the configured publish precondition for a family.
func (c *Config) PublishRequires(entityType domain.EntityType) domain.ApprovalStatus {
	switch entityType {
	case domain.EntityTypeAgency:
		return domain.ApprovalStatus(c.Workflow.AgencyPublishRequires)
	case domain.EntityTypeGroup:
		return domain.ApprovalStatus(c.Workflow.GroupPublishRequires)
	case domain.EntityTypeSong:
		return domain.ApprovalStatus(c.Workflow.SongPublishRequires)
	case domain.EntityTypeTalent:
		return domain.ApprovalStatus(c.Workflow.TalentPublishRequires)
	}
	return domain.StatusApproved
}
