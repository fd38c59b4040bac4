package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

func validConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{LanguagesRaw: "ja,en,ko"},
		Workflow: WorkflowConfig{
			AgencyPublishRequires: "APPROVED",
			GroupPublishRequires:  "APPROVED",
			SongPublishRequires:   "UNDER_REVIEW",
			TalentPublishRequires: "APPROVED",
		},
		Images: ImagesConfig{MaxBytes: 1024},
	}
}

func TestConfig_Validate_OK(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"ja", "en", "ko"}, cfg.Catalog.Languages)
}

func TestConfig_Validate_LanguageParsing(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Catalog.LanguagesRaw = " EN , ja "
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"en", "ja"}, cfg.Catalog.Languages)
}

func TestConfig_Validate_UnknownLanguage(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Catalog.LanguagesRaw = "ja,xx"
	require.Error(t, cfg.Validate())
}

func TestConfig_Validate_TooFewLanguages(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Catalog.LanguagesRaw = "ja"
	require.Error(t, cfg.Validate())
}

func TestConfig_Validate_BadPublishPrecondition(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Workflow.SongPublishRequires = "PENDING"
	require.Error(t, cfg.Validate())
}

func TestConfig_CatalogLanguages_OrdinalOrder(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Catalog.LanguagesRaw = "ko,en,ja"
	require.NoError(t, cfg.Validate())

	langs := cfg.CatalogLanguages()
	assert.Equal(t, []domain.Language{domain.LanguageJA, domain.LanguageEN, domain.LanguageKO}, langs)
}

func TestConfig_PublishRequires(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, domain.StatusApproved, cfg.PublishRequires(domain.EntityTypeAgency))
	assert.Equal(t, domain.StatusApproved, cfg.PublishRequires(domain.EntityTypeGroup))
	assert.Equal(t, domain.StatusUnderReview, cfg.PublishRequires(domain.EntityTypeSong))
	assert.Equal(t, domain.StatusApproved, cfg.PublishRequires(domain.EntityTypeTalent))
}
