package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Workflow   WorkflowConfig   `yaml:"workflow"`
	Translator TranslatorConfig `yaml:"translator"`
	Images     ImagesConfig     `yaml:"images"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Principal-ID"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// CatalogConfig holds catalog-wide settings.
type CatalogConfig struct {
	// LanguagesRaw is a comma-separated list of catalog language codes.
	// It is parsed into Languages during validation.
	LanguagesRaw string `yaml:"languages" env:"CATALOG_LANGUAGES" env-default:"ja,en,ko"`

	Languages []string `yaml:"-" env:"-"`
}

// WorkflowConfig fixes the draft status each entity family requires before
// publishing. Families genuinely differ here, so this is configuration
// rather than a universal rule.
type WorkflowConfig struct {
	AgencyPublishRequires string `yaml:"agency_publish_requires" env:"WORKFLOW_AGENCY_PUBLISH_REQUIRES" env-default:"APPROVED"`
	GroupPublishRequires  string `yaml:"group_publish_requires"  env:"WORKFLOW_GROUP_PUBLISH_REQUIRES"  env-default:"APPROVED"`
	SongPublishRequires   string `yaml:"song_publish_requires"   env:"WORKFLOW_SONG_PUBLISH_REQUIRES"   env-default:"UNDER_REVIEW"`
	TalentPublishRequires string `yaml:"talent_publish_requires" env:"WORKFLOW_TALENT_PUBLISH_REQUIRES" env-default:"APPROVED"`
}

// TranslatorConfig holds machine-translation service settings.
type TranslatorConfig struct {
	BaseURL string        `yaml:"base_url" env:"TRANSLATOR_BASE_URL"`
	APIKey  string        `yaml:"api_key"  env:"TRANSLATOR_API_KEY"`
	Timeout time.Duration `yaml:"timeout"  env:"TRANSLATOR_TIMEOUT" env-default:"10s"`
}

// ImagesConfig holds image storage settings.
type ImagesConfig struct {
	Dir      string `yaml:"dir"       env:"IMAGES_DIR"       env-default:"./data/images"`
	MaxBytes int64  `yaml:"max_bytes" env:"IMAGES_MAX_BYTES" env-default:"5242880"`
}
