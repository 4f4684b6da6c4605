// Package config loads the refdocs configuration file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/refdocs/internal/docspace"
	ferrors "git.home.luguber.info/inful/refdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/refdocs/internal/navplan"
	"git.home.luguber.info/inful/refdocs/internal/pages"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "refdocs.yaml"

// Config represents the application configuration.
type Config struct {
	ProjectRoot string            `yaml:"project_root,omitempty"`
	Output      OutputConfig      `yaml:"output"`
	Site        SiteConfig        `yaml:"site"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	DefaultArgs map[string]string `yaml:"default_args,omitempty"`
	Tree        []navplan.Entry   `yaml:"tree"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	// Clean clears the doc root before a build. Nil means the default (true).
	Clean *bool `yaml:"clean,omitempty"`
}

// ShouldClean reports whether the doc root is cleared before a build.
func (o OutputConfig) ShouldClean() bool {
	return o.Clean == nil || *o.Clean
}

// SiteConfig controls page front matter.
type SiteConfig struct {
	PermalinkPrefix string `yaml:"permalink_prefix"`
	Layout          string `yaml:"layout"`
	PageIDs         bool   `yaml:"page_ids,omitempty"`
	Fingerprint     bool   `yaml:"fingerprint,omitempty"`
}

// PageOptions converts the site settings for the page renderer.
func (s SiteConfig) PageOptions() pages.Options {
	return pages.Options{
		Layout:          s.Layout,
		PermalinkPrefix: s.PermalinkPrefix,
		PageIDs:         s.PageIDs,
		Fingerprint:     s.Fingerprint,
	}
}

// CatalogConfig locates the introspected metadata.
type CatalogConfig struct {
	// Path is a YAML dump, or a SQLite catalog when it ends in .db/.sqlite/.sqlite3.
	Path string `yaml:"path"`
}

// Load loads configuration from the specified file. Environment variables
// from .env files are loaded first and ${VAR} references are expanded.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return nil, ferrors.ConfigError("configuration file not found").
			WithContext("path", configPath).
			WithCause(err).
			Build()
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}
	return Parse(data, configPath)
}

// Parse decodes configuration content and applies defaults. source names the
// origin in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
			Fatal().
			WithContext("path", source).
			Build()
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ProjectRoot == "" {
		cfg.ProjectRoot = "."
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = docspace.DefaultDir
	}
	defaults := pages.DefaultOptions()
	if cfg.Site.PermalinkPrefix == "" {
		cfg.Site.PermalinkPrefix = defaults.PermalinkPrefix
	}
	if cfg.Site.Layout == "" {
		cfg.Site.Layout = defaults.Layout
	}
	if cfg.DefaultArgs == nil {
		cfg.DefaultArgs = map[string]string{}
	}
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	clean := true
	example := Config{
		ProjectRoot: ".",
		Output:      OutputConfig{Directory: docspace.DefaultDir, Clean: &clean},
		Site: SiteConfig{
			PermalinkPrefix: "/docs",
			Layout:          "default",
			PageIDs:         true,
			Fingerprint:     true,
		},
		Catalog: CatalogConfig{Path: "metadata.yaml"},
		DefaultArgs: map[string]string{
			"name": "The name of the thing.",
		},
		Tree: []navplan.Entry{
			{
				Title:   "Cursors",
				Source:  "clearskies.cursors.Cursor",
				Builder: "clearskies_doc_builder.builders.Module",
				Classes: []string{"clearskies.cursors.Memory"},
			},
			{
				Title:   "From Environment",
				Parent:  "Cursors",
				Source:  "clearskies.cursors.from_environment.FromEnvironment",
				Builder: "clearskies_doc_builder.builders.SingleClassToSection",
			},
		},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}
	return nil
}
