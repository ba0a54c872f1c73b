package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidBasePath = errors.New("invalid base path")
	ErrInvalidWorkers  = errors.New("invalid worker count")
	ErrEmptyField      = errors.New("required field is empty")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxBasePathLength = 2048 // Browser URL limit
	MaxStyleLength    = 50   // Chroma style name
	MaxLanguageLength = 50   // Chroma lexer name
	MaxWorkers        = 32   // Matches md2html.MaxWorkers
)

// Defaults mirror the layout of a content/static/template site.
const (
	DefaultBasePath   = "/"
	DefaultContentDir = "./content"
	DefaultStaticDir  = "./static"
	DefaultOutputDir  = "./docs"
	DefaultTemplate   = "./template.html"
	DefaultStyle      = "github"
)

// appName names the user config directory.
const appName = "go-md2html"

// Config holds all configuration for site generation.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Content   ContentConfig   `yaml:"content"`
	Static    StaticConfig    `yaml:"static"`
	Output    OutputConfig    `yaml:"output"`
	Build     BuildConfig     `yaml:"build"`
	Highlight HighlightConfig `yaml:"highlight"`
}

// SiteConfig defines how pages are wrapped and linked.
type SiteConfig struct {
	BasePath string `yaml:"basePath"` // Prefix for root-relative href/src, must start and end with "/"
	Template string `yaml:"template"` // Page template path (empty = embedded default)
}

// ContentConfig defines the markdown source tree.
type ContentConfig struct {
	Dir    string `yaml:"dir"`
	Drafts bool   `yaml:"drafts"` // Render pages marked draft: true
}

// StaticConfig defines the asset directory copied verbatim.
type StaticConfig struct {
	Dir string `yaml:"dir"` // Missing directory = nothing to copy
}

// OutputConfig defines the generated site directory.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Removed and recreated on every build
}

// BuildConfig defines concurrency.
type BuildConfig struct {
	Workers      int `yaml:"workers"`      // Pages rendered in parallel (0 = auto)
	BlockWorkers int `yaml:"blockWorkers"` // Blocks built in parallel per page (0 or 1 = sequential)
}

// HighlightConfig defines syntax highlighting of fenced code blocks.
type HighlightConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Style    string `yaml:"style"`    // Chroma style name (default: "github")
	Language string `yaml:"language"` // Lexer name (empty = detect from content)
}

// Validate checks paths, base path shape, and worker bounds.
// Called automatically by LoadConfig, but available for callers
// who construct or modify a Config manually (e.g., after merging CLI flags).
func (c *Config) Validate() error {
	if err := ValidateBasePath(c.Site.BasePath); err != nil {
		return err
	}

	paths := []struct {
		name     string
		value    string
		required bool
	}{
		{"site.template", c.Site.Template, false},
		{"content.dir", c.Content.Dir, true},
		{"static.dir", c.Static.Dir, false},
		{"output.dir", c.Output.Dir, true},
	}
	for _, p := range paths {
		if p.required && strings.TrimSpace(p.value) == "" {
			return fmt.Errorf("%w: %s", ErrEmptyField, p.name)
		}
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateWorkers("build.workers", c.Build.Workers); err != nil {
		return err
	}
	if err := validateWorkers("build.blockWorkers", c.Build.BlockWorkers); err != nil {
		return err
	}

	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.language", c.Highlight.Language, MaxLanguageLength); err != nil {
		return err
	}

	return nil
}

// ValidateBasePath checks that a base path is absolute and ends with a slash,
// so "/" + page path and basePath + page path both stay well formed.
func ValidateBasePath(basePath string) error {
	if err := validateFieldLength("site.basePath", basePath, MaxBasePathLength); err != nil {
		return err
	}
	if !strings.HasPrefix(basePath, "/") || !strings.HasSuffix(basePath, "/") {
		return fmt.Errorf("%w: %q (must start and end with \"/\")", ErrInvalidBasePath, basePath)
	}
	if strings.HasPrefix(basePath, "//") {
		return fmt.Errorf("%w: %q (protocol-relative paths are not allowed)", ErrInvalidBasePath, basePath)
	}
	return nil
}

func validateWorkers(name string, n int) error {
	if n < 0 || n > MaxWorkers {
		return fmt.Errorf("%w: %s = %d (must be 0-%d)", ErrInvalidWorkers, name, n, MaxWorkers)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the conventional site layout with highlighting off.
func DefaultConfig() *Config {
	return &Config{
		Site:      SiteConfig{BasePath: DefaultBasePath, Template: DefaultTemplate},
		Content:   ContentConfig{Dir: DefaultContentDir},
		Static:    StaticConfig{Dir: DefaultStaticDir},
		Output:    OutputConfig{Dir: DefaultOutputDir},
		Highlight: HighlightConfig{Style: DefaultStyle},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists where a config name is looked up, in order:
// current directory then ~/.config/go-md2html/, each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
