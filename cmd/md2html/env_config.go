package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG: config file name or path
	BasePath   string // MD2HTML_BASE_PATH: site base path
	ContentDir string // MD2HTML_CONTENT_DIR: markdown source directory
	OutputDir  string // MD2HTML_OUTPUT_DIR: generated site directory
	Workers    int    // MD2HTML_WORKERS: pages rendered in parallel
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":      true,
	"MD2HTML_BASE_PATH":   true,
	"MD2HTML_CONTENT_DIR": true,
	"MD2HTML_OUTPUT_DIR":  true,
	"MD2HTML_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2HTML_CONFIG"),
		BasePath:   os.Getenv("MD2HTML_BASE_PATH"),
		ContentDir: os.Getenv("MD2HTML_CONTENT_DIR"),
		OutputDir:  os.Getenv("MD2HTML_OUTPUT_DIR"),
	}

	// Invalid or non-positive values are ignored
	if workers := os.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
// Helps catch typos like MD2HTML_OUTPUT instead of MD2HTML_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2HTML_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment variables over the loaded config.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.BasePath != "" {
		cfg.Site.BasePath = env.BasePath
	}
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}

// loadConfig loads the config named by the flag, else by MD2HTML_CONFIG,
// else returns defaults. Environment overrides are applied in every case.
func loadConfig(flagConfig string) (*config.Config, error) {
	env := loadEnvConfig()

	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if errors.Is(err, config.ErrConfigNotFound) {
			var searched []string
			if !strings.ContainsAny(name, `/\`) {
				searched = config.SearchPaths(name)
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}
