package main

import (
	"errors"
	"io"
	"testing"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2html/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseBuildFlags - Flag parsing and merge into config
// ---------------------------------------------------------------------------

func TestParseBuildFlags(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseBuildFlags([]string{
		"/blog/",
		"-c", "site",
		"--content", "./pages",
		"-o", "./public",
		"-w", "4",
		"--drafts",
		"--highlight-style", "monokai",
		"-q",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseBuildFlags() unexpected error: %v", err)
	}

	if len(positional) != 1 || positional[0] != "/blog/" {
		t.Errorf("positional = %v, want [/blog/]", positional)
	}
	if flags.common.config != "site" || !flags.common.quiet {
		t.Errorf("common = %+v", flags.common)
	}

	cfg := config.DefaultConfig()
	mergeSiteFlags(&flags.site, flags.changed, cfg)
	mergeWorkerFlags(&flags.workers, flags.changed, cfg)
	mergeHighlightFlags(&flags.highlight, flags.changed, cfg)

	if cfg.Content.Dir != "./pages" || cfg.Output.Dir != "./public" {
		t.Errorf("dirs = %q, %q", cfg.Content.Dir, cfg.Output.Dir)
	}
	if cfg.Static.Dir != config.DefaultStaticDir {
		t.Errorf("Static.Dir = %q, unset flag must keep config value", cfg.Static.Dir)
	}
	if !cfg.Content.Drafts {
		t.Error("Content.Drafts = false, want true")
	}
	if cfg.Build.Workers != 4 || cfg.Build.BlockWorkers != 0 {
		t.Errorf("Build = %+v, want workers 4", cfg.Build)
	}
	if !cfg.Highlight.Enabled || cfg.Highlight.Style != "monokai" {
		t.Errorf("Highlight = %+v, want enabled monokai", cfg.Highlight)
	}
}

func TestMergeFlags_ExplicitFalse(t *testing.T) {
	t.Parallel()

	flags, _, err := parseBuildFlags([]string{"--drafts=false", "--highlight=false", "--static", ""}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Content.Drafts = true
	cfg.Highlight.Enabled = true
	mergeSiteFlags(&flags.site, flags.changed, cfg)
	mergeHighlightFlags(&flags.highlight, flags.changed, cfg)

	if cfg.Content.Drafts {
		t.Error("--drafts=false should override config")
	}
	if cfg.Highlight.Enabled {
		t.Error("--highlight=false should override config")
	}
	if cfg.Static.Dir != "" {
		t.Errorf("--static \"\" should disable the static dir, got %q", cfg.Static.Dir)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parse   func() error
		wantErr error
	}{
		{
			name: "build help",
			parse: func() error {
				_, _, err := parseBuildFlags([]string{"-h"}, io.Discard)
				return err
			},
			wantErr: flag.ErrHelp,
		},
		{
			name: "convert help",
			parse: func() error {
				_, _, err := parseConvertFlags([]string{"--help"}, io.Discard)
				return err
			},
			wantErr: flag.ErrHelp,
		},
		{
			name: "title help",
			parse: func() error {
				_, err := parseTitleFlags([]string{"-h"}, io.Discard)
				return err
			},
			wantErr: flag.ErrHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.parse(); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseTreeFlags([]string{"--nope"}, io.Discard); err == nil {
			t.Error("expected error for unknown flag")
		}
	})
}
