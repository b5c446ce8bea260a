package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Input/output
	DocsDir    string
	OutputPath string

	// Optional patch list applied after the build ("" disables).
	PatchPath string

	// Strict aborts the build on the first malformed document instead of
	// skipping it.
	Strict bool

	// SkipBoards leaves entries without derived puzzle boards.
	SkipBoards bool

	// MaxChapter is the story's terminal chapter; C entries at this
	// chapter may end without a decision point.
	MaxChapter int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		DocsDir:    envOr("STORYBUILD_DOCS_DIR", "docs/story-revised"),
		OutputPath: envOr("STORYBUILD_OUTPUT", "build/storyNarrative.json"),
		PatchPath:  os.Getenv("STORYBUILD_PATCHES"),
		Strict:     envBool("STORYBUILD_STRICT", false),
		SkipBoards: envBool("STORYBUILD_SKIP_BOARDS", false),
		MaxChapter: envInt("STORYBUILD_MAX_CHAPTER", 12),

		PDFFallbackPdftotext: envBool("STORYBUILD_PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxChapter <= 0 {
		cfg.MaxChapter = 12
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DocsDir == "" {
		return fmt.Errorf("STORYBUILD_DOCS_DIR is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("STORYBUILD_OUTPUT is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
