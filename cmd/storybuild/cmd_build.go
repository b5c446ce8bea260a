package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"storybuild/internal/config"
	"storybuild/internal/graph"
	"storybuild/internal/patch"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Parse the story documents and write the graph artifact",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	builder := &graph.Builder{
		Log:         log,
		Strict:      cfg.Strict,
		PDFFallback: cfg.PDFFallbackPdftotext,
	}
	g, summary, err := builder.BuildDir(cfg.DocsDir)
	if err != nil {
		return err
	}

	if !cfg.SkipBoards {
		graph.AttachBoards(g)
	}

	if cfg.PatchPath != "" {
		patches, err := patch.Load(cfg.PatchPath)
		if err != nil {
			return err
		}
		report := patch.Apply(g, patches)
		logPatchReport(report)
	}

	bytes, err := graph.WriteFile(cfg.OutputPath, g)
	if err != nil {
		return err
	}

	log.Info("wrote story dataset",
		"path", cfg.OutputPath,
		"docs", summary.DocsParsed,
		"entries", summary.Entries,
		"bytes", bytes)

	if summary.DocsSkipped > 0 {
		for _, e := range summary.Errors {
			log.Error("document failed", "error", e)
		}
		return fmt.Errorf("%d document(s) failed to parse", summary.DocsSkipped)
	}
	return nil
}

func logPatchReport(report *patch.Report) {
	log.Info("applied patches", "count", report.Applied)
	for _, m := range report.MissingEntries {
		log.Warn("patch target missing", "entry", m)
	}
	for _, m := range report.MissingOptions {
		log.Warn("patch option missing", "option", m)
	}
	for _, m := range report.Invalid {
		log.Warn("patch invalid", "detail", m)
	}
}
