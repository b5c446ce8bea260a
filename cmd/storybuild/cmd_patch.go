package main

import (
	"github.com/spf13/cobra"

	"storybuild/internal/config"
	"storybuild/internal/graph"
	"storybuild/internal/patch"
)

var patchCmd = &cobra.Command{
	Use:   "patch <patchfile> [artifact]",
	Short: "Apply a patch list to an existing artifact and rewrite it",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runPatch,
}

func runPatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	artifactPath := cfg.OutputPath
	if len(args) == 2 {
		artifactPath = args[1]
	}

	g, err := graph.ReadFile(artifactPath)
	if err != nil {
		return err
	}
	patches, err := patch.Load(args[0])
	if err != nil {
		return err
	}

	report := patch.Apply(g, patches)
	logPatchReport(report)

	bytes, err := graph.WriteFile(artifactPath, g)
	if err != nil {
		return err
	}
	log.Info("rewrote artifact", "path", artifactPath, "bytes", bytes)
	return nil
}
