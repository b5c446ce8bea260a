// storybuild converts the branching narrative documents into the story
// graph JSON the game consumes, derives the word-puzzle boards, and
// validates the result.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var log *slog.Logger

var rootCmd = &cobra.Command{
	Use:           "storybuild",
	Short:         "Build and validate the branching story dataset",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log = slog.New(slog.NewJSONHandler(os.Stderr, nil))

	rootCmd.AddCommand(buildCmd, checkCmd, patchCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
