package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/evanlk/stanza"
	"github.com/evanlk/stanza/content"
)

var withDrafts bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the site into the output directory",
	Long: `build loads every post from the content directory, validates its front
matter, and writes the compiled site to the output directory. Any invalid
content file fails the whole build with a non-zero exit code; all invalid
files are reported at once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := content.Production
		if withDrafts {
			mode = content.Development
		}
		return stanza.NewBuilder(siteCfg, slog.Default()).Build(mode)
	},
}

func init() {
	buildCmd.Flags().BoolVar(&withDrafts, "drafts", false, "include draft posts in the output")
	rootCmd.AddCommand(buildCmd)
}
