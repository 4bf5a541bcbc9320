package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/evanlk/stanza"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	verbose bool
	siteCfg stanza.SiteConfig
)

var rootCmd = &cobra.Command{
	Use:   "stanza",
	Short: "stanza is a static blog generator",
	Long: `stanza compiles a directory of markdown posts with YAML front matter
into a static site: one page per post, an index, a sitemap, and an RSS feed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		// new and version run outside a site directory.
		switch cmd.Name() {
		case "new", "version":
			return nil
		}
		var err error
		siteCfg, err = stanza.LoadConfig(cfgFile)
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the stanza version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stanza %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
