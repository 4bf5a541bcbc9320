package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/evanlk/stanza"
	"github.com/evanlk/stanza/content"
)

var serveAddr string

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Serve the site locally with drafts visible, rebuilding on change",
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			siteCfg.Addr = serveAddr
		}
		srv := stanza.NewServer(stanza.NewBuilder(siteCfg, slog.Default()))
		return srv.Serve(content.Development, true)
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Build the production site and serve the compiled output",
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			siteCfg.Addr = serveAddr
		}
		srv := stanza.NewServer(stanza.NewBuilder(siteCfg, slog.Default()))
		return srv.Serve(content.Production, false)
	},
}

func init() {
	for _, c := range []*cobra.Command{devCmd, previewCmd} {
		c.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from config)")
		rootCmd.AddCommand(c)
	}
}
