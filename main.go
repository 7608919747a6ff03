package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/nbc/cmd"
	"github.com/mattsolo1/nbc/cmd/config"
	"github.com/mattsolo1/nbc/pkg/service"
)

var svc *service.Service

func main() {
	rootCmd := &cobra.Command{
		Use:   "nbc",
		Short: "Contextual completion engine for markdown notes",
		Long: `nbc indexes a collection of markdown notes and answers contextual
completion queries against them: natural-language dates, hierarchical
tags and cross-note wikilinks.`,
		SilenceUsage: true,
	}
	config.RegisterFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		// This runs once before any subcommand
		config.InitConfig()

		var err error
		svc, err = config.InitService()
		if err != nil {
			return fmt.Errorf("failed to initialize service: %w", err)
		}
		return nil
	}
	rootCmd.PersistentPostRun = func(c *cobra.Command, args []string) {
		if svc != nil {
			_ = svc.Close()
		}
	}

	rootCmd.AddCommand(
		cmd.NewIndexCmd(&svc),
		cmd.NewSearchCmd(&svc),
		cmd.NewTagsCmd(&svc),
		cmd.NewCompleteCmd(&svc),
		cmd.NewVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
