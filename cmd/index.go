package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/nbc/pkg/service"
)

func NewIndexCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "index <dir>",
		Short: "Index a directory of markdown notes",
		Long: `Walk a directory and add every markdown file to the note index.

Titles come from frontmatter when present, otherwise from the filename.
Tags are collected from frontmatter and inline #tags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			count, err := s.IndexDir(args[0])
			if err != nil {
				return fmt.Errorf("index %s: %w", args[0], err)
			}
			fmt.Printf("Indexed %d notes\n", count)
			return nil
		},
	}
}
