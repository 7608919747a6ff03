package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/nbc/pkg/service"
)

func NewTagsCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List all known tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			tags, err := s.Tags()
			if err != nil {
				return fmt.Errorf("list tags: %w", err)
			}
			for _, tag := range tags {
				fmt.Println(tag)
			}
			return nil
		},
	}
}
