package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/nbc/pkg/frontmatter"
	"github.com/mattsolo1/nbc/pkg/service"
)

func NewSearchCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search notes",
		Long: `Search for notes matching the query.

Examples:
  nbc search "authentication"
  nbc search login handshake`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			query := strings.Join(args, " ")

			results, err := s.Search(query)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			if len(results) == 0 {
				fmt.Println("No matches")
				return nil
			}

			for _, note := range results {
				title := note.Title
				if title == "" {
					title = firstLine(frontmatter.Strip(note.RawBody))
				}
				fmt.Printf("%s\t%s\n", note.ID, title)
			}
			return nil
		},
	}
	return cmd
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
