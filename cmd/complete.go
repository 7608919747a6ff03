package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/nbc/pkg/service"
)

func NewCompleteCmd(svc **service.Service) *cobra.Command {
	var (
		file       string
		offset     int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "complete --file <path> --offset <n>",
		Short: "Run one completion pass against a document snapshot",
		Long: `Read a markdown file, place the cursor at the given byte offset and
print the options of the winning completion provider.

An offset of -1 means end of file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			text := string(data)
			if offset < 0 || offset > len(text) {
				offset = len(text)
			}

			res := s.Complete(text, offset)
			if res == nil {
				fmt.Println("No completion")
				return nil
			}

			if jsonOutput {
				type option struct {
					Label  string `json:"label"`
					Detail string `json:"detail,omitempty"`
				}
				out := struct {
					Anchor         int      `json:"anchor"`
					SuppressFilter bool     `json:"suppress_filter"`
					Options        []option `json:"options"`
				}{Anchor: res.Anchor, SuppressFilter: res.SuppressFilter}
				for _, opt := range res.Options {
					out.Options = append(out.Options, option{Label: opt.Label, Detail: opt.Detail})
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			fmt.Printf("anchor: %d\n", res.Anchor)
			for _, opt := range res.Options {
				if opt.Detail != "" && opt.Detail != opt.Label {
					fmt.Printf("  %s\t(%s)\n", opt.Label, opt.Detail)
				} else {
					fmt.Printf("  %s\n", opt.Label)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "markdown file to complete against")
	cmd.Flags().IntVar(&offset, "offset", -1, "cursor byte offset, -1 for end of file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "machine-readable output")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
