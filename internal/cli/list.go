package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/v4rm4n/gosheet/internal/sheet"
)

func listCmd(reg *sheet.Registry, plain *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sheets and their sections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			printSheets(cmd.OutOrStdout(), reg, themeFor(*plain))
			return nil
		},
	}
}

func printSheets(w io.Writer, reg *sheet.Registry, th Theme) {
	for _, s := range reg.Sheets() {
		fmt.Fprintln(w, th.Sheet.Render(s.Name))
		for _, sec := range s.Sections {
			fmt.Fprintf(w, "  %-12s %s\n", sec.Name, th.Dim.Render(sec.Title))
		}
	}
}
