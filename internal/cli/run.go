package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/v4rm4n/gosheet/internal/logger"
	"github.com/v4rm4n/gosheet/internal/sheet"
)

func runCmd(reg *sheet.Registry, plain *bool) *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "run [sheet] [section...]",
		Short: "Run a sheet, selected sections, or everything with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			th := themeFor(*plain)

			if all {
				for _, s := range reg.Sheets() {
					if err := runSections(out, th, s, nil); err != nil {
						return err
					}
				}
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("expected a sheet name (or --all); try 'gosheet list'")
			}

			s, ok := reg.Lookup(args[0])
			if !ok {
				return &sheet.OpError{
					Op:   "cli.run",
					Kind: sheet.KindUnknownSheet,
					Name: args[0],
					Err:  sheet.ErrUnknownSheet,
				}
			}
			return runSections(out, th, s, args[1:])
		},
	}

	c.Flags().BoolVar(&all, "all", false, "Run every sheet in order")
	return c
}

// runSections prints a header per section, then the section's own fixed
// output beneath it.
func runSections(w io.Writer, th Theme, s sheet.Sheet, names []string) error {
	selected, err := s.Select(names...)
	if err != nil {
		return err
	}

	for _, sec := range selected {
		logger.L().Debug("section.start", "sheet", s.Name, "section", sec.Name)

		header := fmt.Sprintf("== %s / %s — %s ==", s.Name, sec.Name, sec.Title)
		fmt.Fprintln(w, th.Header.Render(header))

		if err := sec.Run(w); err != nil {
			return &sheet.OpError{Op: "cli.run", Kind: sheet.KindExecution, Name: sec.Name, Err: err}
		}
		fmt.Fprintln(w)
	}
	return nil
}
