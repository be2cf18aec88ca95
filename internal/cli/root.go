package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/v4rm4n/gosheet/internal/logger"
	"github.com/v4rm4n/gosheet/internal/sheet"
	"github.com/v4rm4n/gosheet/internal/sheet/lang"
	"github.com/v4rm4n/gosheet/internal/sheet/typesheet"
)

func Execute() {
	cmd := newRootCmd(defaultRegistry())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// defaultRegistry wires both sheets in run order: lang, then types.
func defaultRegistry() *sheet.Registry {
	return sheet.NewRegistry(lang.New(), typesheet.New())
}

func newRootCmd(reg *sheet.Registry) *cobra.Command {
	var debug bool
	var plain bool

	cmd := &cobra.Command{
		Use:          "gosheet",
		Short:        "gosheet — a runnable Go cheat sheet",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			cleanup, err := logger.Setup(wd, debug)
			if err != nil {
				// Logging is best-effort; the demos still run.
				return nil
			}
			cobra.OnFinalize(func() { _ = cleanup() })
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug file logging")
	cmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable styled headers")

	cmd.AddCommand(listCmd(reg, &plain))
	cmd.AddCommand(runCmd(reg, &plain))
	return cmd
}

func themeFor(plain bool) Theme {
	if plain {
		return PlainTheme()
	}
	return DefaultTheme()
}
