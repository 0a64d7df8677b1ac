package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/glade/internal/config"
	"github.com/alexisbeaulieu97/glade/internal/gallery"
	"github.com/alexisbeaulieu97/glade/internal/tui"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// isTerminal is replaced in tests.
var isTerminal = func(w any) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func newBrowseCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [config-file]",
		Short: "Browse components and their rendered markup in the terminal",
		Long: `Browse opens an interactive list of the gallery's component instances with a
preview of each one's markup. Without a config file, every component kind is
listed with default props.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return newCommandError("browse", "starting the browser", errNotTerminal, "Use 'glade render --page <id>' for non-interactive output.")
			}

			cfg := &config.Config{Title: "Glade"}
			if len(args) == 1 {
				loaded, err := loadConfig("browse", args[0])
				if err != nil {
					return err
				}
				cfg = loaded
			}

			m := tui.NewModel(cfg, gallery.NewRenderer(cfg, root.log))
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				root.log.Error(err, "browser failed")
				return newCommandError("browse", "running the browser", err, "Check that the terminal supports full-screen mode.")
			}
			return nil
		},
	}
}
