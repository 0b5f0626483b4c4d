package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/shades/internal/cli/model"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [domain|url]",
	Short: "Pick filters interactively",
	Long: `Open the interactive filter picker for a site.

Without an argument only the global default, the enable switch and the
websites list can be edited.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	site := ""
	if len(args) == 1 {
		site = args[0]
	}

	ctx, cancel := context.WithCancel(app.Ctx())
	defer cancel()

	changes, err := app.Settings.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch settings: %w", err)
	}

	m := model.NewPopupModel(ctx, app.Theme, app.ManageUC, changes, site)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
