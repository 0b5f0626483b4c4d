package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:       "toggle [on|off]",
	Short:     "Enable or disable every filter",
	Long:      `Flip the global enable switch, or set it explicitly with "on" or "off".`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE:      runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	var disabled bool
	if len(args) == 0 {
		disabled, err = app.ManageUC.ToggleExtension(ctx)
	} else {
		disabled = args[0] == "off"
		err = app.ManageUC.SetEnabled(ctx, !disabled)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.StateBadge(disabled))
	return nil
}
