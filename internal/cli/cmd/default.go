package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shades/internal/cli/styles"
)

var defaultSettings settingFlags

var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Manage the global default filter",
	Args:  cobra.NoArgs,
	RunE:  runDefaultShow,
}

var defaultSetCmd = &cobra.Command{
	Use:   "set <filter>",
	Short: "Set the filter used by sites without an assignment",
	Args:  cobra.ExactArgs(1),
	RunE:  runDefaultSet,
}

var defaultClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the global default filter",
	Args:  cobra.NoArgs,
	RunE:  runDefaultClear,
}

func init() {
	rootCmd.AddCommand(defaultCmd)
	defaultCmd.AddCommand(defaultSetCmd, defaultClearCmd)
	defaultSettings.register(defaultSetCmd.Flags())
}

func runDefaultShow(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	state, err := app.ManageUC.State(app.Ctx(), "")
	if err != nil {
		return err
	}
	if state.Default == nil {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("no default filter"))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		app.Theme.FilterBadge(state.Default.FilterID),
		app.Theme.Subtle.Render(styles.SettingsSummary(state.Default.FilterID, state.Default.Settings)),
	)
	return nil
}

func runDefaultSet(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	id, err := parseFilter(args[0])
	if err != nil {
		return err
	}
	if id.IsNone() {
		return errors.New(`"none" cannot be the default; use 'shades default clear'`)
	}
	overrides, err := defaultSettings.overrides(cmd.Flags(), id)
	if err != nil {
		return err
	}

	def, err := app.ManageUC.SetDefault(app.Ctx(), id, overrides)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "default %s %s\n",
		app.Theme.FilterBadge(def.FilterID),
		app.Theme.Subtle.Render(styles.SettingsSummary(def.FilterID, def.Settings)),
	)
	return nil
}

func runDefaultClear(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	if err := app.ManageUC.ClearDefault(app.Ctx()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render("default cleared"))
	return nil
}
