package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/shades/internal/application/usecase"
	"github.com/bnema/shades/internal/cli/styles"
)

var (
	siteSearch   string
	siteSettings settingFlags
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Manage per-site filter assignments",
}

var siteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sites with a filter assigned",
	Args:  cobra.NoArgs,
	RunE:  runSiteList,
}

var siteSetCmd = &cobra.Command{
	Use:   "set <domain|url> <filter>",
	Short: "Assign a filter to a site",
	Long: `Assign a filter to a site. Use "none" to keep the site unfiltered even when
a global default is set.

Examples:
  shades site set example.com classic-gray --intensity 70
  shades site set https://docs.example.org/page solar-eclipse --exclude-images=false
  shades site set news.example.com none`,
	Args: cobra.ExactArgs(2),
	RunE: runSiteSet,
}

var siteRemoveCmd = &cobra.Command{
	Use:     "remove <domain|url>",
	Aliases: []string{"rm"},
	Short:   "Remove a site's assignment so it follows the default",
	Args:    cobra.ExactArgs(1),
	RunE:    runSiteRemove,
}

func init() {
	rootCmd.AddCommand(siteCmd)
	siteCmd.AddCommand(siteListCmd, siteSetCmd, siteRemoveCmd)
	siteListCmd.Flags().StringVarP(&siteSearch, "search", "s", "", "only list domains containing this text")
	siteSettings.register(siteSetCmd.Flags())
}

func runSiteList(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	entries, err := app.ManageUC.ListWebsites(app.Ctx(), siteSearch)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("No websites configured"))
		return nil
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, styles.WebsiteRow(e.Domain, e.Filter))
	}
	t := styles.NewStyledTable(app.Theme, styles.WebsiteTableColumns(), rows, 100, len(rows)+1)
	t.Blur()
	fmt.Fprintln(cmd.OutOrStdout(), t.View())
	return nil
}

func runSiteSet(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	key, err := usecase.DomainKey(args[0])
	if err != nil {
		return err
	}
	id, err := parseFilter(args[1])
	if err != nil {
		return err
	}
	overrides, err := siteSettings.overrides(cmd.Flags(), id)
	if err != nil {
		return err
	}

	wf, err := app.ManageUC.ApplyFilter(ctx, key, id)
	if err != nil {
		return err
	}
	if overrides != nil {
		wf, err = app.ManageUC.SaveSettings(ctx, key, merge(wf.Settings, overrides))
		if err != nil {
			return err
		}
	}

	state, err := app.ManageUC.State(ctx, key)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		app.Theme.Title.Render(state.Domain),
		app.Theme.FilterBadge(wf.FilterID),
		app.Theme.Subtle.Render(styles.SettingsSummary(wf.FilterID, wf.Settings)),
	)
	return nil
}

func runSiteRemove(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	key, err := usecase.DomainKey(args[0])
	if err != nil {
		return err
	}
	if err := app.ManageUC.RemoveFilter(app.Ctx(), key); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render("removed"))
	return nil
}
