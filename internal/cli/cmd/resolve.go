package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/domain/filter"
	domainurl "github.com/bnema/shades/internal/domain/url"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Show the filter decision and CSS for a page",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	rawURL := domainurl.Normalize(args[0])

	if domainurl.IsRestrictedURL(rawURL, app.Config.Browser.RestrictedSchemes) {
		fmt.Fprintln(out, app.Theme.Subtle.Render("restricted page, no filter can be injected"))
		return nil
	}

	decision, err := app.ResolveUC.ForURL(app.Ctx(), rawURL)
	if err != nil {
		return err
	}
	msg := app.ResolveUC.Instruction(decision)

	fmt.Fprintf(out, "%s %s\n", app.Theme.Subtitle.Render("domain  "), domainurl.DomainKey(rawURL))
	fmt.Fprintf(out, "%s %s\n", app.Theme.Subtitle.Render("decision"), decision.String())
	if msg.Action == entity.ActionApplyFilter {
		fmt.Fprintln(out)
		fmt.Fprintln(out, filter.Stylesheet(msg.FilterID, msg.Settings, msg.CSS))
	}
	return nil
}
