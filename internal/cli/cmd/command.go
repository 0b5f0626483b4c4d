package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/shades/internal/application/port"
	domainurl "github.com/bnema/shades/internal/domain/url"
)

var commandCmd = &cobra.Command{
	Use:   "command <name> <url>",
	Short: "Run a keyboard command against a page URL",
	Long: fmt.Sprintf(`Run the action bound to a browser shortcut without a browser.

Commands: %s`, strings.Join(commandNames(), ", ")),
	Args:      cobra.ExactArgs(2),
	ValidArgs: commandNames(),
	RunE:      runCommand,
}

func init() {
	rootCmd.AddCommand(commandCmd)
}

func commandNames() []string {
	cmds := port.Commands()
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, string(c))
	}
	return names
}

func runCommand(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	command, ok := port.ParseCommand(args[0])
	if !ok {
		return fmt.Errorf("unknown command %q (one of %s)", args[0], strings.Join(commandNames(), ", "))
	}
	rawURL := domainurl.Normalize(args[1])

	if command != port.CommandToggleExtension && domainurl.IsRestrictedURL(rawURL, app.Config.Browser.RestrictedSchemes) {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("restricted page, command skipped"))
		return nil
	}

	if err := app.ToggleUC.Execute(ctx, command, rawURL); err != nil {
		return err
	}

	decision, err := app.ResolveUC.ForURL(ctx, rawURL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), decision.String())
	return nil
}
