package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shades/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo))
	return nil
}
