package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/shades/internal/cli/styles"
	"github.com/bnema/shades/internal/domain/entity"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the available filters",
	RunE:  runFilters,
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}

func runFilters(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	catalog := entity.Catalog()
	rows := make([]table.Row, 0, len(catalog))
	for _, f := range catalog {
		rows = append(rows, styles.FilterRow(f))
	}

	t := styles.NewStyledTable(app.Theme, styles.FilterTableColumns(), rows, 100, len(rows)+1)
	t.Blur()
	fmt.Fprintln(cmd.OutOrStdout(), t.View())
	return nil
}
