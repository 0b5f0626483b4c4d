package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/shades/internal/infrastructure/browser/htmldoc"
	"github.com/bnema/shades/internal/renderer"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render <url> <file.html>",
	Short: "Apply the filter for a URL to a saved HTML page",
	Long: `Resolve the filter for <url> and inject it into an HTML file, as the browser
renderer would. Use "-" to read the page from stdin.

Examples:
  shades render https://example.com page.html -o filtered.html
  curl -s https://example.com | shades render https://example.com -`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write the result to a file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	var in io.Reader = cmd.InOrStdin()
	if args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("open page: %w", err)
		}
		defer f.Close()
		in = f
	}

	doc, err := htmldoc.Parse(in)
	if err != nil {
		return err
	}

	decision, err := app.ResolveUC.ForURL(ctx, args[0])
	if err != nil {
		return err
	}
	if err := renderer.New(doc, app.ResolveUC).Handle(ctx, app.ResolveUC.Instruction(decision)); err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if renderOutput != "" {
		f, err := os.Create(renderOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return doc.Render(out)
}
