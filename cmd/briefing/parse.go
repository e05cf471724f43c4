package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/datahalo/briefing/internal/parser"
	"github.com/datahalo/briefing/internal/render"
	"github.com/datahalo/briefing/internal/sanitize"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Segment a raw summary into renderable blocks",
	Long: `Parse reads a raw narrative report from a file (or stdin when no file is
given), strips any HTML wrapping, and prints the resulting block sequence.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw []byte
		var err error
		if len(args) == 1 {
			raw, err = os.ReadFile(args[0])
		} else {
			raw, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		blocks := parser.Parse(sanitize.Clean(string(raw)))

		format, _ := cmd.Flags().GetString("format")
		out := cmd.OutOrStdout()
		switch format {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(blocks)
		case "markdown", "md":
			fmt.Fprint(out, render.Markdown(blocks))
			return nil
		case "html":
			html, err := render.HTML(blocks)
			if err != nil {
				return err
			}
			fmt.Fprint(out, html)
			return nil
		default:
			return fmt.Errorf("unknown format %q (want json, markdown, or html)", format)
		}
	},
}

func init() {
	parseCmd.Flags().String("format", "json", "output format: json, markdown, or html")

	rootCmd.AddCommand(parseCmd)
}
