package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"image2rle/internal/logging"
	"image2rle/internal/rle"
)

type inspectRow struct {
	Path       string `json:"path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Population int    `json:"population"`
	Source     string `json:"source,omitempty"`
	Error      string `json:"error,omitempty"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <pattern.rle>...",
		Short: "Summarize RLE pattern files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "inspect")

			rows := make([]inspectRow, 0, len(args))
			for _, path := range args {
				row := inspectPattern(path)
				if row.Error != "" {
					logger.Debug("pattern unreadable", logging.Path("path", path), logging.String("reason", row.Error))
				}
				rows = append(rows, row)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderInspectTable(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func inspectPattern(path string) inspectRow {
	row := inspectRow{Path: path}
	f, err := os.Open(path)
	if err != nil {
		row.Error = err.Error()
		return row
	}
	defer f.Close()

	pattern, err := rle.Parse(f)
	if err != nil {
		row.Error = err.Error()
		return row
	}
	row.Width = pattern.Grid.Width()
	row.Height = pattern.Grid.Height()
	row.Population = pattern.Grid.Population()
	row.Source = pattern.Header.Source
	return row
}
