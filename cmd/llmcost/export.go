package main

import (
	"fmt"

	"github.com/pario-ai/llmcost/pkg/report"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		output string
		lower  int
		upper  int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full cost table to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			boundsFromFlags(cmd, cfg, &lower, &upper)

			rows, err := opts.generator(cfg).BuildRows(lower, upper)
			if err != nil {
				return err
			}

			opts.logger.Info("exporting costs", "path", output, "rows", len(rows))
			if err := report.ExportRows(output, rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", len(rows), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "costs.csv", "output CSV path")
	cmd.Flags().IntVar(&lower, "lower", 1, "lower bound prompt size (k words)")
	cmd.Flags().IntVar(&upper, "upper", 10, "upper bound prompt size (k words)")
	return cmd
}
