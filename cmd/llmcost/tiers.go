package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pario-ai/llmcost/pkg/models"
	"github.com/spf13/cobra"
)

func newTiersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List the priced models and their rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VENDOR\tMODEL\tKIND\tRATES")
			for _, v := range []models.Vendor{cfg.Primary, cfg.Alternate} {
				for _, t := range v.Tiers {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Name, t.ID, t.Kind, describeRates(t))
				}
			}
			return w.Flush()
		},
	}
}

func describeRates(t models.Tier) string {
	switch t.Kind {
	case models.KindDualRate:
		return fmt.Sprintf("prompt $%g/1K, completion $%g/1K (x%g)", t.PromptRate, t.CompletionRate, t.CompletionMultiplier)
	case models.KindSingleRate:
		return fmt.Sprintf("$%g/1K", t.PromptRate)
	case models.KindFlatUsage:
		if t.TrainingRate > 0 {
			return fmt.Sprintf("usage $%g/1K, training $%g/1K", t.UsageRate, t.TrainingRate)
		}
		return fmt.Sprintf("$%g/1K", t.UsageRate)
	case models.KindPerImage:
		return fmt.Sprintf("$%g/image", t.UnitRate)
	case models.KindPerMinute:
		return fmt.Sprintf("$%g/minute", t.UnitRate)
	}
	return "-"
}
