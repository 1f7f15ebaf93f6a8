package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pario-ai/llmcost/pkg/report"
	"github.com/pario-ai/llmcost/pkg/report/sqlite"
	"github.com/spf13/cobra"
)

func newRankCmd(opts *rootOptions) *cobra.Command {
	var (
		promptSize     int
		messagesPerDay int
		limit          int
		budget         float64
		totals         bool
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank models by monthly cost for one prompt size and message rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			a := cfg.Assumptions
			lower, upper := a.LowerBound, a.UpperBound
			if !totals {
				if messagesPerDay < a.MinMessagesPerDay || messagesPerDay > a.MaxMessagesPerDay {
					return fmt.Errorf("%w: messages per day %d outside the table range %d..%d",
						report.ErrInvalidBounds, messagesPerDay, a.MinMessagesPerDay, a.MaxMessagesPerDay)
				}
				lower, upper = promptSize, promptSize
			}
			rows, err := opts.generator(cfg).BuildRows(lower, upper)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := sqlite.Open(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Load(ctx, rows); err != nil {
				return err
			}
			n, err := store.Count(ctx)
			if err != nil {
				return err
			}
			opts.logger.Debug("loaded report rows", "rows", n, "lower", lower, "upper", upper)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if totals {
				sums, err := store.ModelTotals(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, "MODEL\tROWS\tMIN\tMAX\tTOTAL")
				for _, s := range sums {
					fmt.Fprintf(w, "%s\t%d\t$%.4f\t$%.4f\t$%.2f\n", s.Model, s.Rows, s.MinCost, s.MaxCost, s.Total)
				}
				return w.Flush()
			}

			ranked, err := store.Cheapest(ctx, sqlite.Query{
				PromptSize:     promptSize,
				MessagesPerDay: messagesPerDay,
				MaxCost:        budget,
				Limit:          limit,
			})
			if err != nil {
				return err
			}
			if len(ranked) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No models fit that prompt size, message rate and budget.")
				return nil
			}
			fmt.Fprintln(w, "#\tMODEL\tTOKENS/MONTH\tCOST/MONTH")
			for i, r := range ranked {
				fmt.Fprintf(w, "%d\t%s\t%d\t$%.4f\n", i+1, r.Model, r.TokensPerMonth, r.Cost)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&promptSize, "prompt-size", 1, "prompt size (k words)")
	cmd.Flags().IntVar(&messagesPerDay, "messages-per-day", 25, "messages per day")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many models (0 for all)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "only show models costing at most this many dollars per month")
	cmd.Flags().BoolVar(&totals, "totals", false, "show per-model aggregates over the configured bounds instead")
	return cmd
}
