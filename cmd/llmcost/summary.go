package main

import (
	"github.com/spf13/cobra"
)

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	var (
		lower          int
		upper          int
		messagesPerDay int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show lower- and upper-bound monthly cost for every model",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			boundsFromFlags(cmd, cfg, &lower, &upper)
			if !cmd.Flags().Changed("messages-per-day") {
				messagesPerDay = cfg.Assumptions.MessagesPerDay
			}

			return opts.generator(cfg).Summarize(cmd.OutOrStdout(), lower, upper, messagesPerDay)
		},
	}

	cmd.Flags().IntVar(&lower, "lower", 1, "lower bound prompt size (k words)")
	cmd.Flags().IntVar(&upper, "upper", 10, "upper bound prompt size (k words)")
	cmd.Flags().IntVar(&messagesPerDay, "messages-per-day", 25, "messages per day")
	return cmd
}
