package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTasksCmd(opts *rootOptions) *cobra.Command {
	var requests map[string]int

	cmd := &cobra.Command{
		Use:     "tasks",
		Short:   "Price requests to task-specific APIs (paraphrase, summarize, ...)",
		Example: "  llmcost tasks --requests paraphrase=1000,summarize=500",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			engine := opts.engine(cfg)

			total, err := engine.BillTasks(requests)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range engine.Tasks() {
				if n, ok := requests[name]; ok {
					fmt.Fprintf(out, "%-20s %8d requests\n", name, n)
				}
			}
			fmt.Fprintf(out, "Total cost: $%.2f\n", total)
			return nil
		},
	}

	cmd.Flags().StringToIntVar(&requests, "requests", nil, "request counts per task, e.g. summarize=500")
	return cmd
}
