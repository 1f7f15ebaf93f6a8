package main

import (
	"fmt"
	"strings"

	"github.com/pario-ai/llmcost/pkg/tokens"
	"github.com/spf13/cobra"
)

func newTokensCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <text>...",
		Short: "Count GPT-4 tokens in text and compare with the words-based estimate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			est, err := tokens.New()
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			p, err := est.Prompt(text, cfg.Assumptions.TokensPerKWords)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Words:            %d\nTokens (exact):   %d\nTokens (approx):  %.1f\n",
				p.Words, p.Exact, p.Approx)
			return nil
		},
	}
}
