package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pario-ai/llmcost/pkg/config"
	"github.com/pario-ai/llmcost/pkg/pricing"
	"github.com/pario-ai/llmcost/pkg/report"
	"github.com/spf13/cobra"
)

var version = "dev"

// rootOptions carries the persistent flags shared by every sub-command.
type rootOptions struct {
	configPath string
	logLevel   string
	logger     *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "llmcost",
		Short:         "llmcost — estimate monthly LLM API spend from usage assumptions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to llmcost config file (built-in catalogs when empty)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newSummaryCmd(opts),
		newExportCmd(opts),
		newRankCmd(opts),
		newTokensCmd(opts),
		newTasksCmd(opts),
		newTiersCmd(opts),
	)
	return root
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (o *rootOptions) engine(cfg *config.Config) *pricing.Engine {
	return pricing.New(cfg.Primary, cfg.Alternate, cfg.Assumptions,
		pricing.WithLogger(o.logger),
		pricing.WithTasks(cfg.Tasks),
	)
}

func (o *rootOptions) generator(cfg *config.Config) *report.Generator {
	primary := cfg.Report.PrimaryTiers
	if len(primary) == 0 {
		primary = cfg.Primary.IDs()
	}
	alternate := cfg.Report.AlternateTiers
	if len(alternate) == 0 {
		alternate = cfg.Alternate.IDs()
	}
	return report.New(o.engine(cfg), cfg.Assumptions,
		report.WithPrimaryTiers(primary),
		report.WithAlternateTiers(alternate),
	)
}

// boundsFromFlags applies config assumptions to bound flags the user did not set.
func boundsFromFlags(cmd *cobra.Command, cfg *config.Config, lower, upper *int) {
	if !cmd.Flags().Changed("lower") {
		*lower = cfg.Assumptions.LowerBound
	}
	if !cmd.Flags().Changed("upper") {
		*upper = cfg.Assumptions.UpperBound
	}
}
