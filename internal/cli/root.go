// Package cli implements the tvm command line interface.
package cli

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/govalues/tvm/internal/config"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of a single invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg    config.Config
	logger log.Logger
}

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: log.NewNopLogger(),
	}
	root := &cobra.Command{
		Use:   "tvm",
		Short: "Time value of money calculator",
		Long: `tvm computes present and future values, payments, periods, rates of
return and amortization schedules.

Amounts are written with a dollar sign ($1,200.50, -$50) and rates with
a percent sign (5%). Negative amounts are money paid out.
Use -- before positional arguments that start with a minus sign.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file, TOML or YAML (default: built-in settings)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log computations to stderr")

	root.AddCommand(
		a.fvCmd(),
		a.pvCmd(),
		a.pmtCmd(),
		a.nperCmd(),
		a.rateCmd(),
		a.npvCmd(),
		a.amortizeCmd(),
		a.statsCmd(),
		versionCmd(),
	)
	return root
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
	if a.verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowWarn())
	}
	a.logger = log.With(logger, "cmd", cmd.Name())

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		level.Error(a.logger).Log("msg", "loading config", "file", a.cfgFile, "err", err)
		return err
	}
	a.cfg = cfg
	level.Debug(a.logger).Log(
		"msg", "config loaded",
		"file", a.cfgFile,
		"tolerance", cfg.Solver.Tolerance,
		"max_iterations", cfg.Solver.MaxIterations,
		"guess", cfg.Solver.Guess,
	)
	return nil
}

func (a *app) print(cmd *cobra.Command, v fmt.Stringer) {
	fmt.Fprintln(cmd.OutOrStdout(), v)
}
