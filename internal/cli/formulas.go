package cli

import (
	"fmt"

	"github.com/govalues/tvm"
	"github.com/spf13/cobra"
)

// tvmArgs holds the textual inputs of the annuity formulas.
// Inputs not bound to a flag keep their zero defaults.
type tvmArgs struct {
	rate        string
	nper        float64
	pmt, pv, fv string
	guess       string
}

func newTVMArgs() *tvmArgs {
	return &tvmArgs{rate: "0", pmt: "0", pv: "0", fv: "0"}
}

// bind registers the named inputs as flags of cmd.
// The rate and the number of periods are required.
func (t *tvmArgs) bind(cmd *cobra.Command, names ...string) {
	f := cmd.Flags()
	for _, name := range names {
		switch name {
		case "rate":
			f.StringVar(&t.rate, name, t.rate, "periodic rate, e.g. 5% or 0.05")
			_ = cmd.MarkFlagRequired(name)
		case "nper":
			f.Float64Var(&t.nper, name, t.nper, "number of periods")
			_ = cmd.MarkFlagRequired(name)
		case "pmt":
			f.StringVar(&t.pmt, name, t.pmt, "payment per period, e.g. -$100")
		case "pv":
			f.StringVar(&t.pv, name, t.pv, "present value, e.g. $1,000")
		case "fv":
			f.StringVar(&t.fv, name, t.fv, "future value")
		case "guess":
			f.StringVar(&t.guess, name, t.guess, "initial rate of the solver (default: from config)")
		}
	}
}

type tvmInputs struct {
	rate        tvm.Rate
	pmt, pv, fv tvm.Amount
}

func (t *tvmArgs) parse() (tvmInputs, error) {
	var in tvmInputs
	var err error
	if in.rate, err = parseRateFlag("rate", t.rate); err != nil {
		return tvmInputs{}, err
	}
	if in.pmt, err = parseAmountFlag("pmt", t.pmt); err != nil {
		return tvmInputs{}, err
	}
	if in.pv, err = parseAmountFlag("pv", t.pv); err != nil {
		return tvmInputs{}, err
	}
	if in.fv, err = parseAmountFlag("fv", t.fv); err != nil {
		return tvmInputs{}, err
	}
	return in, nil
}

func parseAmountFlag(name, s string) (tvm.Amount, error) {
	a, err := tvm.ParseAmount(s)
	if err != nil {
		return tvm.Amount{}, fmt.Errorf("invalid --%v %q: %w", name, s, err)
	}
	return a, nil
}

func parseRateFlag(name, s string) (tvm.Rate, error) {
	r, err := tvm.ParseRate(s)
	if err != nil {
		return tvm.Rate{}, fmt.Errorf("invalid --%v %q: %w", name, s, err)
	}
	return r, nil
}

func (a *app) fvCmd() *cobra.Command {
	args := newTVMArgs()
	cmd := &cobra.Command{
		Use:     "fv",
		Short:   "Future value of a present value and level payments",
		Example: "  tvm fv --rate 5% --nper 10 --pv=-$1,000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := args.parse()
			if err != nil {
				return err
			}
			res, err := logged(a.logger, "fv", func() (tvm.Amount, error) {
				return tvm.FV(in.rate, args.nper, in.pmt, in.pv)
			}, "rate", in.rate, "nper", args.nper, "pmt", in.pmt, "pv", in.pv)
			if err != nil {
				return err
			}
			a.print(cmd, res)
			return nil
		},
	}
	args.bind(cmd, "rate", "nper", "pmt", "pv")
	return cmd
}

func (a *app) pvCmd() *cobra.Command {
	args := newTVMArgs()
	cmd := &cobra.Command{
		Use:     "pv",
		Short:   "Present value of a future value and level payments",
		Example: "  tvm pv --rate 10% --nper 2 --pmt=-$576.19",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := args.parse()
			if err != nil {
				return err
			}
			res, err := logged(a.logger, "pv", func() (tvm.Amount, error) {
				return tvm.PV(in.rate, args.nper, in.pmt, in.fv)
			}, "rate", in.rate, "nper", args.nper, "pmt", in.pmt, "fv", in.fv)
			if err != nil {
				return err
			}
			a.print(cmd, res)
			return nil
		},
	}
	args.bind(cmd, "rate", "nper", "pmt", "fv")
	return cmd
}

func (a *app) pmtCmd() *cobra.Command {
	args := newTVMArgs()
	cmd := &cobra.Command{
		Use:     "pmt",
		Short:   "Level payment amortizing a present value into a future value",
		Example: "  tvm pmt --rate 0.5% --nper 360 --pv $100,000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := args.parse()
			if err != nil {
				return err
			}
			res, err := logged(a.logger, "pmt", func() (tvm.Amount, error) {
				return tvm.PMT(in.rate, args.nper, in.pv, in.fv)
			}, "rate", in.rate, "nper", args.nper, "pv", in.pv, "fv", in.fv)
			if err != nil {
				return err
			}
			a.print(cmd, res)
			return nil
		},
	}
	args.bind(cmd, "rate", "nper", "pv", "fv")
	return cmd
}

func (a *app) nperCmd() *cobra.Command {
	args := newTVMArgs()
	cmd := &cobra.Command{
		Use:     "nper",
		Short:   "Number of periods to reach a future value",
		Example: "  tvm nper --rate 1% --pmt=-$100 --pv $1,000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := args.parse()
			if err != nil {
				return err
			}
			res, err := logged(a.logger, "nper", func() (tvm.Value, error) {
				n, err := tvm.NPER(in.rate, in.pmt, in.pv, in.fv)
				if err != nil {
					return tvm.Value{}, err
				}
				return tvm.NewNumber(n)
			}, "rate", in.rate, "pmt", in.pmt, "pv", in.pv, "fv", in.fv)
			if err != nil {
				return err
			}
			a.print(cmd, res)
			return nil
		},
	}
	args.bind(cmd, "rate", "pmt", "pv", "fv")
	return cmd
}

func (a *app) rateCmd() *cobra.Command {
	args := newTVMArgs()
	cmd := &cobra.Command{
		Use:     "rate",
		Short:   "Periodic rate solving the annuity equation",
		Example: "  tvm rate --nper 10 --pmt=-$129.50 --pv $1,000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := args.parse()
			if err != nil {
				return err
			}
			guess, err := a.cfg.Solver.InitialGuess()
			if err != nil {
				return err
			}
			if args.guess != "" {
				if guess, err = parseRateFlag("guess", args.guess); err != nil {
					return err
				}
			}
			solver := a.cfg.Solver.RateSolver()
			res, err := logged(a.logger, "rate", func() (tvm.Rate, error) {
				return solver.Solve(args.nper, in.pmt, in.pv, in.fv, guess)
			}, "nper", args.nper, "pmt", in.pmt, "pv", in.pv, "fv", in.fv, "guess", guess, "tolerance", solver.Tolerance)
			if err != nil {
				return err
			}
			a.print(cmd, res)
			return nil
		},
	}
	args.bind(cmd, "nper", "pmt", "pv", "fv", "guess")
	return cmd
}

func (a *app) npvCmd() *cobra.Command {
	args := newTVMArgs()
	cmd := &cobra.Command{
		Use:     "npv [flags] flow...",
		Short:   "Net present value of cash flows, the first one period from now",
		Example: "  tvm npv --rate 10% -- -$100 $60 $60",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, flows []string) error {
			in, err := args.parse()
			if err != nil {
				return err
			}
			s, err := parseSeriesArgs(flows)
			if err != nil {
				return err
			}
			res, err := logged(a.logger, "npv", func() (tvm.Value, error) {
				return tvm.NPV(in.rate, s)
			}, "rate", in.rate, "flows", s.Len())
			if err != nil {
				return err
			}
			a.print(cmd, res)
			return nil
		},
	}
	args.bind(cmd, "rate")
	return cmd
}

func parseSeriesArgs(elems []string) (tvm.Series, error) {
	vals := make([]any, len(elems))
	for i, e := range elems {
		vals[i] = e
	}
	s, err := tvm.ParseSeries(vals)
	if err != nil {
		return tvm.Series{}, fmt.Errorf("invalid arguments: %w", err)
	}
	return s, nil
}
