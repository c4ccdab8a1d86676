package cli

import (
	"fmt"

	"github.com/govalues/tvm"
	"github.com/spf13/cobra"
)

func (a *app) amortizeCmd() *cobra.Command {
	var principal, rate string
	var nper int
	cmd := &cobra.Command{
		Use:     "amortize",
		Short:   "Amortization schedule of a level-payment loan",
		Example: "  tvm amortize --principal $12,000 --rate 0.8333% --nper 12",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := parseAmountFlag("principal", principal)
			if err != nil {
				return err
			}
			r, err := parseRateFlag("rate", rate)
			if err != nil {
				return err
			}
			var schedule tvm.Schedule
			interest, err := logged(a.logger, "amortize", func() (tvm.Amount, error) {
				var err error
				if schedule, err = tvm.Amortize(p, r, nper); err != nil {
					return tvm.Amount{}, err
				}
				return schedule.TotalInterest()
			}, "principal", p, "rate", r, "nper", nper)
			if err != nil {
				return err
			}
			payment, err := schedule.TotalPayment()
			if err != nil {
				return err
			}
			tab, err := schedule.Table()
			if err != nil {
				return err
			}
			a.print(cmd, tab)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Total payment:  %v\n", payment)
			fmt.Fprintf(w, "Total interest: %v\n", interest)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&principal, "principal", "", "loan principal, e.g. $12,000")
	f.StringVar(&rate, "rate", "", "periodic rate, e.g. 0.8333%")
	f.IntVar(&nper, "nper", 0, "number of periods")
	for _, name := range []string{"principal", "rate", "nper"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
