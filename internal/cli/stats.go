package cli

import (
	"fmt"

	"github.com/govalues/tvm"
	"github.com/spf13/cobra"
)

type statistic struct {
	name   string
	minLen int
	f      func(tvm.Series) (tvm.Value, error)
}

var statistics = []statistic{
	{"sum", 0, tvm.Series.Sum},
	{"mean", 1, tvm.Series.Mean},
	{"median", 1, tvm.Series.Median},
	{"var_p", 1, tvm.Series.VarP},
	{"stdev_p", 1, tvm.Series.StdevP},
	{"var_s", 2, tvm.Series.VarS},
	{"stdev_s", 2, tvm.Series.StdevS},
}

func (a *app) statsCmd() *cobra.Command {
	var quantiles []float64
	cmd := &cobra.Command{
		Use:     "stats [flags] value...",
		Short:   "Summary statistics of a series of values",
		Example: "  tvm stats --quantile 0.9 -- $120 $80 -$15 $240",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, elems []string) error {
			s, err := parseSeriesArgs(elems)
			if err != nil {
				return err
			}
			a.print(cmd, s)

			w := cmd.OutOrStdout()
			for _, st := range statistics {
				if s.Len() < st.minLen {
					continue
				}
				v, err := logged(a.logger, st.name, func() (tvm.Value, error) {
					return st.f(s)
				}, "len", s.Len())
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-8v %v\n", st.name, v)
			}
			for _, q := range quantiles {
				v, err := logged(a.logger, "quantile", func() (tvm.Value, error) {
					return s.Quantile(q)
				}, "len", s.Len(), "q", q)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-8v %v\n", fmt.Sprintf("q%v", q), v)
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&quantiles, "quantile", nil, "additional quantiles within [0, 1]")
	return cmd
}
