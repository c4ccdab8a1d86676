package tvm

import "fmt"

// Schedule is a level-payment amortization schedule.
// All series have one element per period.
type Schedule struct {
	Period    Series // 1, 2, ..., n
	Payment   Series // amount paid in the period
	Principal Series // part of the payment repaying the principal
	Interest  Series // part of the payment covering the interest
	Balance   Series // outstanding principal after the payment
}

// Amortize returns the schedule of a loan of the given principal repaid in nper
// level payments at the given periodic rate.
// Payments and interest are rounded to cents, the last payment absorbs the
// rounding difference so that the final balance is zero.
//
// Amortize returns an error if:
//   - nper is not positive;
//   - the principal is not positive;
//   - the level payment cannot be computed, see [PMT].
func Amortize(principal Amount, rate Rate, nper int) (Schedule, error) {
	s, err := amortize(principal, rate, nper)
	if err != nil {
		return Schedule{}, fmt.Errorf("amortizing %v at %v over %v period(s): %w", principal, rate, nper, err)
	}
	return s, nil
}

func amortize(principal Amount, rate Rate, nper int) (Schedule, error) {
	if nper <= 0 {
		return Schedule{}, fmt.Errorf("%w: number of periods must be positive", ErrInvalidArgument)
	}
	if principal.Sign() <= 0 {
		return Schedule{}, fmt.Errorf("%w: principal must be positive", ErrInvalidArgument)
	}

	// Level payment, paid out by the borrower
	repayment, err := PMT(rate, float64(nper), principal, Amount{})
	if err != nil {
		return Schedule{}, err
	}
	repayment = repayment.Neg().RoundToCurr()

	period := make([]Value, nper)
	pay := make([]Value, nper)
	prin := make([]Value, nper)
	intr := make([]Value, nper)
	bal := make([]Value, nper)

	balance := principal
	for i := 0; i < nper; i++ {
		// Interest
		interest, err := balance.MulRate(rate)
		if err != nil {
			return Schedule{}, err
		}
		interest = interest.RoundToCurr()

		// Principal
		var part Amount
		if i == nper-1 {
			part = balance
			repayment, err = part.Add(interest)
			if err != nil {
				return Schedule{}, err
			}
		} else {
			part, err = repayment.Sub(interest)
			if err != nil {
				return Schedule{}, err
			}
		}

		// Balance
		balance, err = balance.Sub(part)
		if err != nil {
			return Schedule{}, err
		}
		balance = balance.RoundToCurr()

		period[i] = NewInt(int64(i + 1))
		pay[i] = repayment.Value()
		prin[i] = part.Value()
		intr[i] = interest.Value()
		bal[i] = balance.Value()
	}
	return Schedule{
		Period:    Series{vals: period},
		Payment:   Series{vals: pay},
		Principal: Series{vals: prin},
		Interest:  Series{vals: intr},
		Balance:   Series{vals: bal},
	}, nil
}

// TotalInterest returns the interest paid over the whole schedule.
func (s Schedule) TotalInterest() (Amount, error) {
	v, err := s.Interest.Sum()
	if err != nil {
		return Amount{}, err
	}
	return v.Amount(), nil
}

// TotalPayment returns the sum of all payments.
func (s Schedule) TotalPayment() (Amount, error) {
	v, err := s.Payment.Sum()
	if err != nil {
		return Amount{}, err
	}
	return v.Amount(), nil
}

// Table returns the schedule as a [Table].
func (s Schedule) Table() (Table, error) {
	return NewTable(
		Column{Label: "Period", Series: s.Period},
		Column{Label: "Payment", Series: s.Payment},
		Column{Label: "Principal", Series: s.Principal},
		Column{Label: "Interest", Series: s.Interest},
		Column{Label: "Balance", Series: s.Balance},
	)
}
