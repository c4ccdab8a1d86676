package tvm

import (
	"fmt"
	"math"
)

// The formulas below use the cash-flow sign convention: money paid out is
// negative and money received is positive. Payments are made at the end of
// each period, and every formula satisfies
//
//	pv·(1+i)^n + pmt·((1+i)^n − 1)/i + fv = 0
//
// or pv + pmt·n + fv = 0 when the rate is zero.

// FV returns the future value of a present value pv and a series of nper
// payments pmt at the given periodic rate.
//
// FV returns an error if the result is not finite.
func FV(rate Rate, nper float64, pmt, pv Amount) (Amount, error) {
	fv, err := futureValue(rate.value, nper, pmt, pv)
	if err != nil {
		return Amount{}, fmt.Errorf("computing FV(%v, %v, %v, %v): %w", rate, nper, pmt, pv, err)
	}
	return fv, nil
}

func futureValue(r, n float64, pmt, pv Amount) (Amount, error) {
	g, k, err := factors(r, n)
	if err != nil {
		return Amount{}, err
	}
	a, err := pv.Mul(g)
	if err != nil {
		return Amount{}, err
	}
	b, err := pmt.Mul(k)
	if err != nil {
		return Amount{}, err
	}
	c, err := a.Add(b)
	if err != nil {
		return Amount{}, err
	}
	return c.Neg(), nil
}

// PV returns the present value of a future value fv and a series of nper
// payments pmt at the given periodic rate.
//
// PV returns an error if the result is not finite.
func PV(rate Rate, nper float64, pmt, fv Amount) (Amount, error) {
	pv, err := presentValue(rate.value, nper, pmt, fv)
	if err != nil {
		return Amount{}, fmt.Errorf("computing PV(%v, %v, %v, %v): %w", rate, nper, pmt, fv, err)
	}
	return pv, nil
}

func presentValue(r, n float64, pmt, fv Amount) (Amount, error) {
	g, k, err := factors(r, n)
	if err != nil {
		return Amount{}, err
	}
	b, err := pmt.Mul(k)
	if err != nil {
		return Amount{}, err
	}
	c, err := fv.Add(b)
	if err != nil {
		return Amount{}, err
	}
	c, err = c.Quo(g)
	if err != nil {
		return Amount{}, err
	}
	return c.Neg(), nil
}

// PMT returns the level payment that amortizes a present value pv into
// a future value fv over nper periods at the given periodic rate.
//
// PMT returns an error if:
//   - nper is not positive;
//   - the result is not finite.
func PMT(rate Rate, nper float64, pv, fv Amount) (Amount, error) {
	pmt, err := payment(rate.value, nper, pv, fv)
	if err != nil {
		return Amount{}, fmt.Errorf("computing PMT(%v, %v, %v, %v): %w", rate, nper, pv, fv, err)
	}
	return pmt, nil
}

func payment(r, n float64, pv, fv Amount) (Amount, error) {
	if !(n > 0) {
		return Amount{}, fmt.Errorf("%w: number of periods must be positive", ErrInvalidArgument)
	}
	g, k, err := factors(r, n)
	if err != nil {
		return Amount{}, err
	}
	a, err := pv.Mul(g)
	if err != nil {
		return Amount{}, err
	}
	a, err = a.Add(fv)
	if err != nil {
		return Amount{}, err
	}
	a, err = a.Quo(k)
	if err != nil {
		return Amount{}, err
	}
	return a.Neg(), nil
}

// NPER returns the number of periods needed for a present value pv and
// payments pmt to reach the future value fv at the given periodic rate.
//
// NPER returns an error if:
//   - the rate is not greater than -100%;
//   - both the rate and the payment are zero;
//   - no number of periods satisfies the equation.
func NPER(rate Rate, pmt, pv, fv Amount) (float64, error) {
	n, err := periods(rate.value, pmt.value, pv.value, fv.value)
	if err != nil {
		return 0, fmt.Errorf("computing NPER(%v, %v, %v, %v): %w", rate, pmt, pv, fv, err)
	}
	return n, nil
}

func periods(r, pmt, pv, fv float64) (float64, error) {
	switch {
	case r <= -1:
		return 0, fmt.Errorf("%w: rate must be greater than -100%%", ErrInvalidArgument)
	case r == 0 && pmt == 0:
		return 0, fmt.Errorf("%w: rate and payment are both zero", ErrInvalidArgument)
	case r == 0:
		return -(pv + fv) / pmt, nil
	}
	x := (pmt - fv*r) / (pmt + pv*r)
	if !(x > 0) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: no number of periods reaches the future value", ErrInvalidArgument)
	}
	return math.Log(x) / math.Log1p(r), nil
}

// RATE returns the periodic rate for nper periods, payment pmt, present value
// pv and future value fv, using [NewRateSolver] and a [DefaultGuess].
// See [RateSolver.Solve] for the errors.
func RATE(nper float64, pmt, pv, fv Amount) (Rate, error) {
	return NewRateSolver().Solve(nper, pmt, pv, fv, newRateUnsafe(DefaultGuess))
}

// NPV returns the net present value of the cash flows at the given periodic
// rate. The first flow is discounted by one period, the kind of the result
// follows from the kinds of the flows.
// The net present value of an empty series is 0.
//
// NPV returns an error if the rate is not greater than -100%.
func NPV(rate Rate, flows Series) (Value, error) {
	if rate.value <= -1 {
		return Value{}, fmt.Errorf("computing NPV(%v): %w: rate must be greater than -100%%", rate, ErrInvalidArgument)
	}
	pvs := make([]Value, flows.Len())
	for t, v := range flows.vals {
		g, err := NewNumber(math.Pow(rate.Factor(), float64(t+1)))
		if err != nil {
			return Value{}, fmt.Errorf("computing NPV(%v): %w", rate, err)
		}
		pvs[t], err = v.Quo(g)
		if err != nil {
			return Value{}, fmt.Errorf("computing NPV(%v): %w", rate, err)
		}
	}
	return Series{vals: pvs}.Sum()
}

// CompoundRates returns the rate equivalent to applying rates i and j
// in succession: (1+i)(1+j) − 1.
//
// CompoundRates returns an error if the result is not finite.
func CompoundRates(i, j Rate) (Rate, error) {
	r, err := newRateSafe(i.Factor()*j.Factor() - 1)
	if err != nil {
		return Rate{}, fmt.Errorf("compounding %v and %v: %w", i, j, err)
	}
	return r, nil
}

// DiscountRate returns the rate that compounded with j gives i:
// (1+i)/(1+j) − 1, for example the real rate of return from a nominal
// rate i and an inflation rate j.
//
// DiscountRate returns an error if j is -100% or the result is not finite.
func DiscountRate(i, j Rate) (Rate, error) {
	r, err := newRateSafe(i.Factor()/j.Factor() - 1)
	if err != nil {
		return Rate{}, fmt.Errorf("discounting %v by %v: %w", i, j, err)
	}
	return r, nil
}

// EffectiveRate returns the effective rate of a nominal rate compounded
// the given number of times per period.
//
// EffectiveRate returns an error if periods is not positive.
func EffectiveRate(nominal Rate, periods int) (Rate, error) {
	if periods <= 0 {
		return Rate{}, fmt.Errorf("computing effective rate of %v: %w: periods must be positive", nominal, ErrInvalidArgument)
	}
	m := float64(periods)
	r, err := newRateSafe(math.Pow(1+nominal.value/m, m) - 1)
	if err != nil {
		return Rate{}, fmt.Errorf("computing effective rate of %v: %w", nominal, err)
	}
	return r, nil
}

// NominalRate returns the nominal rate that, compounded the given number
// of times per period, yields the effective rate.
//
// NominalRate returns an error if:
//   - periods is not positive;
//   - the effective rate is not greater than -100%.
func NominalRate(effective Rate, periods int) (Rate, error) {
	if periods <= 0 {
		return Rate{}, fmt.Errorf("computing nominal rate of %v: %w: periods must be positive", effective, ErrInvalidArgument)
	}
	if effective.value <= -1 {
		return Rate{}, fmt.Errorf("computing nominal rate of %v: %w: rate must be greater than -100%%", effective, ErrInvalidArgument)
	}
	m := float64(periods)
	r, err := newRateSafe(m * (math.Pow(effective.Factor(), 1/m) - 1))
	if err != nil {
		return Rate{}, fmt.Errorf("computing nominal rate of %v: %w", effective, err)
	}
	return r, nil
}

// factors returns the growth factor (1+r)^n and the annuity factor
// ((1+r)^n − 1)/r, which is n when r is zero.
func factors(r, n float64) (g, k float64, err error) {
	g = math.Pow(1+r, n)
	if r == 0 {
		k = n
	} else {
		k = (g - 1) / r
	}
	if !isFinite(g) || !isFinite(k) {
		return 0, 0, fmt.Errorf("%w: growth factor of %v over %v period(s) is not finite", ErrInvalidValue, r, n)
	}
	return g, k, nil
}
