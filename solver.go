package tvm

import (
	"fmt"
	"math"
)

// Defaults of [NewRateSolver] and [RATE].
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
	DefaultGuess         = 0.1
)

// RateSolver finds the periodic rate i solving the annuity equation
//
//	pv·(1+i)^n + pmt·((1+i)^n − 1)/i + fv = 0
//
// with Newton's method.
// The zero value is not usable, use [NewRateSolver] for the defaults.
// The solver is deterministic: identical inputs always take the same
// number of iterations.
type RateSolver struct {
	// Tolerance is both the convergence threshold on the rate step and
	// the magnitude under which a payment is treated as zero.
	Tolerance float64
	// MaxIterations bounds the number of Newton steps.
	MaxIterations int
}

// NewRateSolver returns a solver with [DefaultTolerance] and [DefaultMaxIterations].
func NewRateSolver() RateSolver {
	return RateSolver{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Solve returns the periodic rate for nper periods, payment pmt,
// present value pv and future value fv, starting from the guess.
//
// When the payment is zero the rate has the closed form (−fv/pv)^(1/n) − 1
// and no iteration takes place.
//
// Solve returns an error if:
//   - nper is not positive;
//   - the payment is zero and pv is zero;
//   - the payment is zero and −fv/pv is not positive;
//   - the guess is not greater than -100%;
//   - the iteration does not converge within MaxIterations steps;
//   - the iteration converges to a rate not greater than -100%.
func (s RateSolver) Solve(nper float64, pmt, pv, fv Amount, guess Rate) (Rate, error) {
	i, _, err := s.solve(nper, pmt.value, pv.value, fv.value, guess.value)
	if err != nil {
		return Rate{}, fmt.Errorf("computing rate [nper=%v pmt=%v pv=%v fv=%v]: %w", nper, pmt, pv, fv, err)
	}
	return i, nil
}

// solve returns the rate and the number of Newton steps taken.
func (s RateSolver) solve(n, pmt, pv, fv, guess float64) (Rate, int, error) {
	if !(n > 0) {
		return Rate{}, 0, fmt.Errorf("%w: number of periods must be positive", ErrInvalidArgument)
	}
	tol := s.Tolerance

	// Lump sum
	if math.Abs(pmt) < tol {
		if pv == 0 {
			return Rate{}, 0, fmt.Errorf("%w: present value is zero", ErrDegenerateInput)
		}
		// growth over all periods, (−fv/pv) − 1
		x := -(fv + pv) / pv
		if !(x > -1) {
			return Rate{}, 0, fmt.Errorf("%w: -fv/pv must be positive", ErrInvalidArgument)
		}
		r, err := newRateSafe(math.Expm1(math.Log1p(x) / n))
		return r, 0, err
	}

	// Newton-Raphson
	if !(guess > -1) {
		return Rate{}, 0, fmt.Errorf("%w: guess must be greater than -100%%", ErrInvalidArgument)
	}
	i := guess
	if math.Abs(i) < tol {
		i = tol
	}
	for k := 1; k <= s.MaxIterations; k++ {
		f, df := annuity(i, n, pmt, pv, fv)
		step := f / df
		if !isFinite(step) {
			return Rate{}, k, fmt.Errorf("%w: non-finite step at %v after %v iteration(s)", ErrDidNotConverge, i, k)
		}
		i -= step
		if math.Abs(step) < tol {
			if !(i > -1) {
				return Rate{}, k, fmt.Errorf("%w: converged to %v, not greater than -100%%", ErrDidNotConverge, i)
			}
			r, err := newRateSafe(i)
			return r, k, err
		}
	}
	return Rate{}, s.MaxIterations, fmt.Errorf("%w: no solution within %v iteration(s)", ErrDidNotConverge, s.MaxIterations)
}

// annuity returns the residual of the annuity equation at rate i and its
// derivative with respect to i.
func annuity(i, n, pmt, pv, fv float64) (f, df float64) {
	g := math.Pow(1+i, n)        // (1+i)^n
	dg := n * math.Pow(1+i, n-1) // d/di (1+i)^n
	f = pv*g + pmt*(g-1)/i + fv
	df = pv*dg + pmt*(dg*i-(g-1))/(i*i)
	return f, df
}
