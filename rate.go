package tvm

import (
	"fmt"
	"math"
)

// Rate type represents a dimensionless ratio, such as an interest rate
// or a rate of return, where 0.10 means 10%.
// Its zero value corresponds to "0.00%".
// Rate is immutable and is designed to be safe for concurrent use by
// multiple goroutines.
type Rate struct {
	value float64 // finite ratio
}

func newRateUnsafe(f float64) Rate {
	return Rate{value: f}
}

func newRateSafe(f float64) (Rate, error) {
	if !isFinite(f) {
		return Rate{}, fmt.Errorf("%w: special value %v", ErrInvalidValue, f)
	}
	return newRateUnsafe(f), nil
}

// NewRate returns a rate equal to the ratio f.
//
// NewRate returns an error if f is a special value (NaN or Inf).
func NewRate(f float64) (Rate, error) {
	r, err := newRateSafe(f)
	if err != nil {
		return Rate{}, fmt.Errorf("converting float: %w", err)
	}
	return r, nil
}

// MustNewRate is like [NewRate] but panics if the rate cannot be constructed.
// It simplifies safe initialization of global variables holding rates.
func MustNewRate(f float64) Rate {
	r, err := NewRate(f)
	if err != nil {
		panic(fmt.Sprintf("NewRate(%v) failed: %v", f, err))
	}
	return r
}

// ParseRate converts a string to a rate.
// Strings with a trailing percent sign are read as percentages,
// other strings as ratios:
//
//	10%
//	-2.5%
//	0.1
//
// ParseRate returns an error if the string does not represent a finite rate.
func ParseRate(s string) (Rate, error) {
	f, err := parseRate(s)
	if err != nil {
		return Rate{}, fmt.Errorf("parsing rate: %w", err)
	}
	return newRateSafe(f)
}

// MustParseRate is like [ParseRate] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rates.
func MustParseRate(s string) Rate {
	r, err := ParseRate(s)
	if err != nil {
		panic(fmt.Sprintf("ParseRate(%q) failed: %v", s, err))
	}
	return r
}

func parseRate(s string) (float64, error) {
	if !hasPercentSuffix(s) {
		return parseScalar(s, "", "")
	}
	f, err := parseScalar(s, "", "%")
	if err != nil {
		return 0, err
	}
	return f / 100, nil
}

// Float64 returns the ratio of the rate.
func (r Rate) Float64() float64 {
	return r.value
}

// Value returns the rate as a [Value] of kind [KindRate].
func (r Rate) Value() Value {
	return newValueUnsafe(KindRate, true, r.value)
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r = 0
//	+1 if r > 0
func (r Rate) Sign() int {
	return sign(r.value)
}

// IsZero returns:
//
//	true  if r = 0
//	false otherwise
func (r Rate) IsZero() bool {
	return r.value == 0
}

// Abs returns the absolute value of the rate.
func (r Rate) Abs() Rate {
	return newRateUnsafe(math.Abs(r.value))
}

// Neg returns a rate with the opposite sign.
func (r Rate) Neg() Rate {
	return newRateUnsafe(-r.value)
}

// Add returns the sum of rates r and q.
//
// Add returns an error if the result is not finite.
func (r Rate) Add(q Rate) (Rate, error) {
	s, err := newRateSafe(r.value + q.value)
	if err != nil {
		return Rate{}, fmt.Errorf("computing [%v + %v]: %w", r, q, err)
	}
	return s, nil
}

// AddNum returns the sum of rate r and a plain number e.
//
// AddNum returns an error if the result is not finite.
func (r Rate) AddNum(e float64) (Rate, error) {
	s, err := newRateSafe(r.value + e)
	if err != nil {
		return Rate{}, fmt.Errorf("computing [%v + %v]: %w", r, e, err)
	}
	return s, nil
}

// Sub returns the difference between rates r and q.
//
// Sub returns an error if the result is not finite.
func (r Rate) Sub(q Rate) (Rate, error) {
	s, err := newRateSafe(r.value - q.value)
	if err != nil {
		return Rate{}, fmt.Errorf("computing [%v - %v]: %w", r, q, err)
	}
	return s, nil
}

// SubNum returns the difference between rate r and a plain number e.
//
// SubNum returns an error if the result is not finite.
func (r Rate) SubNum(e float64) (Rate, error) {
	s, err := newRateSafe(r.value - e)
	if err != nil {
		return Rate{}, fmt.Errorf("computing [%v - %v]: %w", r, e, err)
	}
	return s, nil
}

// Mul returns the product of rate r and factor e.
//
// Mul returns an error if the result is not finite.
func (r Rate) Mul(e float64) (Rate, error) {
	s, err := newRateSafe(r.value * e)
	if err != nil {
		return Rate{}, fmt.Errorf("computing [%v * %v]: %w", r, e, err)
	}
	return s, nil
}

// MulRate returns the raw product of rates r and q.
// See also function [CompoundRates] for the compounded product (1+r)(1+q)-1.
//
// MulRate returns an error if the result is not finite.
func (r Rate) MulRate(q Rate) (Rate, error) {
	s, err := newRateSafe(r.value * q.value)
	if err != nil {
		return Rate{}, fmt.Errorf("computing [%v * %v]: %w", r, q, err)
	}
	return s, nil
}

// Quo returns the quotient of rate r and divisor e.
//
// Quo returns an error if the divisor is 0 or the result is not finite.
func (r Rate) Quo(e float64) (Rate, error) {
	s, err := newRateSafe(r.value / e)
	if err != nil {
		return Rate{}, fmt.Errorf("computing [%v / %v]: %w", r, e, err)
	}
	return s, nil
}

// Rat returns the ratio between rates r and q as a plain number.
//
// Rat returns an error if the divisor is 0 or the result is not finite.
func (r Rate) Rat(q Rate) (float64, error) {
	f := r.value / q.value
	if !isFinite(f) {
		return 0, fmt.Errorf("computing [%v / %v]: %w: special value %v", r, q, ErrInvalidValue, f)
	}
	return f, nil
}

// Pow returns rate r raised to the power of e.
//
// Pow returns an error if the result is not finite.
func (r Rate) Pow(e float64) (Rate, error) {
	s, err := newRateSafe(math.Pow(r.value, e))
	if err != nil {
		return Rate{}, fmt.Errorf("computing [%v ^ %v]: %w", r, e, err)
	}
	return s, nil
}

// Factor returns the growth factor 1 + r.
func (r Rate) Factor() float64 {
	return 1 + r.value
}

// Cmp compares rates and returns:
//
//	-1 if r < q
//	 0 if r = q
//	+1 if r > q
func (r Rate) Cmp(q Rate) int {
	return cmpFloat(r.value, q.value)
}

// String implements the [fmt.Stringer] interface and returns the rate
// as a percentage with two digits after the decimal point, e.g. "10.00%".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rate) String() string {
	if r.value < 0 {
		return "-" + formatFixed(-r.value, 'k')
	}
	return formatFixed(r.value, 'k')
}

func hasPercentSuffix(s string) bool {
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ' ', '\t', '\n':
			continue
		case '%':
			return true
		default:
			return false
		}
	}
	return false
}
