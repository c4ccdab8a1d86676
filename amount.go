package tvm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// CurrencySymbol is the symbol prefixed to every formatted [Amount].
// All amounts are denominated in a single implicit currency.
const CurrencySymbol = "$"

// Amount type represents a monetary amount in a single implicit currency.
// Its zero value corresponds to "$0.00".
// Amount is immutable and is designed to be safe for concurrent use by
// multiple goroutines.
type Amount struct {
	value float64 // finite magnitude in currency units
}

// newAmountUnsafe creates a new amount without checking the value.
// Use it only if you are absolutely sure that the argument is finite.
func newAmountUnsafe(f float64) Amount {
	return Amount{value: f}
}

// newAmountSafe creates a new amount and checks that the value is finite.
func newAmountSafe(f float64) (Amount, error) {
	if !isFinite(f) {
		return Amount{}, fmt.Errorf("%w: special value %v", ErrInvalidValue, f)
	}
	return newAmountUnsafe(f), nil
}

// NewAmount returns an amount equal to f.
//
// NewAmount returns an error if f is a special value (NaN or Inf).
func NewAmount(f float64) (Amount, error) {
	a, err := newAmountSafe(f)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(f float64) Amount {
	a, err := NewAmount(f)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v) failed: %v", f, err))
	}
	return a
}

// NewAmountFromDecimal converts a decimal to a (possibly rounded) amount.
// See also method [Amount.Decimal].
func NewAmountFromDecimal(d decimal.Decimal) Amount {
	f, _ := d.Float64()
	return newAmountUnsafe(f)
}

// ParseAmount converts a string to an amount.
// The input string may carry a sign, the [CurrencySymbol] and thousands
// separators:
//
//	100
//	$100.00
//	-$1,200.50
//	$-1200.5
//
// ParseAmount returns an error if the string does not represent a finite amount.
func ParseAmount(s string) (Amount, error) {
	f, err := parseScalar(s, CurrencySymbol, "")
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmountSafe(f)
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", s, err))
	}
	return a
}

// Float64 returns the magnitude of the amount.
func (a Amount) Float64() float64 {
	return a.value
}

// Decimal returns the decimal representation of the amount rounded to cents.
// It returns an error if the integer part of the amount does not fit
// into [decimal.MaxPrec] digits.
// See also constructor [NewAmountFromDecimal].
func (a Amount) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromFloat64(a.value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", a.value, err)
	}
	return d.Round(2), nil
}

// Value returns the amount as a [Value] of kind [KindAmount].
func (a Amount) Value() Value {
	return newValueUnsafe(KindAmount, true, a.value)
}

// RoundToCurr returns an amount rounded to cents using
// [rounding half to even] (banker's rounding).
// Amounts outside of the decimal range are returned unchanged.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) RoundToCurr() Amount {
	d, err := a.Decimal()
	if err != nil {
		return a
	}
	return NewAmountFromDecimal(d)
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return sign(a.value)
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value == 0
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.value < 0
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return newAmountUnsafe(math.Abs(a.value))
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(-a.value)
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if the result is not finite.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := newAmountSafe(a.value + b.value)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

// AddNum returns the sum of amount a and a plain number e.
//
// AddNum returns an error if the result is not finite.
func (a Amount) AddNum(e float64) (Amount, error) {
	c, err := newAmountSafe(a.value + e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, e, err)
	}
	return c, nil
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if the result is not finite.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := newAmountSafe(a.value - b.value)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

// SubNum returns the difference between amount a and a plain number e.
//
// SubNum returns an error if the result is not finite.
func (a Amount) SubNum(e float64) (Amount, error) {
	c, err := newAmountSafe(a.value - e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, e, err)
	}
	return c, nil
}

// Mul returns the product of amount a and factor e.
//
// Mul returns an error if the result is not finite.
func (a Amount) Mul(e float64) (Amount, error) {
	c, err := newAmountSafe(a.value * e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

// MulRate returns the product of amount a and rate r,
// for example the interest accrued on a balance.
//
// MulRate returns an error if the result is not finite.
func (a Amount) MulRate(r Rate) (Amount, error) {
	c, err := newAmountSafe(a.value * r.value)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, r, err)
	}
	return c, nil
}

// MulAmount returns the raw product of amounts a and b.
// The product has no monetary meaning on its own, it is intended for
// intermediate results the caller rescales later.
//
// MulAmount returns an error if the result is not finite.
func (a Amount) MulAmount(b Amount) (Amount, error) {
	c, err := newAmountSafe(a.value * b.value)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, b, err)
	}
	return c, nil
}

// Quo returns the quotient of amount a and divisor e.
// See also method [Amount.Rat].
//
// Quo returns an error if the divisor is 0 or the result is not finite.
func (a Amount) Quo(e float64) (Amount, error) {
	c, err := newAmountSafe(a.value / e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return c, nil
}

// Rat returns the ratio between amounts a and b as a plain number.
// This method is useful for determining percentages within a single currency.
//
// Rat returns an error if the divisor is 0 or the result is not finite.
func (a Amount) Rat(b Amount) (float64, error) {
	f := a.value / b.value
	if !isFinite(f) {
		return 0, fmt.Errorf("computing [%v / %v]: %w: special value %v", a, b, ErrInvalidValue, f)
	}
	return f, nil
}

// Pow returns amount a raised to the power of e.
//
// Pow returns an error if the result is not finite, for example
// when a negative amount is raised to a fractional power.
func (a Amount) Pow(e float64) (Amount, error) {
	c, err := newAmountSafe(math.Pow(a.value, e))
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v ^ %v]: %w", a, e, err)
	}
	return c, nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func (a Amount) Cmp(b Amount) int {
	return cmpFloat(a.value, b.value)
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount with two digits after the decimal point,
// the sign placed before the [CurrencySymbol]:
//
//	$100.00
//	-$50.00
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	var b strings.Builder
	if a.value < 0 {
		b.WriteByte('-')
	}
	b.WriteString(CurrencySymbol)
	b.WriteString(formatFixed(math.Abs(a.value), 'f'))
	return b.String()
}

// formatFixed formats a non-negative float with two digits after the decimal
// point using verb 'f' (plain) or 'k' (percentage).
// The exact binary value is rounded, so 2.675 is formatted as "2.67".
func formatFixed(f float64, verb rune) string {
	if verb == 'k' {
		return strconv.FormatFloat(f*100, 'f', 2, 64) + "%"
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// parseScalar parses a signed decimal string, optionally prefixed by
// the given symbol and suffixed by the given suffix.
// Thousands separators are ignored.
func parseScalar(s, prefix, suffix string) (float64, error) {
	t := strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(t, "-") {
		neg, t = true, t[1:]
	} else if strings.HasPrefix(t, "+") {
		t = t[1:]
	}
	if prefix != "" {
		t = strings.TrimPrefix(t, prefix)
	}
	if suffix != "" {
		t = strings.TrimSuffix(t, suffix)
	}
	t = strings.TrimSpace(strings.ReplaceAll(t, ",", ""))
	if strings.HasPrefix(t, "-") {
		if neg {
			return 0, fmt.Errorf("%w: duplicate sign in %q", ErrInvalidValue, s)
		}
		neg, t = true, t[1:]
	}
	d, err := decimal.Parse(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidValue, s, err)
	}
	f, ok := d.Float64()
	if !ok {
		return 0, fmt.Errorf("%w: %q cannot be represented as a float", ErrInvalidValue, s)
	}
	if neg {
		f = -f
	}
	return f, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func sign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}

func cmpFloat(f, g float64) int {
	switch {
	case f < g:
		return -1
	case f > g:
		return 1
	default:
		return 0
	}
}
