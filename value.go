package tvm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the unit tag of a [Value].
type Kind uint8

const (
	KindNumber Kind = iota // plain number
	KindAmount             // monetary amount, see [Amount]
	KindRate               // ratio, see [Rate]

	kindAmbiguous Kind = 0xff // marks undefined cells of the dispatch tables
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindAmount:
		return "amount"
	case KindRate:
		return "rate"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Result kinds of binary operations, indexed by the kinds of the left and
// right operands.
// The additive table is symmetric, the others are not required to be.
var (
	// a + b, a - b
	addKinds = [3][3]Kind{
		KindNumber: {KindNumber, KindAmount, KindRate},
		KindAmount: {KindAmount, KindAmount, KindAmount},
		KindRate:   {KindRate, KindAmount, KindRate},
	}
	// a * b
	mulKinds = [3][3]Kind{
		KindNumber: {KindNumber, KindAmount, KindRate},
		KindAmount: {KindAmount, kindAmbiguous, kindAmbiguous},
		KindRate:   {KindRate, kindAmbiguous, kindAmbiguous},
	}
	// a / b
	quoKinds = [3][3]Kind{
		KindNumber: {KindNumber, KindNumber, KindNumber},
		KindAmount: {KindAmount, kindAmbiguous, kindAmbiguous},
		KindRate:   {KindRate, kindAmbiguous, kindAmbiguous},
	}
	// a ^ b
	powKinds = [3][3]Kind{
		KindNumber: {KindNumber, kindAmbiguous, kindAmbiguous},
		KindAmount: {KindAmount, kindAmbiguous, kindAmbiguous},
		KindRate:   {KindRate, kindAmbiguous, kindAmbiguous},
	}
	// a.Multiply(b)
	multiplyKinds = [3][3]Kind{
		KindNumber: {KindNumber, KindAmount, KindRate},
		KindAmount: {KindAmount, KindAmount, KindAmount},
		KindRate:   {KindRate, KindAmount, KindRate},
	}
	// a.Divide(b)
	divideKinds = [3][3]Kind{
		KindNumber: {KindNumber, KindNumber, KindNumber},
		KindAmount: {KindAmount, KindNumber, KindAmount},
		KindRate:   {KindRate, KindNumber, KindNumber},
	}
)

// Valuer is implemented by [Amount], [Rate] and [Value] itself.
// Plain numbers are converted with [NewInt] and [NewNumber].
type Valuer interface {
	Value() Value
}

// Value type is a tagged union over a plain number, an [Amount] and a [Rate].
// Arithmetic between values follows fixed result-kind rules, so that formulas
// can combine mixed operands without inspecting their kinds:
//
//	| a \ b  | Number | Amount | Rate   |
//	| ------ | ------ | ------ | ------ |
//	| Number | Number | Amount | Rate   |
//	| Amount | Amount | Amount | Amount |
//	| Rate   | Rate   | Amount | Rate   |
//
// The table above applies to [Value.Add] and [Value.Sub].
// [Value.Mul] and [Value.Quo] are defined when at least one operand is
// a number and [Value.Pow] when the exponent is a number.
// The explicit [Value.Multiply] and [Value.Divide] are defined for all kinds.
//
// Plain numbers are either integral or not.
// Integral numbers stay integral under addition, subtraction, multiplication
// and exponentiation by a non-negative integral number.
//
// The zero value is the integral number 0.
// Value is immutable and is designed to be safe for concurrent use by
// multiple goroutines.
type Value struct {
	kind  Kind
	float bool    // non-integral number; always true for amounts and rates
	num   float64 // finite
}

func newValueUnsafe(k Kind, float bool, f float64) Value {
	if k != KindNumber {
		float = true
	}
	return Value{kind: k, float: float, num: f}
}

func newValueSafe(k Kind, float bool, f float64) (Value, error) {
	if !isFinite(f) {
		return Value{}, fmt.Errorf("%w: special value %v", ErrInvalidValue, f)
	}
	return newValueUnsafe(k, float, f), nil
}

// NewInt returns an integral number.
func NewInt(i int64) Value {
	return newValueUnsafe(KindNumber, false, float64(i))
}

// NewNumber returns a non-integral number equal to f.
//
// NewNumber returns an error if f is a special value (NaN or Inf).
func NewNumber(f float64) (Value, error) {
	v, err := newValueSafe(KindNumber, true, f)
	if err != nil {
		return Value{}, fmt.Errorf("converting float: %w", err)
	}
	return v, nil
}

// MustNewNumber is like [NewNumber] but panics if the number cannot be constructed.
func MustNewNumber(f float64) Value {
	v, err := NewNumber(f)
	if err != nil {
		panic(fmt.Sprintf("NewNumber(%v) failed: %v", f, err))
	}
	return v
}

// ValueOf converts an amount, a rate or a value to a value.
// A value is returned as is, values are never nested.
func ValueOf(x Valuer) Value {
	return x.Value()
}

// ParseValue converts a string to a value.
// The kind is derived from the notation:
//
//	$1,200.50  amount
//	-$50       amount
//	10%        rate
//	12         integral number
//	2.5        number
func ParseValue(s string) (Value, error) {
	t := strings.TrimSpace(s)
	switch {
	case strings.Contains(t, CurrencySymbol):
		a, err := ParseAmount(t)
		if err != nil {
			return Value{}, err
		}
		return a.Value(), nil
	case hasPercentSuffix(t):
		r, err := ParseRate(t)
		if err != nil {
			return Value{}, err
		}
		return r.Value(), nil
	}
	f, err := parseScalar(t, "", "")
	if err != nil {
		return Value{}, fmt.Errorf("parsing number: %w", err)
	}
	integral := !strings.ContainsAny(t, ".eE") && f == math.Trunc(f)
	return newValueSafe(KindNumber, !integral, f)
}

// MustParseValue is like [ParseValue] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding values.
func MustParseValue(s string) Value {
	v, err := ParseValue(s)
	if err != nil {
		panic(fmt.Sprintf("ParseValue(%q) failed: %v", s, err))
	}
	return v
}

// Value implements the [Valuer] interface and returns v itself.
func (v Value) Value() Value {
	return v
}

// Kind returns the unit tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsInt returns true if the value is an integral number.
func (v Value) IsInt() bool {
	return v.kind == KindNumber && !v.float
}

// Float64 returns the underlying float regardless of the kind.
func (v Value) Float64() float64 {
	return v.num
}

// Amount returns the underlying float as an amount regardless of the kind.
func (v Value) Amount() Amount {
	return newAmountUnsafe(v.num)
}

// Rate returns the underlying float as a rate regardless of the kind.
func (v Value) Rate() Rate {
	return newRateUnsafe(v.num)
}

// AsAmount returns the underlying float rewrapped as an amount.
func (v Value) AsAmount() Value {
	return newValueUnsafe(KindAmount, true, v.num)
}

// AsRate returns the underlying float rewrapped as a rate.
func (v Value) AsRate() Value {
	return newValueUnsafe(KindRate, true, v.num)
}

// AsNumber returns the underlying float rewrapped as a plain number.
// Numbers are returned as is.
func (v Value) AsNumber() Value {
	if v.kind == KindNumber {
		return v
	}
	return newValueUnsafe(KindNumber, true, v.num)
}

// Sign returns:
//
//	-1 if v < 0
//	 0 if v = 0
//	+1 if v > 0
func (v Value) Sign() int {
	return sign(v.num)
}

// IsZero returns:
//
//	true  if v = 0
//	false otherwise
func (v Value) IsZero() bool {
	return v.num == 0
}

// Neg returns a value of the same kind with the opposite sign.
func (v Value) Neg() Value {
	return newValueUnsafe(v.kind, v.float, -v.num)
}

// Abs returns the absolute value, keeping the kind.
func (v Value) Abs() Value {
	return newValueUnsafe(v.kind, v.float, math.Abs(v.num))
}

// Add returns the sum of values v and w.
// An amount absorbs a rate in both orders, see [Value] for the full table.
//
// Add returns an error if the result is not finite.
func (v Value) Add(w Valuer) (Value, error) {
	u := w.Value()
	r, err := newValueSafe(addKinds[v.kind][u.kind], v.float || u.float, v.num+u.num)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v + %v]: %w", v, u, err)
	}
	return r, nil
}

// Sub returns the difference between values v and w.
// The result kind follows the same table as [Value.Add].
//
// Sub returns an error if the result is not finite.
func (v Value) Sub(w Valuer) (Value, error) {
	u := w.Value()
	r, err := newValueSafe(addKinds[v.kind][u.kind], v.float || u.float, v.num-u.num)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v - %v]: %w", v, u, err)
	}
	return r, nil
}

// Mul returns the product of values v and w.
// The non-number operand determines the kind of the result.
//
// Mul returns an error if:
//   - neither operand is a number, see [Value.Multiply] instead;
//   - the result is not finite.
func (v Value) Mul(w Valuer) (Value, error) {
	u := w.Value()
	r, err := v.binary(mulKinds, u, v.num*u.num, v.float || u.float)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v * %v]: %w", v, u, err)
	}
	return r, nil
}

// Quo returns the quotient of values v and w.
// A number divisor keeps the kind of the dividend, and a number divided by
// an amount or a rate is a number. The quotient is never integral.
//
// Quo returns an error if:
//   - neither operand is a number, see [Value.Divide] instead;
//   - the divisor is 0 or the result is not finite.
func (v Value) Quo(w Valuer) (Value, error) {
	u := w.Value()
	r, err := v.binary(quoKinds, u, v.num/u.num, true)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v / %v]: %w", v, u, err)
	}
	return r, nil
}

// Pow returns value v raised to the power of w, keeping the kind of v.
//
// Pow returns an error if:
//   - the exponent is not a number;
//   - the result is not finite.
func (v Value) Pow(w Valuer) (Value, error) {
	u := w.Value()
	float := v.float || u.float || u.num < 0
	r, err := v.binary(powKinds, u, math.Pow(v.num, u.num), float)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v ^ %v]: %w", v, u, err)
	}
	return r, nil
}

// Multiply returns the product of values v and w for any pair of kinds:
//
//	| a \ b  | Number | Amount | Rate   |
//	| ------ | ------ | ------ | ------ |
//	| Number | Number | Amount | Rate   |
//	| Amount | Amount | Amount | Amount |
//	| Rate   | Rate   | Amount | Rate   |
//
// An amount times an amount is the raw product of magnitudes and an amount
// times a rate is the amount scaled by the ratio.
//
// Multiply returns an error if the result is not finite.
func (v Value) Multiply(w Valuer) (Value, error) {
	u := w.Value()
	r, err := v.binary(multiplyKinds, u, v.num*u.num, v.float || u.float)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v * %v]: %w", v, u, err)
	}
	return r, nil
}

// Divide returns the quotient of values v and w for any pair of kinds:
//
//	| a \ b  | Number | Amount | Rate   |
//	| ------ | ------ | ------ | ------ |
//	| Number | Number | Number | Number |
//	| Amount | Amount | Number | Amount |
//	| Rate   | Rate   | Number | Number |
//
// The ratio of two amounts or two rates is a plain number.
//
// Divide returns an error if the divisor is 0 or the result is not finite.
func (v Value) Divide(w Valuer) (Value, error) {
	u := w.Value()
	r, err := v.binary(divideKinds, u, v.num/u.num, true)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v / %v]: %w", v, u, err)
	}
	return r, nil
}

func (v Value) binary(kinds [3][3]Kind, u Value, f float64, float bool) (Value, error) {
	k := kinds[v.kind][u.kind]
	if k == kindAmbiguous {
		return Value{}, fmt.Errorf("%w: %v and %v", ErrAmbiguousUnitOperation, v.kind, u.kind)
	}
	return newValueSafe(k, float, f)
}

// Cmp compares the underlying floats of values regardless of their kinds
// and returns:
//
//	-1 if v < w
//	 0 if v = w
//	+1 if v > w
func (v Value) Cmp(w Valuer) int {
	return cmpFloat(v.num, w.Value().num)
}

// Equal returns true if the values have the same underlying float,
// regardless of their kinds. Compare [Value.Kind] to tell kinds apart.
func (v Value) Equal(w Valuer) bool {
	return v.num == w.Value().num
}

// Clamp bounds the value between min and max, keeping the kind of v.
// An integral number bounded by a non-integral number becomes non-integral.
//
// Clamp returns an error if min is greater than max.
func (v Value) Clamp(min, max Valuer) (Value, error) {
	lo, hi := min.Value(), max.Value()
	if lo.num > hi.num {
		return Value{}, fmt.Errorf("clamping %v to [%v, %v]: %w: invalid range", v, lo, hi, ErrInvalidArgument)
	}
	float := v.float
	if v.kind == KindNumber && (lo.float || hi.float) {
		float = true
	}
	f := v.num
	switch {
	case f < lo.num:
		f = lo.num
	case f > hi.num:
		f = hi.num
	}
	return newValueUnsafe(v.kind, float, f), nil
}

// String implements the [fmt.Stringer] interface.
// Amounts and rates are formatted by [Amount.String] and [Rate.String],
// non-integral numbers always carry a decimal point:
//
//	12
//	2.5
//	3.0
//	$100.00
//	10.00%
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Value) String() string {
	switch v.kind {
	case KindAmount:
		return v.Amount().String()
	case KindRate:
		return v.Rate().String()
	}
	s := strconv.FormatFloat(v.num, 'f', -1, 64)
	if v.float && !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
