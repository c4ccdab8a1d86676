package tvm

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/montanaflynn/stats"
)

// Series type represents an ordered sequence of values.
// Elements may be of different kinds, and arithmetic between a series and
// a single value broadcasts the value over every element.
//
// Arithmetic and statistics never modify the receiver, only the explicitly
// named in-place methods [Series.Sort], [Series.Reverse] and [Series.Clear] do.
// They never touch elements shared with a copy of the series made by assignment.
// A series is not safe for concurrent modification.
type Series struct {
	vals []Value
}

// NewSeries returns a series holding the given elements in order.
func NewSeries(elems ...Valuer) Series {
	vals := make([]Value, len(elems))
	for i, e := range elems {
		vals[i] = e.Value()
	}
	return Series{vals: vals}
}

// SeriesOf returns a series of plain numbers.
// Numbers without a fractional part become integral numbers.
//
// SeriesOf returns an error if any of the numbers is a special value (NaN or Inf).
func SeriesOf(nums ...float64) (Series, error) {
	vals := make([]Value, len(nums))
	for i, f := range nums {
		v, err := newValueSafe(KindNumber, f != math.Trunc(f), f)
		if err != nil {
			return Series{}, fmt.Errorf("converting element %v: %w", i, err)
		}
		vals[i] = v
	}
	return Series{vals: vals}, nil
}

// ParseSeries converts a sequence of heterogeneous elements to a series.
// Supported element types are the signed and unsigned integer types
// (integral numbers), float32 and float64 (numbers), strings (see [ParseValue])
// and any [Valuer].
//
// ParseSeries returns an error if an element cannot be converted.
func ParseSeries(elems []any) (Series, error) {
	vals := make([]Value, len(elems))
	for i, e := range elems {
		v, err := toValue(e)
		if err != nil {
			return Series{}, fmt.Errorf("converting element %v: %w", i, err)
		}
		vals[i] = v
	}
	return Series{vals: vals}, nil
}

// MustParseSeries is like [ParseSeries] but panics if an element cannot be converted.
func MustParseSeries(elems ...any) Series {
	s, err := ParseSeries(elems)
	if err != nil {
		panic(fmt.Sprintf("ParseSeries(%v) failed: %v", elems, err))
	}
	return s
}

func toValue(e any) (Value, error) {
	switch e := e.(type) {
	case Valuer:
		return e.Value(), nil
	case int:
		return NewInt(int64(e)), nil
	case int8:
		return NewInt(int64(e)), nil
	case int16:
		return NewInt(int64(e)), nil
	case int32:
		return NewInt(int64(e)), nil
	case int64:
		return NewInt(e), nil
	case uint:
		return newValueUnsafe(KindNumber, false, float64(e)), nil
	case uint8:
		return NewInt(int64(e)), nil
	case uint16:
		return NewInt(int64(e)), nil
	case uint32:
		return NewInt(int64(e)), nil
	case uint64:
		return newValueUnsafe(KindNumber, false, float64(e)), nil
	case float32:
		return NewNumber(float64(e))
	case float64:
		return NewNumber(e)
	case string:
		return ParseValue(e)
	default:
		return Value{}, fmt.Errorf("%w: type %T is not supported", ErrInvalidValue, e)
	}
}

// Len returns the number of elements.
func (s Series) Len() int {
	return len(s.vals)
}

// At returns the element at index i.
// At panics if i is out of range.
func (s Series) At(i int) Value {
	return s.vals[i]
}

// Values returns a copy of the elements.
func (s Series) Values() []Value {
	return slices.Clone(s.vals)
}

// Floats returns the underlying floats of the elements.
func (s Series) Floats() []float64 {
	fs := make([]float64, len(s.vals))
	for i, v := range s.vals {
		fs[i] = v.num
	}
	return fs
}

// Copy returns a series owning a copy of the elements.
func (s Series) Copy() Series {
	return Series{vals: slices.Clone(s.vals)}
}

// Append returns a series with the given elements added at the end.
func (s Series) Append(elems ...Valuer) Series {
	vals := make([]Value, len(s.vals), len(s.vals)+len(elems))
	copy(vals, s.vals)
	for _, e := range elems {
		vals = append(vals, e.Value())
	}
	return Series{vals: vals}
}

// Add returns the element-wise sum of series s and t.
// If the series differ in length, the missing trailing elements of the shorter
// one are treated as the integral number 0.
//
// Add returns an error if any of the sums fails, see [Value.Add].
func (s Series) Add(t Series) (Series, error) {
	r, err := s.zip(t, Value.Add)
	if err != nil {
		return Series{}, fmt.Errorf("adding series: %w", err)
	}
	return r, nil
}

// Sub returns the element-wise difference between series s and t,
// with the same zero filling as [Series.Add].
//
// Sub returns an error if any of the differences fails, see [Value.Sub].
func (s Series) Sub(t Series) (Series, error) {
	r, err := s.zip(t, Value.Sub)
	if err != nil {
		return Series{}, fmt.Errorf("subtracting series: %w", err)
	}
	return r, nil
}

func (s Series) zip(t Series, op func(Value, Valuer) (Value, error)) (Series, error) {
	n := max(len(s.vals), len(t.vals))
	vals := make([]Value, n)
	for i := 0; i < n; i++ {
		var a, b Value
		if i < len(s.vals) {
			a = s.vals[i]
		}
		if i < len(t.vals) {
			b = t.vals[i]
		}
		v, err := op(a, b)
		if err != nil {
			return Series{}, err
		}
		vals[i] = v
	}
	return Series{vals: vals}, nil
}

// AddValue returns a series with v added to every element.
func (s Series) AddValue(v Valuer) (Series, error) {
	return s.broadcast(Value.Add, v)
}

// SubValue returns a series with v subtracted from every element.
func (s Series) SubValue(v Valuer) (Series, error) {
	return s.broadcast(Value.Sub, v)
}

// Mul returns a series with every element multiplied by v.
// See [Value.Mul] for the kinds of the resulting elements.
func (s Series) Mul(v Valuer) (Series, error) {
	return s.broadcast(Value.Mul, v)
}

// Quo returns a series with every element divided by v.
// See [Value.Quo] for the kinds of the resulting elements.
func (s Series) Quo(v Valuer) (Series, error) {
	return s.broadcast(Value.Quo, v)
}

// Pow returns a series with every element raised to the power of v.
func (s Series) Pow(v Valuer) (Series, error) {
	return s.broadcast(Value.Pow, v)
}

func (s Series) broadcast(op func(Value, Valuer) (Value, error), v Valuer) (Series, error) {
	vals := make([]Value, len(s.vals))
	for i, e := range s.vals {
		r, err := op(e, v)
		if err != nil {
			return Series{}, fmt.Errorf("element %v: %w", i, err)
		}
		vals[i] = r
	}
	return Series{vals: vals}, nil
}

// Neg returns a series with every element negated.
func (s Series) Neg() Series {
	vals := make([]Value, len(s.vals))
	for i, v := range s.vals {
		vals[i] = v.Neg()
	}
	return Series{vals: vals}
}

// Sort sorts the elements of s by their underlying floats.
// The sort is stable.
func (s *Series) Sort() {
	s.vals = slices.Clone(s.vals)
	slices.SortStableFunc(s.vals, func(a, b Value) int {
		return cmp.Compare(a.num, b.num)
	})
}

// Sorted returns a sorted copy of the series.
func (s Series) Sorted() Series {
	s.Sort()
	return s
}

// Reverse reverses the order of the elements of s.
func (s *Series) Reverse() {
	s.vals = slices.Clone(s.vals)
	slices.Reverse(s.vals)
}

// Reversed returns a reversed copy of the series.
func (s Series) Reversed() Series {
	s.Reverse()
	return s
}

// Clear removes all elements of s.
func (s *Series) Clear() {
	s.vals = nil
}

// Sum returns the sum of the elements, folded with [Value.Add] from the
// integral number 0.
// The sum of an empty series is 0.
func (s Series) Sum() (Value, error) {
	var acc Value
	for _, v := range s.vals {
		var err error
		acc, err = acc.Add(v)
		if err != nil {
			return Value{}, fmt.Errorf("computing sum: %w", err)
		}
	}
	return acc, nil
}

// Prod returns the product of the elements, folded with [Value.Multiply]
// from the integral number 1.
// The product of an empty series is 1.
func (s Series) Prod() (Value, error) {
	acc := NewInt(1)
	for _, v := range s.vals {
		var err error
		acc, err = acc.Multiply(v)
		if err != nil {
			return Value{}, fmt.Errorf("computing product: %w", err)
		}
	}
	return acc, nil
}

// Mean returns the sum of the elements divided by their number.
//
// Mean returns an error if the series is empty.
func (s Series) Mean() (Value, error) {
	if len(s.vals) == 0 {
		return Value{}, fmt.Errorf("computing mean: %w", ErrEmptySeries)
	}
	sum, err := s.Sum()
	if err != nil {
		return Value{}, err
	}
	m, err := sum.Quo(NewInt(int64(len(s.vals))))
	if err != nil {
		return Value{}, fmt.Errorf("computing mean: %w", err)
	}
	return m, nil
}

// VarP returns the population variance of the underlying floats,
// rewrapped into the element kind (see [Series.ElemKind]).
//
// VarP returns an error if the series is empty.
func (s Series) VarP() (Value, error) {
	if len(s.vals) == 0 {
		return Value{}, fmt.Errorf("computing population variance: %w", ErrEmptySeries)
	}
	f, err := stats.PopulationVariance(s.Floats())
	if err != nil {
		return Value{}, fmt.Errorf("computing population variance: %w", err)
	}
	return s.rewrap(f)
}

// VarS returns the sample variance of the underlying floats,
// rewrapped into the element kind (see [Series.ElemKind]).
//
// VarS returns an error if the series has fewer than 2 elements.
func (s Series) VarS() (Value, error) {
	if len(s.vals) < 2 {
		return Value{}, fmt.Errorf("computing sample variance of %v element(s): %w", len(s.vals), ErrInsufficientData)
	}
	f, err := stats.SampleVariance(s.Floats())
	if err != nil {
		return Value{}, fmt.Errorf("computing sample variance: %w", err)
	}
	return s.rewrap(f)
}

// StdevP returns the population standard deviation of the underlying floats,
// rewrapped into the element kind (see [Series.ElemKind]).
//
// StdevP returns an error if the series is empty.
func (s Series) StdevP() (Value, error) {
	if len(s.vals) == 0 {
		return Value{}, fmt.Errorf("computing population standard deviation: %w", ErrEmptySeries)
	}
	f, err := stats.StandardDeviationPopulation(s.Floats())
	if err != nil {
		return Value{}, fmt.Errorf("computing population standard deviation: %w", err)
	}
	return s.rewrap(f)
}

// StdevS returns the sample standard deviation of the underlying floats,
// rewrapped into the element kind (see [Series.ElemKind]).
//
// StdevS returns an error if the series has fewer than 2 elements.
func (s Series) StdevS() (Value, error) {
	if len(s.vals) < 2 {
		return Value{}, fmt.Errorf("computing sample standard deviation of %v element(s): %w", len(s.vals), ErrInsufficientData)
	}
	f, err := stats.StandardDeviationSample(s.Floats())
	if err != nil {
		return Value{}, fmt.Errorf("computing sample standard deviation: %w", err)
	}
	return s.rewrap(f)
}

// Quantile returns the q-quantile of the underlying floats, linearly
// interpolated between the two nearest ranks, rewrapped into the element
// kind (see [Series.ElemKind]).
//
// Quantile returns an error if:
//   - the series is empty;
//   - q is not within the range [0, 1].
func (s Series) Quantile(q float64) (Value, error) {
	if len(s.vals) == 0 {
		return Value{}, fmt.Errorf("computing %v-quantile: %w", q, ErrEmptySeries)
	}
	if !(q >= 0 && q <= 1) {
		return Value{}, fmt.Errorf("computing %v-quantile: %w: q must be within [0, 1]", q, ErrInvalidArgument)
	}
	fs := s.Floats()
	slices.Sort(fs)
	h := float64(len(fs)-1) * q
	i := math.Floor(h)
	f := h - i
	k := int(i)
	if f == 0 {
		return s.rewrap(fs[k])
	}
	return s.rewrap(fs[k]*(1-f) + fs[k+1]*f)
}

// Median returns the 0.5-quantile, see [Series.Quantile].
func (s Series) Median() (Value, error) {
	return s.Quantile(0.5)
}

// ElemKind returns the kind of the first element, or [KindNumber] for
// an empty series.
// Statistics derived from the spread of the elements are returned in this kind,
// as non-integral numbers if the kind is a number.
func (s Series) ElemKind() Kind {
	if len(s.vals) == 0 {
		return KindNumber
	}
	return s.vals[0].kind
}

func (s Series) rewrap(f float64) (Value, error) {
	return newValueSafe(s.ElemKind(), true, f)
}

// AsAmount returns a series with every underlying float rewrapped as an amount.
func (s Series) AsAmount() Series {
	return s.conv(Value.AsAmount)
}

// AsRate returns a series with every underlying float rewrapped as a rate.
func (s Series) AsRate() Series {
	return s.conv(Value.AsRate)
}

// AsNumber returns a series with every underlying float rewrapped as a number.
func (s Series) AsNumber() Series {
	return s.conv(Value.AsNumber)
}

func (s Series) conv(f func(Value) Value) Series {
	vals := make([]Value, len(s.vals))
	for i, v := range s.vals {
		vals[i] = f(v)
	}
	return Series{vals: vals}
}

// Box drawing of an empty series.
const emptySeriesBox = "┌───────┐\n" +
	"│ Empty │\n" +
	"└───────┘"

// String implements the [fmt.Stringer] interface and returns the series as
// a bordered column, one element per row, right-justified to the widest element:
//
//	┌─────────┐
//	│ $100.00 │
//	├─────────┤
//	│  10.00% │
//	└─────────┘
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s Series) String() string {
	if len(s.vals) == 0 {
		return emptySeriesBox
	}
	cells := make([]string, len(s.vals))
	width := 0
	for i, v := range s.vals {
		cells[i] = v.String()
		width = max(width, runewidth.StringWidth(cells[i]))
	}
	rule := strings.Repeat("─", width+2)

	var b strings.Builder
	b.WriteString("┌" + rule + "┐\n")
	for i, c := range cells {
		b.WriteString("│ " + runewidth.FillLeft(c, width) + " │\n")
		if i < len(cells)-1 {
			b.WriteString("├" + rule + "┤\n")
		}
	}
	b.WriteString("└" + rule + "┘")
	return b.String()
}
