package tvm

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column is a labelled series, the building block of a [Table].
type Column struct {
	Label  string
	Series Series
}

// Table type represents equally long series displayed side by side.
type Table struct {
	cols []Column
}

// NewTable returns a table with the given columns in order.
//
// NewTable returns an error if:
//   - there are no columns;
//   - all columns are empty;
//   - the columns differ in length.
func NewTable(cols ...Column) (Table, error) {
	t := Table{cols: append([]Column(nil), cols...)}
	if err := t.validate(); err != nil {
		return Table{}, fmt.Errorf("creating table: %w", err)
	}
	return t, nil
}

// MustNewTable is like [NewTable] but panics if the table cannot be created.
func MustNewTable(cols ...Column) Table {
	t, err := NewTable(cols...)
	if err != nil {
		panic(fmt.Sprintf("NewTable(...) failed: %v", err))
	}
	return t
}

func (t Table) validate() error {
	if len(t.cols) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidArgument)
	}
	rows := t.cols[0].Series.Len()
	for _, c := range t.cols[1:] {
		if c.Series.Len() != rows {
			return fmt.Errorf("%w: column %q has %v row(s), want %v", ErrInvalidArgument, c.Label, c.Series.Len(), rows)
		}
	}
	if rows == 0 {
		return fmt.Errorf("%w: no non-empty columns", ErrInvalidArgument)
	}
	return nil
}

// Columns returns a copy of the columns.
func (t Table) Columns() []Column {
	return append([]Column(nil), t.cols...)
}

// Rows returns the number of rows.
func (t Table) Rows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Series.Len()
}

// String implements the [fmt.Stringer] interface and returns the table in
// a box-drawing layout with centered labels and right-justified cells:
//
//	┏━━━━━━┯━━━━━━━━━━━┓
//	┃ Year │ Cash Flow ┃
//	┣━━━━━━┿━━━━━━━━━━━┫
//	┃    1 │     $4.00 ┃
//	┠──────┼───────────┨
//	┃    2 │     $5.00 ┃
//	┗━━━━━━┷━━━━━━━━━━━┛
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t Table) String() string {
	if err := t.validate(); err != nil {
		return fmt.Sprintf("%%!(tvm.Table=%v)", err)
	}

	// Cells and widths
	cells := make([][]string, len(t.cols))
	widths := make([]int, len(t.cols))
	for j, c := range t.cols {
		widths[j] = runewidth.StringWidth(c.Label)
		cells[j] = make([]string, c.Series.Len())
		for i, v := range c.Series.vals {
			cells[j][i] = v.String()
			widths[j] = max(widths[j], runewidth.StringWidth(cells[j][i]))
		}
	}

	rule := func(left, fill, sep, right string) string {
		parts := make([]string, len(widths))
		for j, w := range widths {
			parts[j] = strings.Repeat(fill, w+2)
		}
		return left + strings.Join(parts, sep) + right + "\n"
	}
	row := func(texts []string, align func(string, int) string) string {
		parts := make([]string, len(texts))
		for j, s := range texts {
			parts[j] = align(s, widths[j])
		}
		return "┃ " + strings.Join(parts, " │ ") + " ┃\n"
	}

	var b strings.Builder
	b.WriteString(rule("┏", "━", "┯", "┓"))
	labels := make([]string, len(t.cols))
	for j, c := range t.cols {
		labels[j] = c.Label
	}
	b.WriteString(row(labels, center))
	b.WriteString(rule("┣", "━", "┿", "┫"))
	texts := make([]string, len(t.cols))
	for i := 0; i < t.Rows(); i++ {
		if i > 0 {
			b.WriteString(rule("┠", "─", "┼", "┨"))
		}
		for j := range t.cols {
			texts[j] = cells[j][i]
		}
		b.WriteString(row(texts, runewidth.FillLeft))
	}
	s := rule("┗", "━", "┷", "┛")
	b.WriteString(strings.TrimSuffix(s, "\n"))
	return b.String()
}

// center pads s with spaces on both sides to the given width,
// the extra space going to the right.
func center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
