/*
Package tvm implements time-value-of-money calculations over typed quantities.
It distinguishes plain numbers, monetary amounts and percentage rates, so that
formulas combining them produce results of a predictable kind.

# Features

  - Immutable [Amount], [Rate] and [Value] types, safe for concurrent use
  - Unit-aware arithmetic with fixed result-kind rules
  - [Series] with element-wise arithmetic and statistics
  - Present value, future value, payment, number of periods and net present
    value formulas
  - Rate of return solved with Newton's method, see [RateSolver]
  - Amortization schedules and box-drawing rendering of series and tables

# Representation

An [Amount] is a finite float in a single implicit currency, displayed with
a dollar sign and two digits after the decimal point, e.g. "-$50.00".
A [Rate] is a finite float ratio, displayed as a percentage, e.g. "10.00%".
A [Value] is a tagged union over a plain number, an amount and a rate.
Plain numbers remember whether they are integral.

# Operations

Addition and subtraction are defined between any kinds: an amount absorbs
a rate, and a number takes the kind of the other operand.
Multiplication and division by a plain number keep the kind of the other
operand. Multiplication and division between two non-number kinds have no
default meaning and fail with [ErrAmbiguousUnitOperation]; [Value.Multiply]
and [Value.Divide] state the intent explicitly.

Formulas use the cash-flow sign convention: money paid out is negative and
money received is positive.

# Errors

All errors wrap one of the exported sentinel errors, such as [ErrInvalidValue]
or [ErrDidNotConverge], and can be matched with [errors.Is].
Arithmetic never panics, only the Must* constructors do.
*/
package tvm
