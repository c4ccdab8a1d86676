package tvm_test

import (
	"errors"
	"fmt"

	"github.com/govalues/tvm"
)

// In this example, a loan amortization schedule is generated for a loan with
// an initial amount of $12,000, an annual interest rate of 10%, and
// a repayment period of 1 year.
func Example_loanAmortization() {
	// Set up initial loan balance and interest rate
	initialBalance := tvm.MustParseAmount("$12,000")
	yearlyRate := tvm.MustParseRate("10%")
	monthlyRate, err := yearlyRate.Quo(12)
	if err != nil {
		panic(err)
	}

	// Display the initial loan balance and interest rate
	fmt.Printf("Initial Balance = %v\n", initialBalance)
	fmt.Printf("Interest Rate   = %v\n\n", yearlyRate)
	fmt.Println("Month  Repayment   Principal    Interest Outstanding")

	// Generate the amortization schedule
	schedule, err := tvm.Amortize(initialBalance, monthlyRate, 12)
	if err != nil {
		panic(err)
	}

	// Display the amortization schedule, showing the monthly
	// repayment, principal, interest and outstanding loan balance
	for i := 0; i < schedule.Period.Len(); i++ {
		fmt.Printf("%5v %10v %11v %11v %11v\n",
			schedule.Period.At(i),
			schedule.Payment.At(i),
			schedule.Principal.At(i),
			schedule.Interest.At(i),
			schedule.Balance.At(i),
		)
	}

	// Calculate and display the total amounts repaid
	totalPayment, err := schedule.TotalPayment()
	if err != nil {
		panic(err)
	}
	totalInterest, err := schedule.TotalInterest()
	if err != nil {
		panic(err)
	}
	fmt.Printf("Total %10v %11v %11v\n", totalPayment, initialBalance, totalInterest)

	// Output:
	// Initial Balance = $12000.00
	// Interest Rate   = 10.00%
	//
	// Month  Repayment   Principal    Interest Outstanding
	//     1   $1054.99     $954.99     $100.00   $11045.01
	//     2   $1054.99     $962.95      $92.04   $10082.06
	//     3   $1054.99     $970.97      $84.02    $9111.09
	//     4   $1054.99     $979.06      $75.93    $8132.03
	//     5   $1054.99     $987.22      $67.77    $7144.81
	//     6   $1054.99     $995.45      $59.54    $6149.36
	//     7   $1054.99    $1003.75      $51.24    $5145.61
	//     8   $1054.99    $1012.11      $42.88    $4133.50
	//     9   $1054.99    $1020.54      $34.45    $3112.96
	//    10   $1054.99    $1029.05      $25.94    $2083.91
	//    11   $1054.99    $1037.62      $17.37    $1046.29
	//    12   $1055.01    $1046.29       $8.72       $0.00
	// Total  $12659.90   $12000.00     $659.90
}

// In this example, the rate of return of an investment paying $100 per month
// for 12 months on a $1,000 deposit is solved with a tighter tolerance.
func Example_rateOfReturn() {
	solver := tvm.NewRateSolver()
	solver.Tolerance = 1e-9

	pmt := tvm.MustParseAmount("-$100")
	pv := tvm.MustParseAmount("$1,000")
	rate, err := solver.Solve(12, pmt, pv, tvm.Amount{}, tvm.MustParseRate("1%"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("Monthly Rate = %v\n", rate)

	// Check the answer
	back, err := tvm.PV(rate, 12, pmt, tvm.Amount{})
	if err != nil {
		panic(err)
	}
	fmt.Printf("Present Value = %v\n", back)

	// Output:
	// Monthly Rate = 2.92%
	// Present Value = $1000.00
}

func ExampleParseAmount() {
	fmt.Println(tvm.ParseAmount("-$1,234.5"))
	// Output: -$1234.50 <nil>
}

func ExampleParseRate() {
	fmt.Println(tvm.ParseRate("7.5%"))
	fmt.Println(tvm.ParseRate("0.075"))
	// Output:
	// 7.50% <nil>
	// 7.50% <nil>
}

func ExampleAmount_Add() {
	a := tvm.MustParseAmount("$15.60")
	b := tvm.MustParseAmount("$8")
	fmt.Println(a.Add(b))
	// Output: $23.60 <nil>
}

func ExampleAmount_MulRate() {
	a := tvm.MustParseAmount("$200")
	r := tvm.MustParseRate("7.5%")
	fmt.Println(a.MulRate(r))
	// Output: $15.00 <nil>
}

func ExampleAmount_RoundToCurr() {
	a := tvm.MustNewAmount(15.678)
	fmt.Println(a.RoundToCurr().Float64())
	// Output: 15.68
}

func ExampleAmount_Decimal() {
	a := tvm.MustNewAmount(-12.345)
	fmt.Println(a.Decimal())
	// Output: -12.34 <nil>
}

func ExampleValue_Add() {
	a := tvm.MustParseValue("$100")
	r := tvm.MustParseValue("5%")
	fmt.Println(a.Add(r))
	fmt.Println(r.Add(a))
	// Output:
	// $100.05 <nil>
	// $100.05 <nil>
}

func ExampleValue_Mul() {
	a := tvm.MustParseValue("$5")
	r := tvm.MustParseValue("10%")
	_, err := a.Mul(r)
	fmt.Println(errors.Is(err, tvm.ErrAmbiguousUnitOperation))
	fmt.Println(a.Mul(tvm.NewInt(3)))
	// Output:
	// true
	// $15.00 <nil>
}

func ExampleValue_Multiply() {
	a := tvm.MustParseValue("$5")
	r := tvm.MustParseValue("10%")
	fmt.Println(a.Multiply(r))
	// Output: $0.50 <nil>
}

func ExampleValue_Divide() {
	a := tvm.MustParseValue("$50")
	b := tvm.MustParseValue("$200")
	fmt.Println(a.Divide(b))
	// Output: 0.25 <nil>
}

func ExampleValue_String() {
	fmt.Println(tvm.NewInt(12))
	fmt.Println(tvm.MustNewNumber(3))
	fmt.Println(tvm.MustParseValue("2.5"))
	fmt.Println(tvm.MustParseValue("-$50"))
	fmt.Println(tvm.MustParseValue("10%"))
	// Output:
	// 12
	// 3.0
	// 2.5
	// -$50.00
	// 10.00%
}

func ExampleSeries_String() {
	s := tvm.MustParseSeries("$100", "10%", 3)
	fmt.Println(s)
	fmt.Println(tvm.Series{})
	// Output:
	// ┌─────────┐
	// │ $100.00 │
	// ├─────────┤
	// │  10.00% │
	// ├─────────┤
	// │       3 │
	// └─────────┘
	// ┌───────┐
	// │ Empty │
	// └───────┘
}

func ExampleSeries_Mean() {
	s := tvm.MustParseSeries("$10", "$20", "$40")
	fmt.Println(s.Mean())
	// Output: $23.33 <nil>
}

func ExampleSeries_StdevP() {
	s := tvm.MustParseSeries(2, 4, 4, 4, 5, 5, 7, 9)
	fmt.Println(s.StdevP())
	// Output: 2.0 <nil>
}

func ExampleSeries_Median() {
	s := tvm.MustParseSeries(4, 1, 3, 2)
	fmt.Println(s.Median())
	// Output: 2.5 <nil>
}

func ExampleSeries_Sum() {
	s := tvm.MustParseSeries(1, "$2", "50%")
	fmt.Println(s.Sum())
	fmt.Println(tvm.Series{}.Sum())
	// Output:
	// $3.50 <nil>
	// 0 <nil>
}

func ExampleFV() {
	rate := tvm.MustParseRate("5%")
	pv := tvm.MustParseAmount("-$1,000")
	fmt.Println(tvm.FV(rate, 10, tvm.Amount{}, pv))
	// Output: $1628.89 <nil>
}

func ExamplePV() {
	rate := tvm.MustParseRate("10%")
	pmt := tvm.MustParseAmount("-$576.19")
	fmt.Println(tvm.PV(rate, 2, pmt, tvm.Amount{}))
	// Output: $1000.00 <nil>
}

func ExamplePMT() {
	rate := tvm.MustParseRate("0.5%")
	pv := tvm.MustParseAmount("$100,000")
	fmt.Println(tvm.PMT(rate, 360, pv, tvm.Amount{}))
	// Output: -$599.55 <nil>
}

func ExampleNPER() {
	rate := tvm.MustParseRate("1%")
	pmt := tvm.MustParseAmount("-$100")
	pv := tvm.MustParseAmount("$1,000")
	n, err := tvm.NPER(rate, pmt, pv, tvm.Amount{})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", n)
	// Output: 10.5886
}

func ExampleNPV() {
	rate := tvm.MustParseRate("10%")
	flows := tvm.MustParseSeries("$110", "$121")
	fmt.Println(tvm.NPV(rate, flows))
	// Output: $200.00 <nil>
}

func ExampleEffectiveRate() {
	nominal := tvm.MustParseRate("12%")
	fmt.Println(tvm.EffectiveRate(nominal, 12))
	// Output: 12.68% <nil>
}

func ExampleNewTable() {
	t, err := tvm.NewTable(
		tvm.Column{Label: "Year", Series: tvm.MustParseSeries(1, 2)},
		tvm.Column{Label: "Cash Flow", Series: tvm.MustParseSeries("$4", "$5")},
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(t)
	// Output:
	// ┏━━━━━━┯━━━━━━━━━━━┓
	// ┃ Year │ Cash Flow ┃
	// ┣━━━━━━┿━━━━━━━━━━━┫
	// ┃    1 │     $4.00 ┃
	// ┠──────┼───────────┨
	// ┃    2 │     $5.00 ┃
	// ┗━━━━━━┷━━━━━━━━━━━┛
}
