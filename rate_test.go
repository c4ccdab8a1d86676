package tvm

import (
	"errors"
	"math"
	"testing"
)

func TestRate_ZeroValue(t *testing.T) {
	got := Rate{}
	want := MustNewRate(0)
	if got != want {
		t.Errorf("Rate{} = %q, want %q", got, want)
	}
}

func TestNewRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []float64{0, 0.1, -0.05, 12}
		for _, f := range tests {
			got, err := NewRate(f)
			if err != nil {
				t.Errorf("NewRate(%v) failed: %v", f, err)
				continue
			}
			if got.Float64() != f {
				t.Errorf("NewRate(%v).Float64() = %v, want %v", f, got.Float64(), f)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]float64{
			"nan": math.NaN(),
			"inf": math.Inf(1),
		}
		for name, f := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewRate(f)
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("NewRate(%v) = %v, want %v", f, err, ErrInvalidValue)
				}
			})
		}
	})
}

func TestParseRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want float64
		}{
			{"10%", 0.1},
			{"-2.5%", -0.025},
			{"0.1", 0.1},
			{" 5 % ", 0.05},
			{"100%", 1},
		}
		for _, tt := range tests {
			got, err := ParseRate(tt.s)
			if err != nil {
				t.Errorf("ParseRate(%q) failed: %v", tt.s, err)
				continue
			}
			if math.Abs(got.Float64()-tt.want) > 1e-15 {
				t.Errorf("ParseRate(%q) = %v, want %v", tt.s, got.Float64(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"empty":    "",
			"percent":  "%",
			"currency": "$5",
			"letters":  "ten%",
		}
		for name, s := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseRate(s)
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("ParseRate(%q) = %v, want %v", s, err, ErrInvalidValue)
				}
			})
		}
	})
}

func TestRate_Arithmetic(t *testing.T) {
	r, q := MustNewRate(0.1), MustNewRate(0.05)

	got, err := r.Add(q)
	if err != nil {
		t.Fatalf("%v.Add(%v) failed: %v", r, q, err)
	}
	if math.Abs(got.Float64()-0.15) > 1e-15 {
		t.Errorf("%v.Add(%v) = %v, want %v", r, q, got.Float64(), 0.15)
	}

	got, err = r.Sub(q)
	if err != nil {
		t.Fatalf("%v.Sub(%v) failed: %v", r, q, err)
	}
	if math.Abs(got.Float64()-0.05) > 1e-15 {
		t.Errorf("%v.Sub(%v) = %v, want %v", r, q, got.Float64(), 0.05)
	}

	got, err = r.AddNum(1)
	if err != nil {
		t.Fatalf("%v.AddNum(1) failed: %v", r, err)
	}
	if got.Float64() != 1.1 {
		t.Errorf("%v.AddNum(1) = %v, want %v", r, got.Float64(), 1.1)
	}

	got, err = r.SubNum(0.1)
	if err != nil {
		t.Fatalf("%v.SubNum(0.1) failed: %v", r, err)
	}
	if !got.IsZero() {
		t.Errorf("%v.SubNum(0.1) = %v, want 0", r, got)
	}

	got, err = r.Mul(12)
	if err != nil {
		t.Fatalf("%v.Mul(12) failed: %v", r, err)
	}
	if math.Abs(got.Float64()-1.2) > 1e-15 {
		t.Errorf("%v.Mul(12) = %v, want %v", r, got.Float64(), 1.2)
	}

	got, err = r.MulRate(q)
	if err != nil {
		t.Fatalf("%v.MulRate(%v) failed: %v", r, q, err)
	}
	if math.Abs(got.Float64()-0.005) > 1e-15 {
		t.Errorf("%v.MulRate(%v) = %v, want %v", r, q, got.Float64(), 0.005)
	}

	got, err = r.Quo(2)
	if err != nil {
		t.Fatalf("%v.Quo(2) failed: %v", r, err)
	}
	if got.Float64() != 0.05 {
		t.Errorf("%v.Quo(2) = %v, want %v", r, got.Float64(), 0.05)
	}

	rat, err := r.Rat(q)
	if err != nil {
		t.Fatalf("%v.Rat(%v) failed: %v", r, q, err)
	}
	if rat != 2 {
		t.Errorf("%v.Rat(%v) = %v, want %v", r, q, rat, 2)
	}

	got, err = r.Pow(2)
	if err != nil {
		t.Fatalf("%v.Pow(2) failed: %v", r, err)
	}
	if math.Abs(got.Float64()-0.01) > 1e-15 {
		t.Errorf("%v.Pow(2) = %v, want %v", r, got.Float64(), 0.01)
	}

	if got := r.Neg(); got.Float64() != -0.1 {
		t.Errorf("%v.Neg() = %v, want %v", r, got.Float64(), -0.1)
	}
	if got := r.Neg().Abs(); got != r {
		t.Errorf("%v.Abs() = %v, want %v", r.Neg(), got, r)
	}
	if got := r.Factor(); got != 1.1 {
		t.Errorf("%v.Factor() = %v, want %v", r, got, 1.1)
	}
}

func TestRate_Errors(t *testing.T) {
	r := MustNewRate(0.1)
	tests := map[string]func() error{
		"quo zero": func() error { _, err := r.Quo(0); return err },
		"rat zero": func() error { _, err := r.Rat(Rate{}); return err },
		"pow":      func() error { _, err := r.Neg().Pow(0.5); return err },
		"mul":      func() error { _, err := MustNewRate(math.MaxFloat64).Mul(10); return err },
	}
	for name, f := range tests {
		t.Run(name, func(t *testing.T) {
			if err := f(); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("got %v, want %v", err, ErrInvalidValue)
			}
		})
	}
}

func TestRate_Cmp(t *testing.T) {
	r, q := MustNewRate(0.1), MustNewRate(0.2)
	if got := r.Cmp(q); got != -1 {
		t.Errorf("%v.Cmp(%v) = %v, want -1", r, q, got)
	}
	if got := q.Cmp(r); got != 1 {
		t.Errorf("%v.Cmp(%v) = %v, want 1", q, r, got)
	}
	if got := r.Cmp(r); got != 0 {
		t.Errorf("%v.Cmp(%v) = %v, want 0", r, r, got)
	}
}

func TestRate_String(t *testing.T) {
	tests := []struct {
		r    float64
		want string
	}{
		{0, "0.00%"},
		{0.1, "10.00%"},
		{-0.05, "-5.00%"},
		{0.12345, "12.35%"},
		{1.5, "150.00%"},
		{0.000049, "0.00%"},
		{0.00125, "0.12%"},
		{-0.12345, "-12.35%"},
	}
	for _, tt := range tests {
		r := MustNewRate(tt.r)
		if got := r.String(); got != tt.want {
			t.Errorf("NewRate(%v).String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}
