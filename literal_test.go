package cdcl

import "testing"

func TestNewLiteral(t *testing.T) {
	cases := []struct {
		v    int
		want Literal
	}{
		{3, Literal{ID: "3", Sign: true}},
		{-3, Literal{ID: "3", Sign: false}},
		{1, Literal{ID: "1", Sign: true}},
	}
	for _, tt := range cases {
		if got := NewLiteral(tt.v); got != tt.want {
			t.Errorf("NewLiteral(%d) = %+v, want %+v", tt.v, got, tt.want)
		}
	}
}

func TestNewLiteralZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewLiteral(0) did not panic")
		}
	}()
	NewLiteral(0)
}

func TestLiteralNegateAndPositive(t *testing.T) {
	a := lit("x")
	na := a.Negate()
	if na.Sign {
		t.Fatalf("Negate() of positive literal should be negative, got %+v", na)
	}
	if na.Negate() != a {
		t.Fatalf("double negate should round-trip, got %+v", na.Negate())
	}
	neg := lit("-x")
	if neg.Positive() != a {
		t.Fatalf("Positive() of -x should be x, got %+v", neg.Positive())
	}
	if !a.IsPositive() {
		t.Fatal("x should be positive")
	}
	if neg.IsPositive() {
		t.Fatal("-x should not be positive")
	}
}

func TestLiteralString(t *testing.T) {
	if got := lit("x").String(); got != "x" {
		t.Errorf("String() of x = %q, want %q", got, "x")
	}
	if got := lit("-x").String(); got != "-x" {
		t.Errorf("String() of -x = %q, want %q", got, "-x")
	}
}
