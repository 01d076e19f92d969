package rational

import "testing"

func TestNew_Reduces(t *testing.T) {
	f := New(2, 4)
	if f.Num != 1 || f.Den != 2 {
		t.Errorf("New(2,4) = %d/%d, want 1/2", f.Num, f.Den)
	}
}

func TestNew_NormalizesNegativeDenominator(t *testing.T) {
	f := New(1, -2)
	if f.Num != -1 || f.Den != 2 {
		t.Errorf("New(1,-2) = %d/%d, want -1/2", f.Num, f.Den)
	}
}

func TestAddSubMul(t *testing.T) {
	a := New(1, 4)
	b := New(1, 8)
	if got := a.Add(b); !got.Equal(New(3, 8)) {
		t.Errorf("1/4 + 1/8 = %s, want 3/8", got)
	}
	if got := a.Sub(b); !got.Equal(New(1, 8)) {
		t.Errorf("1/4 - 1/8 = %s, want 1/8", got)
	}
	if got := a.Mul(New(2, 3)); !got.Equal(New(1, 6)) {
		t.Errorf("1/4 * 2/3 = %s, want 1/6", got)
	}
}

func TestDivIntMulInt(t *testing.T) {
	twoThirds := New(2, 3)
	if got := twoThirds.DivInt(2); !got.Equal(New(1, 3)) {
		t.Errorf("(2/3)/2 = %s, want 1/3", got)
	}
	if got := New(1, 48).MulInt(7); !got.Equal(New(7, 48)) {
		t.Errorf("7*(1/48) = %s, want 7/48", got)
	}
}

func TestCmpAndIsZero(t *testing.T) {
	if New(1, 2).Cmp(New(1, 3)) <= 0 {
		t.Error("expected 1/2 > 1/3")
	}
	if !Zero().IsZero() {
		t.Error("Zero() should be zero")
	}
	if New(0, 5).Cmp(Zero()) != 0 {
		t.Error("0/5 should equal Zero()")
	}
}

func TestString(t *testing.T) {
	if got := New(3, 1).String(); got != "3/1" {
		t.Errorf("String() = %q, want %q", got, "3/1")
	}
}

func TestPercent_HalfToEven(t *testing.T) {
	cases := []struct {
		f    Fraction
		want float64
	}{
		{New(1, 8), 12.5},
		{New(1, 3), 33.33},
		{New(7, 48), 14.58},
		{New(1, 4), 25},
	}
	for _, c := range cases {
		if got := c.f.Percent(); got != c.want {
			t.Errorf("%s.Percent() = %v, want %v", c.f, got, c.want)
		}
	}
}

func TestSum(t *testing.T) {
	fs := []Fraction{New(1, 8), New(7, 48), New(7, 48), New(7, 96), New(7, 96)}
	total := Sum(fs)
	if !total.Equal(New(1, 1)) {
		t.Errorf("Sum = %s, want 1/1", total)
	}
}

func TestSum_Empty(t *testing.T) {
	if got := Sum(nil); !got.IsZero() {
		t.Errorf("Sum(nil) = %s, want 0", got)
	}
}
