package benchmark

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		times    Times
		expected float64
	}{
		{"zero", Times{}, 0},
		{"unit fields", Times{User: 1, System: 2, ChildrenUser: 3, ChildrenSystem: 4, Real: 5}, 10},
		{"real excluded", Times{User: 0.5, Real: 100}, 0.5},
		{"fractional", Times{User: 0.1, System: 0.2, ChildrenUser: 0.3, ChildrenSystem: 0.4}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.times.Total(); !almostEqual(got, tt.expected) {
				t.Errorf("Total() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestAddCommutative(t *testing.T) {
	a := Times{User: 1, System: 2, ChildrenUser: 3, ChildrenSystem: 4, Real: 5}
	b := Times{User: 0.5, System: 0.25, ChildrenUser: 0.125, ChildrenSystem: 2, Real: 1}

	ab := a.Add(b)
	ba := b.Add(a)
	for _, pair := range [][2]float64{
		{ab.User, ba.User},
		{ab.System, ba.System},
		{ab.ChildrenUser, ba.ChildrenUser},
		{ab.ChildrenSystem, ba.ChildrenSystem},
		{ab.Real, ba.Real},
	} {
		if !almostEqual(pair[0], pair[1]) {
			t.Errorf("Add not commutative: %v != %v", pair[0], pair[1])
		}
	}
}

func TestAddAssociative(t *testing.T) {
	a := Times{User: 1, System: 2, Real: 3}
	b := Times{User: 4, ChildrenUser: 5, Real: 6}
	c := Times{System: 7, ChildrenSystem: 8, Real: 9}

	left := a.Add(b).Add(c)
	right := a.Add(b.Add(c))
	if !almostEqual(left.Total(), right.Total()) || !almostEqual(left.Real, right.Real) {
		t.Errorf("Add not associative: %+v != %+v", left, right)
	}
}

func TestSubRecoversAdd(t *testing.T) {
	a := Times{User: 1, System: 2, ChildrenUser: 3, ChildrenSystem: 4, Real: 5}
	b := Times{User: 0.1, System: 0.2, ChildrenUser: 0.3, ChildrenSystem: 0.4, Real: 0.5}

	got := a.Add(b).Sub(b)
	if !almostEqual(got.User, a.User) || !almostEqual(got.System, a.System) ||
		!almostEqual(got.ChildrenUser, a.ChildrenUser) ||
		!almostEqual(got.ChildrenSystem, a.ChildrenSystem) ||
		!almostEqual(got.Real, a.Real) {
		t.Errorf("Add then Sub did not recover original: %+v", got)
	}
}

func TestDivMulRoundTrip(t *testing.T) {
	orig := Times{User: 1.5, System: 2.5, ChildrenUser: 3.5, ChildrenSystem: 4.5, Real: 5.5}

	for _, n := range []float64{1, 2, 3, 7.5} {
		got := orig.Div(n).Mul(n)
		if !almostEqual(got.User, orig.User) || !almostEqual(got.Real, orig.Real) ||
			!almostEqual(got.Total(), orig.Total()) {
			t.Errorf("Div(%v).Mul(%v) = %+v, expected %+v", n, n, got, orig)
		}
	}
}

func TestDivKeepsLabel(t *testing.T) {
	orig := Times{User: 4, Label: "avg"}
	if got := orig.Div(2); got.Label != "avg" || !almostEqual(got.User, 2) {
		t.Errorf("Div() = %+v, expected User=2 Label=avg", got)
	}
}

func TestAddIn(t *testing.T) {
	rec := Times{User: 1, Real: 2}

	got, err := rec.AddIn(func() error {
		time.Sleep(20 * time.Millisecond)
		return nil
	})
	if err != nil {
		t.Fatalf("AddIn() unexpected error: %v", err)
	}
	if got != &rec {
		t.Error("AddIn should return the receiver")
	}
	if rec.Real < 2.02 {
		t.Errorf("Real = %v, expected at least 2.02 after accumulating a 20ms job", rec.Real)
	}
	if rec.User < 1 {
		t.Errorf("User = %v, expected prior value preserved", rec.User)
	}
}

func TestAddInPropagatesError(t *testing.T) {
	rec := Times{User: 1}
	if _, err := rec.AddIn(func() error { return errBoom }); err != errBoom {
		t.Errorf("AddIn() error = %v, expected %v", err, errBoom)
	}
	if !almostEqual(rec.User, 1) {
		t.Errorf("failed AddIn must not modify the record, got User = %v", rec.User)
	}
}

func TestFields(t *testing.T) {
	rec := Times{User: 1, System: 2, ChildrenUser: 3, ChildrenSystem: 4, Real: 5, Label: "job"}
	fields := rec.Fields()

	if len(fields) != len(FieldNames) {
		t.Fatalf("Fields() has %d keys, expected %d", len(fields), len(FieldNames))
	}
	expected := map[string]interface{}{
		"utime":  1.0,
		"stime":  2.0,
		"cutime": 3.0,
		"cstime": 4.0,
		"real":   5.0,
		"label":  "job",
	}
	for _, name := range FieldNames {
		got, ok := fields[name]
		if !ok {
			t.Errorf("Fields() missing key %q", name)
			continue
		}
		if got != expected[name] {
			t.Errorf("Fields()[%q] = %v, expected %v", name, got, expected[name])
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		times    Times
		expected string
	}{
		{
			"zero record",
			Times{},
			"  0.000000   0.000000   0.000000 (  0.000000)\n",
		},
		{
			"unit fields",
			Times{User: 1, System: 2, ChildrenUser: 3, ChildrenSystem: 4, Real: 5},
			"  1.000000   2.000000  10.000000 (  5.000000)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.times.String(); got != tt.expected {
				t.Errorf("String() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
