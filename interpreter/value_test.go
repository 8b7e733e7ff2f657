package interpreter

import "testing"

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		value Value
		want  bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{float64(0), true},
		{"", true},
		{"x", true},
	}
	for _, c := range cases {
		if got := IsTruthy(c.value); got != c.want {
			t.Fatalf("IsTruthy(%#v) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b Value
		want bool
	}{
		{nil, nil, true},
		{nil, float64(0), false},
		{float64(1), float64(1), true},
		{float64(1), float64(2), false},
		{"a", "a", true},
		{"a", "b", false},
		{true, true, true},
		{true, false, false},
		{float64(1), "1", false},
	}
	for _, c := range cases {
		if got := Equal(c.a, c.b); got != c.want {
			t.Fatalf("Equal(%#v, %#v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{float64(3), "3"},
		{float64(3.5), "3.5"},
		{"hello", "hello"},
	}
	for _, c := range cases {
		if got := Stringify(c.value); got != c.want {
			t.Fatalf("Stringify(%#v) = %q, want %q", c.value, got, c.want)
		}
	}
}
