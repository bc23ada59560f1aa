package validate_test

import (
	"testing"

	"shopfront/internal/validate"
)

func TestClean(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Jane Doe  ", "Jane Doe"},
		{"line\x00break\n", "linebreak"},
		{"tab\tseparated", "tabseparated"},
		{"plain", "plain"},
		{"\x1b[31mred\x1b[0m", "[31mred[0m"},
	}
	for _, c := range cases {
		if got := validate.Clean(c.in); got != c.want {
			t.Fatalf("Clean(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEmail(t *testing.T) {
	if _, ok := validate.Email("  user@example.com "); !ok {
		t.Fatal("trimmed valid email rejected")
	}
	for _, bad := range []string{"", "nope", "a@b", "user@@example.com"} {
		if _, ok := validate.Email(bad); ok {
			t.Fatalf("accepted %q", bad)
		}
	}
}

func TestDelta(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1", 1}, {"-2", -2}, {" 3 ", 3}, {"junk", 0}, {"", 0}, {"9000", 50}, {"-9000", -50},
	}
	for _, c := range cases {
		if got := validate.Delta(c.in); got != c.want {
			t.Fatalf("Delta(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
