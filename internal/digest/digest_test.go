package digest_test

import (
	"testing"

	"shopfront/internal/digest"
)

func TestSumDeterministic(t *testing.T) {
	a := digest.Sum("Passw0rd!")
	b := digest.Sum("Passw0rd!")
	if a != b {
		t.Fatalf("same input produced different digests: %s vs %s", a, b)
	}
}

func TestSumDistinguishesInputs(t *testing.T) {
	if digest.Sum("alpha") == digest.Sum("beta") {
		t.Fatal("distinct inputs collided")
	}
	if digest.Sum("") == digest.Sum(" ") {
		t.Fatal("empty and space collided")
	}
}

func TestSumFixedWidthHex(t *testing.T) {
	for _, in := range []string{"", "x", "a much longer input string than usual"} {
		got := digest.Sum(in)
		if len(got) != 16 {
			t.Fatalf("digest of %q has width %d, want 16", in, len(got))
		}
		for _, r := range got {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
				t.Fatalf("digest of %q contains non-hex rune %q", in, r)
			}
		}
	}
}
