package strx

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "fallback"); got != "fallback" {
		t.Fatalf("Coalesce empty = %q", got)
	}
	if got := Coalesce("value", "fallback"); got != "value" {
		t.Fatalf("Coalesce non-empty = %q", got)
	}
}

func TestLowerASCII(t *testing.T) {
	type C struct {
		in, want string
	}
	for _, c := range []C{
		{"", ""},
		{"bluepill", "bluepill"},
		{"BluePill", "bluepill"},
		{"MAPLE", "maple"},
		{"pa9_PA10", "pa9_pa10"},
	} {
		if got := LowerASCII(c.in); got != c.want {
			t.Fatalf("LowerASCII(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	// Already-lower input must come back without copying.
	s := "already lower"
	if got := LowerASCII(s); got != s {
		t.Fatalf("LowerASCII(%q) = %q", s, got)
	}
}
