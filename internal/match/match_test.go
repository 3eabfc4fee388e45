package match

import "testing"

func compile(t *testing.T, pattern string, extglob, period bool) *Pattern {
	t.Helper()
	return Compile([]byte(pattern), false, extglob, period)
}

func TestMatchLiteral(t *testing.T) {
	p := compile(t, "Cargo.toml", false, false)
	if !p.Match([]byte("Cargo.toml")) {
		t.Fatal("expected literal match")
	}
	if p.Match([]byte("Cargo.lock")) {
		t.Fatal("expected no match")
	}
}

func TestMatchStarAndQuestion(t *testing.T) {
	p := compile(t, "a*c?e", false, false)
	cases := map[string]bool{
		"abcde":   true,
		"ace":     false, // '?' still needs exactly one byte
		"abbbcxe": true,
		"acde":    true,
		"abcd":    false,
	}
	for in, want := range cases {
		if got := p.Match([]byte(in)); got != want {
			t.Errorf("Match(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMatchCharClass(t *testing.T) {
	p := compile(t, "[a-z]*", false, false)
	if !p.Match([]byte("other")) {
		t.Fatal("expected match")
	}
	if p.Match([]byte(".hidden")) {
		t.Fatal("[a-z] should never match a leading '.'")
	}
	if p.Match([]byte("Upper")) {
		t.Fatal("expected no match for uppercase (ASCII case-sensitive)")
	}

	neg := compile(t, "[!0-9]*", false, false)
	if neg.Match([]byte("1abc")) {
		t.Fatal("expected negated class to reject leading digit")
	}
	if !neg.Match([]byte("abc1")) {
		t.Fatal("expected negated class to accept non-digit lead")
	}
}

func TestMatchPeriodGuard(t *testing.T) {
	p := compile(t, "[a-z]*", false, true)
	if p.Match([]byte(".hidden")) {
		t.Fatal("period guard should reject leading '.' even though [a-z] syntactically could not match '.' anyway")
	}

	dotStar := compile(t, ".*", false, true)
	if !dotStar.Match([]byte(".hidden")) {
		t.Fatal("pattern starting with literal '.' should match dotfiles even under PERIOD")
	}
}

func TestMatchDashAtEdgesIsLiteral(t *testing.T) {
	p := compile(t, "[a-]", false, false)
	if !p.Match([]byte("-")) {
		t.Fatal("expected '-' to be a literal member when at the end of the class")
	}
	if p.Match([]byte("b")) {
		t.Fatal("expected no match for unrelated byte")
	}
}

func TestMatchExtGlobNegation(t *testing.T) {
	p := compile(t, "a.!(o)", true, false)
	for in, want := range map[string]bool{"a.c": true, "a.h": true, "a.o": false} {
		if got := p.Match([]byte(in)); got != want {
			t.Errorf("Match(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMatchExtGlobQuantifiers(t *testing.T) {
	opt := compile(t, "a?(b)c", true, false)
	if !opt.Match([]byte("ac")) || !opt.Match([]byte("abc")) || opt.Match([]byte("abbc")) {
		t.Fatal("?(b) should match zero or one 'b'")
	}

	star := compile(t, "a*(b)c", true, false)
	if !star.Match([]byte("ac")) || !star.Match([]byte("abc")) || !star.Match([]byte("abbbc")) {
		t.Fatal("*(b) should match zero or more 'b'")
	}

	plus := compile(t, "a+(b)c", true, false)
	if plus.Match([]byte("ac")) || !plus.Match([]byte("abc")) || !plus.Match([]byte("abbbc")) {
		t.Fatal("+(b) should match one or more 'b', never zero")
	}

	exactly := compile(t, "a@(b|c)d", true, false)
	if !exactly.Match([]byte("abd")) || !exactly.Match([]byte("acd")) || exactly.Match([]byte("ad")) || exactly.Match([]byte("abcd")) {
		t.Fatal("@(b|c) should match exactly one of b or c")
	}
}

func TestMatchWithoutExtGlobTreatsParensLiterally(t *testing.T) {
	p := compile(t, "a!(o)", false, false)
	if !p.Match([]byte("a!(o)")) {
		t.Fatal("without EXTGLOB, '!(o)' should be matched literally")
	}
}
