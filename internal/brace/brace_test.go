package brace

import (
	"testing"
)

func alts(t *testing.T, pattern string, braceEnabled bool) []string {
	t.Helper()
	p, err := Parse([]byte(pattern), false, braceEnabled, DefaultConfig())
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	var out []string
	for _, c := range p.Components {
		var compAlts []string
		for _, a := range c.Alternatives {
			compAlts = append(compAlts, string(a))
		}
		out = append(out, compAlts...)
	}
	return out
}

func TestSplitSlashCollapsesEmpty(t *testing.T) {
	p, err := Parse([]byte("a//b"), false, false, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Components) != 2 {
		t.Fatalf("expected 2 components from a//b, got %d", len(p.Components))
	}
	if string(p.Components[0].Raw) != "a" || string(p.Components[1].Raw) != "b" {
		t.Fatalf("unexpected components: %q %q", p.Components[0].Raw, p.Components[1].Raw)
	}
}

func TestDoubleStarNeverExpands(t *testing.T) {
	p, err := Parse([]byte("a/**/{b,c}"), false, true, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Components) != 3 {
		t.Fatalf("expected 3 components, got %d", len(p.Components))
	}
	if !p.Components[1].IsRecursive {
		t.Fatal("expected middle component to be recursive")
	}
	if len(p.Components[1].Alternatives) != 1 || string(p.Components[1].Alternatives[0]) != "**" {
		t.Fatalf("expected ** to pass through as a single literal alternative, got %v", p.Components[1].Alternatives)
	}
}

func TestSimpleAlternation(t *testing.T) {
	got := alts(t, "{a,b,c}", true)
	want := []string{"a", "b", "c"}
	if !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestNestedAlternation(t *testing.T) {
	got := alts(t, "a.{b,{c,d}}", true)
	want := []string{"a.b", "a.c", "a.d"}
	if !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestSingleAlternativeStaysLiteral(t *testing.T) {
	got := alts(t, "{x}", true)
	want := []string{"{x}"}
	if !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestUnmatchedBraceIsLiteral(t *testing.T) {
	got := alts(t, "foo{bar", true)
	want := []string{"foo{bar"}
	if !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestEscapedBraceAndComma(t *testing.T) {
	// The escaped comma keeps the group split from happening at that point;
	// the backslash itself survives brace expansion and is resolved later
	// by internal/literal's decode step and the Component Matcher's
	// tokenizer.
	got := alts(t, `{a\,b,c}`, true)
	want := []string{`a\,b`, "c"}
	if !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDirectoryAlternativesAcrossComponents(t *testing.T) {
	p, err := Parse([]byte("{src,lib}/*.zig"), false, true, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(p.Components))
	}
	first := p.Components[0].Alternatives
	if len(first) != 2 || string(first[0]) != "src" || string(first[1]) != "lib" {
		t.Fatalf("unexpected first component alternatives: %v", toStrings(first))
	}
}

func TestTooManyAlternatives(t *testing.T) {
	pattern := "{a,b}{c,d}{e,f}{g,h}{i,j}"
	_, err := Parse([]byte(pattern), false, true, Config{MaxAlternatives: 4})
	if err != ErrTooManyAlternatives {
		t.Fatalf("expected ErrTooManyAlternatives, got %v", err)
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func toStrings(bs [][]byte) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = string(b)
	}
	return out
}
