package lexer

import (
	"testing"
	"time"

	"github.com/obinexus/riftplayer/go-engine/internal/symbol"
)

func TestClassifyCategories(t *testing.T) {
	cases := []struct {
		fragment string
		want     symbol.Category
	}{
		{"hello", symbol.CategoryIdentifier},
		{"_x1", symbol.CategoryIdentifier},
		{"42", symbol.CategoryNumber},
		{"3.14", symbol.CategoryNumber},
		{"+", symbol.CategoryOperator},
		{"=", symbol.CategoryOperator},
		{",", symbol.CategoryPunctuation},
		{"(", symbol.CategoryPunctuation},
		{"λ", symbol.CategoryGlyph},
		{"世界", symbol.CategoryGlyph},
		{"???", symbol.CategoryUnknown},
		{"+=", symbol.CategoryUnknown},
		{"4two", symbol.CategoryUnknown},
	}
	for _, tc := range cases {
		if got := Classify(tc.fragment); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.fragment, got, tc.want)
		}
	}
}

func TestSplitExpression(t *testing.T) {
	got := Split("x + 42 = result")
	want := []string{"x", "+", "42", "=", "result"}
	if len(got) != len(want) {
		t.Fatalf("expected %d fragments, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fragment %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitGroupsDelimiterRuns(t *testing.T) {
	got := Split("a+=b")
	want := []string{"a", "+=", "b"}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplitEmptyInputs(t *testing.T) {
	if got := Split(""); len(got) != 0 {
		t.Fatalf("expected no fragments for empty input, got %v", got)
	}
	if got := Split("   \t\n"); len(got) != 0 {
		t.Fatalf("expected no fragments for whitespace, got %v", got)
	}
}

func TestTokenizeDefaults(t *testing.T) {
	now := time.Now().UTC()
	tokens := Tokenize("alpha ???", 7, now)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	for _, tok := range tokens {
		if tok.TriState != symbol.Maybe {
			t.Errorf("token %q: expected MAYBE default, got %s", tok.Key, tok.TriState)
		}
		if tok.State != symbol.Chaos {
			t.Errorf("token %q: expected CHAOS default, got %s", tok.Key, tok.State)
		}
		if tok.Perm != symbol.PermNone {
			t.Errorf("token %q: expected zero permission, got %s", tok.Key, tok.Perm)
		}
		if tok.FrameIndex != 7 {
			t.Errorf("token %q: expected frame 7, got %d", tok.Key, tok.FrameIndex)
		}
		if tok.Tag != symbol.ProvenanceTag {
			t.Errorf("token %q: missing provenance tag", tok.Key)
		}
	}
	if tokens[0].Category != symbol.CategoryIdentifier {
		t.Errorf("expected IDENTIFIER, got %s", tokens[0].Category)
	}
	if tokens[1].Category != symbol.CategoryUnknown {
		t.Errorf("expected UNKNOWN, got %s", tokens[1].Category)
	}
}
