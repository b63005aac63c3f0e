// Package lexer splits raw text into typed symbol tokens. Classification
// is heuristic and rule-ordered: the first matching pattern wins, and a
// fragment no rule claims is UNKNOWN rather than an error.
package lexer

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/obinexus/riftplayer/go-engine/internal/symbol"
)

// #region rules

type rule struct {
	category symbol.Category
	pattern  *regexp.Regexp
}

// rules are tested in priority order; identifier beats glyph, single-char
// operator beats punctuation.
var rules = []rule{
	{symbol.CategoryIdentifier, regexp.MustCompile(`^[a-zA-Z_]\w*$`)},
	{symbol.CategoryNumber, regexp.MustCompile(`^\d+(\.\d+)?$`)},
	{symbol.CategoryOperator, regexp.MustCompile(`^[+\-*/=<>!&|^~%]$`)},
	{symbol.CategoryGlyph, regexp.MustCompile(`^[^\x00-\x7F]+$`)},
	{symbol.CategoryPunctuation, regexp.MustCompile(`^[.,;:()\[\]{}"]$`)},
	{symbol.CategoryWhitespace, regexp.MustCompile(`^\s+$`)},
}

// Classify assigns a lexical category to a single fragment.
func Classify(fragment string) symbol.Category {
	for _, r := range rules {
		if r.pattern.MatchString(fragment) {
			return r.category
		}
	}
	return symbol.CategoryUnknown
}

// #endregion rules

// #region split

// delimiters is the fixed glyph set the splitter breaks on, grouped into
// runs: "a+=b" yields "a", "+=", "b".
const delimiters = `+-*/=<>!&|^~%.,;:()[]{}"`

func isDelimiter(r rune) bool {
	return strings.ContainsRune(delimiters, r)
}

// Split breaks raw text into non-empty fragments, grouping consecutive
// delimiter characters and discarding whitespace runs.
func Split(raw string) []string {
	var frags []string
	var cur strings.Builder
	inDelim := false

	flush := func() {
		if cur.Len() > 0 {
			frags = append(frags, cur.String())
			cur.Reset()
		}
	}

	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
			flush()
		case isDelimiter(r):
			if !inDelim {
				flush()
			}
			inDelim = true
			cur.WriteRune(r)
		default:
			if inDelim {
				flush()
			}
			inDelim = false
			cur.WriteRune(r)
		}
	}
	flush()
	return frags
}

// #endregion split

// #region tokenize

// Tokenize produces the ordered token sequence for one text fragment.
// Pure function of the input, frame index, and clock reading: every
// token starts at the Maybe/Chaos defaults with zero permission.
func Tokenize(raw string, frameIndex int, now time.Time) []*symbol.Token {
	frags := Split(raw)
	tokens := make([]*symbol.Token, 0, len(frags))
	for _, f := range frags {
		tokens = append(tokens, symbol.New(f, Classify(f), frameIndex, now))
	}
	return tokens
}

// #endregion tokenize
