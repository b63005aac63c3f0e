// Package trident runs the three-phase symbol pipeline:
// Transmit (write), Receive (read), Verify (discriminant gate, execute).
package trident

import (
	"go.uber.org/zap"

	"github.com/obinexus/riftplayer/go-engine/internal/functor"
	"github.com/obinexus/riftplayer/go-engine/internal/symbol"
	"github.com/obinexus/riftplayer/go-engine/internal/symtab"
)

// #region pipeline

// Pipeline threads token sequences through the three phases. Its only
// mutable resources are the functor and the symbol table.
type Pipeline struct {
	ff    *functor.FilterFlash
	table *symtab.Table
	log   *zap.Logger
}

// New wires a pipeline. logger may be nil.
func New(ff *functor.FilterFlash, table *symtab.Table, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{ff: ff, table: table, log: logger}
}

// Table exposes the symbol table for snapshot reads.
func (p *Pipeline) Table() *symtab.Table {
	return p.table
}

// Run applies all three phases in order and returns the verified
// sequence. Empty input yields an empty sequence, never an error.
func (p *Pipeline) Run(tokens []*symbol.Token) []*symbol.Token {
	return p.Verify(p.Receive(p.Transmit(tokens)))
}

// #endregion pipeline

// #region transmit

// Transmit grants the write bit on every token. Tristate and category
// are untouched in this phase.
func (p *Pipeline) Transmit(tokens []*symbol.Token) []*symbol.Token {
	for _, tok := range tokens {
		tok.Perm |= symbol.PermWrite
	}
	p.log.Debug("transmit", zap.Int("tokens", len(tokens)))
	return tokens
}

// #endregion transmit

// #region receive

// Receive grants the read bit and assigns tristate by category:
// identifier/number/glyph confirm, unknown holds, everything else is
// negated.
func (p *Pipeline) Receive(tokens []*symbol.Token) []*symbol.Token {
	for _, tok := range tokens {
		tok.Perm |= symbol.PermRead
		switch tok.Category {
		case symbol.CategoryIdentifier, symbol.CategoryNumber, symbol.CategoryGlyph:
			tok.TriState = symbol.Yes
			tok.Polarity = symbol.PolarityPositive
		case symbol.CategoryUnknown:
			tok.TriState = symbol.Maybe
			tok.Polarity = symbol.PolarityNegative
		default:
			tok.TriState = symbol.No
			tok.Polarity = symbol.PolarityNegative
		}
	}
	p.log.Debug("receive", zap.Int("tokens", len(tokens)))
	return tokens
}

// #endregion receive

// #region verify

// baseConfidence maps the post-Receive tristate to the gate input.
// Unknown tokens are pinned to 0 regardless of tristate so they can
// never promote past the gate, only hold.
func baseConfidence(tok *symbol.Token) float64 {
	if tok.Category == symbol.CategoryUnknown {
		return 0
	}
	switch tok.TriState {
	case symbol.Yes:
		return 1.0
	case symbol.Maybe:
		return 0.5
	default:
		return 0
	}
}

// Verify feeds each token's confidence through the discriminant gate
// (a=1, b=4·confidence, c=1). Order and Consensus grant full rwx and
// force Yes; Chaos drops to read-only and holds at Maybe unless the
// token was already negated. Every token is retained in the symbol
// table keyed by its literal text.
func (p *Pipeline) Verify(tokens []*symbol.Token) []*symbol.Token {
	for _, tok := range tokens {
		conf := baseConfidence(tok)
		tok.Confidence = conf
		tok.State = p.ff.Classify(1, conf*4, 1)

		switch tok.State {
		case symbol.Order, symbol.Consensus:
			tok.Perm = symbol.PermFull
			tok.TriState = symbol.Yes
		case symbol.Chaos:
			tok.Perm = symbol.PermRead
			if tok.TriState != symbol.No {
				tok.TriState = symbol.Maybe
			}
		}

		p.table.Push(tok)
	}
	p.log.Debug("verify", zap.Int("tokens", len(tokens)))
	return tokens
}

// #endregion verify
