// Package interpreter coordinates one full pipeline pass per input
// fragment and owns the append-only interpretation log.
package interpreter

// #region imports
import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/obinexus/riftplayer/go-engine/internal/functor"
	"github.com/obinexus/riftplayer/go-engine/internal/lexer"
	"github.com/obinexus/riftplayer/go-engine/internal/symbol"
	"github.com/obinexus/riftplayer/go-engine/internal/symtab"
	"github.com/obinexus/riftplayer/go-engine/internal/trident"
	"github.com/obinexus/riftplayer/go-engine/internal/vtt"
)

// #endregion

// #region interpreter-struct

// Interpreter runs the trident pipeline and aggregates results. A
// single mutex serializes Interpret, Reset, and the snapshot reads so
// frame indices stay strictly increasing and eviction order holds under
// concurrent callers.
type Interpreter struct {
	mu         sync.Mutex
	cfg        Config
	ff         *functor.FilterFlash
	pipeline   *trident.Pipeline
	frameCount int
	ilog       []*Result
	log        *zap.Logger
}

// #endregion

// #region constructor

// New creates a fully wired interpreter. logger may be nil.
func New(cfg Config, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.StreamCapacity <= 0 {
		cfg.StreamCapacity = DefaultConfig().StreamCapacity
	}
	if cfg.CaptionWidth <= 0 {
		cfg.CaptionWidth = DefaultConfig().CaptionWidth
	}
	ff := functor.New()
	table := symtab.New(cfg.StreamCapacity)
	return &Interpreter{
		cfg:      cfg,
		ff:       ff,
		pipeline: trident.New(ff, table, logger),
		log:      logger,
	}
}

// #endregion

// #region interpret

// Interpret runs the full tripartite pass for one text fragment and
// appends the aggregate result to the interpretation log. Every input,
// including empty or whitespace-only text, yields a well-formed result.
func (it *Interpreter) Interpret(text string) *Result {
	it.mu.Lock()
	defer it.mu.Unlock()

	fi := it.frameCount
	it.frameCount++
	now := time.Now().UTC()

	final := it.pipeline.Run(lexer.Tokenize(text, fi, now))

	counts := map[string]int{
		symbol.Yes.String():   0,
		symbol.No.String():    0,
		symbol.Maybe.String(): 0,
	}
	var confSum float64
	for _, tok := range final {
		counts[tok.TriState.String()]++
		confSum += tok.Confidence
	}

	denom := len(final)
	if denom == 0 {
		denom = 1
	}
	yesRatio := float64(counts[symbol.Yes.String()]) / float64(denom)
	avgConf := confSum / float64(denom)

	dominant := dominantState(final)
	filtered, flashed := it.ff.Composite(yesRatio, avgConf)

	symbols := make([]*symbol.Token, 0, len(final))
	for _, tok := range final {
		symbols = append(symbols, tok.Clone())
	}

	res := &Result{
		ID:             uuid.NewString(),
		FrameIndex:     fi,
		RawText:        text,
		Symbols:        symbols,
		DominantState:  dominant,
		TriStateCounts: counts,
		SemanticLabel:  buildLabel(final, dominant, filtered, flashed),
		Caption:        buildCaption(text, dominant, it.cfg.CaptionWidth),
		Confidence:     avgConf,
		Filtered:       filtered,
		Flashed:        flashed,
		Timestamp:      now,
	}
	it.ilog = append(it.ilog, res)

	it.log.Info("interpret",
		zap.Int("frame", fi),
		zap.Int("symbols", len(final)),
		zap.String("dominant", string(dominant)),
		zap.Float64("confidence", avgConf),
	)
	return res
}

// dominantState is the count-based majority vote across all tokens.
// Ties break by enumeration order: Order, then Consensus, then Chaos.
func dominantState(tokens []*symbol.Token) symbol.DiscriminantState {
	counts := map[symbol.DiscriminantState]int{}
	for _, tok := range tokens {
		counts[tok.State]++
	}
	dominant := symbol.DiscriminantStates[0]
	best := counts[dominant]
	for _, s := range symbol.DiscriminantStates[1:] {
		if counts[s] > best {
			dominant = s
			best = counts[s]
		}
	}
	return dominant
}

// #endregion

// #region reads

// Reset discards the interpretation log and the symbol table and
// restarts frame indexing at zero.
func (it *Interpreter) Reset() {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.frameCount = 0
	it.ilog = nil
	it.pipeline.Table().Reset()
	it.log.Info("reset")
}

// Log returns a copy of the interpretation log in append order.
func (it *Interpreter) Log() []*Result {
	it.mu.Lock()
	defer it.mu.Unlock()
	out := make([]*Result, len(it.ilog))
	copy(out, it.ilog)
	return out
}

// CurrentSymbolTable renders the retained symbol window in insertion
// order. Repeated calls without an intervening Interpret are identical.
func (it *Interpreter) CurrentSymbolTable() []symbol.Snapshot {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.pipeline.Table().Snapshots()
}

// ExportCaptions maps the full log to timestamped caption cues. Before
// any interpretation it returns an empty slice, not an error.
func (it *Interpreter) ExportCaptions(frameDuration time.Duration) []vtt.Cue {
	it.mu.Lock()
	defer it.mu.Unlock()
	entries := make([]vtt.Entry, 0, len(it.ilog))
	for _, res := range it.ilog {
		entries = append(entries, vtt.Entry{FrameIndex: res.FrameIndex, Caption: res.Caption})
	}
	return vtt.Cues(entries, frameDuration)
}

// ExportVTT renders the log as a complete WebVTT document.
func (it *Interpreter) ExportVTT(frameDuration time.Duration) string {
	return vtt.Document(it.ExportCaptions(frameDuration))
}

// #endregion

// #region label

func keysByCategory(tokens []*symbol.Token, cat symbol.Category, limit int) []string {
	var keys []string
	for _, tok := range tokens {
		if tok.Category != cat {
			continue
		}
		keys = append(keys, tok.Key)
		if len(keys) == limit {
			break
		}
	}
	return keys
}

// buildLabel lists up to five identifiers, three numbers, and three
// operators, tagged with the dominant consciousness level and the two
// functor projections.
func buildLabel(tokens []*symbol.Token, dominant symbol.DiscriminantState, filtered, flashed float64) string {
	identifiers := keysByCategory(tokens, symbol.CategoryIdentifier, 5)
	numbers := keysByCategory(tokens, symbol.CategoryNumber, 3)
	ops := keysByCategory(tokens, symbol.CategoryOperator, 3)
	level := symbol.LevelFor(dominant)

	var parts []string
	if len(identifiers) > 0 {
		parts = append(parts, "["+strings.ToUpper(level.Name)+"] Symbols: "+strings.Join(identifiers, ", "))
	}
	if len(numbers) > 0 {
		parts = append(parts, "Values: "+strings.Join(numbers, ", "))
	}
	if len(ops) > 0 {
		parts = append(parts, "Operations: "+strings.Join(ops, ", "))
	}
	parts = append(parts, formatProjection(dominant, filtered, flashed))
	return strings.Join(parts, " | ")
}

func formatProjection(dominant symbol.DiscriminantState, filtered, flashed float64) string {
	return fmt.Sprintf("Δ=%s filter=%.3f flash=%.3f", dominant, filtered, flashed)
}

// #endregion

// #region caption

var captionPrefix = map[symbol.DiscriminantState]string{
	symbol.Order:     "[ORDER]",
	symbol.Consensus: "[CONSENSUS]",
	symbol.Chaos:     "[CHAOS→REPAIR]",
}

// buildCaption prefixes the input with the dominant state marker and
// truncates it to width runes with an ellipsis.
func buildCaption(raw string, dominant symbol.DiscriminantState, width int) string {
	runes := []rune(raw)
	if len(runes) > width {
		raw = string(runes[:width]) + "…"
	}
	return captionPrefix[dominant] + " " + raw
}

// #endregion
