package symbol

import "time"

// #region tristate

// TriState is the three-valued judgment attached to a classified token.
// Maybe is a hold, not a failure: tokens in Maybe stay queryable and are
// never dropped from output.
type TriState int8

const (
	Yes   TriState = 1
	No    TriState = 0
	Maybe TriState = -1
)

// String returns the canonical upper-case name used in exports.
func (t TriState) String() string {
	switch t {
	case Yes:
		return "YES"
	case No:
		return "NO"
	default:
		return "MAYBE"
	}
}

// #endregion tristate

// #region discriminant-state

// DiscriminantState partitions the discriminant Δ = b²−4ac by sign.
type DiscriminantState string

const (
	Order     DiscriminantState = "ORDER"     // Δ > 0
	Consensus DiscriminantState = "CONSENSUS" // Δ = 0
	Chaos     DiscriminantState = "CHAOS"     // Δ < 0
)

// DiscriminantStates lists all states in enumeration order. Majority
// voting breaks ties by this order.
var DiscriminantStates = []DiscriminantState{Order, Consensus, Chaos}

// #endregion discriminant-state

// #region category

// Category is the lexical class assigned by the classifier.
type Category string

const (
	CategoryIdentifier  Category = "IDENTIFIER"
	CategoryNumber      Category = "NUMBER"
	CategoryOperator    Category = "OPERATOR"
	CategoryGlyph       Category = "GLYPH"
	CategoryPunctuation Category = "PUNCTUATION"
	CategoryWhitespace  Category = "WHITESPACE"
	CategoryUnknown     Category = "UNKNOWN"
)

// #endregion category

// #region permissions

// Perm is a read/write/execute permission triple packed as bits.
type Perm uint8

const (
	PermNone    Perm = 0b000
	PermExecute Perm = 0b001
	PermWrite   Perm = 0b010
	PermRead    Perm = 0b100
	PermFull    Perm = 0b111
)

// Has reports whether all bits in p are set.
func (p Perm) Has(bits Perm) bool {
	return p&bits == bits
}

// String renders the bits in the "rwx" field shape used by the overlay,
// e.g. 0b101 -> "101".
func (p Perm) String() string {
	buf := [3]byte{'0', '0', '0'}
	if p.Has(PermRead) {
		buf[0] = '1'
	}
	if p.Has(PermWrite) {
		buf[1] = '1'
	}
	if p.Has(PermExecute) {
		buf[2] = '1'
	}
	return string(buf[:])
}

// #endregion permissions

// #region polarity

// Polarity marks a token as order-seeking (+) or chaos-seeking (-).
type Polarity string

const (
	PolarityPositive Polarity = "+"
	PolarityNegative Polarity = "-"
)

// #endregion polarity

// #region token

// ProvenanceTag is stamped on every token produced by this engine.
const ProvenanceTag = "NSIGII_HR_SYMBOL"

// Token is the atomic symbol unit threaded through the trident pipeline.
// The lexer creates it, each phase mutates it in place, and only the
// symbol table retains it afterward.
type Token struct {
	Key        string
	Value      string
	Category   Category
	TriState   TriState
	State      DiscriminantState
	Confidence float64
	Polarity   Polarity
	Perm       Perm
	FrameIndex int
	Timestamp  time.Time
	Tag        string
}

// New returns a token with pipeline entry defaults: Maybe/Chaos, zero
// permission, positive polarity.
func New(key string, cat Category, frameIndex int, now time.Time) *Token {
	return &Token{
		Key:        key,
		Value:      key,
		Category:   cat,
		TriState:   Maybe,
		State:      Chaos,
		Polarity:   PolarityPositive,
		Perm:       PermNone,
		FrameIndex: frameIndex,
		Timestamp:  now,
		Tag:        ProvenanceTag,
	}
}

// Executable reports whether the execute bit was granted during Verify.
func (t *Token) Executable() bool {
	return t.Perm.Has(PermExecute)
}

// Clone returns an independent copy for snapshot reads.
func (t *Token) Clone() *Token {
	c := *t
	return &c
}

// #endregion token

// #region level

// Level is the consciousness band derived from a discriminant state,
// used for label prose and overlay colors.
type Level struct {
	Name  string
	Color string
}

var levels = map[DiscriminantState]Level{
	Order:     {Name: "conscious", Color: "#00ff88"},
	Consensus: {Name: "subconscious", Color: "#4488ff"},
	Chaos:     {Name: "unconscious", Color: "#333333"},
}

// LevelFor maps a discriminant state to its consciousness level.
func LevelFor(s DiscriminantState) Level {
	return levels[s]
}

// #endregion level

// #region snapshot

// Snapshot is a read-only view of a verified symbol, shaped for the
// player overlay and the journal.
type Snapshot struct {
	Key        string            `json:"key"`
	Category   Category          `json:"type"`
	TriState   string            `json:"tristate"`
	State      DiscriminantState `json:"state"`
	Confidence float64           `json:"confidence"`
	Perm       string            `json:"rwx"`
	Tag        string            `json:"tag"`
	Color      string            `json:"color"`
}

// SnapshotOf builds a snapshot from a token. Confidence is rounded to
// three decimals at render time, matching the overlay contract.
func SnapshotOf(t *Token) Snapshot {
	return Snapshot{
		Key:        t.Key,
		Category:   t.Category,
		TriState:   t.TriState.String(),
		State:      t.State,
		Confidence: round3(t.Confidence),
		Perm:       t.Perm.String(),
		Tag:        t.Tag,
		Color:      LevelFor(t.State).Color,
	}
}

func round3(f float64) float64 {
	return float64(int64(f*1000+0.5)) / 1000
}

// #endregion snapshot
