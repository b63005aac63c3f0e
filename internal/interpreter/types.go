package interpreter

// #region imports
import (
	"time"

	"github.com/obinexus/riftplayer/go-engine/internal/symbol"
)

// #endregion

// #region result

// Result is the aggregate record for one interpreted fragment. It is
// immutable once returned and appended to the interpretation log.
type Result struct {
	ID             string                   `json:"id"`
	FrameIndex     int                      `json:"frame_index"`
	RawText        string                   `json:"raw_text"`
	Symbols        []*symbol.Token          `json:"-"`
	DominantState  symbol.DiscriminantState `json:"dominant_state"`
	TriStateCounts map[string]int           `json:"tristate_summary"`
	SemanticLabel  string                   `json:"semantic_label"`
	Caption        string                   `json:"caption"`
	Confidence     float64                  `json:"confidence"`
	Filtered       float64                  `json:"filtered"`
	Flashed        float64                  `json:"flashed"`
	Timestamp      time.Time                `json:"timestamp"`
}

// #endregion result

// #region config

// Config holds the tunable windows of an interpreter instance.
type Config struct {
	StreamCapacity int // symbol table retention bound
	CaptionWidth   int // caption truncation width, in runes
}

// DefaultConfig mirrors the player defaults: a 50-symbol overlay window
// and 80-rune captions.
func DefaultConfig() Config {
	return Config{
		StreamCapacity: 50,
		CaptionWidth:   80,
	}
}

// #endregion config
