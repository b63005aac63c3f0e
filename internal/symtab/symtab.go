// Package symtab stores the most recently verified symbols: a fixed
// capacity ring buffer with FIFO eviction plus a key index for
// overwrite-by-key lookup.
package symtab

import "github.com/obinexus/riftplayer/go-engine/internal/symbol"

// #region table

// DefaultCapacity matches the player overlay window.
const DefaultCapacity = 50

// Table retains the verified stream. Not safe for concurrent use; the
// interpreter serializes access.
type Table struct {
	ring  []*symbol.Token
	head  int // next write position
	size  int
	index map[string]*symbol.Token
}

// New creates a table with the given retention capacity. Capacity <= 0
// falls back to DefaultCapacity.
func New(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table{
		ring:  make([]*symbol.Token, capacity),
		index: make(map[string]*symbol.Token, capacity),
	}
}

// #endregion table

// #region push

// Push appends a verified token to the stream and keys it in the index,
// overwriting any earlier token with the same key. When the ring is
// full the oldest entry is evicted first.
func (t *Table) Push(tok *symbol.Token) {
	if t.size == len(t.ring) {
		evicted := t.ring[t.head]
		// Drop the index entry only if it still points at the evicted
		// token; a later push may have re-keyed it.
		if t.index[evicted.Key] == evicted {
			delete(t.index, evicted.Key)
		}
	} else {
		t.size++
	}
	t.ring[t.head] = tok
	t.head = (t.head + 1) % len(t.ring)
	t.index[tok.Key] = tok
}

// #endregion push

// #region reads

// Get returns the most recently verified token for key.
func (t *Table) Get(key string) (*symbol.Token, bool) {
	tok, ok := t.index[key]
	return tok, ok
}

// Len returns the number of retained tokens.
func (t *Table) Len() int {
	return t.size
}

// Cap returns the retention bound.
func (t *Table) Cap() int {
	return len(t.ring)
}

// Stream returns the retained tokens in insertion order, oldest first,
// as independent copies.
func (t *Table) Stream() []*symbol.Token {
	out := make([]*symbol.Token, 0, t.size)
	start := t.head - t.size
	if start < 0 {
		start += len(t.ring)
	}
	for i := 0; i < t.size; i++ {
		out = append(out, t.ring[(start+i)%len(t.ring)].Clone())
	}
	return out
}

// Snapshots renders the retained window in insertion order.
func (t *Table) Snapshots() []symbol.Snapshot {
	stream := t.Stream()
	out := make([]symbol.Snapshot, 0, len(stream))
	for _, tok := range stream {
		out = append(out, symbol.SnapshotOf(tok))
	}
	return out
}

// #endregion reads

// #region reset

// Reset discards all retained tokens.
func (t *Table) Reset() {
	for i := range t.ring {
		t.ring[i] = nil
	}
	t.head = 0
	t.size = 0
	t.index = make(map[string]*symbol.Token, len(t.ring))
}

// #endregion reset
