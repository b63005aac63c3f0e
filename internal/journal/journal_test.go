package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/obinexus/riftplayer/go-engine/internal/interpreter"
	"github.com/obinexus/riftplayer/go-engine/internal/symbol"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndTranscript(t *testing.T) {
	s := tempStore(t)
	it := interpreter.New(interpreter.DefaultConfig(), nil)

	first := it.Interpret("x + 42 = result")
	second := it.Interpret("???")
	require.NoError(t, s.Append(first))
	require.NoError(t, s.Append(second))

	recs, err := s.Transcript()
	require.NoError(t, err)
	require.Len(t, recs, 2)

	require.Equal(t, first.ID, recs[0].ResultID)
	require.Equal(t, 0, recs[0].FrameIndex)
	require.Equal(t, "x + 42 = result", recs[0].RawText)
	require.Equal(t, symbol.Order, recs[0].DominantState)
	require.Equal(t, first.TriStateCounts, recs[0].TriStateCounts)
	require.Equal(t, first.Caption, recs[0].Caption)
	require.InDelta(t, first.Confidence, recs[0].Confidence, 1e-9)

	require.Equal(t, symbol.Chaos, recs[1].DominantState)
}

func TestListRecentNewestFirst(t *testing.T) {
	s := tempStore(t)
	it := interpreter.New(interpreter.DefaultConfig(), nil)
	require.NoError(t, s.Append(it.Interpret("one")))
	require.NoError(t, s.Append(it.Interpret("two")))
	require.NoError(t, s.Append(it.Interpret("three")))

	recs, err := s.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, 2, recs[0].FrameIndex)
	require.Equal(t, 1, recs[1].FrameIndex)
}

func TestSnapshotsRoundTrip(t *testing.T) {
	s := tempStore(t)
	it := interpreter.New(interpreter.DefaultConfig(), nil)
	res := it.Interpret("x + 42")
	require.NoError(t, s.Append(res))

	snaps, err := s.SnapshotsFor(res.ID)
	require.NoError(t, err)
	require.Len(t, snaps, 3)

	require.Equal(t, "x", snaps[0].Key)
	require.Equal(t, symbol.CategoryIdentifier, snaps[0].Category)
	require.Equal(t, "YES", snaps[0].TriState)
	require.Equal(t, symbol.Order, snaps[0].State)
	require.Equal(t, "111", snaps[0].Perm)
	require.Equal(t, symbol.ProvenanceTag, snaps[0].Tag)
	require.Equal(t, symbol.LevelFor(symbol.Order).Color, snaps[0].Color)

	require.Equal(t, "+", snaps[1].Key)
	require.Equal(t, "NO", snaps[1].TriState)
}

func TestEntriesForExport(t *testing.T) {
	s := tempStore(t)
	it := interpreter.New(interpreter.DefaultConfig(), nil)
	require.NoError(t, s.Append(it.Interpret("one")))
	require.NoError(t, s.Append(it.Interpret("two")))

	entries, err := s.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, 0, entries[0].FrameIndex)
	require.Equal(t, 1, entries[1].FrameIndex)
	require.NotEmpty(t, entries[0].Caption)
}

func TestEmptyJournalReads(t *testing.T) {
	s := tempStore(t)

	recs, err := s.Transcript()
	require.NoError(t, err)
	require.Empty(t, recs)

	entries, err := s.Entries()
	require.NoError(t, err)
	require.Empty(t, entries)
}
