// Package vtt renders interpretation logs as WebVTT caption cues for
// the player's accessibility track.
package vtt

import (
	"fmt"
	"strings"
	"time"
)

// #region types

// DefaultFrameDuration is the per-frame cue length used by the player.
const DefaultFrameDuration = 3000 * time.Millisecond

// Voice is the WebVTT voice span attached to every cue.
const Voice = "RIFT"

// Entry is one logged caption keyed by its frame index.
type Entry struct {
	FrameIndex int
	Caption    string
}

// Cue is a timestamped caption. Start and End are offsets from the
// beginning of the transcript.
type Cue struct {
	Start   time.Duration
	End     time.Duration
	Caption string
}

// #endregion types

// #region cues

// Cues maps a log to chronologically ordered, non-overlapping cues:
// frame n covers [n·duration, (n+1)·duration). duration <= 0 falls back
// to DefaultFrameDuration. An empty log yields an empty slice.
func Cues(entries []Entry, duration time.Duration) []Cue {
	if duration <= 0 {
		duration = DefaultFrameDuration
	}
	cues := make([]Cue, 0, len(entries))
	for _, e := range entries {
		start := time.Duration(e.FrameIndex) * duration
		cues = append(cues, Cue{
			Start:   start,
			End:     start + duration,
			Caption: e.Caption,
		})
	}
	return cues
}

// #endregion cues

// #region render

// Timestamp formats an offset as the WebVTT HH:MM:SS.mmm form.
func Timestamp(d time.Duration) string {
	ms := d.Milliseconds()
	h := ms / 3600000
	m := (ms % 3600000) / 60000
	s := (ms % 60000) / 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms%1000)
}

// String renders one cue block including its voice span.
func (c Cue) String() string {
	return fmt.Sprintf("%s --> %s\n<v %s>%s\n", Timestamp(c.Start), Timestamp(c.End), Voice, c.Caption)
}

// Document renders a full WebVTT file from the given cues.
func Document(cues []Cue) string {
	lines := []string{"WEBVTT", ""}
	for _, c := range cues {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}

// #endregion render
