// Package metrics records statistics about a single caesar run: how much
// was read and written, how many letters were analysed and which shift
// was applied.
//
// A run is single-threaded, so the Collector is not synchronised.  A nil
// *Collector is a valid no-op receiver, so callers never need to
// nil-check.
package metrics

import (
	"encoding/json"
	"time"
)

// Collector tracks statistics for one run.
type Collector struct {
	start      time.Time
	command    string
	bytesIn    int64
	bytesOut   int64
	letters    int64
	candidates int64
	shift      int
	shiftFrom  string
	distance   float64
}

// New creates a collector for command with the start time set to now.
func New(command string) *Collector {
	return &Collector{start: time.Now(), command: command}
}

// ── I/O ──────────────────────────────────────────────────────────────

// BytesRead records n bytes consumed from the input.
func (c *Collector) BytesRead(n int) {
	if c == nil {
		return
	}
	c.bytesIn += int64(n)
}

// BytesWritten records n bytes produced on the output.
func (c *Collector) BytesWritten(n int) {
	if c == nil {
		return
	}
	c.bytesOut += int64(n)
}

// ── Analysis ─────────────────────────────────────────────────────────

// LettersAnalysed records n letters that fed a frequency table.
func (c *Collector) LettersAnalysed(n int) {
	if c == nil {
		return
	}
	c.letters += int64(n)
}

// CandidatesScored records n candidate shifts compared to the reference.
func (c *Collector) CandidatesScored(n int) {
	if c == nil {
		return
	}
	c.candidates += int64(n)
}

// ShiftChosen records the shift that was applied and where it came from
// ("flag", "random" or "search").  distance is only meaningful for search.
func (c *Collector) ShiftChosen(shift int, source string, distance float64) {
	if c == nil {
		return
	}
	c.shift = shift
	c.shiftFrom = source
	c.distance = distance
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of the run statistics.
type Snapshot struct {
	Command          string  `json:"command"`
	Elapsed          string  `json:"elapsed"`
	BytesIn          int64   `json:"bytes_in"`
	BytesOut         int64   `json:"bytes_out"`
	Letters          int64   `json:"letters"`
	CandidatesScored int64   `json:"candidates_scored"`
	Shift            int     `json:"shift"`
	ShiftSource      string  `json:"shift_source,omitempty"`
	Distance         float64 `json:"distance,omitempty"`
}

// Snapshot returns a copy of the current statistics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	return Snapshot{
		Command:          c.command,
		Elapsed:          time.Since(c.start).String(),
		BytesIn:          c.bytesIn,
		BytesOut:         c.bytesOut,
		Letters:          c.letters,
		CandidatesScored: c.candidates,
		Shift:            c.shift,
		ShiftSource:      c.shiftFrom,
		Distance:         c.distance,
	}
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	data, _ := json.MarshalIndent(c.Snapshot(), "", "  ")
	return string(data)
}
