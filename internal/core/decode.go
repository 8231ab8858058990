package core

import (
	"context"

	"caesar/internal/cipher"
	"caesar/internal/frequency"
	"caesar/internal/metrics"
	"caesar/util"
)

// DecodeMode recovers the shift by frequency analysis and decodes.
type DecodeMode struct {
	Streams
	Reference frequency.Table
	Logger    *util.Logger
	Stats     *metrics.Collector
}

// Run searches every shift and writes the input decoded with the best.
func (m *DecodeMode) Run(ctx context.Context) error {
	m.Logger.Info("decoding...")
	err := m.process(ctx, m.Logger, m.Stats, func(in []byte) ([]byte, error) {
		res := searchShift(in, m.Reference, m.Logger, m.Stats)
		return cipher.Decode(in, res.Shift), nil
	})
	m.Logger.Debug("run statistics:\n%s", m.Stats.JSON())
	return err
}

// searchShift runs the shift search and reports it.  Shared by the decode
// and frequency modes.
func searchShift(text []byte, ref frequency.Table, logger *util.Logger, stats *metrics.Collector) frequency.Result {
	counts := frequency.Count(text, 0)
	res := frequency.SearchCounts(counts, ref)

	stats.LettersAnalysed(res.Letters)
	stats.CandidatesScored(len(res.Scores))
	stats.ShiftChosen(res.Shift, "search", res.Distance)

	if logger.Enabled(util.LogVerbose) {
		for s, d := range res.Scores {
			logger.Verbose("shift %2d: chi-squared %.6f", s, d)
		}
	}

	switch {
	case res.Letters == 0:
		logger.Warn("input contains no letters, nothing to analyse")
	case res.Shift == 0:
		logger.Info("best shift 0 (chi-squared %.4f): input looks like plain text", res.Distance)
	default:
		logger.Info("best shift %d (chi-squared %.4f)", res.Shift, res.Distance)
	}
	return res
}
