package core

import (
	"context"

	"caesar/internal/frequency"
	"caesar/internal/metrics"
	"caesar/util"
)

// FrequencyMode writes the letter distribution of the input as it reads
// once decoded with the best shift.
type FrequencyMode struct {
	Streams
	Reference frequency.Table
	Logger    *util.Logger
	Stats     *metrics.Collector
}

// Run searches the shift and writes the resulting frequency table.
func (m *FrequencyMode) Run(ctx context.Context) error {
	m.Logger.Info("analysing letter frequencies...")
	err := m.process(ctx, m.Logger, m.Stats, func(in []byte) ([]byte, error) {
		res := searchShift(in, m.Reference, m.Logger, m.Stats)
		return []byte(frequency.Analyze(in, res.Shift).String()), nil
	})
	m.Logger.Debug("run statistics:\n%s", m.Stats.JSON())
	return err
}
