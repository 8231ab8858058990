package core

import (
	"context"

	"caesar/internal/cipher"
	"caesar/internal/metrics"
	"caesar/util"
)

// EncodeMode shifts every letter of the input by a fixed amount.
type EncodeMode struct {
	Streams
	Shift  int                // 0 = draw from Rand
	Rand   cipher.IntSource   // used only when Shift is 0
	Logger *util.Logger
	Stats  *metrics.Collector
}

// Run resolves the shift and encodes the input.
func (m *EncodeMode) Run(ctx context.Context) error {
	shift, source := m.Shift, "flag"
	if shift == 0 {
		shift, source = cipher.RandomShift(m.Rand), "random"
		m.Logger.Warn("shift value not specified, random value %d will be used", shift)
	}
	m.Stats.ShiftChosen(shift, source, 0)

	m.Logger.Info("encoding with shift %d...", shift)
	err := m.process(ctx, m.Logger, m.Stats, func(in []byte) ([]byte, error) {
		return cipher.Encode(in, shift), nil
	})
	m.Logger.Debug("run statistics:\n%s", m.Stats.JSON())
	return err
}
