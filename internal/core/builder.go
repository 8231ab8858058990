package core

import (
	"fmt"

	"caesar/config"
	"caesar/internal/cipher"
	"caesar/internal/frequency"
	"caesar/internal/metrics"
	"caesar/util"
)

// Build constructs the Mode selected by cfg.Command.  cfg must already
// have passed Validate.
func Build(cfg *config.Config, logger *util.Logger) (Mode, error) {
	streams := Streams{
		InputPath:     cfg.InputPath,
		OutputPath:    cfg.OutputPath,
		MaxInputBytes: cfg.MaxInputBytes,
	}
	stats := metrics.New(string(cfg.Command))

	switch cfg.Command {
	case config.CommandEncode:
		return buildEncode(cfg, streams, logger, stats)
	case config.CommandDecode:
		ref, err := loadReference(cfg, logger)
		if err != nil {
			return nil, err
		}
		return &DecodeMode{Streams: streams, Reference: ref, Logger: logger, Stats: stats}, nil
	case config.CommandFrequency:
		ref, err := loadReference(cfg, logger)
		if err != nil {
			return nil, err
		}
		return &FrequencyMode{Streams: streams, Reference: ref, Logger: logger, Stats: stats}, nil
	default:
		_, err := config.ParseCommand(string(cfg.Command))
		return nil, err
	}
}

// ── mode builders ────────────────────────────────────────────────────

func buildEncode(cfg *config.Config, streams Streams, logger *util.Logger, stats *metrics.Collector) (Mode, error) {
	if cfg.ReferencePath != "" {
		logger.Warn("reference table ignored for encoding")
	}

	m := &EncodeMode{Streams: streams, Shift: cfg.Shift, Logger: logger, Stats: stats}
	if !cfg.ShiftSpecified() {
		rng, err := cipher.NewRand(cfg.Seed)
		if err != nil {
			return nil, err
		}
		m.Rand = rng
	}
	return m, nil
}

// loadReference returns the custom reference table, or English when
// none is configured.  It also reports an ignored --shift.
func loadReference(cfg *config.Config, logger *util.Logger) (frequency.Table, error) {
	if cfg.ShiftSpecified() {
		logger.Warn("shift value ignored for %s, trying all possible shift values", cfg.Command)
	}
	if cfg.ReferencePath == "" {
		return frequency.English(), nil
	}

	ref, err := frequency.LoadReference(cfg.ReferencePath)
	if err != nil {
		return frequency.Table{}, fmt.Errorf("load reference: %w", err)
	}
	logger.Verbose("using reference table %s (%s)", cfg.ReferencePath, frequency.FormatForPath(cfg.ReferencePath))
	return ref, nil
}
