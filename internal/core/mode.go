// Package core is the orchestration layer.  It turns a validated Config
// into exactly one operational mode (encode, decode or frequency) and
// runs it as a single read-transform-write pass.
//
// Architecture layers (bottom → top):
//
//	cipher, frequency  →  util (streams, logging)  →  core  →  cmd (CLI)
package core

import (
	"context"
	"io"
	"os"

	"caesar/internal/metrics"
	"caesar/util"
)

// Mode is one complete operation of caesar.  Each mode owns its streams
// from opening to close.
type Mode interface {
	Run(ctx context.Context) error
}

// Streams describes where a mode reads and writes.
type Streams struct {
	InputPath     string // empty = Stdin
	OutputPath    string // empty = Stdout
	MaxInputBytes int64  // 0 = unlimited

	// Stdin/Stdout default to os.Stdin/os.Stdout when nil.
	// Override in tests for deterministic I/O.
	Stdin  io.Reader
	Stdout io.Writer
}

func (s *Streams) stdin() io.Reader {
	if s.Stdin != nil {
		return s.Stdin
	}
	return os.Stdin
}

func (s *Streams) stdout() io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

// transformFunc maps the whole input to the whole output.
type transformFunc func(input []byte) ([]byte, error)

// process opens the streams, buffers the input, applies fn and writes
// the result.  The streams are closed on every return path and a close
// failure is reported even when everything else succeeded.
func (s *Streams) process(ctx context.Context, logger *util.Logger, stats *metrics.Collector, fn transformFunc) (err error) {
	st, err := util.OpenStreams(s.InputPath, s.OutputPath, s.stdin(), s.stdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if st.InputIsTerminal() {
		logger.Info("reading from terminal, end input with Ctrl-D")
	}
	logger.Verbose("reading %s", st.InName)

	input, err := st.ReadAll(s.MaxInputBytes)
	if err != nil {
		return err
	}
	stats.BytesRead(len(input))

	if err := ctx.Err(); err != nil {
		return err
	}

	output, err := fn(input)
	if err != nil {
		return err
	}

	logger.Verbose("writing %d bytes to %s", len(output), st.OutName)
	n, err := st.Write(output)
	stats.BytesWritten(n)
	return err
}
