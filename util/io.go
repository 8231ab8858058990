package util

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"

	"golang.org/x/term"

	cerrors "caesar/internal/errors"
)

// Display names for the standard streams in diagnostics.
const (
	StdinName  = "<stdin>"
	StdoutName = "<stdout>"
)

// Streams is the input/output pair of a single run.  Files opened by
// OpenStreams are owned by Streams and released by Close; the standard
// streams are never closed.
type Streams struct {
	In      io.Reader
	Out     io.Writer
	InName  string
	OutName string

	files []*os.File
}

// OpenStreams opens inPath for reading and creates outPath for writing.
// An empty path selects stdin or stdout.  If the output cannot be
// created the already opened input is closed before returning.
func OpenStreams(inPath, outPath string, stdin io.Reader, stdout io.Writer) (*Streams, error) {
	s := &Streams{In: stdin, Out: stdout, InName: StdinName, OutName: StdoutName}

	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return nil, cerrors.WrapIO("open", inPath, err)
		}
		s.files = append(s.files, f)
		s.In, s.InName = f, inPath
	}

	if outPath != "" {
		if err := s.checkNotInput(outPath); err != nil {
			closeErr := s.Close()
			return nil, cerrors.Join(err, closeErr)
		}
		f, err := os.Create(outPath)
		if err != nil {
			closeErr := s.Close()
			return nil, cerrors.Join(cerrors.WrapIO("open", outPath, err), closeErr)
		}
		s.files = append(s.files, f)
		s.Out, s.OutName = f, outPath
	}
	return s, nil
}

// checkNotInput refuses an output path naming the open input file;
// creating it would truncate the input before it is read.
func (s *Streams) checkNotInput(outPath string) error {
	if len(s.files) == 0 {
		return nil
	}
	outInfo, err := os.Stat(outPath)
	if err != nil {
		return nil // does not exist yet, or os.Create will report it
	}
	inInfo, err := s.files[0].Stat()
	if err != nil {
		return cerrors.WrapIO("open", s.InName, err)
	}
	if os.SameFile(inInfo, outInfo) {
		return cerrors.WrapIO("open", outPath, cerrors.ErrSameFile)
	}
	return nil
}

// ReadAll buffers the whole input in DefaultBufSize chunks taken from
// BufPool.  With limit > 0, input longer than limit bytes fails with a
// ResourceError instead of growing unbounded.
func (s *Streams) ReadAll(limit int64) ([]byte, error) {
	var r io.Reader = s.In
	if limit > 0 && limit < math.MaxInt64 {
		r = io.LimitReader(s.In, limit+1)
	}

	buf := GetBuf()
	defer PutBuf(buf)

	var data bytes.Buffer
	for {
		n, err := r.Read(*buf)
		data.Write((*buf)[:n])
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, cerrors.WrapIO("read", s.InName, err)
		}
	}
	if limit > 0 && int64(data.Len()) > limit {
		return nil, &cerrors.ResourceError{
			Resource: s.InName,
			Limit:    limit,
			Err:      cerrors.ErrInputTooLarge,
		}
	}
	return data.Bytes(), nil
}

// Write writes all of p to the output.
func (s *Streams) Write(p []byte) (int, error) {
	n, err := s.Out.Write(p)
	return n, cerrors.WrapIO("write", s.OutName, err)
}

// InputIsTerminal reports whether input is an interactive terminal.
func (s *Streams) InputIsTerminal() bool {
	f, ok := s.In.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Close releases every file opened by OpenStreams, output last so a
// failed flush is reported.  It is safe to call more than once.
func (s *Streams) Close() error {
	var errs []error
	for _, f := range s.files {
		errs = append(errs, cerrors.WrapIO("close", f.Name(), f.Close()))
	}
	s.files = nil
	return cerrors.Join(errs...)
}
